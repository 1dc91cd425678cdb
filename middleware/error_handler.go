package middleware

import (
	"errors"
	"log/slog"

	"supplier-api/services"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/utils"
)

// ErrorHandler turns errors returned by handlers into the JSON error body.
func ErrorHandler(ctx *fiber.Ctx, err error) error {
	status := fiber.StatusInternalServerError
	detail := utils.StatusMessage(status)
	body := fiber.Map{"status": "error"}

	var fe *fiber.Error
	var verr *services.ValidationError
	switch {
	case errors.As(err, &fe):
		status = fe.Code
		detail = fe.Message
	case errors.As(err, &verr):
		status = fiber.StatusUnprocessableEntity
		detail = verr.Error()
		body["fields"] = verr.Fields
	case errors.Is(err, services.ErrNotFound):
		status = fiber.StatusNotFound
		detail = err.Error()
	case errors.Is(err, services.ErrConflict):
		status = fiber.StatusConflict
		detail = err.Error()
	case errors.Is(err, services.ErrBadFile):
		status = fiber.StatusBadRequest
		detail = err.Error()
	case errors.Is(err, services.ErrDelivery):
		detail = "failed to deliver email"
	}

	if status >= fiber.StatusInternalServerError {
		slog.Error("request failed",
			"method", ctx.Method(),
			"path", ctx.Path(),
			"status", status,
			"error", err)
	}

	body["detail"] = detail
	return ctx.Status(status).JSON(body)
}
