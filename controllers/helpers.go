package controllers

import (
	"github.com/gofiber/fiber/v2"
)

const xlsxContentType = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"

// paramID reads a positive integer path parameter.
func paramID(ctx *fiber.Ctx, name string) (uint, error) {
	id, err := ctx.ParamsInt(name)
	if err != nil || id <= 0 {
		return 0, fiber.NewError(fiber.StatusBadRequest, "Invalid "+name)
	}
	return uint(id), nil
}

func parseBody(ctx *fiber.Ctx, out interface{}) error {
	if err := ctx.BodyParser(out); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Invalid request body")
	}
	return nil
}

func ok(ctx *fiber.Ctx, data interface{}) error {
	return ctx.JSON(fiber.Map{"status": "ok", "data": data})
}
