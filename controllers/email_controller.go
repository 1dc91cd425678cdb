package controllers

import (
	"supplier-api/models"
	"supplier-api/services"

	"github.com/gofiber/fiber/v2"
)

type EmailController struct {
	Service *services.NotificationService
}

func NewEmailController(service *services.NotificationService) *EmailController {
	return &EmailController{Service: service}
}

// SendEmail mails the supplier of the product in the path.
func (c *EmailController) SendEmail(ctx *fiber.Ctx) error {
	productID, err := paramID(ctx, "productId")
	if err != nil {
		return err
	}

	var content models.EmailContent
	if err := parseBody(ctx, &content); err != nil {
		return err
	}

	if err := c.Service.Notify(ctx.UserContext(), productID, content); err != nil {
		return err
	}
	return ctx.JSON(fiber.Map{"status": "ok"})
}
