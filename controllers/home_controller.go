package controllers

import "github.com/gofiber/fiber/v2"

func Home(ctx *fiber.Ctx) error {
	return ctx.JSON(fiber.Map{"Msg": "Supplier management API is running"})
}
