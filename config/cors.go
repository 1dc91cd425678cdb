package config

import (
	"strings"

	"github.com/gofiber/fiber/v2"
	"golang.org/x/exp/slices"
)

var (
	corsMethods = strings.Join([]string{
		fiber.MethodGet, fiber.MethodPost, fiber.MethodPut, fiber.MethodDelete, fiber.MethodOptions,
	}, ",")
	corsHeaders = strings.Join([]string{
		fiber.HeaderOrigin, fiber.HeaderContentType, fiber.HeaderAccept, fiber.HeaderAuthorization,
	}, ", ")
)

// SetupCORS echoes the request origin back only when it is in AllowedOrigins.
// Preflight requests end here with 204 whatever the origin.
func (c *Config) SetupCORS(app *fiber.App) {
	app.Use(func(ctx *fiber.Ctx) error {
		if origin := ctx.Get(fiber.HeaderOrigin); c.allowsOrigin(origin) {
			ctx.Vary(fiber.HeaderOrigin)
			ctx.Set(fiber.HeaderAccessControlAllowOrigin, origin)
			ctx.Set(fiber.HeaderAccessControlAllowCredentials, "true")
			ctx.Set(fiber.HeaderAccessControlAllowMethods, corsMethods)
			ctx.Set(fiber.HeaderAccessControlAllowHeaders, corsHeaders)
		}

		if ctx.Method() != fiber.MethodOptions {
			return ctx.Next()
		}
		return ctx.SendStatus(fiber.StatusNoContent)
	})
}

func (c *Config) allowsOrigin(origin string) bool {
	return origin != "" && slices.Contains(c.AllowedOrigins, origin)
}
