package routes

import (
	"supplier-api/config"
	"supplier-api/controllers"
	"supplier-api/middleware"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/gofiber/fiber/v2/middleware/recover"
)

type Controllers struct {
	Supplier *controllers.SupplierController
	Product  *controllers.ProductController
	Email    *controllers.EmailController
}

// NewApp builds the Fiber app with middleware and every route registered.
func NewApp(cfg *config.Config, c Controllers) *fiber.App {
	app := fiber.New(fiber.Config{
		AppName:      "supplier-api",
		ErrorHandler: middleware.ErrorHandler,
	})

	app.Use(recover.New())
	app.Use(logger.New())
	cfg.SetupCORS(app)

	app.Get("/", controllers.Home)
	SetupSupplierRoutes(app, c.Supplier)
	SetupProductRoutes(app, c.Product)
	SetupEmailRoutes(app, c.Email)

	return app
}
