package routes

import (
	"supplier-api/controllers"

	"github.com/gofiber/fiber/v2"
)

func SetupEmailRoutes(app *fiber.App, emailController *controllers.EmailController) {
	api := app.Group("/email")
	api.Post("/:productId", emailController.SendEmail)
}
