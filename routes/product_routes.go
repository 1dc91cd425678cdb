package routes

import (
	"supplier-api/controllers"

	"github.com/gofiber/fiber/v2"
)

func SetupProductRoutes(app *fiber.App, productController *controllers.ProductController) {
	api := app.Group("/product")

	api.Get("/export", productController.ExportProducts)
	api.Get("/", productController.GetAllProducts)
	api.Post("/:supplierId", productController.CreateProduct)
	api.Get("/:id", productController.GetProductByID)
	api.Put("/:id", productController.UpdateProduct)
	api.Delete("/:id", productController.DeleteProduct)
}
