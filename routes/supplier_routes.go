package routes

import (
	"supplier-api/controllers"

	"github.com/gofiber/fiber/v2"
)

func SetupSupplierRoutes(app *fiber.App, supplierController *controllers.SupplierController) {
	api := app.Group("/supplier")

	api.Get("/export", supplierController.ExportSuppliers)
	api.Post("/import", supplierController.ImportSuppliers)
	api.Post("/", supplierController.CreateSupplier)
	api.Get("/", supplierController.GetAllSuppliers)
	api.Get("/:id", supplierController.GetSupplierByID)
	api.Put("/:id", supplierController.UpdateSupplier)
	api.Delete("/:id", supplierController.DeleteSupplier)
}
