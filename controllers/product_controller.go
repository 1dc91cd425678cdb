package controllers

import (
	"supplier-api/models"
	"supplier-api/services"

	"github.com/gofiber/fiber/v2"
)

type ProductController struct {
	Service *services.ProductService
}

func NewProductController(service *services.ProductService) *ProductController {
	return &ProductController{Service: service}
}

// CreateProduct registers a product under the supplier named in the path.
func (c *ProductController) CreateProduct(ctx *fiber.Ctx) error {
	supplierID, err := paramID(ctx, "supplierId")
	if err != nil {
		return err
	}

	var input models.ProductInput
	if err := parseBody(ctx, &input); err != nil {
		return err
	}

	product, err := c.Service.Create(ctx.UserContext(), supplierID, input)
	if err != nil {
		return err
	}
	return ok(ctx, product)
}

func (c *ProductController) GetAllProducts(ctx *fiber.Ctx) error {
	products, err := c.Service.GetAll(ctx.UserContext())
	if err != nil {
		return err
	}
	return ok(ctx, products)
}

func (c *ProductController) GetProductByID(ctx *fiber.Ctx) error {
	id, err := paramID(ctx, "id")
	if err != nil {
		return err
	}

	product, err := c.Service.GetByID(ctx.UserContext(), id)
	if err != nil {
		return err
	}
	return ok(ctx, product)
}

func (c *ProductController) UpdateProduct(ctx *fiber.Ctx) error {
	id, err := paramID(ctx, "id")
	if err != nil {
		return err
	}

	var input models.ProductInput
	if err := parseBody(ctx, &input); err != nil {
		return err
	}

	product, err := c.Service.Update(ctx.UserContext(), id, input)
	if err != nil {
		return err
	}
	return ok(ctx, product)
}

func (c *ProductController) DeleteProduct(ctx *fiber.Ctx) error {
	id, err := paramID(ctx, "id")
	if err != nil {
		return err
	}

	if err := c.Service.Delete(ctx.UserContext(), id); err != nil {
		return err
	}
	return ctx.JSON(fiber.Map{"status": "ok"})
}

func (c *ProductController) ExportProducts(ctx *fiber.Ctx) error {
	f, err := c.Service.Export(ctx.UserContext())
	if err != nil {
		return err
	}
	defer f.Close()

	ctx.Set(fiber.HeaderContentType, xlsxContentType)
	ctx.Set(fiber.HeaderContentDisposition, `attachment; filename="products.xlsx"`)
	return f.Write(ctx.Response().BodyWriter())
}
