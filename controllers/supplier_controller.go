package controllers

import (
	"strings"

	"supplier-api/models"
	"supplier-api/services"

	"github.com/gofiber/fiber/v2"
)

type SupplierController struct {
	Service *services.SupplierService
}

func NewSupplierController(service *services.SupplierService) *SupplierController {
	return &SupplierController{Service: service}
}

func (c *SupplierController) CreateSupplier(ctx *fiber.Ctx) error {
	var input models.SupplierInput
	if err := parseBody(ctx, &input); err != nil {
		return err
	}

	supplier, err := c.Service.Create(ctx.UserContext(), input)
	if err != nil {
		return err
	}
	return ok(ctx, supplier)
}

func (c *SupplierController) GetAllSuppliers(ctx *fiber.Ctx) error {
	suppliers, err := c.Service.GetAll(ctx.UserContext())
	if err != nil {
		return err
	}
	return ok(ctx, suppliers)
}

func (c *SupplierController) GetSupplierByID(ctx *fiber.Ctx) error {
	id, err := paramID(ctx, "id")
	if err != nil {
		return err
	}

	supplier, err := c.Service.GetByID(ctx.UserContext(), id)
	if err != nil {
		return err
	}
	return ok(ctx, supplier)
}

func (c *SupplierController) UpdateSupplier(ctx *fiber.Ctx) error {
	id, err := paramID(ctx, "id")
	if err != nil {
		return err
	}

	var input models.SupplierInput
	if err := parseBody(ctx, &input); err != nil {
		return err
	}

	supplier, err := c.Service.Update(ctx.UserContext(), id, input)
	if err != nil {
		return err
	}
	return ok(ctx, supplier)
}

func (c *SupplierController) DeleteSupplier(ctx *fiber.Ctx) error {
	id, err := paramID(ctx, "id")
	if err != nil {
		return err
	}

	if err := c.Service.Delete(ctx.UserContext(), id); err != nil {
		return err
	}
	return ctx.JSON(fiber.Map{"status": "ok"})
}

// ExportSuppliers streams every supplier as an xlsx attachment.
func (c *SupplierController) ExportSuppliers(ctx *fiber.Ctx) error {
	f, err := c.Service.Export(ctx.UserContext())
	if err != nil {
		return err
	}
	defer f.Close()

	ctx.Set(fiber.HeaderContentType, xlsxContentType)
	ctx.Set(fiber.HeaderContentDisposition, `attachment; filename="suppliers.xlsx"`)
	return f.Write(ctx.Response().BodyWriter())
}

// ImportSuppliers creates suppliers from an uploaded .xlsx workbook (form field "file").
func (c *SupplierController) ImportSuppliers(ctx *fiber.Ctx) error {
	file, err := ctx.FormFile("file")
	if err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "File is required")
	}

	name := strings.ToLower(file.Filename)
	if strings.HasSuffix(name, ".xls") {
		return fiber.NewError(fiber.StatusBadRequest, "Legacy .xls workbooks are not supported, save the file as .xlsx")
	}
	if !strings.HasSuffix(name, ".xlsx") {
		return fiber.NewError(fiber.StatusBadRequest, "Only Excel files (.xlsx) are allowed")
	}

	content, err := file.Open()
	if err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "Failed to open file")
	}
	defer content.Close()

	result, err := c.Service.ImportFromExcel(ctx.UserContext(), content)
	if err != nil {
		return err
	}
	return ok(ctx, result)
}
