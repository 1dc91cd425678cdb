package services

import (
	"context"
	"fmt"

	"github.com/xuri/excelize/v2"
)

var (
	supplierColumns = []interface{}{"ID", "NAME", "COMPANY", "PHONE", "EMAIL"}
	productColumns  = []interface{}{"ID", "NAME", "QUANTITY_IN_STOCK", "QUANTITY_SOLD", "UNIT_PRICE", "REVENUE", "SUPPLIER_ID"}
)

// Export writes all suppliers to a one-sheet workbook.
func (s *SupplierService) Export(ctx context.Context) (*excelize.File, error) {
	suppliers, err := s.GetAll(ctx)
	if err != nil {
		return nil, err
	}

	rows := make([][]interface{}, 0, len(suppliers))
	for _, sp := range suppliers {
		rows = append(rows, []interface{}{sp.ID, sp.Name, sp.Company, sp.Phone, sp.Email})
	}
	return buildWorkbook("Suppliers", supplierColumns, rows)
}

// Export writes all products to a one-sheet workbook.
func (s *ProductService) Export(ctx context.Context) (*excelize.File, error) {
	products, err := s.GetAll(ctx)
	if err != nil {
		return nil, err
	}

	rows := make([][]interface{}, 0, len(products))
	for _, p := range products {
		rows = append(rows, []interface{}{p.ID, p.Name, p.QuantityInStock, p.QuantitySold, p.UnitPrice, p.Revenue, p.SuppliedByID})
	}
	return buildWorkbook("Products", productColumns, rows)
}

func buildWorkbook(sheet string, header []interface{}, rows [][]interface{}) (*excelize.File, error) {
	f := excelize.NewFile()
	if err := f.SetSheetName("Sheet1", sheet); err != nil {
		f.Close()
		return nil, err
	}

	if err := f.SetSheetRow(sheet, "A1", &header); err != nil {
		f.Close()
		return nil, err
	}
	style, err := f.NewStyle(&excelize.Style{Font: &excelize.Font{Bold: true}})
	if err != nil {
		f.Close()
		return nil, err
	}
	lastHeader, _ := excelize.CoordinatesToCellName(len(header), 1)
	if err := f.SetCellStyle(sheet, "A1", lastHeader, style); err != nil {
		f.Close()
		return nil, err
	}

	for i := range rows {
		cell, _ := excelize.CoordinatesToCellName(1, i+2)
		if err := f.SetSheetRow(sheet, cell, &rows[i]); err != nil {
			f.Close()
			return nil, fmt.Errorf("write row %d: %w", i+2, err)
		}
	}
	return f, nil
}
