package services

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"strings"

	"supplier-api/models"

	"github.com/xuri/excelize/v2"
)

// ImportResult summarises a spreadsheet upload.
type ImportResult struct {
	TotalRows     int      `json:"total_rows"`
	SuccessCount  int      `json:"success_count"`
	SkippedCount  int      `json:"skipped_count"`
	ErrorCount    int      `json:"error_count"`
	ErrorMessages []string `json:"error_messages"`
}

// ImportFromExcel creates a supplier for every data row of the first sheet.
// Columns: NAME, COMPANY, PHONE, EMAIL; row 1 is the header. Blank rows are
// skipped and invalid rows are reported without stopping the import.
func (s *SupplierService) ImportFromExcel(ctx context.Context, r io.Reader) (*ImportResult, error) {
	f, err := excelize.OpenReader(r)
	if err != nil {
		return nil, fmt.Errorf("%w: failed to read Excel file", ErrBadFile)
	}
	defer f.Close()

	sheets := f.GetSheetList()
	if len(sheets) == 0 {
		return nil, fmt.Errorf("%w: no sheets found in Excel file", ErrBadFile)
	}

	rows, err := f.GetRows(sheets[0])
	if err != nil {
		return nil, fmt.Errorf("%w: failed to read rows", ErrBadFile)
	}
	if len(rows) < 2 {
		return nil, fmt.Errorf("%w: Excel file must contain header and at least one data row", ErrBadFile)
	}

	result := &ImportResult{
		TotalRows:     len(rows) - 1,
		ErrorMessages: []string{},
	}

	for i, row := range rows[1:] {
		rowNum := i + 2 // header is row 1

		if blankRow(row) {
			result.SkippedCount++
			continue
		}

		in := models.SupplierInput{
			Name:    cell(row, 0),
			Company: cell(row, 1),
			Phone:   cell(row, 2),
			Email:   cell(row, 3),
		}
		if _, err := s.Create(ctx, in); err != nil {
			result.ErrorCount++
			result.ErrorMessages = append(result.ErrorMessages, fmt.Sprintf("Row %d: %v", rowNum, err))
			continue
		}
		result.SuccessCount++
	}

	slog.Info("supplier import finished",
		"rows", result.TotalRows,
		"created", result.SuccessCount,
		"skipped", result.SkippedCount,
		"errors", result.ErrorCount)
	return result, nil
}

func cell(row []string, i int) string {
	if i < len(row) {
		return strings.TrimSpace(row[i])
	}
	return ""
}

func blankRow(row []string) bool {
	for _, c := range row {
		if strings.TrimSpace(c) != "" {
			return false
		}
	}
	return true
}
