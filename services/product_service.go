package services

import (
	"context"
	"errors"
	"fmt"
	"math"
	"strings"

	"supplier-api/models"
	"supplier-api/repositories"
)

type ProductService struct {
	repo      repositories.ProductRepository
	suppliers repositories.SupplierRepository
}

func NewProductService(repo repositories.ProductRepository, suppliers repositories.SupplierRepository) *ProductService {
	return &ProductService{repo: repo, suppliers: suppliers}
}

// Create stores a product for the given supplier. The sale implied by the
// initial quantity_sold and unit_price is added to the caller's revenue.
func (s *ProductService) Create(ctx context.Context, supplierID uint, in models.ProductInput) (*models.Product, error) {
	in.Name = strings.TrimSpace(in.Name)
	if err := Validate(in); err != nil {
		return nil, err
	}

	revenue := *in.Revenue + saleValue(*in.QuantitySold, *in.UnitPrice)
	if !finite(revenue) {
		return nil, revenueOutOfRange()
	}

	supplier, err := s.suppliers.GetByID(ctx, supplierID)
	if err != nil {
		return nil, notFound(err, "Supplier", supplierID, "get supplier")
	}

	product := &models.Product{
		Name:            in.Name,
		QuantityInStock: *in.QuantityInStock,
		QuantitySold:    *in.QuantitySold,
		UnitPrice:       *in.UnitPrice,
		Revenue:         revenue,
		SuppliedByID:    supplier.ID,
	}
	if err := s.repo.Create(ctx, product); err != nil {
		return nil, fmt.Errorf("create product: %w", err)
	}
	return product, nil
}

// GetAll returns every product, oldest first.
func (s *ProductService) GetAll(ctx context.Context) ([]models.Product, error) {
	products, err := s.repo.GetAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("list products: %w", err)
	}
	return products, nil
}

func (s *ProductService) GetByID(ctx context.Context, id uint) (*models.Product, error) {
	product, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, notFound(err, "Product", id, "get product")
	}
	return product, nil
}

// Update records a sales report against the product.
//
//	name, quantity_in_stock, unit_price  replaced
//	quantity_sold                        += in.quantity_sold
//	revenue                              += in.quantity_sold*in.unit_price + in.revenue
func (s *ProductService) Update(ctx context.Context, id uint, in models.ProductInput) (*models.Product, error) {
	in.Name = strings.TrimSpace(in.Name)
	if err := Validate(in); err != nil {
		return nil, err
	}

	delta := saleValue(*in.QuantitySold, *in.UnitPrice) + *in.Revenue
	if !finite(delta) {
		return nil, revenueOutOfRange()
	}

	product, err := s.repo.ApplyUpdate(ctx, id, repositories.ProductUpdate{
		Name:              in.Name,
		QuantityInStock:   *in.QuantityInStock,
		UnitPrice:         *in.UnitPrice,
		QuantitySoldDelta: *in.QuantitySold,
		RevenueDelta:      delta,
	})
	if errors.Is(err, repositories.ErrRevenueOverflow) {
		return nil, revenueOutOfRange()
	}
	if err != nil {
		return nil, notFound(err, "Product", id, "update product")
	}
	return product, nil
}

func (s *ProductService) Delete(ctx context.Context, id uint) error {
	if err := s.repo.Delete(ctx, id); err != nil {
		return notFound(err, "Product", id, "delete product")
	}
	return nil
}

func saleValue(quantity int, unitPrice float64) float64 {
	return float64(quantity) * unitPrice
}

func finite(f float64) bool {
	return !math.IsInf(f, 0) && !math.IsNaN(f)
}

func revenueOutOfRange() error {
	return &ValidationError{Fields: map[string]string{"revenue": "is out of range"}}
}
