package services

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"supplier-api/models"
	"supplier-api/repositories"
)

type SupplierService struct {
	repo repositories.SupplierRepository
}

func NewSupplierService(repo repositories.SupplierRepository) *SupplierService {
	return &SupplierService{repo: repo}
}

// Create validates in and stores a new supplier.
func (s *SupplierService) Create(ctx context.Context, in models.SupplierInput) (*models.Supplier, error) {
	in = trimSupplier(in)
	if err := Validate(in); err != nil {
		return nil, err
	}

	supplier := &models.Supplier{
		Name:    in.Name,
		Company: in.Company,
		Phone:   in.Phone,
		Email:   in.Email,
	}
	if err := s.repo.Create(ctx, supplier); err != nil {
		return nil, fmt.Errorf("create supplier: %w", err)
	}
	return supplier, nil
}

// GetAll returns every supplier, oldest first.
func (s *SupplierService) GetAll(ctx context.Context) ([]models.Supplier, error) {
	suppliers, err := s.repo.GetAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("list suppliers: %w", err)
	}
	return suppliers, nil
}

func (s *SupplierService) GetByID(ctx context.Context, id uint) (*models.Supplier, error) {
	supplier, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, notFound(err, "Supplier", id, "get supplier")
	}
	return supplier, nil
}

// Update replaces all contact fields. A payload with any field missing is
// rejected before the store is touched.
func (s *SupplierService) Update(ctx context.Context, id uint, in models.SupplierInput) (*models.Supplier, error) {
	in = trimSupplier(in)
	if err := Validate(in); err != nil {
		return nil, err
	}

	supplier := &models.Supplier{
		ID:      id,
		Name:    in.Name,
		Company: in.Company,
		Phone:   in.Phone,
		Email:   in.Email,
	}
	if err := s.repo.Update(ctx, supplier); err != nil {
		return nil, notFound(err, "Supplier", id, "update supplier")
	}
	return supplier, nil
}

// Delete removes a supplier that no longer has products.
func (s *SupplierService) Delete(ctx context.Context, id uint) error {
	err := s.repo.Delete(ctx, id)
	switch {
	case err == nil:
		return nil
	case errors.Is(err, repositories.ErrSupplierInUse):
		return fmt.Errorf("%w: supplier %d still has products", ErrConflict, id)
	default:
		return notFound(err, "Supplier", id, "delete supplier")
	}
}

func trimSupplier(in models.SupplierInput) models.SupplierInput {
	in.Name = strings.TrimSpace(in.Name)
	in.Company = strings.TrimSpace(in.Company)
	in.Phone = strings.TrimSpace(in.Phone)
	in.Email = strings.TrimSpace(in.Email)
	return in
}
