package repositories

import (
	"context"
	"errors"

	"supplier-api/models"

	"gorm.io/gorm"
)

// ErrSupplierInUse is returned when deleting a supplier that products still
// reference.
var ErrSupplierInUse = errors.New("supplier is still referenced by products")

type SupplierRepository interface {
	Create(ctx context.Context, supplier *models.Supplier) error
	GetByID(ctx context.Context, id uint) (*models.Supplier, error)
	GetAll(ctx context.Context) ([]models.Supplier, error)
	Update(ctx context.Context, supplier *models.Supplier) error
	Delete(ctx context.Context, id uint) error
}

type GormSupplierRepository struct {
	DB *gorm.DB
}

func NewSupplierRepository(DB *gorm.DB) *GormSupplierRepository {
	return &GormSupplierRepository{DB: DB}
}

// Create supplier
func (r *GormSupplierRepository) Create(ctx context.Context, supplier *models.Supplier) error {
	return r.DB.WithContext(ctx).Create(supplier).Error
}

// Get supplier by ID
func (r *GormSupplierRepository) GetByID(ctx context.Context, id uint) (*models.Supplier, error) {
	var supplier models.Supplier
	if err := r.DB.WithContext(ctx).First(&supplier, id).Error; err != nil {
		return nil, err
	}
	return &supplier, nil
}

// Get all suppliers
func (r *GormSupplierRepository) GetAll(ctx context.Context) ([]models.Supplier, error) {
	suppliers := []models.Supplier{}
	err := r.DB.WithContext(ctx).Order("id").Find(&suppliers).Error
	return suppliers, err
}

// Update overwrites every contact field of the supplier identified by
// supplier.ID and reloads it. The reload reports gorm.ErrRecordNotFound when
// no such supplier exists; RowsAffected is not used since MySQL leaves
// unchanged rows out of it.
func (r *GormSupplierRepository) Update(ctx context.Context, supplier *models.Supplier) error {
	return r.DB.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		res := tx.Model(&models.Supplier{}).
			Where("id = ?", supplier.ID).
			Updates(map[string]interface{}{
				"name":    supplier.Name,
				"company": supplier.Company,
				"phone":   supplier.Phone,
				"email":   supplier.Email,
			})
		if res.Error != nil {
			return res.Error
		}
		return tx.First(supplier, supplier.ID).Error
	})
}

// Delete removes the supplier. Suppliers that still own products are kept and
// ErrSupplierInUse is returned.
func (r *GormSupplierRepository) Delete(ctx context.Context, id uint) error {
	return r.DB.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var count int64
		if err := tx.Model(&models.Product{}).Where("supplied_by_id = ?", id).Count(&count).Error; err != nil {
			return err
		}
		if count > 0 {
			return ErrSupplierInUse
		}

		res := tx.Delete(&models.Supplier{}, id)
		if res.Error != nil {
			return res.Error
		}
		if res.RowsAffected == 0 {
			return gorm.ErrRecordNotFound
		}
		return nil
	})
}
