package repositories

import (
	"context"
	"errors"
	"math"

	"supplier-api/models"

	"gorm.io/gorm"
)

// ProductUpdate is one sales report applied to a product. Name, stock and
// price replace the stored values; the deltas are added to the running totals.
type ProductUpdate struct {
	Name              string
	QuantityInStock   int
	UnitPrice         float64
	QuantitySoldDelta int
	RevenueDelta      float64
}

// ErrRevenueOverflow means the running revenue total no longer fits in a float64.
var ErrRevenueOverflow = errors.New("revenue overflow")

type ProductRepository interface {
	Create(ctx context.Context, product *models.Product) error
	GetByID(ctx context.Context, id uint) (*models.Product, error)
	GetAll(ctx context.Context) ([]models.Product, error)
	ApplyUpdate(ctx context.Context, id uint, upd ProductUpdate) (*models.Product, error)
	Delete(ctx context.Context, id uint) error
}

type GormProductRepository struct {
	DB *gorm.DB
}

func NewProductRepository(DB *gorm.DB) *GormProductRepository {
	return &GormProductRepository{DB: DB}
}

func (r *GormProductRepository) Create(ctx context.Context, product *models.Product) error {
	return r.DB.WithContext(ctx).Create(product).Error
}

func (r *GormProductRepository) GetByID(ctx context.Context, id uint) (*models.Product, error) {
	var product models.Product
	if err := r.DB.WithContext(ctx).First(&product, id).Error; err != nil {
		return nil, err
	}
	return &product, nil
}

func (r *GormProductRepository) GetAll(ctx context.Context) ([]models.Product, error) {
	products := []models.Product{}
	err := r.DB.WithContext(ctx).Order("id").Find(&products).Error
	return products, err
}

// ApplyUpdate writes upd in a single UPDATE statement so that the running
// totals are incremented by the database, not by a read-modify-write in Go.
// The updated row is read back in the same transaction, which is rolled back
// if the row is missing or its revenue overflowed.
func (r *GormProductRepository) ApplyUpdate(ctx context.Context, id uint, upd ProductUpdate) (*models.Product, error) {
	var product models.Product
	err := r.DB.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		res := tx.Model(&models.Product{}).
			Where("id = ?", id).
			Updates(map[string]interface{}{
				"name":              upd.Name,
				"quantity_in_stock": upd.QuantityInStock,
				"unit_price":        upd.UnitPrice,
				"quantity_sold":     gorm.Expr("quantity_sold + ?", upd.QuantitySoldDelta),
				"revenue":           gorm.Expr("revenue + ?", upd.RevenueDelta),
			})
		if res.Error != nil {
			return res.Error
		}
		// MySQL reports unchanged rows as unaffected, so existence comes from the read
		if err := tx.First(&product, id).Error; err != nil {
			return err
		}
		if math.IsInf(product.Revenue, 0) || math.IsNaN(product.Revenue) {
			return ErrRevenueOverflow
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return &product, nil
}

func (r *GormProductRepository) Delete(ctx context.Context, id uint) error {
	res := r.DB.WithContext(ctx).Delete(&models.Product{}, id)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}
