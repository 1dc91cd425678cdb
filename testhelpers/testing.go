package testhelpers

import (
	"context"
	"testing"

	"supplier-api/database"
	"supplier-api/mailer"
	"supplier-api/models"

	"github.com/stretchr/testify/mock"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// SetupSQLiteTestDB creates a migrated in-memory SQLite database that lives
// for the duration of the test.
func SetupSQLiteTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := gorm.Open(sqlite.Open("file::memory:?_foreign_keys=on"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		t.Fatalf("Failed to connect to SQLite test database: %v", err)
	}

	// every pooled connection to :memory: would get its own empty database
	sqlDB, err := db.DB()
	if err != nil {
		t.Fatalf("Failed to get sql.DB: %v", err)
	}
	sqlDB.SetMaxOpenConns(1)
	t.Cleanup(func() { sqlDB.Close() })

	if err := database.Migrate(db); err != nil {
		t.Fatalf("Failed to migrate test database: %v", err)
	}
	return db
}

// SeedSupplier inserts a supplier with the given email.
func SeedSupplier(t *testing.T, db *gorm.DB, email string) *models.Supplier {
	t.Helper()

	supplier := &models.Supplier{
		Name:    "Jane Roe",
		Company: "Roe Farms",
		Phone:   "555-0100",
		Email:   email,
	}
	if err := db.Create(supplier).Error; err != nil {
		t.Fatalf("Failed to seed supplier: %v", err)
	}
	return supplier
}

// SeedProduct inserts a product owned by supplierID.
func SeedProduct(t *testing.T, db *gorm.DB, supplierID uint) *models.Product {
	t.Helper()

	product := &models.Product{
		Name:            "Green Tea",
		QuantityInStock: 40,
		QuantitySold:    0,
		UnitPrice:       4.5,
		Revenue:         0,
		SuppliedByID:    supplierID,
	}
	if err := db.Create(product).Error; err != nil {
		t.Fatalf("Failed to seed product: %v", err)
	}
	return product
}

// MockSender is a mailer.Sender backed by testify/mock.
type MockSender struct {
	mock.Mock
}

func (m *MockSender) Send(ctx context.Context, msg mailer.Message) error {
	args := m.Called(ctx, msg)
	return args.Error(0)
}

var _ mailer.Sender = (*MockSender)(nil)
