package repositories

import (
	"context"
	"testing"

	"supplier-api/models"
	"supplier-api/testhelpers"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func TestSupplierRepository(t *testing.T) {
	ctx := context.Background()

	t.Run("GetAll_Empty", func(t *testing.T) {
		repo := NewSupplierRepository(testhelpers.SetupSQLiteTestDB(t))

		suppliers, err := repo.GetAll(ctx)
		require.NoError(t, err)
		assert.NotNil(t, suppliers)
		assert.Empty(t, suppliers)
	})

	t.Run("Create_GetByID", func(t *testing.T) {
		repo := NewSupplierRepository(testhelpers.SetupSQLiteTestDB(t))

		s := &models.Supplier{Name: "Ann", Company: "Acme", Phone: "123", Email: "ann@acme.test"}
		require.NoError(t, repo.Create(ctx, s))
		assert.NotZero(t, s.ID)

		got, err := repo.GetByID(ctx, s.ID)
		require.NoError(t, err)
		assert.Equal(t, s.Name, got.Name)
		assert.Equal(t, s.Company, got.Company)
		assert.Equal(t, s.Phone, got.Phone)
		assert.Equal(t, s.Email, got.Email)
	})

	t.Run("GetByID_NotFound", func(t *testing.T) {
		repo := NewSupplierRepository(testhelpers.SetupSQLiteTestDB(t))

		_, err := repo.GetByID(ctx, 99)
		assert.ErrorIs(t, err, gorm.ErrRecordNotFound)
	})

	t.Run("GetAll_OrderedByID", func(t *testing.T) {
		db := testhelpers.SetupSQLiteTestDB(t)
		repo := NewSupplierRepository(db)
		first := testhelpers.SeedSupplier(t, db, "one@x.test")
		second := testhelpers.SeedSupplier(t, db, "two@x.test")

		suppliers, err := repo.GetAll(ctx)
		require.NoError(t, err)
		require.Len(t, suppliers, 2)
		assert.Equal(t, first.ID, suppliers[0].ID)
		assert.Equal(t, second.ID, suppliers[1].ID)
	})

	t.Run("Update", func(t *testing.T) {
		db := testhelpers.SetupSQLiteTestDB(t)
		repo := NewSupplierRepository(db)
		seeded := testhelpers.SeedSupplier(t, db, "old@x.test")

		upd := &models.Supplier{ID: seeded.ID, Name: "New", Company: "NewCo", Phone: "999", Email: "new@x.test"}
		require.NoError(t, repo.Update(ctx, upd))
		assert.Equal(t, "New", upd.Name)
		assert.False(t, upd.CreatedAt.IsZero())

		got, err := repo.GetByID(ctx, seeded.ID)
		require.NoError(t, err)
		assert.Equal(t, "NewCo", got.Company)
		assert.Equal(t, "new@x.test", got.Email)
	})

	t.Run("Update_NotFound", func(t *testing.T) {
		repo := NewSupplierRepository(testhelpers.SetupSQLiteTestDB(t))

		err := repo.Update(ctx, &models.Supplier{ID: 42, Name: "a", Company: "b", Phone: "c", Email: "d@e.f"})
		assert.ErrorIs(t, err, gorm.ErrRecordNotFound)
	})

	t.Run("Update_UnchangedRow", func(t *testing.T) {
		db, mock := setupMockDB(t)
		repo := NewSupplierRepository(db)

		mock.ExpectBegin()
		mock.ExpectExec(`UPDATE "suppliers" SET`).WillReturnResult(sqlmock.NewResult(0, 0))
		mock.ExpectQuery(`SELECT \* FROM "suppliers"`).
			WillReturnRows(sqlmock.NewRows([]string{"id", "name", "company", "phone", "email"}).
				AddRow(7, "a", "b", "c", "d@e.f"))
		mock.ExpectCommit()

		upd := &models.Supplier{ID: 7, Name: "a", Company: "b", Phone: "c", Email: "d@e.f"}
		require.NoError(t, repo.Update(ctx, upd))
		assert.Equal(t, "b", upd.Company)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("Delete", func(t *testing.T) {
		db := testhelpers.SetupSQLiteTestDB(t)
		repo := NewSupplierRepository(db)
		seeded := testhelpers.SeedSupplier(t, db, "gone@x.test")

		require.NoError(t, repo.Delete(ctx, seeded.ID))
		_, err := repo.GetByID(ctx, seeded.ID)
		assert.ErrorIs(t, err, gorm.ErrRecordNotFound)

		assert.ErrorIs(t, repo.Delete(ctx, seeded.ID), gorm.ErrRecordNotFound)
	})

	t.Run("Delete_InUse", func(t *testing.T) {
		db := testhelpers.SetupSQLiteTestDB(t)
		repo := NewSupplierRepository(db)
		seeded := testhelpers.SeedSupplier(t, db, "busy@x.test")
		testhelpers.SeedProduct(t, db, seeded.ID)

		assert.ErrorIs(t, repo.Delete(ctx, seeded.ID), ErrSupplierInUse)

		_, err := repo.GetByID(ctx, seeded.ID)
		assert.NoError(t, err)
	})
}
