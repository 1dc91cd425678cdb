package models

import "time"

// Product is a sellable item. QuantitySold and Revenue are running totals,
// QuantityInStock and UnitPrice hold the latest reported values.
type Product struct {
	ID              uint      `json:"id" gorm:"primaryKey"`
	Name            string    `json:"name" gorm:"size:100;not null"`
	QuantityInStock int       `json:"quantity_in_stock"`
	QuantitySold    int       `json:"quantity_sold"`
	UnitPrice       float64   `json:"unit_price"`
	Revenue         float64   `json:"revenue"`
	SuppliedByID    uint      `json:"supplied_by_id" gorm:"not null;index"`
	SuppliedBy      *Supplier `json:"-" gorm:"foreignKey:SuppliedByID;constraint:OnUpdate:CASCADE,OnDelete:RESTRICT"`
	CreatedAt       time.Time `json:"created_at"`
	UpdatedAt       time.Time `json:"updated_at"`
}
