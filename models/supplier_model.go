package models

import "time"

// Supplier is a vendor that supplies one or more products.
type Supplier struct {
	ID        uint      `json:"id" gorm:"primaryKey"`
	Name      string    `json:"name" gorm:"size:100;not null"`
	Company   string    `json:"company" gorm:"size:100;not null"`
	Phone     string    `json:"phone" gorm:"size:30;not null"`
	Email     string    `json:"email" gorm:"size:255;not null"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
