package models

// SupplierInput is the body of POST /supplier and PUT /supplier/:id.
// Every field is required on both routes; PUT replaces the whole record.
type SupplierInput struct {
	Name    string `json:"name" validate:"required,max=100"`
	Company string `json:"company" validate:"required,max=100"`
	Phone   string `json:"phone" validate:"required,max=30"`
	Email   string `json:"email" validate:"required,email,max=255"`
}

// ProductInput is the body of POST /product/:supplierId and PUT /product/:id.
// Numeric fields are pointers so that an omitted field can be told apart
// from an explicit zero.
type ProductInput struct {
	Name            string   `json:"name" validate:"required,max=100"`
	QuantityInStock *int     `json:"quantity_in_stock" validate:"required"`
	QuantitySold    *int     `json:"quantity_sold" validate:"required"`
	UnitPrice       *float64 `json:"unit_price" validate:"required"`
	Revenue         *float64 `json:"revenue" validate:"required"`
}

// EmailContent is the body of POST /email/:productId. Message must be present
// but may be empty.
type EmailContent struct {
	Message *string `json:"message" validate:"required"`
	Subject string  `json:"subject" validate:"required,max=255"`
}
