package services

import (
	"bytes"
	"context"
	"fmt"
	"html/template"
	"log/slog"

	"supplier-api/mailer"
	"supplier-api/models"
	"supplier-api/repositories"
)

// html/template escapes Message, so caller text cannot inject markup.
var supplierEmail = template.Must(template.New("supplier_email").Parse(`
<h5>John D. Industries</h5>
<br>
<p>{{.Message}}</p>
<br>
<h6>Best Regards,</h6>
<h6>John D.</h6>
`))

type NotificationService struct {
	products  repositories.ProductRepository
	suppliers repositories.SupplierRepository
	sender    mailer.Sender
}

func NewNotificationService(products repositories.ProductRepository, suppliers repositories.SupplierRepository, sender mailer.Sender) *NotificationService {
	return &NotificationService{products: products, suppliers: suppliers, sender: sender}
}

// Notify emails the supplier of productID. A delivery failure is reported as
// ErrDelivery and is not retried.
func (s *NotificationService) Notify(ctx context.Context, productID uint, content models.EmailContent) error {
	if err := Validate(content); err != nil {
		return err
	}

	product, err := s.products.GetByID(ctx, productID)
	if err != nil {
		return notFound(err, "Product", productID, "get product")
	}

	supplier, err := s.suppliers.GetByID(ctx, product.SuppliedByID)
	if err != nil {
		return notFound(err, "Supplier", product.SuppliedByID, "get supplier")
	}

	body, err := RenderSupplierEmail(*content.Message)
	if err != nil {
		return err
	}

	msg := mailer.Message{
		To:      []string{supplier.Email},
		Subject: content.Subject,
		HTML:    body,
	}
	if err := s.sender.Send(ctx, msg); err != nil {
		slog.Error("failed to send supplier email", "product_id", productID, "supplier_id", supplier.ID, "error", err)
		return fmt.Errorf("%w: %v", ErrDelivery, err)
	}
	return nil
}

// RenderSupplierEmail returns the HTML body for message.
func RenderSupplierEmail(message string) (string, error) {
	var buf bytes.Buffer
	if err := supplierEmail.Execute(&buf, struct{ Message string }{message}); err != nil {
		return "", fmt.Errorf("render email: %w", err)
	}
	return buf.String(), nil
}
