package services

import (
	"context"
	"fmt"
	"log"
	"strings"

	"nursery_manager/internal/billing"
	"nursery_manager/internal/models"
)

// Messenger sends a plain text message to a phone number.
type Messenger interface {
	SendTextMessage(ctx context.Context, phone, message string) error
}

// WhatsAppService sends best-effort notifications. Failures are logged and
// never returned to the caller.
type WhatsAppService interface {
	NotifyBillApproved(ctx context.Context, bill *models.Bill, customer *models.Customer)
	NotifyLowStock(ctx context.Context, plant *models.Plant)
}

type whatsappService struct {
	client      Messenger
	alertNumber string
	shopName    string
	currency    *billing.CurrencyFormatter
}

// NewWhatsAppService returns a service that does nothing when client is nil.
func NewWhatsAppService(client Messenger, alertNumber, shopName string, currency *billing.CurrencyFormatter) WhatsAppService {
	return &whatsappService{client: client, alertNumber: alertNumber, shopName: shopName, currency: currency}
}

func (s *whatsappService) NotifyBillApproved(ctx context.Context, bill *models.Bill, customer *models.Customer) {
	if s.client == nil || customer == nil || !customer.WhatsAppOptIn || customer.Phone == "" {
		return
	}
	if err := s.client.SendTextMessage(ctx, customer.Phone, ReceiptMessage(s.shopName, bill, s.currency)); err != nil {
		log.Printf("Warning: failed to send receipt for %s to %s: %v", bill.BillNumber, customer.Phone, err)
	}
}

func (s *whatsappService) NotifyLowStock(ctx context.Context, plant *models.Plant) {
	if s.client == nil || s.alertNumber == "" {
		return
	}
	if err := s.client.SendTextMessage(ctx, s.alertNumber, LowStockMessage(plant)); err != nil {
		log.Printf("Warning: failed to send low stock alert for %s: %v", plant.Name, err)
	}
}

func ReceiptMessage(shopName string, bill *models.Bill, currency *billing.CurrencyFormatter) string {
	var b strings.Builder
	fmt.Fprintf(&b, "*%s*\n", shopName)
	fmt.Fprintf(&b, "Bill %s\n", bill.BillNumber)
	fmt.Fprintf(&b, "Customer: %s\n\n", bill.CustomerName)
	for _, it := range bill.Items {
		name := it.PlantName
		if it.Variant != nil {
			name += " (" + *it.Variant + ")"
		}
		fmt.Fprintf(&b, "%s x%d  %s\n", name, it.Quantity, currency.Format(it.TotalPrice))
	}
	fmt.Fprintf(&b, "\nSubtotal: %s\n", currency.Format(bill.Subtotal))
	if !bill.Tax.IsZero() {
		fmt.Fprintf(&b, "Tax: %s\n", currency.Format(bill.Tax))
	}
	if !bill.Discount.IsZero() {
		fmt.Fprintf(&b, "Discount: -%s\n", currency.Format(bill.Discount))
	}
	fmt.Fprintf(&b, "*Total: %s*\n", currency.Format(bill.TotalAmount))
	fmt.Fprintf(&b, "Paid by %s. Thank you!", bill.PaymentMethod)
	return b.String()
}

func LowStockMessage(plant *models.Plant) string {
	return fmt.Sprintf("%s: %s (%d left, threshold %d)",
		plant.StockStatus.Label(), plant.Name, plant.CurrentStock, plant.MinStockThreshold)
}
