package services

import (
	"context"
	"fmt"
	"time"

	"nursery_manager/internal/auth"
	"nursery_manager/internal/billing"
	"nursery_manager/internal/models"
	"nursery_manager/internal/repository"

	"github.com/shopspring/decimal"
)

type QuotationInput struct {
	CustomerID string          `json:"customer_id" binding:"required"`
	Items      []ItemInput     `json:"items"`
	Tax        decimal.Decimal `json:"tax"`
	Discount   decimal.Decimal `json:"discount"`
	ValidDays  *int            `json:"valid_days"`
}

type QuotationService interface {
	Create(ctx context.Context, session *auth.Session, input QuotationInput) (*models.Quotation, error)
	Get(id string) (*models.Quotation, error)
	List(page repository.Page) ([]models.Quotation, error)
	Convert(ctx context.Context, session *auth.Session, id, paymentMethod string) (*models.Quotation, *models.Bill, error)
}

type quotationService struct {
	quotationRepo   repository.QuotationRepository
	drafts          draftBuilder
	whatsapp        WhatsAppService
	quotationPrefix string
	billPrefix      string
	now             Clock
}

func NewQuotationService(
	quotationRepo repository.QuotationRepository,
	plantRepo repository.PlantRepository,
	customerRepo repository.CustomerRepository,
	whatsapp WhatsAppService,
	quotationPrefix, billPrefix string,
	now Clock,
) QuotationService {
	return &quotationService{
		quotationRepo:   quotationRepo,
		drafts:          draftBuilder{plants: plantRepo, customers: customerRepo},
		whatsapp:        whatsapp,
		quotationPrefix: quotationPrefix,
		billPrefix:      billPrefix,
		now:             now,
	}
}

func (s *quotationService) Create(ctx context.Context, session *auth.Session, input QuotationInput) (*models.Quotation, error) {
	if !session.Can(auth.CreateQuotations) {
		return nil, ErrForbidden
	}
	validDays := billing.DefaultValidDays
	if input.ValidDays != nil {
		validDays = *input.ValidDays
	}
	if err := billing.ValidateValidDays(validDays); err != nil {
		return nil, err
	}
	draft, customer, err := s.drafts.build(input.CustomerID, input.Items, input.Tax, input.Discount)
	if err != nil {
		return nil, err
	}

	now := s.now()
	totals := draft.Totals()
	quotation := &models.Quotation{
		CustomerID:   customer.ID,
		CustomerName: customer.Name,
		Items:        models.ToQuotationItems(draft.Items),
		Subtotal:     totals.Subtotal,
		Tax:          totals.Tax,
		Discount:     totals.Discount,
		TotalAmount:  totals.TotalAmount,
		ValidDays:    validDays,
		ValidUntil:   billing.ValidUntil(now, validDays),
		Status:       models.QuotationActive,
		CreatedBy:    session.UserID,
		CreatedAt:    now,
	}
	if err := s.quotationRepo.Create(quotation, s.quotationPrefix); err != nil {
		return nil, fmt.Errorf("failed to save quotation: %w", err)
	}
	decorate(quotation, now)
	return quotation, nil
}

func (s *quotationService) Get(id string) (*models.Quotation, error) {
	quotation, err := s.quotationRepo.GetByID(id)
	if err != nil {
		return nil, err
	}
	decorate(quotation, s.now())
	return quotation, nil
}

func (s *quotationService) List(page repository.Page) ([]models.Quotation, error) {
	quotations, err := s.quotationRepo.List(page)
	if err != nil {
		return nil, err
	}
	now := s.now()
	for i := range quotations {
		decorate(&quotations[i], now)
	}
	return quotations, nil
}

// Convert turns an active, unexpired quotation into a bill. The bill's
// starting status follows the converting user's role.
func (s *quotationService) Convert(ctx context.Context, session *auth.Session, id, paymentMethod string) (*models.Quotation, *models.Bill, error) {
	if !session.Can(auth.ConvertQuotations) {
		return nil, nil, ErrForbidden
	}
	method, err := billing.ParsePaymentMethod(paymentMethod)
	if err != nil {
		return nil, nil, err
	}

	now := s.now()
	quotation, bill, err := s.quotationRepo.Convert(id, now, s.billPrefix, func(q *models.Quotation) (*models.Bill, error) {
		draft := &billing.Draft{Items: q.LineItems(), Tax: q.Tax, Discount: q.Discount}
		if err := draft.Validate(); err != nil {
			return nil, err
		}
		customer := &models.Customer{ID: q.CustomerID, Name: q.CustomerName}
		bill := newBill(draft, customer, method, session)
		if bill.Status == models.BillApproved {
			bill.ApprovedBy = &session.UserID
			bill.ApprovedAt = &now
		}
		return bill, nil
	})
	if err != nil {
		return nil, nil, err
	}

	decorate(quotation, now)
	if bill.Status == models.BillApproved {
		if full, err := s.drafts.customers.GetByID(bill.CustomerID); err == nil {
			s.whatsapp.NotifyBillApproved(ctx, bill, full)
		}
	}
	return quotation, bill, nil
}

func decorate(q *models.Quotation, now time.Time) {
	q.DisplayStatus = billing.DisplayStatus(q.Status, q.ValidUntil, now)
}
