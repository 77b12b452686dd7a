package services

import (
	"context"
	"fmt"

	"nursery_manager/internal/auth"
	"nursery_manager/internal/billing"
	"nursery_manager/internal/models"
	"nursery_manager/internal/repository"

	"github.com/shopspring/decimal"
)

type BillInput struct {
	CustomerID    string          `json:"customer_id" binding:"required"`
	Items         []ItemInput     `json:"items"`
	Tax           decimal.Decimal `json:"tax"`
	Discount      decimal.Decimal `json:"discount"`
	PaymentMethod string          `json:"payment_method"`
}

type BillService interface {
	Create(ctx context.Context, session *auth.Session, input BillInput) (*models.Bill, error)
	Get(id string) (*models.Bill, error)
	List(page repository.Page) ([]models.Bill, error)
	ListPending(page repository.Page) ([]models.Bill, error)
	Approve(ctx context.Context, session *auth.Session, id string) (*models.Bill, error)
}

type billService struct {
	billRepo     repository.BillRepository
	customerRepo repository.CustomerRepository
	drafts       draftBuilder
	whatsapp     WhatsAppService
	billPrefix   string
	now          Clock
}

func NewBillService(
	billRepo repository.BillRepository,
	plantRepo repository.PlantRepository,
	customerRepo repository.CustomerRepository,
	whatsapp WhatsAppService,
	billPrefix string,
	now Clock,
) BillService {
	return &billService{
		billRepo:     billRepo,
		customerRepo: customerRepo,
		drafts:       draftBuilder{plants: plantRepo, customers: customerRepo},
		whatsapp:     whatsapp,
		billPrefix:   billPrefix,
		now:          now,
	}
}

func (s *billService) Create(ctx context.Context, session *auth.Session, input BillInput) (*models.Bill, error) {
	if !session.Can(auth.CreateBills) {
		return nil, ErrForbidden
	}
	method, err := billing.ParsePaymentMethod(input.PaymentMethod)
	if err != nil {
		return nil, err
	}
	draft, customer, err := s.drafts.build(input.CustomerID, input.Items, input.Tax, input.Discount)
	if err != nil {
		return nil, err
	}

	bill := newBill(draft, customer, method, session)
	if bill.Status == models.BillApproved {
		at := s.now()
		bill.ApprovedBy = &session.UserID
		bill.ApprovedAt = &at
	}
	if err := s.billRepo.Create(bill, s.billPrefix); err != nil {
		return nil, fmt.Errorf("failed to save bill: %w", err)
	}

	if bill.Status == models.BillApproved {
		s.whatsapp.NotifyBillApproved(ctx, bill, customer)
	}
	return bill, nil
}

// newBill freezes a draft into a bill. The starting status depends on who
// creates it.
func newBill(draft *billing.Draft, customer *models.Customer, method models.PaymentMethod, session *auth.Session) *models.Bill {
	totals := draft.Totals()
	return &models.Bill{
		CustomerID:    customer.ID,
		CustomerName:  customer.Name,
		Items:         models.ToBillItems(draft.Items),
		Subtotal:      totals.Subtotal,
		Tax:           totals.Tax,
		Discount:      totals.Discount,
		TotalAmount:   totals.TotalAmount,
		PaymentMethod: method,
		Status:        billing.InitialBillStatus(session.Role),
		CreatedBy:     session.UserID,
	}
}

func (s *billService) Get(id string) (*models.Bill, error) {
	return s.billRepo.GetByID(id)
}

func (s *billService) List(page repository.Page) ([]models.Bill, error) {
	return s.billRepo.List(page)
}

func (s *billService) ListPending(page repository.Page) ([]models.Bill, error) {
	return s.billRepo.ListByStatus(models.BillPending, page)
}

func (s *billService) Approve(ctx context.Context, session *auth.Session, id string) (*models.Bill, error) {
	if !session.Can(auth.ApproveBills) {
		return nil, ErrForbidden
	}
	bill, err := s.billRepo.Approve(id, session.UserID, s.now())
	if err != nil {
		return nil, err
	}

	customer, err := s.customerRepo.GetByID(bill.CustomerID)
	if err == nil {
		s.whatsapp.NotifyBillApproved(ctx, bill, customer)
	}
	return bill, nil
}
