package services

import (
	"context"
	"fmt"
	"sort"
	"sync"
	"time"

	"nursery_manager/internal/auth"
	"nursery_manager/internal/billing"
	"nursery_manager/internal/models"
	"nursery_manager/internal/repository"
	"nursery_manager/pkg/assistant"

	"github.com/shopspring/decimal"
)

// ============================================================================
// MOCK REPOSITORIES
// ============================================================================

type mockUserRepo struct {
	users map[string]*models.User
}

func newMockUserRepo() *mockUserRepo {
	return &mockUserRepo{users: make(map[string]*models.User)}
}

func (m *mockUserRepo) Create(user *models.User) error {
	for _, u := range m.users {
		if u.Username == user.Username {
			return repository.ErrConflict
		}
	}
	if user.ID == "" {
		user.ID = fmt.Sprintf("user-%d", len(m.users)+1)
	}
	m.users[user.ID] = user
	return nil
}

func (m *mockUserRepo) GetByID(id string) (*models.User, error) {
	u, ok := m.users[id]
	if !ok {
		return nil, repository.ErrNotFound
	}
	return u, nil
}

func (m *mockUserRepo) GetByUsername(username string) (*models.User, error) {
	for _, u := range m.users {
		if u.Username == username {
			return u, nil
		}
	}
	return nil, repository.ErrNotFound
}

func (m *mockUserRepo) CountByRole(role auth.Role) (int64, error) {
	var n int64
	for _, u := range m.users {
		if u.Role == role {
			n++
		}
	}
	return n, nil
}

type mockPlantRepo struct {
	plants map[string]*models.Plant
	calls  int
}

func newMockPlantRepo(plants ...*models.Plant) *mockPlantRepo {
	m := &mockPlantRepo{plants: make(map[string]*models.Plant)}
	for _, p := range plants {
		m.plants[p.ID] = p
	}
	return m
}

func (m *mockPlantRepo) Create(plant *models.Plant) error {
	m.calls++
	if plant.ID == "" {
		plant.ID = fmt.Sprintf("plant-%d", len(m.plants)+1)
	}
	cp := *plant
	m.plants[plant.ID] = &cp
	plant.Classify()
	return nil
}

func (m *mockPlantRepo) GetByID(id string) (*models.Plant, error) {
	m.calls++
	p, ok := m.plants[id]
	if !ok {
		return nil, repository.ErrNotFound
	}
	cp := *p
	cp.Classify()
	return &cp, nil
}

func (m *mockPlantRepo) List(page repository.Page) ([]models.Plant, error) {
	m.calls++
	out := []models.Plant{}
	for _, p := range m.plants {
		out = append(out, *p)
	}
	return out, nil
}

func (m *mockPlantRepo) ListLowStock() ([]models.Plant, error) {
	out := []models.Plant{}
	for _, p := range m.plants {
		if p.CurrentStock <= p.MinStockThreshold {
			out = append(out, *p)
		}
	}
	return out, nil
}

func (m *mockPlantRepo) Update(plant *models.Plant) error {
	m.calls++
	cp := *plant
	m.plants[plant.ID] = &cp
	plant.Classify()
	return nil
}

func (m *mockPlantRepo) Count() (int64, error) {
	return int64(len(m.plants)), nil
}

func (m *mockPlantRepo) CountLowStock() (int64, error) {
	low, _ := m.ListLowStock()
	return int64(len(low)), nil
}

type mockCustomerRepo struct {
	customers map[string]*models.Customer
	calls     int
}

func newMockCustomerRepo(customers ...*models.Customer) *mockCustomerRepo {
	m := &mockCustomerRepo{customers: make(map[string]*models.Customer)}
	for _, c := range customers {
		m.customers[c.ID] = c
	}
	return m
}

func (m *mockCustomerRepo) Create(customer *models.Customer) error {
	m.calls++
	if customer.ID == "" {
		customer.ID = fmt.Sprintf("customer-%d", len(m.customers)+1)
	}
	m.customers[customer.ID] = customer
	return nil
}

func (m *mockCustomerRepo) GetByID(id string) (*models.Customer, error) {
	m.calls++
	c, ok := m.customers[id]
	if !ok {
		return nil, repository.ErrNotFound
	}
	return c, nil
}

func (m *mockCustomerRepo) List(page repository.Page) ([]models.Customer, error) {
	m.calls++
	out := []models.Customer{}
	for _, c := range m.customers {
		out = append(out, *c)
	}
	return out, nil
}

func (m *mockCustomerRepo) Search(query string, page repository.Page) ([]models.Customer, error) {
	m.calls++
	out := []models.Customer{}
	for _, c := range m.customers {
		if c.Name == query || c.Phone == query {
			out = append(out, *c)
		}
	}
	return out, nil
}

func (m *mockCustomerRepo) Update(customer *models.Customer) error {
	m.calls++
	m.customers[customer.ID] = customer
	return nil
}

type mockBillRepo struct {
	bills map[string]*models.Bill
	order []string
	calls int
}

func newMockBillRepo() *mockBillRepo {
	return &mockBillRepo{bills: make(map[string]*models.Bill)}
}

func (m *mockBillRepo) Create(bill *models.Bill, prefix string) error {
	m.calls++
	bill.ID = fmt.Sprintf("bill-%d", len(m.bills)+1)
	bill.BillNumber = billing.DocumentNumber(prefix, int64(len(m.bills)+1))
	m.bills[bill.ID] = bill
	m.order = append(m.order, bill.ID)
	return nil
}

func (m *mockBillRepo) GetByID(id string) (*models.Bill, error) {
	b, ok := m.bills[id]
	if !ok {
		return nil, repository.ErrNotFound
	}
	return b, nil
}

func (m *mockBillRepo) List(page repository.Page) ([]models.Bill, error) {
	out := []models.Bill{}
	for i := len(m.order) - 1; i >= 0; i-- {
		out = append(out, *m.bills[m.order[i]])
	}
	return out, nil
}

func (m *mockBillRepo) ListByStatus(status models.BillStatus, page repository.Page) ([]models.Bill, error) {
	all, _ := m.List(page)
	out := []models.Bill{}
	for _, b := range all {
		if b.Status == status {
			out = append(out, b)
		}
	}
	return out, nil
}

func (m *mockBillRepo) Recent(n int) ([]models.Bill, error) {
	all, _ := m.List(repository.Page{})
	if len(all) > n {
		all = all[:n]
	}
	return all, nil
}

func (m *mockBillRepo) TotalSales() (decimal.Decimal, error) {
	total := decimal.Zero
	for _, b := range m.bills {
		if b.Status != models.BillPending {
			total = total.Add(b.TotalAmount)
		}
	}
	return total, nil
}

func (m *mockBillRepo) Approve(id, approverID string, at time.Time) (*models.Bill, error) {
	b, ok := m.bills[id]
	if !ok {
		return nil, repository.ErrNotFound
	}
	next, err := billing.ApproveBill(b.Status)
	if err != nil {
		return nil, err
	}
	b.Status = next
	b.ApprovedBy = &approverID
	b.ApprovedAt = &at
	return b, nil
}

type mockQuotationRepo struct {
	quotations map[string]*models.Quotation
	bills      *mockBillRepo
}

func newMockQuotationRepo(bills *mockBillRepo) *mockQuotationRepo {
	return &mockQuotationRepo{quotations: make(map[string]*models.Quotation), bills: bills}
}

func (m *mockQuotationRepo) Create(q *models.Quotation, prefix string) error {
	q.ID = fmt.Sprintf("quotation-%d", len(m.quotations)+1)
	q.QuotationNumber = billing.DocumentNumber(prefix, int64(len(m.quotations)+1))
	m.quotations[q.ID] = q
	return nil
}

func (m *mockQuotationRepo) GetByID(id string) (*models.Quotation, error) {
	q, ok := m.quotations[id]
	if !ok {
		return nil, repository.ErrNotFound
	}
	cp := *q
	return &cp, nil
}

func (m *mockQuotationRepo) List(page repository.Page) ([]models.Quotation, error) {
	out := []models.Quotation{}
	for _, q := range m.quotations {
		out = append(out, *q)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out, nil
}

func (m *mockQuotationRepo) Convert(id string, now time.Time, billPrefix string, build repository.BillFromQuotation) (*models.Quotation, *models.Bill, error) {
	q, ok := m.quotations[id]
	if !ok {
		return nil, nil, repository.ErrNotFound
	}
	if err := billing.CheckConvertible(q, now); err != nil {
		return nil, nil, err
	}
	bill, err := build(q)
	if err != nil {
		return nil, nil, err
	}
	if err := m.bills.Create(bill, billPrefix); err != nil {
		return nil, nil, err
	}
	q.Status = models.QuotationConverted
	q.ConvertedBillID = &bill.ID
	cp := *q
	return &cp, bill, nil
}

// ============================================================================
// MOCK COLLABORATORS
// ============================================================================

type mockSessionStore struct {
	mu       sync.Mutex
	sessions map[string]*auth.Session
}

func newMockSessionStore() *mockSessionStore {
	return &mockSessionStore{sessions: make(map[string]*auth.Session)}
}

func (m *mockSessionStore) SaveSession(ctx context.Context, s *auth.Session, ttl time.Duration) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.sessions[s.ID] = s
	return nil
}

func (m *mockSessionStore) LoadSession(ctx context.Context, id string) (*auth.Session, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	s, ok := m.sessions[id]
	if !ok {
		return nil, auth.ErrSessionNotFound
	}
	return s, nil
}

func (m *mockSessionStore) DeleteSession(ctx context.Context, id string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	delete(m.sessions, id)
	return nil
}

type sentMessage struct {
	phone   string
	message string
}

type mockMessenger struct {
	sent []sentMessage
	err  error
}

func (m *mockMessenger) SendTextMessage(ctx context.Context, phone, message string) error {
	if m.err != nil {
		return m.err
	}
	m.sent = append(m.sent, sentMessage{phone: phone, message: message})
	return nil
}

type mockChatStore struct {
	history map[string][]models.ChatExchange
}

func newMockChatStore() *mockChatStore {
	return &mockChatStore{history: make(map[string][]models.ChatExchange)}
}

func (m *mockChatStore) AppendChat(ctx context.Context, userID string, ex *models.ChatExchange, ttl time.Duration) error {
	key := userID + "/" + ex.SessionID
	m.history[key] = append(m.history[key], *ex)
	return nil
}

func (m *mockChatStore) ChatHistory(ctx context.Context, userID, sessionID string, limit int) ([]models.ChatExchange, error) {
	all := m.history[userID+"/"+sessionID]
	if limit > 0 && len(all) > limit {
		all = all[len(all)-limit:]
	}
	return append([]models.ChatExchange{}, all...), nil
}

type mockAssistant struct {
	reply       string
	err         error
	lastHistory []assistant.Message
}

func (m *mockAssistant) Reply(ctx context.Context, history []assistant.Message, userMessage string) (string, error) {
	m.lastHistory = history
	if m.err != nil {
		return "", m.err
	}
	return m.reply, nil
}

// ============================================================================
// FIXTURES
// ============================================================================

var fixedNow = time.Date(2026, 6, 1, 10, 0, 0, 0, time.UTC)

func fixedClock() time.Time { return fixedNow }

func sessionFor(role auth.Role) *auth.Session {
	return auth.NewSession("user-"+string(role), string(role), role, time.Hour, fixedNow)
}

func dec(s string) decimal.Decimal {
	return decimal.RequireFromString(s)
}

func decPtr(s string) *decimal.Decimal {
	d := dec(s)
	return &d
}

func samplePlants() []*models.Plant {
	return []*models.Plant{
		{ID: "rose", Name: "Rose", Category: "Flowering", CurrentStock: 40, MinStockThreshold: 10, SellingPrice: dec("150")},
		{ID: "fern", Name: "Boston Fern", Category: "Foliage", CurrentStock: 12, MinStockThreshold: 10, SellingPrice: dec("300")},
	}
}

func sampleCustomer(optIn bool) *models.Customer {
	return &models.Customer{ID: "cust-1", Name: "Meena", Phone: "09876543210", WhatsAppOptIn: optIn}
}

func currency() *billing.CurrencyFormatter {
	return billing.DefaultCurrency()
}
