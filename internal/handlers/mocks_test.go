package handlers

import (
	"context"

	"nursery_manager/internal/auth"
	"nursery_manager/internal/models"
	"nursery_manager/internal/repository"
	"nursery_manager/internal/services"
)

// ============================================================================
// MOCK SERVICES
// ============================================================================

type mockUserService struct {
	loginResult *services.LoginResult
	err         error
}

func (m *mockUserService) Login(ctx context.Context, username, password string) (*services.LoginResult, error) {
	return m.loginResult, m.err
}

func (m *mockUserService) Logout(ctx context.Context, session *auth.Session) error {
	return m.err
}

func (m *mockUserService) Profile(session *auth.Session) (*services.Profile, error) {
	if m.err != nil {
		return nil, m.err
	}
	return &services.Profile{
		User:         models.User{ID: session.UserID, Username: session.Username, Role: session.Role},
		Capabilities: auth.CapabilitiesOf(session.Role),
	}, nil
}

func (m *mockUserService) Register(session *auth.Session, input services.RegisterInput) (*models.User, error) {
	if m.err != nil {
		return nil, m.err
	}
	return &models.User{ID: "new", Username: input.Username, Role: auth.Role(input.Role)}, nil
}

func (m *mockUserService) InitAdmin(password string) (*models.User, error) {
	if m.err != nil {
		return nil, m.err
	}
	return &models.User{ID: "admin", Username: "admin", Role: auth.Admin}, nil
}

type mockPlantService struct {
	plants []models.Plant
	err    error
}

func (m *mockPlantService) Create(input services.PlantInput) (*models.Plant, error) {
	if m.err != nil {
		return nil, m.err
	}
	return &models.Plant{ID: "p-new", Name: input.Name, Category: input.Category}, nil
}

func (m *mockPlantService) Get(id string) (*models.Plant, error) {
	for i := range m.plants {
		if m.plants[i].ID == id {
			return &m.plants[i], nil
		}
	}
	return nil, repository.ErrNotFound
}

func (m *mockPlantService) List(page repository.Page) ([]models.Plant, error) {
	return m.plants, m.err
}

func (m *mockPlantService) LowStock() ([]models.Plant, error) {
	return m.plants, m.err
}

func (m *mockPlantService) Update(ctx context.Context, id string, input services.PlantInput) (*models.Plant, error) {
	if m.err != nil {
		return nil, m.err
	}
	return &models.Plant{ID: id, Name: input.Name}, nil
}

type mockCustomerService struct {
	lastQuery string
	lastPage  repository.Page
}

func (m *mockCustomerService) Create(input services.CustomerInput) (*models.Customer, error) {
	return &models.Customer{ID: "c-new", Name: input.Name, Phone: input.Phone}, nil
}

func (m *mockCustomerService) Get(id string) (*models.Customer, error) {
	return nil, repository.ErrNotFound
}

func (m *mockCustomerService) List(page repository.Page) ([]models.Customer, error) {
	m.lastPage = page
	return []models.Customer{}, nil
}

func (m *mockCustomerService) Search(query string, page repository.Page) ([]models.Customer, error) {
	m.lastQuery = query
	m.lastPage = page
	return []models.Customer{}, nil
}

func (m *mockCustomerService) Update(id string, input services.CustomerInput) (*models.Customer, error) {
	return &models.Customer{ID: id, Name: input.Name}, nil
}

type mockBillService struct {
	bill *models.Bill
	err  error
}

func (m *mockBillService) Create(ctx context.Context, session *auth.Session, input services.BillInput) (*models.Bill, error) {
	return m.bill, m.err
}

func (m *mockBillService) Get(id string) (*models.Bill, error) {
	return m.bill, m.err
}

func (m *mockBillService) List(page repository.Page) ([]models.Bill, error) {
	return []models.Bill{}, m.err
}

func (m *mockBillService) ListPending(page repository.Page) ([]models.Bill, error) {
	return []models.Bill{}, m.err
}

func (m *mockBillService) Approve(ctx context.Context, session *auth.Session, id string) (*models.Bill, error) {
	return m.bill, m.err
}

type mockQuotationService struct {
	lastPaymentMethod string
	err               error
}

func (m *mockQuotationService) Create(ctx context.Context, session *auth.Session, input services.QuotationInput) (*models.Quotation, error) {
	if m.err != nil {
		return nil, m.err
	}
	return &models.Quotation{ID: "q-1", Status: models.QuotationActive, DisplayStatus: "active"}, nil
}

func (m *mockQuotationService) Get(id string) (*models.Quotation, error) {
	return nil, repository.ErrNotFound
}

func (m *mockQuotationService) List(page repository.Page) ([]models.Quotation, error) {
	return []models.Quotation{}, nil
}

func (m *mockQuotationService) Convert(ctx context.Context, session *auth.Session, id, paymentMethod string) (*models.Quotation, *models.Bill, error) {
	m.lastPaymentMethod = paymentMethod
	if m.err != nil {
		return nil, nil, m.err
	}
	billID := "b-1"
	return &models.Quotation{ID: id, Status: models.QuotationConverted, ConvertedBillID: &billID},
		&models.Bill{ID: billID, Status: models.BillPending}, nil
}

type mockDashboardService struct{}

func (m *mockDashboardService) Stats() (*services.DashboardStats, error) {
	return &services.DashboardStats{TotalPlants: 3, LowStockAlerts: 1, RecentBills: []models.Bill{}}, nil
}

type mockChatService struct{}

func (m *mockChatService) Send(ctx context.Context, session *auth.Session, chatSessionID, message string) (*models.ChatExchange, error) {
	return &models.ChatExchange{SessionID: chatSessionID, UserMessage: message, AIResponse: "ok"}, nil
}

func (m *mockChatService) History(ctx context.Context, session *auth.Session, chatSessionID string) ([]models.ChatExchange, error) {
	return []models.ChatExchange{}, nil
}
