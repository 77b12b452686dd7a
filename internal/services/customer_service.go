package services

import (
	"fmt"
	"strings"

	"nursery_manager/internal/models"
	"nursery_manager/internal/repository"
)

type CustomerInput struct {
	Name          string  `json:"name" binding:"required"`
	Phone         string  `json:"phone" binding:"required"`
	Email         *string `json:"email" binding:"omitempty,email"`
	Address       *string `json:"address"`
	WhatsAppOptIn bool    `json:"whatsapp_opt_in"`
}

type CustomerService interface {
	Create(input CustomerInput) (*models.Customer, error)
	Get(id string) (*models.Customer, error)
	List(page repository.Page) ([]models.Customer, error)
	Search(query string, page repository.Page) ([]models.Customer, error)
	Update(id string, input CustomerInput) (*models.Customer, error)
}

type customerService struct {
	customerRepo repository.CustomerRepository
}

func NewCustomerService(customerRepo repository.CustomerRepository) CustomerService {
	return &customerService{customerRepo: customerRepo}
}

func (in CustomerInput) apply(c *models.Customer) error {
	name := strings.TrimSpace(in.Name)
	phone := strings.TrimSpace(in.Phone)
	if name == "" || phone == "" {
		return fmt.Errorf("%w: name and phone are required", ErrInvalidInput)
	}
	c.Name = name
	c.Phone = phone
	c.Email = in.Email
	c.Address = in.Address
	c.WhatsAppOptIn = in.WhatsAppOptIn
	return nil
}

func (s *customerService) Create(input CustomerInput) (*models.Customer, error) {
	customer := &models.Customer{}
	if err := input.apply(customer); err != nil {
		return nil, err
	}
	if err := s.customerRepo.Create(customer); err != nil {
		return nil, err
	}
	return customer, nil
}

func (s *customerService) Get(id string) (*models.Customer, error) {
	return s.customerRepo.GetByID(id)
}

func (s *customerService) List(page repository.Page) ([]models.Customer, error) {
	return s.customerRepo.List(page)
}

// Search with a blank query is the same as List.
func (s *customerService) Search(query string, page repository.Page) ([]models.Customer, error) {
	if strings.TrimSpace(query) == "" {
		return s.customerRepo.List(page)
	}
	return s.customerRepo.Search(query, page)
}

func (s *customerService) Update(id string, input CustomerInput) (*models.Customer, error) {
	customer, err := s.customerRepo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if err := input.apply(customer); err != nil {
		return nil, err
	}
	if err := s.customerRepo.Update(customer); err != nil {
		return nil, err
	}
	return customer, nil
}
