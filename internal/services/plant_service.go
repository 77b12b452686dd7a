package services

import (
	"context"
	"fmt"
	"strings"

	"nursery_manager/internal/inventory"
	"nursery_manager/internal/models"
	"nursery_manager/internal/repository"

	"github.com/shopspring/decimal"
)

type PlantInput struct {
	Name              string          `json:"name" binding:"required"`
	Category          string          `json:"category" binding:"required"`
	Variants          []string        `json:"variants"`
	CurrentStock      int             `json:"current_stock"`
	MinStockThreshold *int            `json:"min_stock_threshold"`
	CostPrice         decimal.Decimal `json:"cost_price"`
	SellingPrice      decimal.Decimal `json:"selling_price"`
	Investment        decimal.Decimal `json:"investment"`
	Location          string          `json:"location"`
	Description       *string         `json:"description"`
}

const defaultMinStockThreshold = 10

type PlantService interface {
	Create(input PlantInput) (*models.Plant, error)
	Get(id string) (*models.Plant, error)
	List(page repository.Page) ([]models.Plant, error)
	LowStock() ([]models.Plant, error)
	Update(ctx context.Context, id string, input PlantInput) (*models.Plant, error)
}

type plantService struct {
	plantRepo repository.PlantRepository
	whatsapp  WhatsAppService
}

func NewPlantService(plantRepo repository.PlantRepository, whatsapp WhatsAppService) PlantService {
	return &plantService{plantRepo: plantRepo, whatsapp: whatsapp}
}

func (in PlantInput) validate() error {
	if strings.TrimSpace(in.Name) == "" || strings.TrimSpace(in.Category) == "" {
		return fmt.Errorf("%w: name and category are required", ErrInvalidInput)
	}
	if in.CostPrice.IsNegative() || in.SellingPrice.IsNegative() || in.Investment.IsNegative() {
		return fmt.Errorf("%w: prices cannot be negative", ErrInvalidInput)
	}
	if in.MinStockThreshold != nil && *in.MinStockThreshold < 0 {
		return fmt.Errorf("%w: min_stock_threshold cannot be negative", ErrInvalidInput)
	}
	return nil
}

func (in PlantInput) apply(p *models.Plant) {
	p.Name = strings.TrimSpace(in.Name)
	p.Category = strings.TrimSpace(in.Category)
	p.Variants = models.StringList(in.Variants)
	p.CurrentStock = in.CurrentStock
	if in.MinStockThreshold != nil {
		p.MinStockThreshold = *in.MinStockThreshold
	}
	p.CostPrice = in.CostPrice
	p.SellingPrice = in.SellingPrice
	p.Investment = in.Investment
	p.Location = in.Location
	p.Description = in.Description
}

func (s *plantService) Create(input PlantInput) (*models.Plant, error) {
	if err := input.validate(); err != nil {
		return nil, err
	}
	plant := &models.Plant{MinStockThreshold: defaultMinStockThreshold}
	input.apply(plant)
	if err := s.plantRepo.Create(plant); err != nil {
		return nil, err
	}
	return plant, nil
}

func (s *plantService) Get(id string) (*models.Plant, error) {
	return s.plantRepo.GetByID(id)
}

func (s *plantService) List(page repository.Page) ([]models.Plant, error) {
	return s.plantRepo.List(page)
}

func (s *plantService) LowStock() ([]models.Plant, error) {
	return s.plantRepo.ListLowStock()
}

// Update replaces the plant's fields (last write wins) and raises a stock
// alert when the plant drops out of good stock.
func (s *plantService) Update(ctx context.Context, id string, input PlantInput) (*models.Plant, error) {
	if err := input.validate(); err != nil {
		return nil, err
	}
	plant, err := s.plantRepo.GetByID(id)
	if err != nil {
		return nil, err
	}
	before := plant.Classify()

	input.apply(plant)
	if err := s.plantRepo.Update(plant); err != nil {
		return nil, err
	}

	if inventory.BecameLow(before, plant.Classify()) {
		s.whatsapp.NotifyLowStock(ctx, plant)
	}
	return plant, nil
}
