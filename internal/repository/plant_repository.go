package repository

import (
	"nursery_manager/internal/models"

	"gorm.io/gorm"
)

type PlantRepository interface {
	Create(plant *models.Plant) error
	GetByID(id string) (*models.Plant, error)
	List(page Page) ([]models.Plant, error)
	ListLowStock() ([]models.Plant, error)
	Update(plant *models.Plant) error
	Count() (int64, error)
	CountLowStock() (int64, error)
}

type plantRepository struct {
	db *gorm.DB
}

func NewPlantRepository(db *gorm.DB) PlantRepository {
	return &plantRepository{db: db}
}

// lowStock matches both out-of-stock and low plants.
const lowStock = "current_stock <= min_stock_threshold"

func (r *plantRepository) Create(plant *models.Plant) error {
	if err := r.db.Create(plant).Error; err != nil {
		return translate(err)
	}
	plant.Classify()
	return nil
}

func (r *plantRepository) GetByID(id string) (*models.Plant, error) {
	var plant models.Plant
	if err := r.db.Where("id = ?", id).First(&plant).Error; err != nil {
		return nil, translate(err)
	}
	return &plant, nil
}

func (r *plantRepository) List(page Page) ([]models.Plant, error) {
	plants := []models.Plant{}
	err := page.apply(r.db).Order("name ASC").Find(&plants).Error
	return plants, err
}

func (r *plantRepository) ListLowStock() ([]models.Plant, error) {
	plants := []models.Plant{}
	err := r.db.Where(lowStock).Order("current_stock ASC, name ASC").Find(&plants).Error
	return plants, err
}

func (r *plantRepository) Update(plant *models.Plant) error {
	if err := r.db.Save(plant).Error; err != nil {
		return translate(err)
	}
	plant.Classify()
	return nil
}

func (r *plantRepository) Count() (int64, error) {
	var count int64
	err := r.db.Model(&models.Plant{}).Count(&count).Error
	return count, err
}

func (r *plantRepository) CountLowStock() (int64, error) {
	var count int64
	err := r.db.Model(&models.Plant{}).Where(lowStock).Count(&count).Error
	return count, err
}
