package repository

import (
	"strings"

	"nursery_manager/internal/models"

	"gorm.io/gorm"
)

type CustomerRepository interface {
	Create(customer *models.Customer) error
	GetByID(id string) (*models.Customer, error)
	List(page Page) ([]models.Customer, error)
	Search(query string, page Page) ([]models.Customer, error)
	Update(customer *models.Customer) error
}

type customerRepository struct {
	db *gorm.DB
}

func NewCustomerRepository(db *gorm.DB) CustomerRepository {
	return &customerRepository{db: db}
}

func (r *customerRepository) Create(customer *models.Customer) error {
	return translate(r.db.Create(customer).Error)
}

func (r *customerRepository) GetByID(id string) (*models.Customer, error) {
	var customer models.Customer
	if err := r.db.Where("id = ?", id).First(&customer).Error; err != nil {
		return nil, translate(err)
	}
	return &customer, nil
}

func (r *customerRepository) List(page Page) ([]models.Customer, error) {
	customers := []models.Customer{}
	err := page.apply(r.db).Order("name ASC").Find(&customers).Error
	return customers, err
}

// SearchLimit is the page size of a customer search when none is given.
const SearchLimit = 10

var likeEscaper = strings.NewReplacer("!", "!!", "%", "!%", "_", "!_")

// containsPattern builds a LIKE pattern matching query literally anywhere,
// to be used with ESCAPE '!'.
func containsPattern(query string) string {
	return "%" + likeEscaper.Replace(strings.ToLower(strings.TrimSpace(query))) + "%"
}

// Search matches name, phone or email, case-insensitively.
func (r *customerRepository) Search(query string, page Page) ([]models.Customer, error) {
	customers := []models.Customer{}
	like := containsPattern(query)
	err := page.apply(r.db).
		Where("LOWER(name) LIKE ? ESCAPE '!' OR phone LIKE ? ESCAPE '!' OR LOWER(email) LIKE ? ESCAPE '!'", like, like, like).
		Order("name ASC").
		Find(&customers).Error
	return customers, err
}

func (r *customerRepository) Update(customer *models.Customer) error {
	return translate(r.db.Save(customer).Error)
}
