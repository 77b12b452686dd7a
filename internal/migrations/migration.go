package migrations

import (
	"errors"
	"log"
	"time"

	"nursery_manager/internal/models"
	"nursery_manager/internal/repository"
	"nursery_manager/internal/services"

	"gorm.io/gorm"
)

// Models lists every table owned by the back office, in creation order.
func Models() []interface{} {
	return []interface{}{
		&models.User{},
		&models.Plant{},
		&models.Customer{},
		&models.Bill{},
		&models.BillItem{},
		&models.Quotation{},
		&models.QuotationItem{},
	}
}

// RunMigrations creates or updates the schema and seeds the admin user.
// Existing data is kept.
func RunMigrations(db *gorm.DB, adminPassword string) error {
	log.Println("Running database migrations...")

	if err := db.AutoMigrate(Models()...); err != nil {
		return err
	}

	if err := createDefaultData(db, adminPassword); err != nil {
		log.Printf("Warning: Failed to create default data: %v", err)
	}

	log.Println("Database migrations completed successfully!")
	return nil
}

// createDefaultData creates the admin account on an empty database.
func createDefaultData(db *gorm.DB, adminPassword string) error {
	userService := services.NewUserService(repository.NewUserRepository(db), nil, nil, 0, time.Now)

	_, err := userService.InitAdmin(adminPassword)
	if errors.Is(err, services.ErrAdminExists) {
		log.Println("Admin user already exists")
		return nil
	}
	return err
}
