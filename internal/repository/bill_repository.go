package repository

import (
	"time"

	"nursery_manager/internal/billing"
	"nursery_manager/internal/models"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type BillRepository interface {
	Create(bill *models.Bill, prefix string) error
	GetByID(id string) (*models.Bill, error)
	List(page Page) ([]models.Bill, error)
	ListByStatus(status models.BillStatus, page Page) ([]models.Bill, error)
	Recent(n int) ([]models.Bill, error)
	TotalSales() (decimal.Decimal, error)
	Approve(id, approverID string, at time.Time) (*models.Bill, error)
}

type billRepository struct {
	db *gorm.DB
}

func NewBillRepository(db *gorm.DB) BillRepository {
	return &billRepository{db: db}
}

// Create assigns the next bill number and inserts the bill with its items.
func (r *billRepository) Create(bill *models.Bill, prefix string) error {
	return withNumberRetry(func() error {
		return translate(r.db.Transaction(func(tx *gorm.DB) error {
			return insertBill(tx, bill, prefix)
		}))
	})
}

func insertBill(tx *gorm.DB, bill *models.Bill, prefix string) error {
	number, err := nextNumber(tx, &models.Bill{}, prefix)
	if err != nil {
		return err
	}
	bill.BillNumber = number
	for i := range bill.Items {
		bill.Items[i].ID = 0
		bill.Items[i].Position = i
	}
	return tx.Create(bill).Error
}

func (r *billRepository) GetByID(id string) (*models.Bill, error) {
	var bill models.Bill
	err := r.db.Preload("Items", itemsInOrder).Where("id = ?", id).First(&bill).Error
	if err != nil {
		return nil, translate(err)
	}
	return &bill, nil
}

func (r *billRepository) List(page Page) ([]models.Bill, error) {
	bills := []models.Bill{}
	err := page.apply(r.db).Preload("Items", itemsInOrder).Order("created_at DESC").Find(&bills).Error
	return bills, err
}

func (r *billRepository) ListByStatus(status models.BillStatus, page Page) ([]models.Bill, error) {
	bills := []models.Bill{}
	err := page.apply(r.db).Preload("Items", itemsInOrder).
		Where("status = ?", status).
		Order("created_at DESC").
		Find(&bills).Error
	return bills, err
}

func (r *billRepository) Recent(n int) ([]models.Bill, error) {
	bills := []models.Bill{}
	err := r.db.Preload("Items", itemsInOrder).Order("created_at DESC").Limit(n).Find(&bills).Error
	return bills, err
}

// TotalSales sums every bill that is no longer waiting for approval.
func (r *billRepository) TotalSales() (decimal.Decimal, error) {
	var result struct {
		Total decimal.Decimal
	}
	err := r.db.Model(&models.Bill{}).
		Select("COALESCE(SUM(total_amount), 0) AS total").
		Where("status <> ?", models.BillPending).
		Scan(&result).Error
	return result.Total, err
}

// Approve locks the bill row and flips pending to approved. A second
// concurrent approval sees zero affected rows and gets ErrAlreadyApproved.
func (r *billRepository) Approve(id, approverID string, at time.Time) (*models.Bill, error) {
	err := r.db.Transaction(func(tx *gorm.DB) error {
		var bill models.Bill
		if err := tx.Clauses(clause.Locking{Strength: "UPDATE"}).
			Where("id = ?", id).
			First(&bill).Error; err != nil {
			return err
		}

		next, err := billing.ApproveBill(bill.Status)
		if err != nil {
			return err
		}

		res := tx.Model(&models.Bill{}).
			Where("id = ? AND status = ?", bill.ID, models.BillPending).
			Updates(map[string]interface{}{
				"status":      next,
				"approved_by": approverID,
				"approved_at": at,
			})
		if res.Error != nil {
			return res.Error
		}
		if res.RowsAffected == 0 {
			return billing.ErrAlreadyApproved
		}
		return nil
	})
	if err != nil {
		return nil, translate(err)
	}
	return r.GetByID(id)
}
