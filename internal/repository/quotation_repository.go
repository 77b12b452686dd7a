package repository

import (
	"time"

	"nursery_manager/internal/billing"
	"nursery_manager/internal/models"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// BillFromQuotation builds the bill created by a conversion. It runs inside
// the conversion transaction with the locked quotation and its items.
type BillFromQuotation func(q *models.Quotation) (*models.Bill, error)

type QuotationRepository interface {
	Create(quotation *models.Quotation, prefix string) error
	GetByID(id string) (*models.Quotation, error)
	List(page Page) ([]models.Quotation, error)
	Convert(id string, now time.Time, billPrefix string, build BillFromQuotation) (*models.Quotation, *models.Bill, error)
}

type quotationRepository struct {
	db *gorm.DB
}

func NewQuotationRepository(db *gorm.DB) QuotationRepository {
	return &quotationRepository{db: db}
}

func (r *quotationRepository) Create(quotation *models.Quotation, prefix string) error {
	return withNumberRetry(func() error {
		return translate(r.db.Transaction(func(tx *gorm.DB) error {
			number, err := nextNumber(tx, &models.Quotation{}, prefix)
			if err != nil {
				return err
			}
			quotation.QuotationNumber = number
			for i := range quotation.Items {
				quotation.Items[i].ID = 0
				quotation.Items[i].Position = i
			}
			return tx.Create(quotation).Error
		}))
	})
}

func (r *quotationRepository) GetByID(id string) (*models.Quotation, error) {
	var quotation models.Quotation
	err := r.db.Preload("Items", itemsInOrder).Where("id = ?", id).First(&quotation).Error
	if err != nil {
		return nil, translate(err)
	}
	return &quotation, nil
}

func (r *quotationRepository) List(page Page) ([]models.Quotation, error) {
	quotations := []models.Quotation{}
	err := page.apply(r.db).Preload("Items", itemsInOrder).Order("created_at DESC").Find(&quotations).Error
	return quotations, err
}

// Convert checks the quotation under a row lock, creates the bill and marks
// the quotation converted in one transaction.
func (r *quotationRepository) Convert(id string, now time.Time, billPrefix string, build BillFromQuotation) (*models.Quotation, *models.Bill, error) {
	var bill *models.Bill
	err := withNumberRetry(func() error {
		return translate(r.db.Transaction(func(tx *gorm.DB) error {
			var q models.Quotation
			if err := tx.Clauses(clause.Locking{Strength: "UPDATE"}).
				Where("id = ?", id).
				First(&q).Error; err != nil {
				return err
			}
			if err := billing.CheckConvertible(&q, now); err != nil {
				return err
			}
			if err := tx.Where("quotation_id = ?", q.ID).Order("position ASC").Find(&q.Items).Error; err != nil {
				return err
			}

			var err error
			bill, err = build(&q)
			if err != nil {
				return err
			}
			if err := insertBill(tx, bill, billPrefix); err != nil {
				return err
			}

			res := tx.Model(&models.Quotation{}).
				Where("id = ? AND status = ?", q.ID, models.QuotationActive).
				Updates(map[string]interface{}{
					"status":            models.QuotationConverted,
					"converted_bill_id": bill.ID,
				})
			if res.Error != nil {
				return res.Error
			}
			if res.RowsAffected == 0 {
				return billing.ErrQuotationNotActive
			}
			return nil
		}))
	})
	if err != nil {
		return nil, nil, err
	}

	quotation, err := r.GetByID(id)
	if err != nil {
		return nil, nil, err
	}
	return quotation, bill, nil
}
