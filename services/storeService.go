package services

import (
	"gorm.io/gorm"

	"barflow-api/models"
	"barflow-api/seeders"
)

// StoreService owns the bulk lifecycle of the durable store.
type StoreService struct {
	db *gorm.DB
}

func NewStoreService(db *gorm.DB) *StoreService {
	return &StoreService{db: db}
}

// Reset wipes every entity and re-seeds the defaults, returning the store
// to its brand-new state in one transaction.
func (s *StoreService) Reset() error {
	err := s.db.Transaction(func(tx *gorm.DB) error {
		for _, model := range []interface{}{
			&models.OrderItem{},
			&models.Order{},
			&models.StockMovement{},
			&models.Product{},
			&models.Category{},
			&models.Table{},
			&models.Client{},
			&models.User{},
			&models.Setting{},
		} {
			if err := tx.Where("1 = 1").Delete(model).Error; err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		return err
	}

	seeders.Seed(s.db)
	return nil
}
