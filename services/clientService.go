package services

import (
	"errors"
	"time"

	"gorm.io/gorm"

	"barflow-api/models"
)

var ErrZeroAmount = errors.New("adjustment amount must be non-zero")

// ClientService owns the loyalty and tab ledger. Balance, spend and points
// are only ever touched here and by order settlement.
type ClientService struct {
	db *gorm.DB
}

func NewClientService(db *gorm.DB) *ClientService {
	return &ClientService{db: db}
}

// AdjustBalance applies a manual signed balance change: positive repays a
// tab or grants credit, negative records debt outside any order.
func (s *ClientService) AdjustBalance(clientID uint, amount float64) (*models.Client, error) {
	if amount == 0 {
		return nil, ErrZeroAmount
	}

	var client models.Client
	err := s.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.First(&client, clientID).Error; err != nil {
			return err
		}
		return tx.Model(&client).Updates(map[string]interface{}{
			"balance":    gorm.Expr("balance + ?", amount),
			"last_visit": time.Now(),
		}).Error
	})
	if err != nil {
		return nil, err
	}

	if err := s.db.First(&client, clientID).Error; err != nil {
		return nil, err
	}
	return &client, nil
}
