package services

import (
	"errors"

	"gorm.io/gorm"

	"barflow-api/models"
)

var ErrZeroQuantity = errors.New("replenish quantity must be non-zero")

// StockService owns the stock side of the catalog: replenishments and the
// append-only movement history behind them.
type StockService struct {
	db *gorm.DB
}

func NewStockService(db *gorm.DB) *StockService {
	return &StockService{db: db}
}

// Replenish applies a signed stock delta and appends the matching movement
// record in one transaction, so neither ever exists without the other.
func (s *StockService) Replenish(productID uint, quantity int, note string) (*models.Product, error) {
	if quantity == 0 {
		return nil, ErrZeroQuantity
	}

	var product models.Product
	err := s.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.First(&product, productID).Error; err != nil {
			return err
		}
		if err := tx.Model(&product).
			Update("stock", gorm.Expr("stock + ?", quantity)).Error; err != nil {
			return err
		}
		movement := models.StockMovement{
			ProductID: productID,
			Quantity:  quantity,
			Note:      note,
		}
		return tx.Create(&movement).Error
	})
	if err != nil {
		return nil, err
	}

	product.Stock += quantity
	return &product, nil
}

// History lists a product's movements newest-first. The product itself may
// be long deleted; its history stays addressable by id.
func (s *StockService) History(productID uint) ([]models.StockMovement, error) {
	var movements []models.StockMovement
	err := s.db.Where("product_id = ?", productID).
		Order("timestamp DESC, id DESC").
		Find(&movements).Error
	return movements, err
}
