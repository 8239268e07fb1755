package services

import (
	"errors"
	"fmt"
	"math"
	"time"

	"gorm.io/gorm"

	"barflow-api/dtos"
	"barflow-api/models"
)

var (
	ErrEmptyCart        = errors.New("order needs at least one item")
	ErrUnknownStatus    = errors.New("unknown order status")
	ErrStatusRegression = errors.New("order status can only move forward")
	ErrPaymentRequired  = errors.New("PAID is set through payment, not status advancement")
	ErrAlreadyPaid      = errors.New("order is already paid")
	ErrUnknownMethod    = errors.New("unknown payment method")
)

var statusRank = map[string]int{
	models.OrderPending: 0,
	models.OrderReady:   1,
	models.OrderServed:  2,
	models.OrderPaid:    3,
}

// OrderService owns the order ledger: placement with its stock debit and
// table occupancy, forward-only status progression, and payment settlement
// with its table and client side effects. Every multi-write operation runs
// inside one transaction.
type OrderService struct {
	db *gorm.DB
}

func NewOrderService(db *gorm.DB) *OrderService {
	return &OrderService{db: db}
}

// Place turns a cart into a persisted order: header plus line items in one
// write, a best-effort stock debit per line, and the table marked OCCUPIED.
// A cart line naming a product the catalog no longer has is tolerated; a
// line selling more than is on hand goes through with a warning.
func (s *OrderService) Place(input dtos.PlaceOrderInput, clientID *uint) (*models.Order, []string, error) {
	if len(input.Items) == 0 {
		return nil, nil, ErrEmptyCart
	}
	for _, line := range input.Items {
		if line.Quantity <= 0 {
			return nil, nil, fmt.Errorf("invalid quantity for %q", line.Name)
		}
	}

	var order models.Order
	var warnings []string

	err := s.db.Transaction(func(tx *gorm.DB) error {
		var total float64
		var items []models.OrderItem

		for _, line := range input.Items {
			price := line.Price
			costPrice := 0.0

			var product models.Product
			if err := tx.Where("name = ?", line.Name).First(&product).Error; err == nil {
				if price == 0 {
					price = product.Price
				}
				costPrice = product.CostPrice

				if product.Stock < line.Quantity {
					warnings = append(warnings, fmt.Sprintf(
						"stock insuffisant pour %q (en stock: %d, demandé: %d)",
						line.Name, product.Stock, line.Quantity,
					))
				}
				if err := tx.Model(&models.Product{}).Where("name = ?", line.Name).
					Update("stock", gorm.Expr("stock - ?", line.Quantity)).Error; err != nil {
					return err
				}
			}
			// No product row: the line is still sold at its cart price.

			total += price * float64(line.Quantity)
			items = append(items, models.OrderItem{
				Name:      line.Name,
				Price:     price,
				CostPrice: costPrice,
				Quantity:  line.Quantity,
			})
		}

		order = models.Order{
			Total:     total,
			Status:    models.OrderPending,
			TableName: input.TableName,
			Items:     items,
		}

		if clientID != nil {
			var client models.Client
			if err := tx.First(&client, *clientID).Error; err != nil {
				return err
			}
			order.ClientID = &client.ID
			name := client.Name
			order.ClientName = &name
		}

		if err := tx.Create(&order).Error; err != nil {
			return err
		}

		return tx.Model(&models.Table{}).Where("name = ?", input.TableName).
			Update("status", models.TableOccupied).Error
	})
	if err != nil {
		return nil, nil, err
	}
	return &order, warnings, nil
}

// Advance moves an order forward through PENDING → READY → SERVED.
// Regressions are rejected, and PAID is only reachable through Settle.
func (s *OrderService) Advance(orderID uint, status string) (*models.Order, error) {
	newRank, ok := statusRank[status]
	if !ok {
		return nil, ErrUnknownStatus
	}
	if status == models.OrderPaid {
		return nil, ErrPaymentRequired
	}

	var order models.Order
	if err := s.db.First(&order, orderID).Error; err != nil {
		return nil, err
	}
	if order.Status == models.OrderPaid {
		return nil, ErrAlreadyPaid
	}
	if newRank <= statusRank[order.Status] {
		return nil, ErrStatusRegression
	}

	if err := s.db.Model(&order).Update("status", status).Error; err != nil {
		return nil, err
	}
	return &order, nil
}

// Settle finalizes payment for an order as one unit: the order becomes PAID
// with its method, its table is freed, and when a client is attached their
// spend, loyalty points and (for TAB payments) balance are updated. The
// amount applied is the stored order total, never a caller-supplied figure.
func (s *OrderService) Settle(orderID uint, method string, clientID *uint) (*models.Order, error) {
	switch method {
	case models.PaymentCash, models.PaymentCard, models.PaymentMobileMoney, models.PaymentTab:
	default:
		return nil, ErrUnknownMethod
	}

	var order models.Order
	err := s.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Preload("Items").First(&order, orderID).Error; err != nil {
			return err
		}
		if order.Status == models.OrderPaid {
			return ErrAlreadyPaid
		}

		if err := tx.Model(&order).Updates(map[string]interface{}{
			"status":         models.OrderPaid,
			"payment_method": method,
		}).Error; err != nil {
			return err
		}
		order.Status = models.OrderPaid
		order.PaymentMethod = &method

		if err := tx.Model(&models.Table{}).Where("name = ?", order.TableName).
			Update("status", models.TableFree).Error; err != nil {
			return err
		}

		target := clientID
		if target == nil {
			target = order.ClientID
		}
		if target == nil {
			return nil
		}

		points := int(math.Floor(order.Total / 10))
		updates := map[string]interface{}{
			"total_spent":    gorm.Expr("total_spent + ?", order.Total),
			"loyalty_points": gorm.Expr("loyalty_points + ?", points),
			"last_visit":     time.Now(),
		}
		if method == models.PaymentTab {
			updates["balance"] = gorm.Expr("balance - ?", order.Total)
		}
		return tx.Model(&models.Client{}).Where("id = ?", *target).Updates(updates).Error
	})
	if err != nil {
		return nil, err
	}
	return &order, nil
}

// List returns the full order ledger newest-first with items attached.
// This is also the boundary's read-only export.
func (s *OrderService) List() ([]models.Order, error) {
	var orders []models.Order
	err := s.db.Preload("Items").
		Order("timestamp DESC, id DESC").
		Find(&orders).Error
	return orders, err
}
