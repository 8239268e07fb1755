package models

import "time"

// Order lifecycle. Transitions only move forward, PAID is terminal.
const (
	OrderPending = "PENDING"
	OrderReady   = "READY"
	OrderServed  = "SERVED"
	OrderPaid    = "PAID"
)

const (
	TableFree     = "FREE"
	TableOccupied = "OCCUPIED"
	TableReserved = "RESERVED"
)

const (
	PaymentCash        = "CASH"
	PaymentCard        = "CARD"
	PaymentMobileMoney = "MOBILE_MONEY"
	PaymentTab         = "TAB"
)

const (
	RoleAdmin     = "admin"
	RoleBartender = "bartender"
	RoleServer    = "server"
)

type Category struct {
	ID   uint   `gorm:"primaryKey" json:"id"`
	Name string `gorm:"not null;unique" json:"name"`
	Icon string `json:"icon"`
}

type Product struct {
	ID             uint    `gorm:"primaryKey" json:"id"`
	Name           string  `gorm:"not null" json:"name"`
	Price          float64 `gorm:"not null" json:"price"`
	CostPrice      float64 `gorm:"default:0" json:"cost_price"`
	Stock          int     `gorm:"default:0" json:"stock"`
	AlertThreshold int     `gorm:"default:5" json:"alert_threshold"`
	Category       string  `json:"category"`
	Image          *string `json:"image,omitempty"`
	Description    *string `json:"description,omitempty"`
	IsAvailable    bool    `gorm:"default:true" json:"is_available"`
}

// StockMovement is append-only: replenishments insert one row each,
// nothing updates or deletes them. History survives product deletion.
type StockMovement struct {
	ID        uint      `gorm:"primaryKey;autoIncrement" json:"id"`
	ProductID uint      `gorm:"index;not null" json:"product_id"`
	Quantity  int       `gorm:"not null" json:"quantity"`
	Timestamp time.Time `gorm:"autoCreateTime" json:"timestamp"`
	Note      string    `json:"note"`
}

func (StockMovement) TableName() string {
	return "stock_history"
}

type Table struct {
	ID              uint    `gorm:"primaryKey" json:"id"`
	Name            string  `gorm:"not null;unique" json:"name"`
	Zone            string  `json:"zone"`
	Status          string  `gorm:"default:'FREE'" json:"status"`
	ReservationNote *string `json:"reservation_note,omitempty"`
}

type Order struct {
	ID          uint        `gorm:"primaryKey" json:"id"`
	Total       float64     `gorm:"not null;default:0" json:"total"`
	Status      string      `gorm:"default:'PENDING'" json:"status"`
	Timestamp   time.Time   `gorm:"autoCreateTime" json:"timestamp"`
	TableNumber int         `gorm:"default:0" json:"table_number"`
	TableName   string      `json:"table_name"`
	ClientID    *uint       `json:"client_id,omitempty"`
	ClientName  *string     `json:"client_name,omitempty"`
	// Set once, at settlement.
	PaymentMethod *string     `json:"payment_method,omitempty"`
	Items         []OrderItem `gorm:"foreignKey:OrderID" json:"items"`
}

// OrderItem snapshots name, price and cost at the moment the order is
// placed, so later catalog edits never rewrite historical totals or margins.
type OrderItem struct {
	ID        uint    `gorm:"primaryKey;autoIncrement" json:"id"`
	OrderID   uint    `gorm:"index;not null" json:"order_id"`
	Name      string  `gorm:"not null" json:"name"`
	Price     float64 `gorm:"not null" json:"price"`
	CostPrice float64 `gorm:"default:0" json:"cost_price"`
	Quantity  int     `gorm:"not null" json:"quantity"`
}

type Client struct {
	ID            uint      `gorm:"primaryKey" json:"id"`
	Name          string    `gorm:"not null" json:"name"`
	Phone         *string   `json:"phone,omitempty"`
	Email         *string   `json:"email,omitempty"`
	Notes         *string   `json:"notes,omitempty"`
	LoyaltyPoints int       `gorm:"default:0" json:"loyalty_points"`
	TotalSpent    float64   `gorm:"default:0" json:"total_spent"`
	// Negative = tab debt owed to the venue, positive = prepaid credit.
	Balance   float64   `gorm:"default:0" json:"balance"`
	LastVisit time.Time `json:"last_visit"`
}

type User struct {
	ID   uint   `gorm:"primaryKey" json:"id"`
	Name string `gorm:"not null;unique" json:"name"`
	Role string `gorm:"type:varchar(20);not null" json:"role"`
	PIN  string `gorm:"column:pin;not null" json:"-"`
}

type Setting struct {
	Key   string `gorm:"primaryKey" json:"key"`
	Value string `json:"value"`
}
