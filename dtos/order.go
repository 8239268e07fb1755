package dtos

// CartLine is one line of the cart being turned into an order. The price
// travels with the line (the cart already displayed it); the cost snapshot
// is resolved server-side from the catalog.
type CartLine struct {
	Name     string  `json:"name" binding:"required"`
	Price    float64 `json:"price"`
	Quantity int     `json:"quantity" binding:"required,gt=0"`
}

type PlaceOrderInput struct {
	Items     []CartLine `json:"items" binding:"required"`
	TableName string     `json:"table_name" binding:"required"`
	ClientID  *uint      `json:"client_id,omitempty"`
}

type AdvanceStatusInput struct {
	Status string `json:"status" binding:"required"`
}

type SettleInput struct {
	Method   string `json:"method" binding:"required"`
	ClientID *uint  `json:"client_id,omitempty"`
}
