package dtos

// AdjustBalanceInput moves a client balance by a signed amount: positive
// repays debt or adds credit, negative records new debt.
type AdjustBalanceInput struct {
	Amount float64 `json:"amount" binding:"required"`
}

type ClientInput struct {
	Name  string  `json:"name" binding:"required"`
	Phone *string `json:"phone,omitempty"`
	Email *string `json:"email,omitempty"`
	Notes *string `json:"notes,omitempty"`
}
