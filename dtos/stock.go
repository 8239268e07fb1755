package dtos

type ReplenishInput struct {
	Quantity int    `json:"quantity" binding:"required"`
	Note     string `json:"note"`
}
