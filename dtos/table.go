package dtos

type TableInput struct {
	Name string `json:"name" binding:"required"`
	Zone string `json:"zone"`
}

// TableStatusInput is the manual toggle between FREE and RESERVED.
// OCCUPIED is never a valid manual target, only order placement sets it.
type TableStatusInput struct {
	Status string `json:"status" binding:"required"`
	Note   string `json:"note"`
}
