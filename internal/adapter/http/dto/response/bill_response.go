package response

import (
	"time"

	"warebill/internal/domain/entities"
)

type BillResponse struct {
	ID              string    `json:"id"`
	BillCode        string    `json:"bill_code"`
	Status          string    `json:"status"`
	Capacity        int       `json:"capacity"`
	LinkedCount     int       `json:"linked_count"`
	TotalWeight     float64   `json:"total_weight"`
	TotalChildUnits int       `json:"total_child_units"`
	CreatedAt       time.Time `json:"created_at"`
	UpdatedAt       time.Time `json:"updated_at"`
}

func FromBill(b entities.Bill) BillResponse {
	return BillResponse{
		ID:              b.ID,
		BillCode:        b.BillCode,
		Status:          string(b.Status),
		Capacity:        b.Capacity,
		LinkedCount:     b.LinkedCount,
		TotalWeight:     b.TotalWeight,
		TotalChildUnits: b.TotalChildUnits,
		CreatedAt:       b.CreatedAt,
		UpdatedAt:       b.UpdatedAt,
	}
}
