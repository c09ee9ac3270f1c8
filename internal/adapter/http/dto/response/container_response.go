package response

import (
	"time"

	"warebill/internal/domain/entities"
)

type ContainerResponse struct {
	ID         string    `json:"id"`
	Code       string    `json:"code"`
	Kind       string    `json:"kind"`
	ParentCode string    `json:"parent_code,omitempty"`
	ChildCount int       `json:"child_count"`
	WeightKg   float64   `json:"weight_kg"`
	Status     string    `json:"status"`
	CreatedAt  time.Time `json:"created_at"`
	UpdatedAt  time.Time `json:"updated_at"`
}

func FromContainer(c entities.Container) ContainerResponse {
	return ContainerResponse{
		ID:         c.ID,
		Code:       c.Code,
		Kind:       string(c.Kind),
		ParentCode: c.ParentCode,
		ChildCount: c.ChildCount,
		WeightKg:   c.WeightKg,
		Status:     string(c.Status),
		CreatedAt:  c.CreatedAt,
		UpdatedAt:  c.UpdatedAt,
	}
}
