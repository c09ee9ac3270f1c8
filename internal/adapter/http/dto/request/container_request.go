package request

import "strings"

// CreateContainerRequest registers (or resolves) a container by scanned code.
// Kind must be "parent" or "child".
type CreateContainerRequest struct {
	Code string `json:"code" binding:"required"`
	Kind string `json:"kind" binding:"required"`
}

func (r CreateContainerRequest) ResolveCode() string {
	return strings.TrimSpace(r.Code)
}

func (r CreateContainerRequest) ResolveKind() string {
	return strings.ToLower(strings.TrimSpace(r.Kind))
}

// AttachChildRequest stacks a scanned child unit onto a parent container.
type AttachChildRequest struct {
	Code     string  `json:"code" binding:"required"`
	WeightKg float64 `json:"weight_kg"`
}

func (r AttachChildRequest) ResolveCode() string {
	return strings.TrimSpace(r.Code)
}
