package request

import "strings"

// CreateBillRequest is the payload for opening a new bill.
type CreateBillRequest struct {
	BillCode string `json:"bill_code" binding:"required"`
	Capacity int    `json:"capacity" binding:"required"`
}

func (r CreateBillRequest) ResolveBillCode() string {
	return strings.TrimSpace(r.BillCode)
}

// LinkRequest carries the scanned container code for a link attempt.
type LinkRequest struct {
	ContainerCode string `json:"container_code" binding:"required"`
}

func (r LinkRequest) ResolveContainerCode() string {
	return strings.TrimSpace(r.ContainerCode)
}
