package response

import "warebill/internal/domain/entities"

// LinkResponse mirrors the engine's result taxonomy so scanner clients can
// branch on outcome without parsing messages.
type LinkResponse struct {
	Outcome               string `json:"outcome"`
	Message               string `json:"message"`
	ChildUnitsOnContainer int    `json:"child_units_on_container,omitempty"`
	LinkedCountAfter      int    `json:"linked_count_after,omitempty"`
	Capacity              int    `json:"capacity,omitempty"`
}

func FromLinkResult(r entities.LinkResult) LinkResponse {
	return LinkResponse{
		Outcome:               string(r.Outcome),
		Message:               r.Message,
		ChildUnitsOnContainer: r.ChildUnitsOnContainer,
		LinkedCountAfter:      r.LinkedCountAfter,
		Capacity:              r.Capacity,
	}
}
