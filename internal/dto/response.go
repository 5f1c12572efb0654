package dto

import "time"

type BasicResponse struct {
	Ok      bool   `json:"ok"`
	Details string `json:"details"`
	// Field names the offending input on validation failures.
	Field     string    `json:"field,omitempty"`
	Timestamp time.Time `json:"timestamp"`
}

func NewBasicResponse(ok bool, details string) BasicResponse {
	return BasicResponse{
		Ok:        ok,
		Details:   details,
		Timestamp: time.Now().UTC(),
	}
}

func NewFieldErrorResponse(field string, details string) BasicResponse {
	resp := NewBasicResponse(false, details)
	resp.Field = field
	return resp
}
