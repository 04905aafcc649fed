package models

// ErrorResponse is the body of every failed request.
// Detail is a human-readable description of what went wrong.
type ErrorResponse struct {
	Detail string `json:"detail"`
}
