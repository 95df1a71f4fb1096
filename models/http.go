package models

// ErrorResponse is the JSON body returned for every failed request.
// Message is a fixed, client-safe reason; internal error details never
// reach the client.
type ErrorResponse struct {
	Message string `json:"message"`
}
