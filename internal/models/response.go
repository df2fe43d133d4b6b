package models

// Response is the envelope every endpoint answers with.
// swagger:model Response
type Response struct {
	// HTTP status code, repeated in the body
	StatusCode int `json:"statusCode"`

	// Payload, null on errors
	Data any `json:"data"`

	// Human-readable message
	Message string `json:"message"`

	// True when StatusCode < 400
	Success bool `json:"success"`
}

// NewResponse builds an envelope; Success is derived from the status code.
func NewResponse(statusCode int, data any, message string) Response {
	return Response{
		StatusCode: statusCode,
		Data:       data,
		Message:    message,
		Success:    statusCode < 400,
	}
}
