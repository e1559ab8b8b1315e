package dto

// ErrorResponse is the dashboard-facing error body. Message is only set
// for the distinguished "no data" outcome, which the dashboard handles
// differently from hard failures.
type ErrorResponse struct {
	Error   string `json:"error"`
	Message string `json:"message,omitempty"`
}
