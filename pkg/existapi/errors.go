package existapi

import "fmt"

// UpstreamError is a non-2xx response from the Exist.io API. Body holds
// a preview of the response body for logging.
type UpstreamError struct {
	StatusCode int
	Body       string
}

func (e *UpstreamError) Error() string {
	return fmt.Sprintf("exist.io responded with status %d: %s", e.StatusCode, e.Body)
}

// NetworkError is a transport-level failure (connection refused, timeout)
// before any HTTP status was received.
type NetworkError struct {
	Err error
}

func (e *NetworkError) Error() string {
	return fmt.Sprintf("exist.io request failed: %v", e.Err)
}

func (e *NetworkError) Unwrap() error {
	return e.Err
}
