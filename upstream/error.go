package upstream

import "fmt"

// TransportError represents a request that could not be completed (network, DNS, timeout, throttle)
type TransportError struct {
	Method string
	URL    string
	Err    error
}

// Error returns error message
func (e *TransportError) Error() string {
	return fmt.Sprintf("failed to %v %v: %v", e.Method, e.URL, e.Err)
}

// Unwrap returns underlying error
func (e *TransportError) Unwrap() error {
	return e.Err
}
