package openweather

import "fmt"

// LocationNotFoundError indicates the geocoder returned no results for a query
type LocationNotFoundError struct {
	Query string
}

func (e *LocationNotFoundError) Error() string {
	return fmt.Sprintf("location %q not found", e.Query)
}

// TransportError wraps a failed provider round-trip: connection errors,
// non-2xx responses, and undecodable payloads all surface as this kind
type TransportError struct {
	Operation string
	Err       error
}

func (e *TransportError) Error() string {
	return fmt.Sprintf("%s request failed: %v", e.Operation, e.Err)
}

func (e *TransportError) Unwrap() error {
	return e.Err
}
