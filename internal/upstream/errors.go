package upstream

import (
	"errors"
	"fmt"
)

// StatusError reports a non-2xx HTTP status from the store API.
type StatusError struct {
	Path       string
	StatusCode int
}

func (e *StatusError) Error() string {
	return fmt.Sprintf("%s: upstream returned HTTP %d", e.Path, e.StatusCode)
}

// APIError reports an envelope whose status field was not success. Des is
// the upstream's human-readable message, shown to the operator verbatim.
type APIError struct {
	Path      string
	Code      string
	ErrorCode int
	Des       string
}

func (e *APIError) Error() string {
	if e.Des != "" {
		return fmt.Sprintf("%s: %s", e.Path, e.Des)
	}
	return fmt.Sprintf("%s: upstream rejected the request (code %s)", e.Path, e.Code)
}

// Description extracts the upstream des message from an error chain, falling
// back to a generic message when the failure was transport-level.
func Description(err error) string {
	var apiErr *APIError
	if errors.As(err, &apiErr) && apiErr.Des != "" {
		return apiErr.Des
	}
	return "request failed"
}
