package api

import "fmt"

// StatusTransport is the sentinel status for failures that never produced an
// HTTP response (DNS, refused connection, cancelled context).
const StatusTransport = -1

// StatusError reports a failed backend call. The backend signals failures
// with string error bodies, which are carried verbatim in Body.
type StatusError struct {
	// Status is the HTTP status code, or StatusTransport when the request
	// never reached the backend.
	Status int
	Body   string
	Err    error
}

func (e *StatusError) Error() string {
	if e.Status == StatusTransport {
		return fmt.Sprintf("api: transport failure: %v", e.Err)
	}
	if e.Body != "" {
		return fmt.Sprintf("api: status %d: %s", e.Status, e.Body)
	}
	return fmt.Sprintf("api: status %d", e.Status)
}

func (e *StatusError) Unwrap() error {
	return e.Err
}

func transportError(err error) *StatusError {
	return &StatusError{Status: StatusTransport, Err: err}
}
