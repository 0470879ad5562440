package ports

import "fmt"

// StatusError reports that the backend answered with a non-2xx status.
// Body holds the trimmed response text.
type StatusError struct {
	Code int
	Body string
}

func (e *StatusError) Error() string {
	return fmt.Sprintf("backend status %d: %s", e.Code, e.Body)
}
