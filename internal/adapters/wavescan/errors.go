package wavescan

import (
	"errors"
	"fmt"
)

var ErrNotFound = errors.New("not found")

// ErrMalformed: el body no es el JSON que esperamos.
var ErrMalformed = errors.New("malformed response")

type APIError struct {
	Status int
	Body   string
}

func (e *APIError) Error() string {
	return fmt.Sprintf("wavescan api status %d: %s", e.Status, e.Body)
}
