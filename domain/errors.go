package domain

import (
	"errors"
	"fmt"
)

var (
	// ErrInternalServerError will throw if any Internal Server Error happens
	ErrInternalServerError = errors.New("Internal Server Error")
	// ErrNotFound will throw if the requested item does not exist
	ErrNotFound = errors.New("Your requested Item is not found")
	// ErrBadParamInput will throw if the given request-body or params is not valid
	ErrBadParamInput = errors.New("Given Param is not valid")
	// ErrEmptyInput will throw if a search was submitted with a blank keyword
	ErrEmptyInput = errors.New("empty search input")

	ErrInvalidJsonFormat = errors.New("invalid JSON format")
)

// FetchError is a failed call against the indexing service: transport
// failure or a non-2xx response. Status is 0 when the request never got a
// response.
type FetchError struct {
	Status  int
	Message string
}

func (e *FetchError) Error() string {
	return fmt.Sprintf("indexer fetch failed: status=%d message=%s", e.Status, e.Message)
}

// AsFetchError unwraps err into a *FetchError if it is one.
func AsFetchError(err error) (*FetchError, bool) {
	var fe *FetchError
	if errors.As(err, &fe) {
		return fe, true
	}
	return nil, false
}
