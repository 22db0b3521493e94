package appErrors

import "fmt"

// FetchError wraps a backing-store failure for one of the export queries.
type FetchError struct {
    Entity string
    Err    error
}

func (e *FetchError) Error() string {
    return fmt.Sprintf("failed to fetch %s: %v", e.Entity, e.Err)
}

func (e *FetchError) Unwrap() error {
    return e.Err
}

// Helper constructor
func NewFetchError(entity string, err error) error {
    return &FetchError{Entity: entity, Err: err}
}
