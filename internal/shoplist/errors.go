package shoplist

import "fmt"

// ValidationError reports add input rejected before any network call.
type ValidationError struct {
	err error
}

func (e *ValidationError) Error() string { return "invalid item: " + e.err.Error() }
func (e *ValidationError) Unwrap() error { return e.err }

// CategoryResolutionError reports a remote record whose category name matches
// nothing in the registry. It fails the whole load; the list is never
// partially populated from a collection we cannot fully decode.
type CategoryResolutionError struct {
	Key      string
	Category string
	Err      error
}

func (e *CategoryResolutionError) Error() string {
	return fmt.Sprintf("record %q: cannot resolve category %q", e.Key, e.Category)
}

func (e *CategoryResolutionError) Unwrap() error { return e.Err }
