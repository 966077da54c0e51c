package catalog

import "fmt"

// ParseError reports a catalog that cannot be used for a sync.
type ParseError struct {
	// Path is the catalog file or object name.
	Path string
	// Err is the underlying cause.
	Err error
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("invalid catalog %s: %v", e.Path, e.Err)
}

func (e *ParseError) Unwrap() error {
	return e.Err
}
