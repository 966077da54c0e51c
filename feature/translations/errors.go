package translations

import (
	"errors"
	"fmt"
)

// ErrPartialSync is returned by Report.Err when some ranges failed to clear or write.
var ErrPartialSync = errors.New("partial sync")

// RemoteError reports a failed read of a language range. Reads are fatal:
// no range is modified after one fails.
type RemoteError struct {
	// Op is the failed operation ("read").
	Op string
	// Language is the language code of the range.
	Language string
	// Range is the A1 range that was requested.
	Range string
	// Err is the underlying API error.
	Err error
}

func (e *RemoteError) Error() string {
	return fmt.Sprintf("failed to %s %s (%s): %v", e.Op, e.Range, e.Language, e.Err)
}

func (e *RemoteError) Unwrap() error {
	return e.Err
}
