package translations

import (
	"errors"
	"fmt"

	"intl-sheets/core/reconcile"
)

// Op is a mutating range operation.
type Op string

const (
	// OpClear clears a range before it is rewritten.
	OpClear Op = "clear"
	// OpWrite writes the reconciled rows into a range.
	OpWrite Op = "write"
)

// Options controls a sync run.
type Options struct {
	// DryRun computes the plan without touching the spreadsheet.
	DryRun bool
}

// RangeResult is the outcome of one clear or write call.
type RangeResult struct {
	// Language is the language code of the range.
	Language string `json:"language"`
	// Range is the A1 range.
	Range string `json:"range"`
	// Op is the operation performed.
	Op Op `json:"op"`
	// Rows is the number of rows written (zero for clears).
	Rows int `json:"rows"`
	// Skipped is set when there was nothing to write.
	Skipped bool `json:"skipped,omitempty"`
	// Err is the API error, if any.
	Err error `json:"-"`
	// Error is Err rendered for JSON output.
	Error string `json:"error,omitempty"`
}

// OK reports whether the operation succeeded.
func (r RangeResult) OK() bool {
	return r.Err == nil
}

// Report is the outcome of a sync run.
type Report struct {
	// Plan is the reconciliation that was applied.
	Plan *reconcile.Plan `json:"plan"`
	// Results holds one entry per clear and write, in execution order.
	Results []RangeResult `json:"results"`
	// DryRun is set when nothing was written.
	DryRun bool `json:"dry_run"`
}

// Failed returns the results that carry an error.
func (r *Report) Failed() []RangeResult {
	var failed []RangeResult
	for _, res := range r.Results {
		if !res.OK() {
			failed = append(failed, res)
		}
	}
	return failed
}

// Err returns ErrPartialSync joined with every range error, or nil when
// all ranges were updated. The caller decides whether that is acceptable.
func (r *Report) Err() error {
	failed := r.Failed()
	if len(failed) == 0 {
		return nil
	}

	errs := make([]error, 0, len(failed))
	for _, res := range failed {
		errs = append(errs, fmt.Errorf("%s %s (%s): %w", res.Op, res.Range, res.Language, res.Err))
	}
	return fmt.Errorf("%w: %d of %d range operations failed: %w", ErrPartialSync, len(failed), len(r.Results), errors.Join(errs...))
}
