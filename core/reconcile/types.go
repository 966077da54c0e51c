package reconcile

import "errors"

// ErrDuplicateID is returned when the local catalog contains the same id twice.
var ErrDuplicateID = errors.New("duplicate message id")

// Message is a base-language entry of the local catalog.
type Message struct {
	// ID is the stable message identifier (e.g. the i18n key).
	ID string `json:"id"`

	// Message is the default (source) text.
	Message string `json:"message"`
}

// BaseRow is a row of the base-language sheet.
type BaseRow struct {
	ID      string `json:"id"`
	Message string `json:"message"`
}

// TranslationRow is a row of a secondary-language sheet.
type TranslationRow struct {
	// ID links the row to the base entry.
	ID string `json:"id"`

	// Ref is the base message at the time the row was created.
	// Translators use it as reference text.
	Ref string `json:"ref"`

	// Message is the human-provided translation. It may be empty.
	Message string `json:"message"`
}

// Plan is the output of a reconciliation: the full row set to write
// for every language plus the diff that produced it.
type Plan struct {
	// NewMessages are catalog entries absent from the remote base rows,
	// in catalog order.
	NewMessages []Message `json:"new_messages"`

	// StaleIDs are remote base ids absent from the catalog, in remote order.
	StaleIDs []string `json:"stale_ids"`

	// Base is the new base-language row set.
	Base []BaseRow `json:"base"`

	// Secondary is the new row set per secondary language code.
	Secondary map[string][]TranslationRow `json:"secondary"`

	// Orphans lists, per language, dropped secondary ids that had no
	// surviving base row.
	Orphans map[string][]string `json:"orphans,omitempty"`

	// Missing lists, per language, surviving base ids that have no
	// secondary row. They are not synthesized.
	Missing map[string][]string `json:"missing,omitempty"`

	// Summary provides aggregate counts.
	Summary PlanSummary `json:"summary"`
}

// PlanSummary provides aggregate statistics for a plan.
type PlanSummary struct {
	// TotalMessages is the number of catalog entries.
	TotalMessages int `json:"total_messages"`

	// Added counts new messages.
	Added int `json:"added"`

	// Removed counts stale ids.
	Removed int `json:"removed"`

	// Kept counts surviving base rows.
	Kept int `json:"kept"`

	// Orphans counts dropped orphan secondary rows across languages.
	Orphans int `json:"orphans"`

	// Missing counts absent secondary rows across languages.
	Missing int `json:"missing"`
}

// IsNoop reports whether the plan adds or removes nothing.
func (p *Plan) IsNoop() bool {
	return len(p.NewMessages) == 0 && len(p.StaleIDs) == 0 && p.Summary.Orphans == 0
}
