// Package sheets provides access to the translation spreadsheet.
//
// It wraps the Google Sheets v4 API behind a small Client interface with the
// three range operations a sync needs (Get, Clear, BatchUpdate), so the sync
// logic can be tested with the mock in core/sheets/mocks.
//
// # Layout
//
// Every language has its own tab. Row 1 is a header; data starts at row 2.
//
//	base tab:      A=id  B=message
//	secondary tab: A=id  B=ref (base text)  C=message (translation)
//
// BaseRange and SecondaryRange build the matching A1 ranges, and the
// *FromValues / *ToValues helpers convert between raw cells and the typed
// rows of core/reconcile right at the API boundary.
//
// # Languages
//
// The language set is configured as "code:TAB" pairs plus the base code:
//
//	SHEETS_LANGUAGES=en:EN,de:DE,pl:PL
//	SHEETS_BASE_LANGUAGE=pl
package sheets
