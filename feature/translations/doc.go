// Package translations synchronizes the message catalog with the
// translation spreadsheet.
//
// A run has strictly ordered phases:
//
//  1. Load the catalog (a *catalog.ParseError aborts here).
//  2. Read the base tab, then every secondary tab in parallel
//     (a *RemoteError aborts here, before anything is modified).
//  3. Reconcile (core/reconcile).
//  4. Clear the base tab, then every secondary tab in parallel.
//  5. Write the base tab, then every secondary tab in parallel.
//
// Clears and writes never abort the run. Each one produces a RangeResult;
// Report.Err turns failures into ErrPartialSync so the caller can decide.
// A crash between phases 4 and 5 leaves cleared tabs behind. A rerun
// repopulates ids and reference text, but the translations are lost.
//
// # HTTP Endpoints
//
//   - GET /translations/plan : Computes the plan without writing.
//   - POST /translations/sync : Runs a sync (supports ?dry_run=true).
package translations
