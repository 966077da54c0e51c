// Package reconcile computes how the translation spreadsheet must change to
// match the local message catalog.
//
// The spreadsheet has one tab per language. The base-language tab holds
// `id | message` rows; every secondary tab holds `id | ref | message` rows,
// where ref is the base text a translator worked from and message is the
// translation.
//
// # Algorithm
//
//  1. New messages: catalog entries whose id is absent from the remote base rows.
//  2. Stale ids: remote base ids absent from the catalog.
//  3. Base rows: remote rows minus stale ids, followed by new messages.
//  4. Secondary rows: remote rows minus stale ids, followed by one seeded row
//     per new message ({id, ref: base text, message: ""}).
//
// Surviving rows are never rewritten or reordered, so existing translations
// are preserved. Secondary rows with no surviving base id are dropped and
// reported as orphans; surviving ids with no secondary row are reported as
// missing and left alone.
//
// # Usage
//
//	plan, err := reconcile.Reconcile(messages, baseRows, secondaryRows)
//	if err != nil {
//	    return err // duplicate catalog ids
//	}
//	if plan.IsNoop() {
//	    return nil
//	}
package reconcile
