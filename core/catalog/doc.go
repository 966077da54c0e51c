// Package catalog loads the local message catalog that drives a sync.
//
// # Sources
//
//   - file: a path on the local filesystem (default: intl-messages.json).
//   - storage: an object in the configured S3/MinIO bucket, so CI can upload
//     a freshly extracted catalog and trigger the sync over HTTP.
//
// # Formats
//
//   - react-intl: a JSON array of {"id", "defaultMessage"} objects, as
//     produced by babel-plugin-react-intl / formatjs extraction.
//   - go-i18n: a go-i18n message file (JSON or TOML). The "other" form is
//     used as the default text.
//
// Any decoding problem, missing id or duplicate id is returned as a
// *ParseError; a sync must not touch the spreadsheet in that case.
package catalog
