// Package auth provides the authorized HTTP client used by core/sheets.
//
// Two credential types are supported:
//   - service_account: a Google service account key file. The spreadsheet
//     must be shared with the service account's e-mail address.
//   - oauth: an OAuth client secret file plus a cached user token. The token
//     is created once with `intl-sheets auth login` and refreshed on use.
package auth
