// Package config provides configuration management for intl-sheets.
//
// It utilizes Viper for loading configuration from environment variables
// and an optional .env file. Defaults come from the `default` struct tags of
// each section.
//
// # Configuration Structure
//
//   - Sheets: spreadsheet id, language set (SHEETS_LANGUAGES=en:EN,pl:PL) and base language
//   - Catalog: catalog source (file/storage), path and format (react-intl/go-i18n)
//   - Auth: credential mode (service_account/oauth) and files
//   - Storage: S3/MinIO credentials and bucket, for catalogs stored remotely
//   - Server: HTTP trigger port and API key
//   - Log: Logging level and format
//
// # Usage
//
//	cfg, err := config.LoadConfig(".")
//	if err != nil {
//	    log.Fatal(err)
//	}
//	if err := cfg.Validate(); err != nil {
//	    log.Fatal(err)
//	}
package config
