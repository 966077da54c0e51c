package config

import (
	"fmt"
	"reflect"
	"strings"

	"intl-sheets/core/auth"
	"intl-sheets/core/catalog"
	"intl-sheets/core/logger"
	"intl-sheets/core/server"
	"intl-sheets/core/sheets"
	"intl-sheets/core/storage"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// Config holds all configuration for the application.
// It is divided into partial configurations for better modularity.
type Config struct {
	// Sheets holds the spreadsheet id and the language set.
	Sheets sheets.Config `mapstructure:"sheets"`
	// Catalog holds the location and format of the message catalog.
	Catalog catalog.Config `mapstructure:"catalog"`
	// Auth holds the Google credentials used for the Sheets API.
	Auth auth.Config `mapstructure:"auth"`
	// Storage holds configuration for the object storage (e.g., S3, Minio).
	Storage storage.Config `mapstructure:"storage"`
	// Server holds configuration for the HTTP trigger server.
	Server server.Config `mapstructure:"server"`
	// Log holds configuration for the logger.
	Log logger.Config `mapstructure:"log"`
}

// LoadConfig loads configuration from environment variables and .env file.
func LoadConfig(path string) (*Config, error) {
	// 1. Load .env file if it exists
	// We construct the path to .env
	envPath := path + "/.env"
	if path == "." {
		envPath = ".env"
	}

	// Ignore error if file doesn't exist (e.g. production)
	_ = godotenv.Overload(envPath)

	v := viper.New()

	// Recursively parse struct tags to set default values
	bindValues(v, Config{}, "")

	// Map environment variables to nested keys (e.g. SHEETS_SPREADSHEET_ID -> sheets.spreadsheet_id)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	var config Config
	if err := v.Unmarshal(&config); err != nil {
		return nil, err
	}

	return &config, nil
}

// Validate checks the settings a sync cannot run without.
func (c *Config) Validate() error {
	if err := c.Sheets.Validate(); err != nil {
		return err
	}
	if !c.Auth.IsValidMode() {
		return fmt.Errorf("auth: unsupported mode %q", c.Auth.Mode)
	}
	switch c.Catalog.Source {
	case catalog.SourceFile, catalog.SourceStorage:
	default:
		return fmt.Errorf("catalog: unsupported source %q", c.Catalog.Source)
	}
	switch c.Catalog.Format {
	case catalog.FormatReactIntl, catalog.FormatGoI18n:
	default:
		return fmt.Errorf("catalog: unsupported format %q", c.Catalog.Format)
	}
	return nil
}

// bindValues uses reflection to iterate over the struct and set default values in Viper
// based on the 'default' and 'mapstructure' tags.
func bindValues(v *viper.Viper, iface any, prefix string) {
	t := reflect.TypeOf(iface)

	// If it's a pointer, get the element
	if t.Kind() == reflect.Ptr {
		t = t.Elem()
	}

	for i := 0; i < t.NumField(); i++ {
		field := t.Field(i)
		tag := field.Tag.Get("mapstructure")

		// Skip if no tag
		if tag == "" {
			continue
		}

		// Build the key
		key := tag
		if prefix != "" {
			key = prefix + "." + tag
		}

		// If it's a nested struct, recurse
		if field.Type.Kind() == reflect.Struct {
			bindValues(v, reflect.New(field.Type).Elem().Interface(), key)
			continue
		}

		defaultValue := field.Tag.Get("default")
		// Always set default (even if empty) to register the key for AutomaticEnv
		v.SetDefault(key, defaultValue)
	}
}
