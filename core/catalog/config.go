package catalog

// Config holds configuration for the local message catalog.
type Config struct {
	// Source is where the catalog is read from: "file" or "storage".
	Source string `mapstructure:"source" default:"file"`
	// Path is the file path, or the object name when Source is "storage".
	Path string `mapstructure:"path" default:"intl-messages.json"`
	// Format is the catalog format: "react-intl" or "go-i18n".
	Format string `mapstructure:"format" default:"react-intl"`
}

const (
	SourceFile    = "file"
	SourceStorage = "storage"

	FormatReactIntl = "react-intl"
	FormatGoI18n    = "go-i18n"
)
