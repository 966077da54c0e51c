package auth

// Config holds configuration for authorizing against the Sheets API.
type Config struct {
	// Mode selects the credential type: "service_account" or "oauth".
	Mode string `mapstructure:"mode" default:"service_account"`
	// CredentialsFile is the service account key or the OAuth client secret file.
	CredentialsFile string `mapstructure:"credentials_file" default:"credentials.json"`
	// TokenFile caches the OAuth user token. Only used in "oauth" mode.
	TokenFile string `mapstructure:"token_file" default:"token.json"`
}

const (
	ModeServiceAccount = "service_account"
	ModeOAuth          = "oauth"
)

// IsValidMode checks if the configured mode is supported.
func (c Config) IsValidMode() bool {
	switch c.Mode {
	case ModeServiceAccount, ModeOAuth:
		return true
	default:
		return false
	}
}
