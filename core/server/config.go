package server

// Config holds configuration for the HTTP trigger server.
type Config struct {
	// Port is the port where the server will listen.
	Port string `mapstructure:"port" default:"8080"`
	// ApiKey is the secret key required to trigger syncs.
	ApiKey string `mapstructure:"api_key" default:""`
	// Host is the interface to bind. Empty binds all interfaces.
	Host string `mapstructure:"host" default:""`
}

// Address returns the listen address.
func (c Config) Address() string {
	return c.Host + ":" + c.Port
}
