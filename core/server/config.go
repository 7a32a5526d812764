package server

import "strings"

// Config holds configuration for the HTTP server.
type Config struct {
	// Port is the port where the server will listen.
	Port string `mapstructure:"port" default:"8080"`
	// ApiKey is the secret key required to access the API.
	ApiKey string `mapstructure:"api_key" default:""`
	// BodyLimitKB caps the size of request bodies (observation batches, compare payloads).
	BodyLimitKB int `mapstructure:"body_limit_kb" default:"4096"`
}

// Address returns the listen address for the configured port.
func (c Config) Address() string {
	return ":" + strings.TrimPrefix(c.Port, ":")
}

// BodyLimit returns the request body limit in bytes.
func (c Config) BodyLimit() int {
	if c.BodyLimitKB <= 0 {
		return 4 * 1024 * 1024
	}
	return c.BodyLimitKB * 1024
}
