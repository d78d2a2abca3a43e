// Package constants provides shared constant values used throughout the application.
//
// The defaults.go file defines default configuration values applied when a
// setting is not provided through the config file or environment.
package constants

// Server defaults.
const (
	// DefaultServerPort is the port the API listens on when not configured.
	DefaultServerPort = 8080
)

// Database defaults.
const (
	// DefaultDBMaxConnections bounds the connection pool size.
	DefaultDBMaxConnections = 20

	// DefaultDBMinConnections is the number of idle connections kept warm.
	DefaultDBMinConnections = 1

	// DefaultDBSSLMode is the sslmode used when building a connection string.
	DefaultDBSSLMode = "disable"
)

// Logging defaults.
const (
	// DefaultLogLevel is the log level used when not configured.
	DefaultLogLevel = "info"

	// DefaultLogFormat is the log output format used when not configured.
	DefaultLogFormat = "json"
)

// Environment names.
const (
	// EnvDevelopment identifies the development environment.
	EnvDevelopment = "development"

	// EnvTesting identifies the testing environment.
	EnvTesting = "testing"

	// EnvProduction identifies the production environment.
	EnvProduction = "production"
)

// Request limits.
const (
	// MaxRequestBodySize caps request bodies at 1MB.
	MaxRequestBodySize = 1048576
)

// LogRedactedValue replaces sensitive values in configuration logs.
const LogRedactedValue = "[REDACTED]"
