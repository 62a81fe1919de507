// Package config defines the application configuration structure and
// loading logic. Configuration comes from environment variables with the
// FLOWTEST_ prefix; every field carries a default suitable for local
// development, and the loaded struct is validated before use.
package config
