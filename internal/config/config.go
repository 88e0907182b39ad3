// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"fmt"
	"net"
	"net/url"
	"strconv"
	"time"
)

// Supported database drivers. The names match the ones registered with
// database/sql by the pgx stdlib package and mattn/go-sqlite3.
const (
	DriverPostgres = "pgx"
	DriverSQLite   = "sqlite3"
)

// StructuredConfig is the top-level configuration container for the
// bakery-orders server. It is populated by merging defaults, a .env file,
// environment variables, command-line flags and an optional JSON file.
//
// Struct tags:
//   - envPrefix: prefix applied to all nested env tag lookups (caarlos0/env).
//   - env: direct environment variable name for scalar fields.
type StructuredConfig struct {
	// App holds application-level settings: logging, password hashing and
	// store call bounds.
	App App `envPrefix:"APP_"`

	// Storage holds configuration for the relational database.
	Storage Storage `envPrefix:"STORAGE_"`

	// Server holds network address and timeout settings for the HTTP server.
	Server Server `envPrefix:"SERVER_"`

	// JSONFilePath is the optional path to a JSON configuration file.
	// Populated via the CONFIG environment variable or the -c / -config flag.
	JSONFilePath string `env:"CONFIG"`
}

// App holds application-level configuration values.
type App struct {
	// LogLevel is the minimum zerolog level emitted (e.g. "debug", "info").
	// Env: APP_LOG_LEVEL
	LogLevel string `env:"LOG_LEVEL"`

	// PasswordHashCost is the bcrypt work factor used when registering users.
	// Env: APP_PASSWORD_HASH_COST
	PasswordHashCost int `env:"PASSWORD_HASH_COST"`

	// HashConcurrency bounds how many bcrypt computations may run at once.
	// Env: APP_HASH_CONCURRENCY
	HashConcurrency int `env:"HASH_CONCURRENCY"`

	// StoreTimeout bounds every single call to the database.
	// Env: APP_STORE_TIMEOUT
	StoreTimeout time.Duration `env:"STORE_TIMEOUT"`

	// Version is the semantic version reported by the version endpoint
	// when the binary carries no linker-injected build version.
	// Env: APP_VERSION
	Version string `env:"VERSION"`
}

// Storage groups the configuration for all storage backends.
type Storage struct {
	// DB holds the relational database connection settings.
	DB DB `envPrefix:"DB_"`
}

// DB holds connection settings for the relational database backend.
//
// When DSN is empty a Postgres connection string is assembled from the
// discrete Host/Port/User/Password/Name/SSLMode fields.
type DB struct {
	// Driver is the database/sql driver name: "pgx" or "sqlite3".
	// Env: STORAGE_DB_DRIVER
	Driver string `env:"DRIVER"`

	// DSN is the full connection string. It takes precedence over the
	// discrete fields below.
	// Env: STORAGE_DB_DATABASE_URI
	DSN string `env:"DATABASE_URI"`

	// Env: STORAGE_DB_HOST
	Host string `env:"HOST"`
	// Env: STORAGE_DB_PORT
	Port int `env:"PORT"`
	// Env: STORAGE_DB_USER
	User string `env:"USER"`
	// Env: STORAGE_DB_PASSWORD
	Password string `env:"PASSWORD"`
	// Env: STORAGE_DB_NAME
	Name string `env:"NAME"`
	// Env: STORAGE_DB_SSLMODE
	SSLMode string `env:"SSLMODE"`

	// MaxOpenConns and MaxIdleConns size the database/sql pool.
	// Env: STORAGE_DB_MAX_OPEN_CONNS, STORAGE_DB_MAX_IDLE_CONNS
	MaxOpenConns int `env:"MAX_OPEN_CONNS"`
	MaxIdleConns int `env:"MAX_IDLE_CONNS"`
}

// ConnString returns the connection string handed to sql.Open.
func (db DB) ConnString() string {
	if db.DSN != "" {
		return db.DSN
	}

	if db.Driver == DriverSQLite {
		return db.Name + ".sqlite"
	}

	u := url.URL{
		Scheme: "postgres",
		User:   url.UserPassword(db.User, db.Password),
		Host:   net.JoinHostPort(db.Host, strconv.Itoa(db.Port)),
		Path:   "/" + db.Name,
	}
	if db.SSLMode != "" {
		u.RawQuery = url.Values{"sslmode": {db.SSLMode}}.Encode()
	}

	return u.String()
}

// String describes the database target without credentials so it can be
// logged safely.
func (db DB) String() string {
	if db.DSN != "" {
		if u, err := url.Parse(db.DSN); err == nil && u.Host != "" {
			return fmt.Sprintf("%s://%s%s", db.Driver, u.Host, u.Path)
		}
		return db.Driver
	}
	if db.Driver == DriverSQLite {
		return fmt.Sprintf("%s://%s.sqlite", db.Driver, db.Name)
	}
	return fmt.Sprintf("%s://%s:%d/%s", db.Driver, db.Host, db.Port, db.Name)
}

// Server holds network and timeout settings for the inbound HTTP layer.
type Server struct {
	// HTTPAddress is the TCP address in "host:port" form.
	// Env: SERVER_ADDRESS
	HTTPAddress string `env:"ADDRESS"`

	// RequestTimeout is the maximum duration allowed for a single request.
	// Env: SERVER_REQUEST_TIMEOUT
	RequestTimeout time.Duration `env:"REQUEST_TIMEOUT"`

	// ShutdownTimeout bounds graceful shutdown of in-flight requests.
	// Env: SERVER_SHUTDOWN_TIMEOUT
	ShutdownTimeout time.Duration `env:"SHUTDOWN_TIMEOUT"`

	// AllowedOrigins lists CORS origins, comma separated in the environment.
	// Env: SERVER_ALLOWED_ORIGINS
	AllowedOrigins []string `env:"ALLOWED_ORIGINS" envSeparator:","`
}

// GetStructuredConfig loads, merges, and validates the server configuration
// from all available sources in the following priority order (later sources
// override non-zero fields of earlier ones):
//  1. Built-in defaults
//  2. Environment variables (after loading an optional .env file)
//  3. Command-line flags from args
//  4. JSON file (path resolved from sources 2 and 3)
func GetStructuredConfig(args []string) (*StructuredConfig, error) {
	return newConfigBuilder().
		withDefaults().
		withDotEnv(dotEnvPath()).
		withEnv().
		withFlags(args).
		withJSON().
		build()
}
