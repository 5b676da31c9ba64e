package storage

import (
	"net/url"
	"strings"

	"github.com/haebit/haebit/internal/storage/postgres"
	"github.com/haebit/haebit/internal/storage/sqlite"
)

// NewSQLiteStore creates a SQLite-backed provider at the given file path.
func NewSQLiteStore(path string) Provider {
	return sqlite.NewStore(path)
}

// NewPostgresStore creates a PostgreSQL-backed provider for the given
// connection string.
func NewPostgresStore(connStr string) Provider {
	return postgres.NewStore(connStr)
}

// IsPostgresConfig reports whether the config string selects the
// PostgreSQL backend.
func IsPostgresConfig(config string) bool {
	return strings.HasPrefix(config, "postgres://") || strings.HasPrefix(config, "postgresql://")
}

// HasEmbeddedCredentials reports whether a PostgreSQL connection string
// carries an inline password, which is rejected on the command line
// (credentials belong in the keyring, environment, or .pgpass).
func HasEmbeddedCredentials(connStr string) bool {
	if IsPostgresConfig(connStr) {
		u, err := url.Parse(connStr)
		if err != nil {
			return false
		}
		if u.User != nil {
			_, hasPassword := u.User.Password()
			return hasPassword
		}
		return false
	}

	// DSN format: space-separated key=value pairs
	for _, part := range strings.Fields(connStr) {
		if strings.HasPrefix(strings.ToLower(part), "password=") {
			return true
		}
	}
	return false
}
