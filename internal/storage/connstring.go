package storage

import (
	"net/url"
	"strings"
)

// IsPostgresConnString reports whether the config value looks like a
// PostgreSQL connection string rather than a local database path.
func IsPostgresConnString(s string) bool {
	return strings.HasPrefix(s, "postgres://") || strings.HasPrefix(s, "postgresql://")
}

// HasEmbeddedCredentials reports whether a connection string carries a
// password inline. Embedded credentials end up in shell history and process
// listings, so the CLI rejects them and points at the keyring instead.
func HasEmbeddedCredentials(connStr string) bool {
	u, err := url.Parse(connStr)
	if err != nil {
		return false
	}
	if u.User == nil {
		return false
	}
	_, hasPassword := u.User.Password()
	return hasPassword
}
