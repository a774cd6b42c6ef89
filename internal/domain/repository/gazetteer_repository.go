package repository

import (
	"github.com/korea-weather-service/internal/domain"
)

// GazetteerRepository defines lookups over the in-memory Korean place
// table. Implementations are read-only after construction and safe for
// unlimited concurrent readers.
type GazetteerRepository interface {
	// Lookup translates a Korean place name to its canonical Latin
	// search string. Exact match wins; otherwise the shortest Korean key
	// containing the query. The second return is false when nothing
	// matches; that is a normal outcome, not an error.
	Lookup(query string) (string, bool)

	// Suggest returns up to limit entries whose Korean or canonical name
	// contains the query (case-insensitive), ordered by ascending
	// Korean-name length.
	Suggest(query string, limit int) []domain.GazetteerEntry

	// Popular returns the fixed ordered list of frequently requested
	// Korean place names.
	Popular() []string
}
