package gazetteer

import (
	"sort"
	"strings"
	"unicode/utf8"

	"github.com/korea-weather-service/internal/domain"
	"github.com/korea-weather-service/internal/domain/repository"
)

// Gazetteer is the in-memory Korean place table. Built once at startup,
// read-only afterwards, so concurrent readers need no lock.
type Gazetteer struct {
	// entries holds every row of every table in deterministic order,
	// including keys shadowed in the union (중구 exists in Seoul, Busan
	// and Incheon with different canonical strings).
	entries []domain.GazetteerEntry

	// union is the merged view used by Lookup. Tables are merged in a
	// fixed order (regions, Seoul, Busan, Incheon, neighborhoods); a
	// later table overwrites the canonical string of a duplicated key.
	union map[string]string
	// unionOrder keeps the union's keys in deterministic insertion
	// order for stable substring matching.
	unionOrder []string

	popular []string
}

// New builds the gazetteer from the compiled-in tables.
func New() repository.GazetteerRepository {
	g := &Gazetteer{
		union: make(map[string]string),
	}

	g.addTable(koreaRegions, domain.OriginRegion)
	g.addTable(seoulDistricts, domain.OriginSeoulDistrict)
	g.addTable(busanDistricts, domain.OriginBusanDistrict)
	g.addTable(incheonDistricts, domain.OriginIncheonDistrict)
	g.addTable(seoulNeighborhoods, domain.OriginNeighborhood)

	g.popular = append(g.popular, popularLocations...)

	return g
}

func (g *Gazetteer) addTable(table map[string]string, origin domain.TableOrigin) {
	keys := make([]string, 0, len(table))
	for k := range table {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	for _, k := range keys {
		g.entries = append(g.entries, domain.GazetteerEntry{
			KoreanName: k,
			Canonical:  table[k],
			Origin:     origin,
		})
		if _, exists := g.union[k]; !exists {
			g.unionOrder = append(g.unionOrder, k)
		}
		g.union[k] = table[k]
	}
}

// Lookup translates a Korean query into the canonical Latin search
// string. Exact match first; otherwise every key containing the query is
// collected and the shortest one wins; length is counted in runes, ties
// keep table-merge order.
func (g *Gazetteer) Lookup(query string) (string, bool) {
	if canonical, ok := g.union[query]; ok {
		return canonical, true
	}

	best := ""
	bestLen := 0
	for _, key := range g.unionOrder {
		if !strings.Contains(key, query) {
			continue
		}
		keyLen := utf8.RuneCountInString(key)
		if best == "" || keyLen < bestLen {
			best = key
			bestLen = keyLen
		}
	}
	if best == "" {
		return "", false
	}
	return g.union[best], true
}

// Suggest returns up to limit entries whose Korean or canonical name
// contains the query, shortest Korean names first. Deterministic for a
// fixed table snapshot.
func (g *Gazetteer) Suggest(query string, limit int) []domain.GazetteerEntry {
	if query == "" || limit <= 0 {
		return nil
	}
	needle := strings.ToLower(query)

	var matches []domain.GazetteerEntry
	for _, e := range g.entries {
		if strings.Contains(e.KoreanName, query) ||
			strings.Contains(strings.ToLower(e.Canonical), needle) {
			matches = append(matches, e)
		}
	}

	sort.SliceStable(matches, func(i, j int) bool {
		return utf8.RuneCountInString(matches[i].KoreanName) <
			utf8.RuneCountInString(matches[j].KoreanName)
	})

	if len(matches) > limit {
		matches = matches[:limit]
	}
	return matches
}

// Popular returns the fixed quick-pick list.
func (g *Gazetteer) Popular() []string {
	out := make([]string, len(g.popular))
	copy(out, g.popular)
	return out
}
