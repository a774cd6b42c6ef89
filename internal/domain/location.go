package domain

// TableOrigin identifies which gazetteer table an entry was loaded from.
type TableOrigin string

const (
	OriginRegion          TableOrigin = "region"
	OriginSeoulDistrict   TableOrigin = "seoul_district"
	OriginBusanDistrict   TableOrigin = "busan_district"
	OriginIncheonDistrict TableOrigin = "incheon_district"
	OriginNeighborhood    TableOrigin = "neighborhood"
)

// SourceType marks where a location candidate came from.
type SourceType string

const (
	SourceLocalGazetteer SourceType = "local_gazetteer"
	SourceRemoteGeocoder SourceType = "remote_geocoder"
)

// CountryKR is the ISO country code preferred during disambiguation:
// a romanized Korean district name can collide with towns abroad.
const CountryKR = "KR"

type Coordinate struct {
	Lat float64 `json:"lat"`
	Lon float64 `json:"lon"`
}

// GazetteerEntry maps a Korean place name to the canonical Latin search
// string sent to the geocoder. Entries are loaded once at startup and
// never mutated.
type GazetteerEntry struct {
	KoreanName string      `json:"korean_name"`
	Canonical  string      `json:"canonical"`
	Origin     TableOrigin `json:"origin"`
}

// DisplayName combines the Korean key with its canonical form, e.g.
// "강남구 (Gangnam-gu, Seoul)".
func (e GazetteerEntry) DisplayName() string {
	return e.KoreanName + " (" + e.Canonical + ")"
}

// LocationCandidate is one suggestion produced for a free-form query.
// Gazetteer candidates carry no coordinates; geocoder candidates do.
type LocationCandidate struct {
	DisplayName string      `json:"display_name"`
	SearchQuery string      `json:"search_query"`
	Source      SourceType  `json:"source"`
	Coordinates *Coordinate `json:"coordinates,omitempty"`
	CountryCode string      `json:"country_code,omitempty"`
}

// ResolvedLocation is the output contract of resolution: exactly one per
// successful resolve.
type ResolvedLocation struct {
	Lat         float64 `json:"lat"`
	Lon         float64 `json:"lon"`
	CountryCode string  `json:"country_code"`
}

// GeocodeResult is a single hit from the geocoding provider, in
// provider-returned order.
type GeocodeResult struct {
	Name    string  `json:"name"`
	Lat     float64 `json:"lat"`
	Lon     float64 `json:"lon"`
	Country string  `json:"country"`
	State   string  `json:"state,omitempty"`
}
