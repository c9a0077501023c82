package models

// Coordinate is a latitude/longitude pair in floating point degrees.
type Coordinate struct {
	Latitude  float64 `json:"latitude"`
	Longitude float64 `json:"longitude"`
}

// PartyLocation describes where a party happens. URI, when present, is an
// external map link used for "Open in Maps" and share actions.
type PartyLocation struct {
	Name      string  `json:"name"`
	Latitude  float64 `json:"latitude"`
	Longitude float64 `json:"longitude"`
	URI       string  `json:"uri,omitempty"`
}

// PartyPost is a single feed entry. Posts are immutable after creation and
// only ever live in the in-memory session feed.
type PartyPost struct {
	ID          string        `json:"id"`
	Title       string        `json:"title"`
	Description string        `json:"description"`
	Location    PartyLocation `json:"location"`
	PhotoURL    string        `json:"photoUrl"`
	Username    string        `json:"username"`
	Timestamp   int64         `json:"timestamp"` // epoch milliseconds
}

// SearchResult is the output of the grounded party search: the model's raw
// answer plus the posts derived from its grounding chunks, in upstream order.
type SearchResult struct {
	Text  string      `json:"text"`
	Posts []PartyPost `json:"posts"`
}
