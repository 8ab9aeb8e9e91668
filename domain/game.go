package domain

import "context"

type GameCover struct {
	ID  int64  `json:"id,omitempty"`
	URL string `json:"url,omitempty"`
}

// Game is one catalog entry as returned by the external catalog API,
// with the popularity value joined in by the search aggregation.
// Popularity defaults to 0 when the catalog has no popularity record
// for the entry; absence is a legitimate zero-signal, not an error.
type Game struct {
	ID         int64      `json:"id"`
	Name       string     `json:"name"`
	Cover      *GameCover `json:"cover,omitempty"`
	Summary    string     `json:"summary,omitempty"`
	Rating     float64    `json:"rating,omitempty"`
	Popularity float64    `json:"popularity"`
}

// PopularityPrimitive associates a game identifier with a numeric
// popularity value for one popularity metric type.
type PopularityPrimitive struct {
	GameID int64   `json:"game_id"`
	Value  float64 `json:"value"`
}

// CatalogClient issues authenticated calls against the external catalog
// API. The query is the API's own filter/projection mini-language and is
// passed through as an opaque string.
type CatalogClient interface {
	Request(ctx context.Context, endpoint string, query string, out interface{}) error
}

type SearchResponse struct {
	Games []Game `json:"games"`
}

type SearchUsecase interface {
	// Search returns catalog entries matching query ranked by popularity
	// descending. Queries of length <= 2 return current unchanged without
	// an upstream call.
	Search(ctx context.Context, query string, current []Game) ([]Game, error)
}
