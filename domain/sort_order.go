package domain

import "sort"

type SortOrder struct {
	Sort  string `form:"sort" json:"sort"`
	Order string `form:"order" json:"order"`
}

const (
	SortFieldPopularity = "popularity"
	SortFieldRating     = "rating"

	SortOrderDesc = "desc"
	SortOrderAsc  = "asc"
)

// SortGames orders an already-merged result list in place. Rating order
// reuses the merge result, no re-fetch is needed to switch fields.
// Entries comparing equal keep their relative input order.
func SortGames(games []Game, order SortOrder) {
	key := func(g Game) float64 {
		if order.Sort == SortFieldRating {
			return g.Rating
		}
		return g.Popularity
	}
	sort.SliceStable(games, func(i, j int) bool {
		if order.Order == SortOrderAsc {
			return key(games[i]) < key(games[j])
		}
		return key(games[i]) > key(games[j])
	})
}
