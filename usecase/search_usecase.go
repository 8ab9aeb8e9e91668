package usecase

import (
	"context"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/playscout/game-recommender/domain"
)

// searchPageSize bounds the first catalog call; the popularity call is
// scoped to the identifiers that call returned.
const searchPageSize = 20

// popularityTypeVisits selects which popularity metric the catalog
// reports for the merge.
const popularityTypeVisits = 1

type searchUsecase struct {
	catalog        domain.CatalogClient
	contextTimeout time.Duration
}

func NewSearchUsecase(catalog domain.CatalogClient, timeout time.Duration) domain.SearchUsecase {
	return &searchUsecase{
		catalog:        catalog,
		contextTimeout: timeout,
	}
}

// Search retrieves catalog entries matching query, joins the popularity
// metric onto each entry and returns the list ranked by popularity
// descending. Ties keep their catalog order.
func (su *searchUsecase) Search(c context.Context, query string, current []domain.Game) ([]domain.Game, error) {
	// Single characters produce noisy upstream calls; hand the caller
	// back whatever it is already showing.
	if len(query) <= 2 {
		return current, nil
	}

	ctx, cancel := context.WithTimeout(c, su.contextTimeout)
	defer cancel()

	var games []domain.Game
	gameQuery := fmt.Sprintf(
		"search %q; fields name, cover.url, summary, rating; limit %d;",
		query, searchPageSize,
	)
	if err := su.catalog.Request(ctx, "games", gameQuery, &games); err != nil {
		return nil, err
	}

	if len(games) == 0 {
		return []domain.Game{}, nil
	}

	ids := make([]string, 0, len(games))
	for _, game := range games {
		ids = append(ids, strconv.FormatInt(game.ID, 10))
	}

	var primitives []domain.PopularityPrimitive
	popularityQuery := fmt.Sprintf(
		"fields game_id, value; where game_id = (%s) & popularity_type = %d;",
		strings.Join(ids, ","), popularityTypeVisits,
	)
	if err := su.catalog.Request(ctx, "popularity_primitives", popularityQuery, &primitives); err != nil {
		return nil, err
	}

	merged := mergePopularity(games, primitives)
	domain.SortGames(merged, domain.SortOrder{Sort: domain.SortFieldPopularity, Order: domain.SortOrderDesc})
	return merged, nil
}

// mergePopularity attaches each entry's popularity value. The first
// primitive matching a game identifier wins; entries without a match
// carry 0.
func mergePopularity(games []domain.Game, primitives []domain.PopularityPrimitive) []domain.Game {
	merged := make([]domain.Game, len(games))
	for i, game := range games {
		game.Popularity = 0
		for _, primitive := range primitives {
			if primitive.GameID == game.ID {
				game.Popularity = primitive.Value
				break
			}
		}
		merged[i] = game
	}
	return merged
}
