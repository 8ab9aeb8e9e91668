package usecase_test

import (
	"context"
	"fmt"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"github.com/playscout/game-recommender/domain"
	"github.com/playscout/game-recommender/domain/mocks"
	"github.com/playscout/game-recommender/usecase"
)

func TestSearch_ShortQueryReturnsCurrentListUnchanged(t *testing.T) {
	mockCatalog := new(mocks.CatalogClient)
	u := usecase.NewSearchUsecase(mockCatalog, time.Second*2)

	current := []domain.Game{
		{ID: 7, Name: "Halo", Popularity: 12},
		{ID: 9, Name: "Portal", Popularity: 4},
	}

	for _, query := range []string{"", "m", "ma"} {
		got, err := u.Search(context.Background(), query, current)

		assert.NoError(t, err)
		assert.Equal(t, current, got)
	}

	mockCatalog.AssertNotCalled(t, "Request", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
}

func TestSearch_EmptyMatchSetSkipsPopularityCall(t *testing.T) {
	mockCatalog := new(mocks.CatalogClient)
	mockCatalog.On("Request", mock.Anything, "games", mock.Anything, mock.Anything).Return(nil)

	u := usecase.NewSearchUsecase(mockCatalog, time.Second*2)
	got, err := u.Search(context.Background(), "zzzzzz", nil)

	assert.NoError(t, err)
	assert.Empty(t, got)
	assert.NotNil(t, got)
	mockCatalog.AssertNumberOfCalls(t, "Request", 1)
}

func TestSearch_MergesPopularityAndRanksDescending(t *testing.T) {
	games := make([]domain.Game, 0, 20)
	for id := int64(1); id <= 20; id++ {
		games = append(games, domain.Game{ID: id, Name: fmt.Sprintf("Game %d", id)})
	}
	primitives := []domain.PopularityPrimitive{
		{GameID: 1, Value: 9.5},
		{GameID: 3, Value: 22.1},
		{GameID: 5, Value: 3.3},
	}

	mockCatalog := new(mocks.CatalogClient)
	mockCatalog.On("Request", mock.Anything, "games", mock.Anything, mock.Anything).
		Run(func(args mock.Arguments) {
			out := args.Get(3).(*[]domain.Game)
			*out = games
		}).Return(nil)
	mockCatalog.On("Request", mock.Anything, "popularity_primitives", mock.Anything, mock.Anything).
		Run(func(args mock.Arguments) {
			out := args.Get(3).(*[]domain.PopularityPrimitive)
			*out = primitives
		}).Return(nil)

	u := usecase.NewSearchUsecase(mockCatalog, time.Second*2)
	got, err := u.Search(context.Background(), "mario", nil)

	assert.NoError(t, err)
	assert.Len(t, got, 20)

	// Matched entries lead in value order, everything else carries 0 and
	// keeps its catalog order.
	wantIDs := []int64{3, 1, 5, 2, 4, 6, 7, 8, 9, 10, 11, 12, 13, 14, 15, 16, 17, 18, 19, 20}
	gotIDs := make([]int64, 0, len(got))
	for _, game := range got {
		gotIDs = append(gotIDs, game.ID)
	}
	assert.Equal(t, wantIDs, gotIDs)

	values := map[int64]float64{1: 9.5, 3: 22.1, 5: 3.3}
	for _, game := range got {
		assert.Equal(t, values[game.ID], game.Popularity)
	}
}

func TestSearch_DuplicatePopularityRecordFirstMatchWins(t *testing.T) {
	mockCatalog := new(mocks.CatalogClient)
	mockCatalog.On("Request", mock.Anything, "games", mock.Anything, mock.Anything).
		Run(func(args mock.Arguments) {
			out := args.Get(3).(*[]domain.Game)
			*out = []domain.Game{{ID: 4, Name: "Tetris"}}
		}).Return(nil)
	mockCatalog.On("Request", mock.Anything, "popularity_primitives", mock.Anything, mock.Anything).
		Run(func(args mock.Arguments) {
			out := args.Get(3).(*[]domain.PopularityPrimitive)
			*out = []domain.PopularityPrimitive{
				{GameID: 4, Value: 7},
				{GameID: 4, Value: 99},
			}
		}).Return(nil)

	u := usecase.NewSearchUsecase(mockCatalog, time.Second*2)
	got, err := u.Search(context.Background(), "tetris", nil)

	assert.NoError(t, err)
	assert.Len(t, got, 1)
	assert.Equal(t, float64(7), got[0].Popularity)
}

func TestSearch_QueryLanguagePassedThrough(t *testing.T) {
	mockCatalog := new(mocks.CatalogClient)
	mockCatalog.On("Request", mock.Anything, "games",
		`search "mario"; fields name, cover.url, summary, rating; limit 20;`, mock.Anything).
		Run(func(args mock.Arguments) {
			out := args.Get(3).(*[]domain.Game)
			*out = []domain.Game{{ID: 2}, {ID: 11}}
		}).Return(nil)
	mockCatalog.On("Request", mock.Anything, "popularity_primitives",
		mock.MatchedBy(func(query string) bool {
			return strings.Contains(query, "game_id = (2,11)") &&
				strings.Contains(query, "popularity_type = 1")
		}), mock.Anything).Return(nil)

	u := usecase.NewSearchUsecase(mockCatalog, time.Second*2)
	_, err := u.Search(context.Background(), "mario", nil)

	assert.NoError(t, err)
	mockCatalog.AssertExpectations(t)
}

func TestSearch_TiesKeepInputOrder(t *testing.T) {
	games := []domain.Game{
		{ID: 1, Name: "A", Popularity: 5},
		{ID: 2, Name: "B", Popularity: 5},
		{ID: 3, Name: "C", Popularity: 5},
	}
	domain.SortGames(games, domain.SortOrder{Sort: domain.SortFieldPopularity, Order: domain.SortOrderDesc})

	assert.Equal(t, int64(1), games[0].ID)
	assert.Equal(t, int64(2), games[1].ID)
	assert.Equal(t, int64(3), games[2].ID)
}

func TestSearch_RatingOrderReusesMergeResult(t *testing.T) {
	mockCatalog := new(mocks.CatalogClient)
	mockCatalog.On("Request", mock.Anything, "games", mock.Anything, mock.Anything).
		Run(func(args mock.Arguments) {
			out := args.Get(3).(*[]domain.Game)
			*out = []domain.Game{
				{ID: 1, Rating: 55},
				{ID: 2, Rating: 91},
				{ID: 3, Rating: 73},
			}
		}).Return(nil)
	mockCatalog.On("Request", mock.Anything, "popularity_primitives", mock.Anything, mock.Anything).
		Run(func(args mock.Arguments) {
			out := args.Get(3).(*[]domain.PopularityPrimitive)
			*out = []domain.PopularityPrimitive{{GameID: 1, Value: 100}}
		}).Return(nil)

	u := usecase.NewSearchUsecase(mockCatalog, time.Second*2)
	got, err := u.Search(context.Background(), "zelda", nil)
	assert.NoError(t, err)

	// Default order is popularity descending.
	assert.Equal(t, int64(1), got[0].ID)

	// Switching to rating is a re-sort of the same slice.
	domain.SortGames(got, domain.SortOrder{Sort: domain.SortFieldRating, Order: domain.SortOrderDesc})
	assert.Equal(t, int64(2), got[0].ID)
	assert.Equal(t, int64(3), got[1].ID)
	assert.Equal(t, int64(1), got[2].ID)
	mockCatalog.AssertNumberOfCalls(t, "Request", 2)
}

func TestSearch_UpstreamFailureSurfacesAsUpstreamError(t *testing.T) {
	mockCatalog := new(mocks.CatalogClient)
	mockCatalog.On("Request", mock.Anything, "games", mock.Anything, mock.Anything).
		Return(domain.NewUpstreamError("catalog request failed with status 500", nil))

	u := usecase.NewSearchUsecase(mockCatalog, time.Second*2)
	_, err := u.Search(context.Background(), "mario", nil)

	assert.Error(t, err)
	assert.Equal(t, domain.ErrorKindUpstream, domain.KindOf(err))
}
