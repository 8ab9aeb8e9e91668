package usecase_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"github.com/playscout/game-recommender/domain"
	"github.com/playscout/game-recommender/domain/mocks"
	"github.com/playscout/game-recommender/usecase"
)

func TestRecommendation_EmptyIdentityNeverReachesScorer(t *testing.T) {
	mockScorer := new(mocks.RecommendationScorer)
	u := usecase.NewRecommendationUsecase(mockScorer, time.Second*2)

	_, err := u.Fetch(context.Background(), "")

	assert.Error(t, err)
	assert.Equal(t, domain.ErrorKindAuthRequired, domain.KindOf(err))
	mockScorer.AssertNotCalled(t, "Recommendations", mock.Anything, mock.Anything)
}

func TestRecommendation_EmptyResultIsReportedNotRendered(t *testing.T) {
	mockScorer := new(mocks.RecommendationScorer)
	mockScorer.On("Recommendations", mock.Anything, testUserEmail).
		Return([]domain.RecommendationItem{}, nil)

	u := usecase.NewRecommendationUsecase(mockScorer, time.Second*2)
	_, err := u.Fetch(context.Background(), testUserEmail)

	assert.Error(t, err)
	assert.Equal(t, domain.ErrorKindNotFound, domain.KindOf(err))
	assert.Equal(t, "no recommendations found", domain.MessageOf(err))
}

func TestRecommendation_PassesScoredListThrough(t *testing.T) {
	items := []domain.RecommendationItem{
		{ID: 1, Title: "Hades", Genres: []string{"Roguelike"}, Score: 0.92},
		{ID: 2, Title: "Celeste", Genres: []string{"Platformer"}, Score: 0.81},
	}
	mockScorer := new(mocks.RecommendationScorer)
	mockScorer.On("Recommendations", mock.Anything, testUserEmail).Return(items, nil)

	u := usecase.NewRecommendationUsecase(mockScorer, time.Second*2)
	got, err := u.Fetch(context.Background(), testUserEmail)

	assert.NoError(t, err)
	assert.Equal(t, items, got)
}

func TestRecommendation_ScorerFailurePropagates(t *testing.T) {
	mockScorer := new(mocks.RecommendationScorer)
	mockScorer.On("Recommendations", mock.Anything, testUserEmail).
		Return(nil, domain.NewUpstreamError("scoring request failed with status 502", nil))

	u := usecase.NewRecommendationUsecase(mockScorer, time.Second*2)
	_, err := u.Fetch(context.Background(), testUserEmail)

	assert.Error(t, err)
	assert.Equal(t, domain.ErrorKindUpstream, domain.KindOf(err))
}
