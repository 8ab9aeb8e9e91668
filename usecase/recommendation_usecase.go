package usecase

import (
	"context"
	"time"

	"github.com/playscout/game-recommender/domain"
)

type recommendationUsecase struct {
	scorer         domain.RecommendationScorer
	contextTimeout time.Duration
}

func NewRecommendationUsecase(scorer domain.RecommendationScorer, timeout time.Duration) domain.RecommendationUsecase {
	return &recommendationUsecase{
		scorer:         scorer,
		contextTimeout: timeout,
	}
}

// Fetch asks the external scoring function for the user's precomputed
// recommendation list. An empty identity never reaches the network, and
// an empty result is reported rather than rendered as success: the user
// cannot tell "nothing computed yet" from "nothing for you".
func (ru *recommendationUsecase) Fetch(c context.Context, userEmail string) ([]domain.RecommendationItem, error) {
	if userEmail == "" {
		return nil, domain.NewAuthRequiredError("user not authenticated")
	}

	ctx, cancel := context.WithTimeout(c, ru.contextTimeout)
	defer cancel()

	items, err := ru.scorer.Recommendations(ctx, userEmail)
	if err != nil {
		return nil, err
	}
	if len(items) == 0 {
		return nil, domain.NewNotFoundError("no recommendations found")
	}
	return items, nil
}
