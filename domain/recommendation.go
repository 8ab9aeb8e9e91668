package domain

import "context"

// RecommendationItem is produced entirely by the external scoring
// function; this service only transports and renders it.
type RecommendationItem struct {
	ID     int64    `json:"id"`
	Title  string   `json:"title"`
	Genres []string `json:"genre"`
	Themes []string `json:"themes"`
	Rating float64  `json:"rating,omitempty"`
	Cover  string   `json:"cover,omitempty"`
	Score  float64  `json:"score"`
}

// RecommendationScorer is the external scoring function. Its weighting
// logic lives outside this repository.
type RecommendationScorer interface {
	Recommendations(ctx context.Context, userEmail string) ([]RecommendationItem, error)
}

type RecommendationRequest struct {
	UserEmail string `json:"user_email"`
}

type RecommendationResponse struct {
	Data []RecommendationItem `json:"data"`
}

type RecommendationUsecase interface {
	Fetch(ctx context.Context, userEmail string) ([]RecommendationItem, error)
}
