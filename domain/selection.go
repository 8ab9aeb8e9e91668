package domain

import "context"

type ToggleSelectionRequest struct {
	GameID   int64 `json:"game_id"`
	Selected bool  `json:"selected"`
}

type ToggleSelectionResponse struct {
	GameID   int64 `json:"game_id"`
	Selected bool  `json:"selected"`
	Total    int   `json:"total"`
}

type FinishSelectionRequest struct {
	QuestionnaireAnswers QuestionnaireAnswers `json:"questionnaire_answers"`
}

// SelectionUsecase holds the per-session set of chosen games. Toggles
// are local state only; the snapshot reaches storage once, at Finish.
type SelectionUsecase interface {
	Toggle(userEmail string, gameID int64, selected bool) int
	Selected(userEmail string) []int64
	// Finish flushes the full selection snapshot plus questionnaire
	// answers as one upsert. An empty selection is a validation error
	// and performs no storage call.
	Finish(ctx context.Context, userEmail string, answers QuestionnaireAnswers) error
}
