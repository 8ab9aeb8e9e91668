package domain

import (
	"context"
	"fmt"
	"time"
)

type AnswerKind string

const (
	AnswerKindMultiSelect  AnswerKind = "multi_select"
	AnswerKindSingleSelect AnswerKind = "single_select"
	AnswerKindScale        AnswerKind = "scale"
)

// Answer is one questionnaire answer, tagged by kind. Exactly one of
// the value fields is meaningful for a given kind.
type Answer struct {
	Kind       AnswerKind `bson:"kind" json:"kind"`
	Selections []string   `bson:"selections,omitempty" json:"selections,omitempty"`
	Selection  string     `bson:"selection,omitempty" json:"selection,omitempty"`
	Scale      *float64   `bson:"scale,omitempty" json:"scale,omitempty"`
}

func (a Answer) Validate(questionID string) error {
	switch a.Kind {
	case AnswerKindMultiSelect:
		if len(a.Selections) == 0 {
			return NewValidationError(fmt.Sprintf("answer %q: multi_select requires at least one selection", questionID))
		}
	case AnswerKindSingleSelect:
		if a.Selection == "" {
			return NewValidationError(fmt.Sprintf("answer %q: single_select requires a selection", questionID))
		}
	case AnswerKindScale:
		if a.Scale == nil {
			return NewValidationError(fmt.Sprintf("answer %q: scale requires a numeric value", questionID))
		}
	default:
		return NewValidationError(fmt.Sprintf("answer %q: unknown answer kind %q", questionID, a.Kind))
	}
	return nil
}

// QuestionnaireAnswers maps question identifiers to answers.
type QuestionnaireAnswers map[string]Answer

func (qa QuestionnaireAnswers) Validate() error {
	for id, answer := range qa {
		if err := answer.Validate(id); err != nil {
			return err
		}
	}
	return nil
}

// UserPreferences is the full snapshot persisted per user: the selected
// game identifiers plus the questionnaire answers. Writes are upserts
// keyed by email, so repeating a save overwrites rather than duplicates.
type UserPreferences struct {
	UserEmail            string               `bson:"user_email" json:"user_email"`
	SelectedGames        []int64              `bson:"selected_games" json:"selected_games"`
	QuestionnaireAnswers QuestionnaireAnswers `bson:"questionnaire_answers" json:"questionnaire_answers"`
	UpdatedAt            time.Time            `bson:"updated_at" json:"-"`
}

type PreferencesRepository interface {
	Upsert(ctx context.Context, prefs *UserPreferences) error
	UpsertAnswers(ctx context.Context, email string, answers QuestionnaireAnswers) error
	GetByEmail(ctx context.Context, email string) (*UserPreferences, error)
}

type SavePreferencesRequest struct {
	UserEmail            string               `json:"user_email"`
	SelectedGames        []int64              `json:"selected_games"`
	QuestionnaireAnswers QuestionnaireAnswers `json:"questionnaire_answers"`
}

type PreferencesUsecase interface {
	Save(ctx context.Context, prefs *UserPreferences) error
	GetByEmail(ctx context.Context, email string) (*UserPreferences, error)
	SaveAnswers(ctx context.Context, email string, answers QuestionnaireAnswers) error
}
