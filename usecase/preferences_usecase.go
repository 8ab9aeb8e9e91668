package usecase

import (
	"context"
	"time"

	"github.com/playscout/game-recommender/domain"
)

type preferencesUsecase struct {
	preferencesRepository domain.PreferencesRepository
	contextTimeout        time.Duration
}

func NewPreferencesUsecase(preferencesRepository domain.PreferencesRepository, timeout time.Duration) domain.PreferencesUsecase {
	return &preferencesUsecase{
		preferencesRepository: preferencesRepository,
		contextTimeout:        timeout,
	}
}

// Save validates the questionnaire answers at the persistence boundary
// and upserts the snapshot keyed by user email.
func (pu *preferencesUsecase) Save(c context.Context, prefs *domain.UserPreferences) error {
	if prefs.UserEmail == "" {
		return domain.NewValidationError("user_email is required")
	}
	if err := prefs.QuestionnaireAnswers.Validate(); err != nil {
		return err
	}

	ctx, cancel := context.WithTimeout(c, pu.contextTimeout)
	defer cancel()
	return pu.preferencesRepository.Upsert(ctx, prefs)
}

func (pu *preferencesUsecase) GetByEmail(c context.Context, email string) (*domain.UserPreferences, error) {
	ctx, cancel := context.WithTimeout(c, pu.contextTimeout)
	defer cancel()
	return pu.preferencesRepository.GetByEmail(ctx, email)
}

func (pu *preferencesUsecase) SaveAnswers(c context.Context, email string, answers domain.QuestionnaireAnswers) error {
	if email == "" {
		return domain.NewValidationError("user_email is required")
	}
	if err := answers.Validate(); err != nil {
		return err
	}

	ctx, cancel := context.WithTimeout(c, pu.contextTimeout)
	defer cancel()
	return pu.preferencesRepository.UpsertAnswers(ctx, email, answers)
}
