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

func TestPreferences_SaveRequiresEmail(t *testing.T) {
	mockRepo := new(mocks.PreferencesRepository)
	u := usecase.NewPreferencesUsecase(mockRepo, time.Second*2)

	err := u.Save(context.Background(), &domain.UserPreferences{
		SelectedGames: []int64{1},
	})

	assert.Error(t, err)
	assert.Equal(t, domain.ErrorKindValidation, domain.KindOf(err))
	mockRepo.AssertNotCalled(t, "Upsert", mock.Anything, mock.Anything)
}

func TestPreferences_SaveValidatesAnswerKinds(t *testing.T) {
	mockRepo := new(mocks.PreferencesRepository)
	u := usecase.NewPreferencesUsecase(mockRepo, time.Second*2)

	cases := []domain.Answer{
		{Kind: domain.AnswerKindMultiSelect},
		{Kind: domain.AnswerKindSingleSelect},
		{Kind: domain.AnswerKindScale},
		{Kind: "free_text", Selection: "whatever"},
	}
	for _, answer := range cases {
		err := u.Save(context.Background(), &domain.UserPreferences{
			UserEmail:            testUserEmail,
			SelectedGames:        []int64{1},
			QuestionnaireAnswers: domain.QuestionnaireAnswers{"q": answer},
		})

		assert.Error(t, err)
		assert.Equal(t, domain.ErrorKindValidation, domain.KindOf(err))
	}
	mockRepo.AssertNotCalled(t, "Upsert", mock.Anything, mock.Anything)
}

func TestPreferences_SaveUpsertsSnapshot(t *testing.T) {
	mockRepo := new(mocks.PreferencesRepository)
	mockRepo.On("Upsert", mock.Anything, mock.MatchedBy(func(prefs *domain.UserPreferences) bool {
		return prefs.UserEmail == testUserEmail
	})).Return(nil)

	u := usecase.NewPreferencesUsecase(mockRepo, time.Second*2)
	err := u.Save(context.Background(), &domain.UserPreferences{
		UserEmail:            testUserEmail,
		SelectedGames:        []int64{1, 2, 3},
		QuestionnaireAnswers: validAnswers(),
	})

	assert.NoError(t, err)
	mockRepo.AssertExpectations(t)
}

func TestPreferences_SaveAnswersOnly(t *testing.T) {
	mockRepo := new(mocks.PreferencesRepository)
	mockRepo.On("UpsertAnswers", mock.Anything, testUserEmail, mock.Anything).Return(nil)

	u := usecase.NewPreferencesUsecase(mockRepo, time.Second*2)
	err := u.SaveAnswers(context.Background(), testUserEmail, validAnswers())

	assert.NoError(t, err)
	mockRepo.AssertExpectations(t)
	mockRepo.AssertNotCalled(t, "Upsert", mock.Anything, mock.Anything)
}
