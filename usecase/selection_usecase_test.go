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

const testUserEmail = "player@example.com"

func scale(v float64) *float64 { return &v }

func validAnswers() domain.QuestionnaireAnswers {
	return domain.QuestionnaireAnswers{
		"genres":     {Kind: domain.AnswerKindMultiSelect, Selections: []string{"RPG", "Strategy"}},
		"difficulty": {Kind: domain.AnswerKindSingleSelect, Selection: "Hard"},
		"story":      {Kind: domain.AnswerKindScale, Scale: scale(8)},
	}
}

func TestSelection_ToggleAddsAndRemoves(t *testing.T) {
	u := usecase.NewSelectionUsecase(new(mocks.PreferencesRepository), time.Second*2)

	assert.Equal(t, 1, u.Toggle(testUserEmail, 42, true))
	assert.Equal(t, 2, u.Toggle(testUserEmail, 7, true))
	assert.Equal(t, []int64{7, 42}, u.Selected(testUserEmail))

	assert.Equal(t, 1, u.Toggle(testUserEmail, 42, false))
	assert.Equal(t, []int64{7}, u.Selected(testUserEmail))
}

func TestSelection_ToggleIsIdempotentPerState(t *testing.T) {
	u := usecase.NewSelectionUsecase(new(mocks.PreferencesRepository), time.Second*2)

	u.Toggle(testUserEmail, 42, true)
	u.Toggle(testUserEmail, 42, true)
	assert.Equal(t, []int64{42}, u.Selected(testUserEmail))

	u.Toggle(testUserEmail, 99, false)
	assert.Equal(t, []int64{42}, u.Selected(testUserEmail))
}

func TestSelection_SetsAreScopedPerUser(t *testing.T) {
	u := usecase.NewSelectionUsecase(new(mocks.PreferencesRepository), time.Second*2)

	u.Toggle("a@example.com", 1, true)
	u.Toggle("b@example.com", 2, true)

	assert.Equal(t, []int64{1}, u.Selected("a@example.com"))
	assert.Equal(t, []int64{2}, u.Selected("b@example.com"))
}

func TestSelection_FinishWithEmptySelectionPerformsNoStorageCall(t *testing.T) {
	mockRepo := new(mocks.PreferencesRepository)
	u := usecase.NewSelectionUsecase(mockRepo, time.Second*2)

	err := u.Finish(context.Background(), testUserEmail, validAnswers())

	assert.Error(t, err)
	assert.Equal(t, domain.ErrorKindValidation, domain.KindOf(err))
	mockRepo.AssertNotCalled(t, "Upsert", mock.Anything, mock.Anything)
}

func TestSelection_FinishFlushesFullSnapshot(t *testing.T) {
	mockRepo := new(mocks.PreferencesRepository)
	mockRepo.On("Upsert", mock.Anything, mock.MatchedBy(func(prefs *domain.UserPreferences) bool {
		return prefs.UserEmail == testUserEmail &&
			assert.ObjectsAreEqual([]int64{3, 8, 21}, prefs.SelectedGames)
	})).Return(nil)

	u := usecase.NewSelectionUsecase(mockRepo, time.Second*2)
	u.Toggle(testUserEmail, 21, true)
	u.Toggle(testUserEmail, 3, true)
	u.Toggle(testUserEmail, 8, true)

	err := u.Finish(context.Background(), testUserEmail, validAnswers())

	assert.NoError(t, err)
	mockRepo.AssertExpectations(t)
}

func TestSelection_FinishRejectsInvalidAnswers(t *testing.T) {
	mockRepo := new(mocks.PreferencesRepository)
	u := usecase.NewSelectionUsecase(mockRepo, time.Second*2)
	u.Toggle(testUserEmail, 1, true)

	answers := domain.QuestionnaireAnswers{
		"genres": {Kind: domain.AnswerKindMultiSelect},
	}
	err := u.Finish(context.Background(), testUserEmail, answers)

	assert.Error(t, err)
	assert.Equal(t, domain.ErrorKindValidation, domain.KindOf(err))
	mockRepo.AssertNotCalled(t, "Upsert", mock.Anything, mock.Anything)
}
