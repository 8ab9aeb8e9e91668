package usecase

import (
	"context"
	"sort"
	"sync"
	"time"

	"github.com/playscout/game-recommender/domain"
)

type selectionUsecase struct {
	mu             sync.Mutex
	selections     map[string]map[int64]bool
	preferences    domain.PreferencesRepository
	contextTimeout time.Duration
}

func NewSelectionUsecase(preferences domain.PreferencesRepository, timeout time.Duration) domain.SelectionUsecase {
	return &selectionUsecase{
		selections:     make(map[string]map[int64]bool),
		preferences:    preferences,
		contextTimeout: timeout,
	}
}

// Toggle flips one game in the user's session-local set and returns the
// resulting selection size. No storage call happens here.
func (su *selectionUsecase) Toggle(userEmail string, gameID int64, selected bool) int {
	su.mu.Lock()
	defer su.mu.Unlock()

	set, ok := su.selections[userEmail]
	if !ok {
		set = make(map[int64]bool)
		su.selections[userEmail] = set
	}

	if selected {
		set[gameID] = true
	} else {
		delete(set, gameID)
	}
	return len(set)
}

func (su *selectionUsecase) Selected(userEmail string) []int64 {
	su.mu.Lock()
	defer su.mu.Unlock()
	return su.snapshot(userEmail)
}

// snapshot returns the user's selection as a sorted id list. Callers
// must hold su.mu.
func (su *selectionUsecase) snapshot(userEmail string) []int64 {
	set := su.selections[userEmail]
	ids := make([]int64, 0, len(set))
	for id := range set {
		ids = append(ids, id)
	}
	sort.Slice(ids, func(i, j int) bool { return ids[i] < ids[j] })
	return ids
}

// Finish flushes the full selection snapshot plus the questionnaire
// answers as one upsert keyed by user email. An empty selection is a
// validation failure and performs no storage call.
func (su *selectionUsecase) Finish(c context.Context, userEmail string, answers domain.QuestionnaireAnswers) error {
	su.mu.Lock()
	ids := su.snapshot(userEmail)
	su.mu.Unlock()

	if len(ids) == 0 {
		return domain.NewValidationError("select at least one game before finishing")
	}
	if err := answers.Validate(); err != nil {
		return err
	}

	ctx, cancel := context.WithTimeout(c, su.contextTimeout)
	defer cancel()

	return su.preferences.Upsert(ctx, &domain.UserPreferences{
		UserEmail:            userEmail,
		SelectedGames:        ids,
		QuestionnaireAnswers: answers,
	})
}
