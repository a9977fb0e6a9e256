package calendar

import (
	"context"
	"errors"
	"fmt"
	"math/rand"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"math-calendar-api/ai"
	"math-calendar-api/models"
	"math-calendar-api/progress"
)

type stubGenerator struct {
	mu      sync.Mutex
	text    string
	err     error
	block   chan struct{}
	prompts []string
}

func (g *stubGenerator) Generate(ctx context.Context, prompt string) (string, error) {
	if g.block != nil {
		<-g.block
	}
	g.mu.Lock()
	g.prompts = append(g.prompts, prompt)
	g.mu.Unlock()
	return g.text, g.err
}

var (
	testMonths = []models.Month{
		{ID: 1, Name: "January", Mathematician: "Srinivasa Ramanujan", Theme: "Number Properties"},
		{ID: 2, Name: "February", Mathematician: "C.R. Rao", Theme: "Expressions with 2s"},
	}
	testData = map[int][]models.DayQuestion{
		1: {
			{Topic: "Arithmetic", Question: "What is 2+3?", Choices: []string{"3", "5", "7"}, Answer: "5"},
			{Topic: "Arithmetic", Question: "What is 4+4?", Choices: []string{"6", "8", "10"}, Answer: "8"},
		},
		2: {
			{Topic: "Doubling", Question: "What is 2x2?", Choices: []string{"2", "4", "8"}, Answer: "4"},
		},
	}
)

func fixedClock(year int, month time.Month, day int) func() time.Time {
	return func() time.Time {
		return time.Date(year, month, day, 12, 0, 0, 0, time.UTC)
	}
}

func newTestSession(t *testing.T, gen Generator) (*Session, *progress.Store) {
	t.Helper()
	store, err := progress.Open(t.TempDir())
	require.NoError(t, err)
	if gen == nil {
		gen = &stubGenerator{text: "generated text"}
	}
	session := NewSession(testMonths, testData, store, gen,
		WithClock(fixedClock(2025, time.January, 1)),
		WithRand(rand.New(rand.NewSource(1))))
	return session, store
}

func TestNewSessionStartsOnCurrentMonth(t *testing.T) {
	session, _ := newTestSession(t, nil)
	assert.Equal(t, 1, session.CurrentMonth())
}

func TestSelectMonth(t *testing.T) {
	session, _ := newTestSession(t, nil)

	view, err := session.SelectMonth(2)
	require.NoError(t, err)
	assert.Equal(t, "February", view.Month.Name)
	assert.Len(t, view.Days, 1)
	assert.Equal(t, 2, session.CurrentMonth())

	_, err = session.SelectMonth(13)
	assert.ErrorIs(t, err, ErrUnknownMonth)
	assert.Equal(t, 2, session.CurrentMonth())
}

func TestMonthViewMarksTodayAndCompletion(t *testing.T) {
	session, store := newTestSession(t, nil)
	store.Set(1, 2)

	view, err := session.SelectMonth(1)
	require.NoError(t, err)
	require.Len(t, view.Days, 2)

	assert.True(t, view.Days[0].Today)
	assert.False(t, view.Days[0].Completed)
	assert.False(t, view.Days[1].Today)
	assert.True(t, view.Days[1].Completed)
}

func TestOpenDayOutOfRangeIsSilentNoOp(t *testing.T) {
	session, _ := newTestSession(t, nil)

	view, err := session.OpenDay(1, 3)
	assert.NoError(t, err)
	assert.Nil(t, view)

	view, err = session.OpenDay(1, 0)
	assert.NoError(t, err)
	assert.Nil(t, view)

	view, err = session.OpenDay(99, 1)
	assert.NoError(t, err)
	assert.Nil(t, view)

	// Nothing opened, so nothing to submit to.
	_, err = session.SubmitChoice("5")
	assert.ErrorIs(t, err, ErrNoOpenDay)
}

func TestOpenDayShufflesChoices(t *testing.T) {
	session, _ := newTestSession(t, nil)

	orders := make(map[string]int)
	for i := 0; i < 50; i++ {
		view, err := session.OpenDay(1, 1)
		require.NoError(t, err)
		require.NotNil(t, view)
		assert.ElementsMatch(t, []string{"3", "5", "7"}, view.Choices)
		orders[fmt.Sprint(view.Choices)]++
	}

	// A fresh shuffle on every open: more than one ordering shows up.
	assert.Greater(t, len(orders), 1)
}

func TestSubmitCorrectChoice(t *testing.T) {
	session, store := newTestSession(t, nil)

	_, err := session.OpenDay(1, 1)
	require.NoError(t, err)

	result, err := session.SubmitChoice("5")
	require.NoError(t, err)
	assert.Equal(t, OutcomeCorrect, result.Outcome)
	assert.True(t, store.Get(1, 1))
	assert.Equal(t, 1, result.Stats.Completed)
	assert.Equal(t, 3, result.Stats.Total)
	assert.Equal(t, 33, result.Stats.Percent)
	assert.Equal(t, 1, result.Stats.Streak)

	// One submission per opening.
	_, err = session.SubmitChoice("5")
	assert.ErrorIs(t, err, ErrSubmissionClosed)
}

func TestSubmitWrongChoiceRevealsAnswerWithoutMutation(t *testing.T) {
	session, store := newTestSession(t, nil)

	_, err := session.OpenDay(1, 1)
	require.NoError(t, err)

	result, err := session.SubmitChoice("3")
	require.NoError(t, err)
	assert.Equal(t, OutcomeIncorrect, result.Outcome)
	assert.Equal(t, "5", result.CorrectAnswer)
	assert.False(t, store.Get(1, 1))
	assert.Empty(t, result.Unlocks)

	// The wrong answer locks this opening too.
	_, err = session.SubmitChoice("5")
	assert.ErrorIs(t, err, ErrSubmissionClosed)

	// A fresh opening accepts the correct answer.
	_, err = session.OpenDay(1, 1)
	require.NoError(t, err)
	result, err = session.SubmitChoice("5")
	require.NoError(t, err)
	assert.Equal(t, OutcomeCorrect, result.Outcome)
	assert.True(t, store.Get(1, 1))
}

func TestCompletedDayRendersAnswerAndRejectsSubmission(t *testing.T) {
	session, store := newTestSession(t, nil)
	store.Set(1, 1)

	view, err := session.OpenDay(1, 1)
	require.NoError(t, err)
	assert.True(t, view.Completed)
	assert.Equal(t, "5", view.CorrectAnswer)

	_, err = session.SubmitChoice("3")
	assert.ErrorIs(t, err, ErrSubmissionClosed)
	assert.True(t, store.Get(1, 1))
}

func TestSubmitTriggersAchievementUnlock(t *testing.T) {
	session, store := newTestSession(t, nil)

	// Nine days already done elsewhere in the year.
	for day := 1; day <= 9; day++ {
		store.Set(6, day)
	}

	_, err := session.OpenDay(1, 1)
	require.NoError(t, err)
	result, err := session.SubmitChoice("5")
	require.NoError(t, err)

	require.Len(t, result.Unlocks, 1)
	assert.Equal(t, 10, result.Unlocks[0].Threshold)

	// The tenth-problem badge never fires again.
	_, err = session.OpenDay(1, 2)
	require.NoError(t, err)
	result, err = session.SubmitChoice("8")
	require.NoError(t, err)
	assert.Empty(t, result.Unlocks)
}

func TestRequestTextDeliversForCurrentOpening(t *testing.T) {
	gen := &stubGenerator{text: "a friendly hint"}
	session, _ := newTestSession(t, gen)

	_, err := session.OpenDay(1, 1)
	require.NoError(t, err)

	updates, err := session.RequestText(context.Background(), ai.KindHint)
	require.NoError(t, err)

	update, ok := <-updates
	require.True(t, ok)
	assert.Equal(t, ai.KindHint, update.Kind)
	assert.Equal(t, "a friendly hint", update.Text)

	gen.mu.Lock()
	defer gen.mu.Unlock()
	require.Len(t, gen.prompts, 1)
	assert.Contains(t, gen.prompts[0], "What is 2+3?")
}

func TestRequestTextWithoutOpenDay(t *testing.T) {
	session, _ := newTestSession(t, nil)

	_, err := session.RequestText(context.Background(), ai.KindHint)
	assert.ErrorIs(t, err, ErrNoOpenDay)
}

func TestRequestTextFailureFallsBack(t *testing.T) {
	gen := &stubGenerator{err: errors.New("upstream down")}
	session, _ := newTestSession(t, gen)

	_, err := session.OpenDay(1, 1)
	require.NoError(t, err)

	updates, err := session.RequestText(context.Background(), ai.KindHint)
	require.NoError(t, err)

	update, ok := <-updates
	require.True(t, ok)
	assert.Equal(t, "Hint not available right now. Try again!", update.Text)
}

func TestExplanationGatePerOpening(t *testing.T) {
	session, _ := newTestSession(t, nil)

	_, err := session.OpenDay(1, 1)
	require.NoError(t, err)

	_, err = session.RequestText(context.Background(), ai.KindExplanation)
	assert.ErrorIs(t, err, ErrExplanationGated)

	require.NoError(t, session.RevealExplanation())

	updates, err := session.RequestText(context.Background(), ai.KindExplanation)
	require.NoError(t, err)
	_, ok := <-updates
	assert.True(t, ok)

	// Subsequent requests in the same opening skip the gate.
	_, err = session.RequestText(context.Background(), ai.KindExplanation)
	assert.NoError(t, err)

	// A fresh opening gates again.
	session.CloseDay()
	_, err = session.OpenDay(1, 1)
	require.NoError(t, err)
	_, err = session.RequestText(context.Background(), ai.KindExplanation)
	assert.ErrorIs(t, err, ErrExplanationGated)
}

func TestStaleTextResultIsDropped(t *testing.T) {
	gen := &stubGenerator{text: "too late", block: make(chan struct{})}
	session, _ := newTestSession(t, gen)

	_, err := session.OpenDay(1, 1)
	require.NoError(t, err)

	updates, err := session.RequestText(context.Background(), ai.KindHint)
	require.NoError(t, err)

	// The overlay closes while the request is still in flight.
	session.CloseDay()
	close(gen.block)

	_, ok := <-updates
	assert.False(t, ok)
}

func TestStaleResultAfterReopenIsDropped(t *testing.T) {
	gen := &stubGenerator{text: "for the old opening", block: make(chan struct{})}
	session, _ := newTestSession(t, gen)

	_, err := session.OpenDay(1, 1)
	require.NoError(t, err)

	updates, err := session.RequestText(context.Background(), ai.KindHint)
	require.NoError(t, err)

	// Same day reopened: a new opening ID, so the old result is stale.
	_, err = session.OpenDay(1, 1)
	require.NoError(t, err)
	close(gen.block)

	_, ok := <-updates
	assert.False(t, ok)
}

func TestStatsPercentRounding(t *testing.T) {
	session, store := newTestSession(t, nil)

	store.Set(1, 1)
	store.Set(1, 2)

	stats := session.Stats()
	assert.Equal(t, 2, stats.Completed)
	assert.Equal(t, 3, stats.Total)
	assert.Equal(t, 67, stats.Percent)
}
