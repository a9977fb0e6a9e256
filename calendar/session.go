// Package calendar implements the interactive calendar session: month
// selection, the day-question overlay, answer submission and the derived
// stats that follow from it.
package calendar

import (
	"context"
	"errors"
	"math"
	"math/rand"
	"sync"
	"time"

	"github.com/google/uuid"

	"math-calendar-api/ai"
	"math-calendar-api/models"
	"math-calendar-api/progress"
	"math-calendar-api/utils"
)

var (
	ErrUnknownMonth     = errors.New("unknown month")
	ErrNoOpenDay        = errors.New("no day is open")
	ErrSubmissionClosed = errors.New("submission closed for this opening")
	ErrExplanationGated = errors.New("explanation needs reveal confirmation")
)

// Generator is the upstream text-generation capability. *ai.Provider
// satisfies it.
type Generator interface {
	Generate(ctx context.Context, prompt string) (string, error)
}

// opening is the overlay-local state of one day view, alive from OpenDay to
// CloseDay. The uuid ties async text results back to it.
type opening struct {
	id        uuid.UUID
	monthID   int
	day       int
	question  models.DayQuestion
	completed bool
	submitted bool
	revealed  bool
}

// Session owns all view state for one calendar run. All mutations happen
// synchronously from user actions; only text generation runs in the
// background, and its results are dropped unless the opening they were
// issued for is still current.
type Session struct {
	mu     sync.Mutex
	months []models.Month
	data   map[int][]models.DayQuestion
	store  *progress.Store
	eval   *progress.Evaluator
	gen    Generator

	now func() time.Time
	rng *rand.Rand

	currentMonth int
	open         *opening
}

// Option tweaks session construction, mostly for tests.
type Option func(*Session)

func WithClock(now func() time.Time) Option {
	return func(s *Session) { s.now = now }
}

func WithRand(rng *rand.Rand) Option {
	return func(s *Session) { s.rng = rng }
}

// NewSession starts an idle session on the current real-world month.
func NewSession(months []models.Month, data map[int][]models.DayQuestion, store *progress.Store, gen Generator, opts ...Option) *Session {
	s := &Session{
		months: months,
		data:   data,
		store:  store,
		eval:   progress.NewEvaluator(store),
		gen:    gen,
		now:    time.Now,
		rng:    rand.New(rand.NewSource(time.Now().UnixNano())),
	}
	for _, opt := range opts {
		opt(s)
	}
	s.currentMonth = int(s.now().Month())
	return s
}

// DayCell is one grid cell of a month view.
type DayCell struct {
	Day       int
	Topic     string
	Completed bool
	Today     bool
}

// MonthView is the rendered state of one month: header plus day grid.
type MonthView struct {
	Month models.Month
	Days  []DayCell
}

// DayView is the rendered state of an open day overlay. Choices are freshly
// shuffled on every open. For an already-completed day the correct answer is
// pre-marked and submission stays disabled.
type DayView struct {
	Month         models.Month
	Day           int
	Topic         string
	Question      string
	Choices       []string
	Completed     bool
	CorrectAnswer string // set only when Completed
}

// Outcome of an answer submission.
type Outcome int

const (
	OutcomeCorrect Outcome = iota
	OutcomeIncorrect
)

// SubmitResult reports one submission: the outcome, the correct answer
// (revealed on a miss), any achievements that unlocked, and fresh stats.
type SubmitResult struct {
	Outcome       Outcome
	CorrectAnswer string
	Unlocks       []models.AchievementUnlock
	Stats         models.Stats
}

// TextUpdate is an asynchronous gateway result delivered back to the view.
type TextUpdate struct {
	Kind ai.PromptKind
	Text string
}

func (s *Session) monthByID(id int) (models.Month, bool) {
	for _, m := range s.months {
		if m.ID == id {
			return m, true
		}
	}
	return models.Month{}, false
}

// CurrentMonth returns the selected month ID.
func (s *Session) CurrentMonth() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.currentMonth
}

// SelectMonth switches the view to monthID and renders its grid.
func (s *Session) SelectMonth(monthID int) (*MonthView, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	month, ok := s.monthByID(monthID)
	if !ok {
		return nil, ErrUnknownMonth
	}

	s.currentMonth = monthID
	utils.LogState("Selected month %d (%s)", monthID, month.Name)
	return s.renderMonthLocked(month), nil
}

// View renders the currently selected month without changing state.
func (s *Session) View() *MonthView {
	s.mu.Lock()
	defer s.mu.Unlock()

	month, ok := s.monthByID(s.currentMonth)
	if !ok {
		return &MonthView{}
	}
	return s.renderMonthLocked(month)
}

func (s *Session) renderMonthLocked(month models.Month) *MonthView {
	today := s.now()
	days := s.data[month.ID]

	view := &MonthView{Month: month, Days: make([]DayCell, 0, len(days))}
	for i, q := range days {
		day := i + 1
		view.Days = append(view.Days, DayCell{
			Day:       day,
			Topic:     q.Topic,
			Completed: s.store.Get(month.ID, day),
			Today:     int(today.Month()) == month.ID && today.Day() == day,
		})
	}
	return view
}

// OpenDay opens the question overlay for (monthID, day). A day with no
// question behind it is a silent no-op: grid arithmetic can produce cells
// past the end of a month's question list, and those must not change state.
func (s *Session) OpenDay(monthID, day int) (*DayView, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	month, ok := s.monthByID(monthID)
	if !ok {
		return nil, nil
	}
	days := s.data[monthID]
	if day < 1 || day > len(days) {
		return nil, nil
	}

	question := days[day-1]
	completed := s.store.Get(monthID, day)

	s.open = &opening{
		id:        uuid.New(),
		monthID:   monthID,
		day:       day,
		question:  question,
		completed: completed,
	}

	view := &DayView{
		Month:     month,
		Day:       day,
		Topic:     question.Topic,
		Question:  question.Question,
		Choices:   s.shuffleLocked(question.Choices),
		Completed: completed,
	}
	if completed {
		view.CorrectAnswer = question.Answer
	}

	utils.LogState("Opened day %d-%d (completed: %t, opening %s)", monthID, day, completed, s.open.id)
	return view, nil
}

// shuffleLocked returns a fresh pseudo-random permutation of choices. Every
// open reshuffles; no order is ever guaranteed.
func (s *Session) shuffleLocked(choices []string) []string {
	shuffled := make([]string, len(choices))
	copy(shuffled, choices)
	for i := len(shuffled) - 1; i > 0; i-- {
		j := s.rng.Intn(i + 1)
		shuffled[i], shuffled[j] = shuffled[j], shuffled[i]
	}
	return shuffled
}

// SubmitChoice evaluates an answer for the open day. Each opening accepts
// exactly one submission, and a day that was already completed accepts none.
// A correct answer persists completion and re-derives streak and
// achievements; a wrong one reveals the correct answer and mutates nothing.
func (s *Session) SubmitChoice(choice string) (*SubmitResult, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.open == nil {
		return nil, ErrNoOpenDay
	}
	if s.open.completed || s.open.submitted {
		return nil, ErrSubmissionClosed
	}

	s.open.submitted = true
	question := s.open.question

	if choice != question.Answer {
		utils.LogState("Wrong answer for %d-%d: %q (correct: %q)", s.open.monthID, s.open.day, choice, question.Answer)
		return &SubmitResult{
			Outcome:       OutcomeIncorrect,
			CorrectAnswer: question.Answer,
			Stats:         s.statsLocked(),
		}, nil
	}

	s.store.Set(s.open.monthID, s.open.day)
	s.open.completed = true
	unlocks := s.eval.Check(s.store.CompletedCount())

	utils.LogState("Correct answer for %d-%d (%d unlocks)", s.open.monthID, s.open.day, len(unlocks))
	return &SubmitResult{
		Outcome:       OutcomeCorrect,
		CorrectAnswer: question.Answer,
		Unlocks:       unlocks,
		Stats:         s.statsLocked(),
	}, nil
}

// CloseDay discards the overlay and returns to the idle month view.
func (s *Session) CloseDay() {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.open != nil {
		utils.LogState("Closed day %d-%d", s.open.monthID, s.open.day)
	}
	s.open = nil
}

// RevealExplanation confirms the "reveal anyway" gate for the current
// opening, allowing explanation requests until the overlay closes.
func (s *Session) RevealExplanation() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.open == nil {
		return ErrNoOpenDay
	}
	s.open.revealed = true
	return nil
}

// RequestText asks the gateway for hint, explanation or fun-fact text for
// the open day. The call runs in the background and never blocks the view.
// The result channel yields at most one update and is then closed; if the
// overlay was closed or reopened in the meantime the stale result is dropped
// and the channel closes empty. The first explanation request per opening
// must be preceded by RevealExplanation.
func (s *Session) RequestText(ctx context.Context, kind ai.PromptKind) (<-chan TextUpdate, error) {
	s.mu.Lock()
	if s.open == nil {
		s.mu.Unlock()
		return nil, ErrNoOpenDay
	}
	if kind == ai.KindExplanation && !s.open.revealed {
		s.mu.Unlock()
		return nil, ErrExplanationGated
	}

	id := s.open.id
	question := s.open.question
	month, _ := s.monthByID(s.open.monthID)
	s.mu.Unlock()

	prompt := ai.BuildPrompt(kind, question, month)
	out := make(chan TextUpdate, 1)

	go func() {
		defer close(out)

		text, err := s.gen.Generate(ctx, prompt)
		if err != nil {
			utils.LogError("Text request (%s) failed: %v", kind, err)
			text = fallbackText(kind)
		}

		s.mu.Lock()
		current := s.open != nil && s.open.id == id
		s.mu.Unlock()

		if !current {
			utils.LogState("Dropping stale %s result for opening %s", kind, id)
			return
		}
		out <- TextUpdate{Kind: kind, Text: text}
	}()

	return out, nil
}

func fallbackText(kind ai.PromptKind) string {
	switch kind {
	case ai.KindHint:
		return "Hint not available right now. Try again!"
	case ai.KindExplanation:
		return "Explanation not available right now. Try again!"
	case ai.KindFunFact:
		return "Fun fact not available right now. Try again!"
	default:
		return "Not available right now. Try again!"
	}
}

// Stats derives the current completion and streak numbers.
func (s *Session) Stats() models.Stats {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.statsLocked()
}

func (s *Session) statsLocked() models.Stats {
	completed := s.store.CompletedCount()
	total := 0
	for _, days := range s.data {
		total += len(days)
	}

	percent := 0
	if total > 0 {
		percent = int(math.Round(float64(completed) / float64(total) * 100))
	}

	return models.Stats{
		Completed: completed,
		Total:     total,
		Percent:   percent,
		Streak:    progress.ComputeStreak(s.store.Get, s.now()),
	}
}
