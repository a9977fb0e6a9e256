package progress

import "math-calendar-api/models"

// Thresholds are the fixed achievement milestones, in ascending order.
var Thresholds = []int{10, 25, 50, 100, 200, 365}

// Evaluator derives achievement unlocks from the completed count. Unlock
// flags persist through the store, so each threshold fires at most once
// across the device's full history even when the count is re-evaluated
// many times above it.
type Evaluator struct {
	store *Store
}

func NewEvaluator(store *Store) *Evaluator {
	return &Evaluator{store: store}
}

// Check compares completedCount against every threshold and returns the
// newly crossed ones, persisting their flags as it goes. Thresholds skipped
// over by a batch of completions still unlock.
func (e *Evaluator) Check(completedCount int) []models.AchievementUnlock {
	var unlocks []models.AchievementUnlock
	for _, threshold := range Thresholds {
		if completedCount >= threshold && !e.store.BadgeUnlocked(threshold) {
			e.store.UnlockBadge(threshold)
			unlocks = append(unlocks, models.AchievementUnlock{Threshold: threshold})
		}
	}
	return unlocks
}
