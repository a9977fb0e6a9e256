package models

// Stats represents derived progress statistics. Never persisted, recomputed
// on demand from the progress store and the loaded dataset.
type Stats struct {
	Completed int `json:"completed"`
	Total     int `json:"total"`
	Percent   int `json:"percent"`
	Streak    int `json:"streak"`
}

// AchievementUnlock is emitted at most once per threshold when the completed
// count first reaches it.
type AchievementUnlock struct {
	Threshold int `json:"threshold"`
}
