package progress

import "time"

// ComputeStreak counts consecutive completed calendar days walking backward
// from today, for at most a year. Days are matched by their (month,
// day-of-month) key. An incomplete day ends the walk, except today itself: a
// not-yet-done today neither counts nor breaks the streak, so yesterday's run
// survives until the day is actually missed.
func ComputeStreak(completed func(monthID, day int) bool, today time.Time) int {
	streak := 0
	for i := 0; i < 365; i++ {
		check := today.AddDate(0, 0, -i)
		if completed(int(check.Month()), check.Day()) {
			streak++
		} else if i > 0 {
			break
		}
	}
	return streak
}
