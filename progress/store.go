// Package progress persists per-device completion state and derives streaks
// and achievement unlocks from it.
package progress

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"math-calendar-api/utils"
)

const (
	progressFile = "progress.json"
	badgesFile   = "badges.json"
)

// Store is the durable per-device key/value state: one mapping of
// "{monthId}-{dayNumber}" -> true for completed days, and one mapping of
// "badge-{threshold}" -> true for unlocked achievements. Both are written
// back immediately on every mutation. Writes are best-effort; a failed write
// is logged and swallowed. The store has a single owner and is mutated only
// from synchronous user actions.
type Store struct {
	dir       string
	completed map[string]bool
	badges    map[string]bool
}

// Open loads persisted state from dir, creating it if needed. Absent or
// corrupt files degrade to empty state, never to an error.
func Open(dir string) (*Store, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("create state dir: %w", err)
	}

	s := &Store{
		dir:       dir,
		completed: loadFlags(filepath.Join(dir, progressFile)),
		badges:    loadFlags(filepath.Join(dir, badgesFile)),
	}

	utils.LogState("Loaded progress: %d completed days, %d badges", len(s.completed), len(s.badges))
	return s, nil
}

func loadFlags(path string) map[string]bool {
	flags := make(map[string]bool)

	data, err := os.ReadFile(path)
	if err != nil {
		if !os.IsNotExist(err) {
			utils.LogError("Failed to read %s: %v", path, err)
		}
		return flags
	}

	if err := json.Unmarshal(data, &flags); err != nil {
		// Corrupt state degrades to no progress, never to a failure.
		utils.LogError("Corrupt state file %s, starting empty: %v", path, err)
		return make(map[string]bool)
	}

	return flags
}

// Key builds the composite day key used in the persisted mapping.
func Key(monthID, day int) string {
	return fmt.Sprintf("%d-%d", monthID, day)
}

func (s *Store) Get(monthID, day int) bool {
	return s.completed[Key(monthID, day)]
}

// Set marks a day completed. Completion is monotonic: there is no way to set
// a day back to incomplete. Setting an already-completed day is a no-op.
func (s *Store) Set(monthID, day int) {
	key := Key(monthID, day)
	if s.completed[key] {
		return
	}
	s.completed[key] = true
	s.save(filepath.Join(s.dir, progressFile), s.completed)
	utils.LogState("Marked %s completed (%d total)", key, len(s.completed))
}

func (s *Store) CompletedCount() int {
	count := 0
	for _, done := range s.completed {
		if done {
			count++
		}
	}
	return count
}

// Snapshot returns a copy of the completed-day mapping.
func (s *Store) Snapshot() map[string]bool {
	out := make(map[string]bool, len(s.completed))
	for k, v := range s.completed {
		out[k] = v
	}
	return out
}

func (s *Store) BadgeUnlocked(threshold int) bool {
	return s.badges[fmt.Sprintf("badge-%d", threshold)]
}

func (s *Store) UnlockBadge(threshold int) {
	key := fmt.Sprintf("badge-%d", threshold)
	if s.badges[key] {
		return
	}
	s.badges[key] = true
	s.save(filepath.Join(s.dir, badgesFile), s.badges)
	utils.LogState("Badge unlocked: %s", key)
}

func (s *Store) save(path string, flags map[string]bool) {
	data, err := json.Marshal(flags)
	if err != nil {
		utils.LogError("Failed to marshal state for %s: %v", path, err)
		return
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		utils.LogError("Failed to write %s: %v", path, err)
	}
}
