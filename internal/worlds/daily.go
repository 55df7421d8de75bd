package worlds

import (
	"hash/fnv"
	"time"

	"neuroquest/internal/player"
)

// DailyIndex deterministically picks an index in [0,n) from the calendar
// day, so every player sees the same daily challenge. Selection is seeded
// from the ISO date string only.
func DailyIndex(day string, n int) int {
	if n <= 0 {
		return 0
	}
	h := fnv.New32a()
	_, _ = h.Write([]byte(day))
	return int(h.Sum32() % uint32(n))
}

// DailyWorld picks the world featured by the daily challenge.
func DailyWorld(day string) World {
	return All[DailyIndex(day, len(All))]
}

// Today formats now as the day key used across the app.
func Today(now time.Time) string {
	return now.Format(player.DateLayout)
}
