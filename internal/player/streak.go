package player

import "time"

// DateLayout is the calendar-day format used for LastPlay and for all
// day-keyed storage.
const DateLayout = "2006-01-02"

// UpdateStreak advances the daily streak for a session happening on the
// given day. The first call of a calendar day counts a session and moves
// LastPlay forward; repeat calls on the same day are no-ops, so the update
// is idempotent per day.
//
// A LastPlay exactly one day before today extends the streak; anything
// else (longer gap, empty, or an unparseable date left by a corrupt save)
// resets it to 1. Reported via the return value so callers can surface a
// "streak extended" message.
func UpdateStreak(r *Record, now time.Time) bool {
	today := now.Format(DateLayout)
	if r.LastPlay == today {
		return false
	}

	yesterday := now.AddDate(0, 0, -1).Format(DateLayout)
	if r.LastPlay == yesterday {
		r.Streak++
	} else {
		r.Streak = 1
	}

	r.LastPlay = today
	r.TotalSessions++
	return true
}
