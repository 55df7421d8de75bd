package app

import (
	"context"
	"errors"
	"fmt"
	"time"

	"neuroquest/internal/player"
	"neuroquest/internal/state"
	"neuroquest/internal/worlds"
)

// Session is the explicit per-run state threaded through every call: the
// record it owns, the session identity, and the human-readable event
// messages accumulated for the presentation layer. There are no ambient
// globals; the session owns the record exclusively until it ends.
type Session struct {
	ID            string
	Record        *player.Record
	Started       time.Time
	StreakCounted bool
	Messages      []string

	saveFailed bool
}

func (s *Session) say(format string, args ...any) {
	s.Messages = append(s.Messages, fmt.Sprintf(format, args...))
}

// CompletionResult reports everything one finished exercise changed.
type CompletionResult struct {
	XP         player.XPResult
	NewBadges  []string
	Unlocked   bool
	NewTier    int
	BossDue    bool
	SaveFailed bool
	Messages   []string
}

// StartSession loads the player record (creating a default one on first
// run), applies the daily streak update, and persists the result. A save
// failure is logged and surfaced but never fatal: the in-memory record
// stays authoritative for the rest of the session.
func (a *App) StartSession(ctx context.Context, now time.Time) (*Session, error) {
	rec, err := a.records.Load(ctx, a.cfg.PlayerName)
	switch {
	case errors.Is(err, state.ErrNotFound):
		rec = player.NewRecord(a.cfg.PlayerName)
		a.log.Info("new player record", "player", rec.Name)
	case err != nil:
		return nil, err
	}

	s := &Session{
		ID:      a.sessionID,
		Record:  rec,
		Started: now,
	}
	s.StreakCounted = player.UpdateStreak(rec, now)
	if s.StreakCounted {
		s.say("Day %d of your streak.", rec.Streak)
	}
	a.saveRecord(ctx, s)
	a.session = s
	return s, nil
}

// CompleteExercise folds a finished session's raw score and normalized
// percent into the record: XP with streak bonus, high score, unlock tier,
// badges, history row, and daily challenge completion.
func (a *App) CompleteExercise(ctx context.Context, w worlds.World, rawScore, percent int, now time.Time) CompletionResult {
	s := a.session
	res := CompletionResult{}

	res.XP = player.GainXP(s.Record, rawScore, int(w))
	res.NewBadges = append(res.NewBadges, res.XP.NewBadges...)
	s.say("%s", res.XP.Message())

	if w == worlds.Memory && percent >= 100 {
		res.NewBadges = append(res.NewBadges, player.AwardSessionBadge(s.Record, "Perfect Recall")...)
	}

	if worlds.ApplyUnlock(s.Record, w, percent) {
		res.Unlocked = true
		res.NewTier = s.Record.WorldUnlocks[w]
		s.say("%s advanced to tier %d!", w.Title(), res.NewTier)
		if worlds.BossDue(res.NewTier) {
			res.BossDue = true
			s.say("A boss challenge awaits.")
		}
	}

	res.NewBadges = append(res.NewBadges, player.EvaluateLifetimeBadges(s.Record)...)
	for _, b := range res.NewBadges {
		s.say("Badge earned: %s", b)
	}

	a.recordHistory(ctx, s, w.String(), rawScore, percent, res.XP.Awarded, false, now)
	a.completeDailyIfMatching(ctx, w, now)
	a.saveRecord(ctx, s)

	res.SaveFailed = s.saveFailed
	res.Messages = s.Messages
	return res
}

// CompleteMeta credits a meta-cognition reflection session. Reflections
// have no home world: XP and badges move, high scores and unlock tiers
// do not.
func (a *App) CompleteMeta(ctx context.Context, total, percent int, now time.Time) CompletionResult {
	s := a.session
	res := CompletionResult{}

	res.XP = player.GainXP(s.Record, total, player.NoWorld)
	res.NewBadges = append(res.NewBadges, res.XP.NewBadges...)
	s.say("%s", res.XP.Message())

	res.NewBadges = append(res.NewBadges, player.EvaluateLifetimeBadges(s.Record)...)
	for _, b := range res.NewBadges {
		s.say("Badge earned: %s", b)
	}

	a.recordHistory(ctx, s, "meta", total, percent, res.XP.Awarded, false, now)
	a.saveRecord(ctx, s)

	res.SaveFailed = s.saveFailed
	res.Messages = s.Messages
	return res
}

// CompleteBoss credits a composite boss round. Boss scores have no home
// world, so no high score or unlock tier moves.
func (a *App) CompleteBoss(ctx context.Context, total int, now time.Time) CompletionResult {
	s := a.session
	res := CompletionResult{}

	res.XP = player.GainXP(s.Record, total, player.NoWorld)
	res.NewBadges = append(res.NewBadges, res.XP.NewBadges...)
	s.say("Boss defeated! %s", res.XP.Message())

	res.NewBadges = append(res.NewBadges, player.AwardSessionBadge(s.Record, "Boss Slayer")...)
	res.NewBadges = append(res.NewBadges, player.EvaluateLifetimeBadges(s.Record)...)
	for _, b := range res.NewBadges {
		s.say("Badge earned: %s", b)
	}

	a.recordHistory(ctx, s, "boss", total, 0, res.XP.Awarded, true, now)
	a.saveRecord(ctx, s)

	res.SaveFailed = s.saveFailed
	res.Messages = s.Messages
	return res
}

// Daily returns today's challenge, creating the pending row on first
// sight of the day. Selection is deterministic for the calendar date.
func (a *App) Daily(ctx context.Context, now time.Time) (state.DailyChallenge, error) {
	day := worlds.Today(now)
	if existing, err := a.history.GetDailyChallenge(ctx, day); err != nil {
		return state.DailyChallenge{}, err
	} else if existing != nil {
		return *existing, nil
	}

	w := worlds.DailyWorld(day)
	challenge := state.DailyChallenge{
		Day:       day,
		World:     w.String(),
		Reference: a.dailyReference(day, w),
	}
	if err := a.history.UpsertDailyChallenge(ctx, challenge); err != nil {
		return state.DailyChallenge{}, err
	}
	return challenge, nil
}

func (a *App) dailyReference(day string, w worlds.World) string {
	switch w {
	case worlds.Memory:
		return "Dual N-back drill"
	case worlds.Perspective:
		return a.pack.Scenarios[worlds.DailyIndex(day, len(a.pack.Scenarios))]
	case worlds.Logic:
		return a.pack.Riddles[worlds.DailyIndex(day, len(a.pack.Riddles))].ID
	case worlds.Prompt:
		return a.pack.PromptTargets[worlds.DailyIndex(day, len(a.pack.PromptTargets))]
	default:
		return ""
	}
}

func (a *App) completeDailyIfMatching(ctx context.Context, w worlds.World, now time.Time) {
	day := worlds.Today(now)
	if worlds.DailyWorld(day) != w {
		return
	}
	challenge := state.DailyChallenge{
		Day:       day,
		World:     w.String(),
		Reference: a.dailyReference(day, w),
		Completed: true,
	}
	if err := a.history.UpsertDailyChallenge(ctx, challenge); err != nil {
		a.log.Warn("daily challenge update failed", "err", err)
	}
}

func (a *App) recordHistory(ctx context.Context, s *Session, world string, raw, percent, xp int, boss bool, now time.Time) {
	err := a.history.RecordSession(ctx, state.SessionRun{
		SessionID: s.ID,
		World:     world,
		RawScore:  raw,
		Percent:   percent,
		XPAwarded: xp,
		Boss:      boss,
		PlayedTS:  now,
	})
	if err != nil {
		a.log.Warn("session history write failed", "world", world, "err", err)
	}
}

// saveRecord persists the record, downgrading failure to a warning; the
// session keeps running on the in-memory record.
func (a *App) saveRecord(ctx context.Context, s *Session) {
	if err := a.records.Save(ctx, a.cfg.PlayerName, s.Record); err != nil {
		s.saveFailed = true
		s.say("Warning: progress could not be saved (%v).", err)
		a.log.Warn("record save failed", "player", a.cfg.PlayerName, "err", err)
		return
	}
	s.saveFailed = false
}
