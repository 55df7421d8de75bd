package player

// AwardBadge appends the badge and grants the badge XP bonus. Awarding a
// badge the record already holds is a no-op. The bonus is raw XP: the
// caller owns running the level-up check afterwards (GainXP and
// EvaluateLifetimeBadges both do).
func AwardBadge(r *Record, name string) bool {
	if name == "" || r.HasBadge(name) {
		return false
	}
	r.Badges = append(r.Badges, name)
	r.XP += BadgeBonusXP
	return true
}

// AwardSessionBadge awards a badge earned by a session-level feat (a
// perfect drill, a boss clear) and settles leveling over the bonus XP.
// Returns the badges this call produced, mastery cascades included.
func AwardSessionBadge(r *Record, name string) []string {
	if !AwardBadge(r, name) {
		return nil
	}
	earned := []string{name}
	return append(earned, runLevelLoop(r)...)
}

type badgeRule struct {
	Name   string
	Earned func(*Record) bool
}

// Lifetime milestones, checked after every completed session. Mastery
// badges for level milestones are handled by the level loop instead.
var lifetimeBadges = []badgeRule{
	{Name: "Week Warrior", Earned: func(r *Record) bool { return r.Streak >= 7 }},
	{Name: "Iron Streak", Earned: func(r *Record) bool { return r.Streak >= 30 }},
	{Name: "Dedicated Trainee", Earned: func(r *Record) bool { return r.TotalSessions >= 10 }},
	{Name: "Veteran", Earned: func(r *Record) bool { return r.TotalSessions >= 50 }},
}

// EvaluateLifetimeBadges awards any newly earned lifetime badges and runs
// the level-up loop over the bonus XP they grant. Returns the names of
// badges awarded by this call, including any mastery badges the bonus XP
// cascaded into.
func EvaluateLifetimeBadges(r *Record) []string {
	var earned []string
	for _, rule := range lifetimeBadges {
		if rule.Earned(r) && AwardBadge(r, rule.Name) {
			earned = append(earned, rule.Name)
		}
	}
	if len(earned) > 0 {
		earned = append(earned, runLevelLoop(r)...)
	}
	return earned
}
