package domain

// UserProfile is the single per-session balance aggregate: points, multiplier
// state and the append-only bet/mini-game histories.
type UserProfile struct {
	DisplayName            string           `json:"displayName"`
	TotalPoints            int              `json:"totalPoints"`
	BaseMultiplier         float64          `json:"baseMultiplier"`
	CurrentMultiplierBonus float64          `json:"currentMultiplierBonus"`
	BetsHistory            []Bet            `json:"betsHistory"`
	MiniGameHistory        []MiniGameResult `json:"miniGameHistory"`
	Missions               []Mission        `json:"missions"`
}

// EffectiveMultiplier is applied to bet payouts at placement time.
func (p UserProfile) EffectiveMultiplier() float64 {
	return p.BaseMultiplier + p.CurrentMultiplierBonus
}

// DefaultProfile is the guest profile seeded on first run or after a corrupt
// snapshot.
func DefaultProfile() UserProfile {
	return UserProfile{
		DisplayName:    "Guest",
		TotalPoints:    1000,
		BaseMultiplier: 1.0,
		Missions:       DefaultMissions(),
	}
}

// DailyCounters tracks per-type mini-game plays for a single calendar day.
// A date mismatch means the counters are stale and read as zero.
type DailyCounters struct {
	Date   string         `json:"date"`
	Counts map[string]int `json:"counts"`
}
