package domain

import "github.com/google/uuid"

// MissionType is the stable tag used to route progress increments. Progress
// used to be matched on display titles; a tag survives copy changes.
type MissionType string

const (
	MissionPlaceBets   MissionType = "place_bets"
	MissionWinMiniGame MissionType = "win_minigame"
)

// Mission is a daily engagement goal. Progress is monotonically non-decreasing
// within a reset epoch; Claimed flips true at most once per epoch.
type Mission struct {
	ID               string      `json:"id"`
	Type             MissionType `json:"type"`
	Title            string      `json:"title"`
	Description      string      `json:"description"`
	GoalCount        int         `json:"goalCount"`
	ProgressCount    int         `json:"progressCount"`
	RewardPoints     int         `json:"rewardPoints"`
	RewardMultiplier float64     `json:"rewardMultiplier"`
	Claimed          bool        `json:"claimed"`
}

// IsCompleted reports whether the goal has been reached.
func (m Mission) IsCompleted() bool {
	return m.ProgressCount >= m.GoalCount
}

// DefaultMissions is the mission set seeded into a fresh profile.
func DefaultMissions() []Mission {
	return []Mission{
		{
			ID:               uuid.New().String(),
			Type:             MissionPlaceBets,
			Title:            "Place 3 bets",
			Description:      "Any outcomes",
			GoalCount:        3,
			RewardPoints:     50,
			RewardMultiplier: 0.1,
		},
		{
			ID:               uuid.New().String(),
			Type:             MissionWinMiniGame,
			Title:            "Win a mini-game",
			Description:      "Any",
			GoalCount:        1,
			RewardPoints:     20,
			RewardMultiplier: 0.05,
		},
	}
}
