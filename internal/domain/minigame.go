package domain

import (
	"time"

	"github.com/google/uuid"
)

// MiniGameType identifies one of the free daily mini-games.
type MiniGameType string

const (
	GuessTheScore MiniGameType = "guessTheScore"
	ThrowBall     MiniGameType = "throwBall"
)

// MiniGameResult records one completed play. Append-only; applied to the
// profile immediately after the play.
type MiniGameResult struct {
	ID                    string       `json:"id"`
	Type                  MiniGameType `json:"type"`
	Success               bool         `json:"success"`
	RewardMultiplierDelta float64      `json:"rewardMultiplierDelta"`
	BonusPoints           int          `json:"bonusPoints"`
	CreatedAt             time.Time    `json:"createdAt"`
}

// NewMiniGameResult builds the result for a play, applying the per-game reward
// table. Failed plays still produce a (zero-reward) history entry.
func NewMiniGameResult(typ MiniGameType, success bool, now time.Time) MiniGameResult {
	r := MiniGameResult{
		ID:        uuid.New().String(),
		Type:      typ,
		Success:   success,
		CreatedAt: now,
	}
	if !success {
		return r
	}
	switch typ {
	case GuessTheScore:
		r.RewardMultiplierDelta = 0.05
		r.BonusPoints = 25
	case ThrowBall:
		r.RewardMultiplierDelta = 0.03
		r.BonusPoints = 20
	}
	return r
}
