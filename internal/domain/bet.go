package domain

import (
	"time"

	"github.com/google/uuid"
)

// BetStatus represents the lifecycle of a bet. The only transition is
// placed → won|lost, performed exactly once by settlement.
type BetStatus string

const (
	BetPlaced BetStatus = "placed"
	BetWon    BetStatus = "won"
	BetLost   BetStatus = "lost"
)

// Bet is a wager on a single event at fixed odds. Multiplier is the user's
// effective multiplier snapshotted at placement time and never updated.
type Bet struct {
	ID         string    `json:"id"`
	EventID    string    `json:"eventId"`
	Outcome    Outcome   `json:"outcome"`
	Stake      float64   `json:"stake"`
	Multiplier float64   `json:"multiplier"`
	CreatedAt  time.Time `json:"createdAt"`
	Status     BetStatus `json:"status"`
	Payout     *float64  `json:"payout,omitempty"`
}

// NewBet creates a placed bet with a fresh identity. Payout stays nil until
// the bet settles.
func NewBet(eventID string, outcome Outcome, stake, multiplier float64, now time.Time) Bet {
	return Bet{
		ID:         uuid.New().String(),
		EventID:    eventID,
		Outcome:    outcome,
		Stake:      stake,
		Multiplier: multiplier,
		CreatedAt:  now,
		Status:     BetPlaced,
	}
}
