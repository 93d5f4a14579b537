package domain

import (
	"time"

	"github.com/google/uuid"
)

// Outcome is one of the three results a match can settle to.
type Outcome string

const (
	OutcomeHomeWin Outcome = "homeWin"
	OutcomeDraw    Outcome = "draw"
	OutcomeAwayWin Outcome = "awayWin"
)

// Outcomes lists every possible match outcome.
var Outcomes = []Outcome{OutcomeHomeWin, OutcomeDraw, OutcomeAwayWin}

// EventStatus represents the lifecycle of a simulated event.
type EventStatus string

const (
	StatusUpcoming EventStatus = "upcoming"
	StatusOngoing  EventStatus = "ongoing"
	StatusFinished EventStatus = "finished"
)

// MatchDuration is how long an event stays ongoing before a result is available.
const MatchDuration = 10 * time.Minute

// Odds are the fixed decimal odds offered for a match.
type Odds struct {
	HomeWin float64 `json:"homeWin"`
	Draw    float64 `json:"draw"`
	AwayWin float64 `json:"awayWin"`
}

// For returns the decimal odds for the given outcome.
func (o Odds) For(outcome Outcome) float64 {
	switch outcome {
	case OutcomeHomeWin:
		return o.HomeWin
	case OutcomeDraw:
		return o.Draw
	case OutcomeAwayWin:
		return o.AwayWin
	}
	return 0
}

// SportsEvent is a simulated match. Events are append-only: they are created
// upcoming and only ever move forward through the status machine.
type SportsEvent struct {
	ID              string      `json:"id"`
	Title           string      `json:"title"`
	StartDate       time.Time   `json:"startDate"`
	HomeTeam        string      `json:"homeTeam"`
	AwayTeam        string      `json:"awayTeam"`
	Odds            Odds        `json:"odds"`
	Status          EventStatus `json:"status"`
	ResolvedOutcome *Outcome    `json:"resolvedOutcome,omitempty"`
}

// NewEvent creates an upcoming event with a fresh identity.
func NewEvent(title, home, away string, start time.Time, odds Odds) SportsEvent {
	return SportsEvent{
		ID:        uuid.New().String(),
		Title:     title,
		StartDate: start,
		HomeTeam:  home,
		AwayTeam:  away,
		Odds:      odds,
		Status:    StatusUpcoming,
	}
}

// Resolved reports whether a result has been drawn. Invariant: true iff
// Status == StatusFinished.
func (e SportsEvent) Resolved() bool {
	return e.ResolvedOutcome != nil
}

// TimeToStart is the countdown shown for upcoming events. Derived read, never
// negative.
func (e SportsEvent) TimeToStart(now time.Time) time.Duration {
	d := e.StartDate.Sub(now)
	if d < 0 {
		return 0
	}
	return d
}
