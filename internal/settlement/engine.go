package settlement

import (
	"context"
	"log/slog"

	"github.com/alejandrodnm/betplay/internal/domain"
	"github.com/alejandrodnm/betplay/internal/profile"
)

// Engine resolves placed bets against finished events and credits payouts.
type Engine struct {
	profiles *profile.Service
}

// New crea un motor de liquidación sobre el servicio de perfil dado.
func New(profiles *profile.Service) *Engine {
	return &Engine{profiles: profiles}
}

// Settle finalizes every placed bet on the event. No-op unless the event is
// finished with a drawn outcome. Safe to call once per tick for the same
// event: already-settled bets are skipped by the placed-status guard, so
// payouts are credited at most once.
func (e *Engine) Settle(ctx context.Context, event domain.SportsEvent) int {
	if event.Status != domain.StatusFinished || !event.Resolved() {
		return 0
	}
	outcome := *event.ResolvedOutcome

	settled := 0
	for _, bet := range e.profiles.BetsForEvent(event.ID) {
		if bet.Status != domain.BetPlaced {
			continue
		}

		won := bet.Outcome == outcome
		payout := 0.0
		if won {
			// The bet's own snapshotted multiplier, not the user's current one.
			payout = bet.Stake * event.Odds.For(outcome) * bet.Multiplier
		}
		if e.profiles.ApplySettlement(ctx, bet.ID, won, payout) {
			settled++
			slog.Info("bet settled",
				"bet_id", bet.ID,
				"event", event.Title,
				"outcome", outcome,
				"won", won,
				"payout", payout,
			)
		}
	}
	return settled
}
