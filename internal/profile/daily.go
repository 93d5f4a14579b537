package profile

import (
	"context"
	"encoding/json"
	"log/slog"
	"time"

	"github.com/alejandrodnm/betplay/internal/domain"
	"github.com/alejandrodnm/betplay/internal/ports"
)

// Daily mini-game limiter. Counters are keyed to a calendar day ("2006-01-02");
// a stored day that differs from today reads as all-zero, so the reset is lazy
// and needs no timer. Distinct on purpose from the mission reset, which uses a
// rolling 24h window.

const dayKeyLayout = "2006-01-02"

// CanPlay reports whether the type still has plays left today. Pure read,
// no side effects.
func (s *Service) CanPlay(ctx context.Context, typ domain.MiniGameType, now time.Time) bool {
	counters := s.loadCounters(ctx, now)
	return counters.Counts[string(typ)] < s.cfg.DailyQuota
}

// RemainingPlays devuelve cuántas partidas quedan hoy para el tipo dado.
func (s *Service) RemainingPlays(ctx context.Context, typ domain.MiniGameType, now time.Time) int {
	counters := s.loadCounters(ctx, now)
	left := s.cfg.DailyQuota - counters.Counts[string(typ)]
	if left < 0 {
		return 0
	}
	return left
}

// RegisterPlay counts one play against today's quota. When the stored day has
// rolled over, the increment itself starts the new day at 1. Callers must
// check CanPlay immediately before; there is no atomic check-and-register.
func (s *Service) RegisterPlay(ctx context.Context, typ domain.MiniGameType, now time.Time) {
	counters := s.loadCounters(ctx, now)
	counters.Counts[string(typ)]++

	data, err := json.Marshal(counters)
	if err != nil {
		slog.Warn("profile: marshal daily counters failed", "err", err)
		return
	}
	if err := s.store.Save(ctx, ports.KeyMiniGameStats, data); err != nil {
		slog.Warn("profile: save daily counters failed", "err", err)
	}
}

// loadCounters reads today's counters, treating a missing, corrupt or
// stale-dated snapshot as a fresh zeroed day.
func (s *Service) loadCounters(ctx context.Context, now time.Time) domain.DailyCounters {
	today := now.Format(dayKeyLayout)
	fresh := domain.DailyCounters{Date: today, Counts: map[string]int{}}

	data, err := s.store.Load(ctx, ports.KeyMiniGameStats)
	if err != nil {
		slog.Warn("profile: load daily counters failed", "err", err)
		return fresh
	}
	if data == nil {
		return fresh
	}

	var counters domain.DailyCounters
	if json.Unmarshal(data, &counters) != nil || counters.Date != today {
		return fresh
	}
	if counters.Counts == nil {
		counters.Counts = map[string]int{}
	}
	return counters
}
