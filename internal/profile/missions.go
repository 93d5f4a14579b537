package profile

import (
	"context"
	"encoding/json"
	"log/slog"
	"time"

	"github.com/alejandrodnm/betplay/internal/ports"
)

// Mission epoch bookkeeping. The epoch is a rolling window since the last
// reset (exact threshold), not a calendar day.

// ResetMissionsIfNeeded zeroes progress and clears every claim once the reset
// window has elapsed, then advances the epoch boundary to now. Idempotent
// within an epoch. Returns whether a reset happened.
func (s *Service) ResetMissionsIfNeeded(ctx context.Context, now time.Time) bool {
	last, ok := s.loadLastReset(ctx)
	if !ok {
		// First run: start the epoch, nothing to reset yet.
		s.saveLastReset(ctx, now)
		return false
	}
	if now.Sub(last) < s.cfg.ResetWindow {
		return false
	}

	s.mu.Lock()
	for i := range s.profile.Missions {
		s.profile.Missions[i].ProgressCount = 0
		s.profile.Missions[i].Claimed = false
	}
	s.persist(ctx)
	s.mu.Unlock()

	s.saveLastReset(ctx, now)
	slog.Info("missions reset", "epoch_start", now)
	return true
}

// NextMissionsReset devuelve cuándo termina el epoch actual.
func (s *Service) NextMissionsReset(ctx context.Context, now time.Time) time.Time {
	last, ok := s.loadLastReset(ctx)
	if !ok {
		last = now
	}
	return last.Add(s.cfg.ResetWindow)
}

func (s *Service) loadLastReset(ctx context.Context) (time.Time, bool) {
	data, err := s.store.Load(ctx, ports.KeyMissionsLastReset)
	if err != nil {
		slog.Warn("profile: load missions reset failed", "err", err)
		return time.Time{}, false
	}
	if data == nil {
		return time.Time{}, false
	}
	var last time.Time
	if json.Unmarshal(data, &last) != nil {
		return time.Time{}, false
	}
	return last, true
}

func (s *Service) saveLastReset(ctx context.Context, t time.Time) {
	data, err := json.Marshal(t)
	if err != nil {
		slog.Warn("profile: marshal missions reset failed", "err", err)
		return
	}
	if err := s.store.Save(ctx, ports.KeyMissionsLastReset, data); err != nil {
		slog.Warn("profile: save missions reset failed", "err", err)
	}
}
