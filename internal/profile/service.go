package profile

import (
	"context"
	"encoding/json"
	"log/slog"
	"math"
	"sync"
	"time"

	"github.com/alejandrodnm/betplay/internal/domain"
	"github.com/alejandrodnm/betplay/internal/ports"
)

// Config controla las reglas del perfil.
type Config struct {
	DailyQuota  int           // mini-game plays per type per calendar day
	ResetWindow time.Duration // mission epoch length (rolling, not calendar-aligned)
}

// DefaultConfig devuelve la configuración de producción.
func DefaultConfig() Config {
	return Config{
		DailyQuota:  3,
		ResetWindow: 24 * time.Hour,
	}
}

// Service owns the user's balance, multiplier state, histories, missions and
// the daily mini-game counters. All mutations run under one mutex and persist
// the full snapshot before returning; a failed write is logged, never rolled
// back (durability is best-effort, the in-memory state stays authoritative).
type Service struct {
	mu      sync.Mutex
	store   ports.SnapshotStore
	cfg     Config
	profile domain.UserProfile
}

// New loads the profile snapshot from the store, seeding the guest profile
// when the snapshot is missing or corrupt.
func New(ctx context.Context, store ports.SnapshotStore, cfg Config) *Service {
	if cfg.DailyQuota <= 0 {
		cfg.DailyQuota = 3
	}
	if cfg.ResetWindow <= 0 {
		cfg.ResetWindow = 24 * time.Hour
	}

	s := &Service{store: store, cfg: cfg}

	data, err := store.Load(ctx, ports.KeyProfile)
	if err != nil {
		slog.Warn("profile: load failed, seeding defaults", "err", err)
	}
	if data == nil || json.Unmarshal(data, &s.profile) != nil {
		s.profile = domain.DefaultProfile()
		s.persist(ctx)
	}
	return s
}

// Profile devuelve un snapshot de solo lectura del perfil.
func (s *Service) Profile() domain.UserProfile {
	s.mu.Lock()
	defer s.mu.Unlock()
	return cloneProfile(s.profile)
}

// PlaceBet builds a bet against the event at the user's current effective
// multiplier and tries to place it. The returned bet is only meaningful when
// ok is true.
func (s *Service) PlaceBet(ctx context.Context, event domain.SportsEvent, outcome domain.Outcome, stake float64, now time.Time) (domain.Bet, bool) {
	s.mu.Lock()
	bet := domain.NewBet(event.ID, outcome, stake, s.profile.EffectiveMultiplier(), now)
	s.mu.Unlock()

	ok := s.TryPlaceBet(ctx, bet)
	return bet, ok
}

// TryPlaceBet debits round(stake) and appends the bet, all-or-nothing.
// Returns false without touching balance or history when the user cannot
// afford the stake. This is the only spend path.
func (s *Service) TryPlaceBet(ctx context.Context, bet domain.Bet) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	cost := int(math.Round(bet.Stake))
	if s.profile.TotalPoints < cost {
		return false
	}

	s.profile.TotalPoints -= cost
	s.profile.BetsHistory = append(s.profile.BetsHistory, bet)
	s.bumpMissions(domain.MissionPlaceBets)
	s.persist(ctx)

	slog.Info("bet placed",
		"bet_id", bet.ID,
		"event_id", bet.EventID,
		"outcome", bet.Outcome,
		"stake", bet.Stake,
		"multiplier", bet.Multiplier,
		"balance", s.profile.TotalPoints,
	)
	return true
}

// ApplyMiniGameResult appends the play to history and credits its rewards.
// Mini-games are free: this always succeeds. Quota gating happens in
// PlayMiniGame; callers using this directly must gate with CanPlay themselves.
func (s *Service) ApplyMiniGameResult(ctx context.Context, result domain.MiniGameResult) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.profile.MiniGameHistory = append(s.profile.MiniGameHistory, result)
	s.profile.CurrentMultiplierBonus += result.RewardMultiplierDelta
	s.profile.TotalPoints += result.BonusPoints
	s.bumpMissions(domain.MissionWinMiniGame)
	s.persist(ctx)
}

// PlayMiniGame is the gated play path: it refuses once the daily quota for
// the type is spent, otherwise registers the play and applies its result.
func (s *Service) PlayMiniGame(ctx context.Context, typ domain.MiniGameType, success bool, now time.Time) (domain.MiniGameResult, bool) {
	if !s.CanPlay(ctx, typ, now) {
		return domain.MiniGameResult{}, false
	}
	s.RegisterPlay(ctx, typ, now)

	result := domain.NewMiniGameResult(typ, success, now)
	s.ApplyMiniGameResult(ctx, result)
	return result, true
}

// ClaimMission credits the mission reward exactly once per epoch. Claiming a
// missing, incomplete or already-claimed mission is a silent no-op.
func (s *Service) ClaimMission(ctx context.Context, id string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i := range s.profile.Missions {
		m := &s.profile.Missions[i]
		if m.ID != id {
			continue
		}
		if !m.IsCompleted() || m.Claimed {
			return
		}
		m.Claimed = true
		s.profile.TotalPoints += m.RewardPoints
		s.profile.CurrentMultiplierBonus += m.RewardMultiplier
		s.persist(ctx)

		slog.Info("mission claimed",
			"mission_id", m.ID,
			"title", m.Title,
			"reward_points", m.RewardPoints,
			"reward_multiplier", m.RewardMultiplier,
		)
		return
	}
}

// BetsForEvent devuelve las apuestas (copiadas) que referencian el evento.
func (s *Service) BetsForEvent(eventID string) []domain.Bet {
	s.mu.Lock()
	defer s.mu.Unlock()

	var bets []domain.Bet
	for _, b := range s.profile.BetsHistory {
		if b.EventID == eventID {
			bets = append(bets, b)
		}
	}
	return bets
}

// ApplySettlement finalizes a single bet: placed → won|lost, sets the payout
// and credits round(payout) on a win. Returns false when the bet is unknown
// or already settled, which makes repeated settlement a no-op.
func (s *Service) ApplySettlement(ctx context.Context, betID string, won bool, payout float64) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i := range s.profile.BetsHistory {
		b := &s.profile.BetsHistory[i]
		if b.ID != betID {
			continue
		}
		if b.Status != domain.BetPlaced {
			return false
		}
		if won {
			b.Status = domain.BetWon
			b.Payout = &payout
			s.profile.TotalPoints += int(math.Round(payout))
		} else {
			zero := 0.0
			b.Status = domain.BetLost
			b.Payout = &zero
		}
		s.persist(ctx)
		return true
	}
	return false
}

// bumpMissions increments every not-yet-completed mission of the given type.
// Caller holds the lock.
func (s *Service) bumpMissions(typ domain.MissionType) {
	for i := range s.profile.Missions {
		m := &s.profile.Missions[i]
		if m.Type == typ && !m.IsCompleted() {
			m.ProgressCount++
		}
	}
}

// persist writes the full profile snapshot. Best-effort: failures are logged
// and the in-memory mutation stands. Caller holds the lock.
func (s *Service) persist(ctx context.Context) {
	data, err := json.Marshal(s.profile)
	if err != nil {
		slog.Warn("profile: marshal failed", "err", err)
		return
	}
	if err := s.store.Save(ctx, ports.KeyProfile, data); err != nil {
		slog.Warn("profile: save failed", "err", err)
	}
}

// cloneProfile devuelve una copia profunda para lecturas fuera del lock.
func cloneProfile(p domain.UserProfile) domain.UserProfile {
	cp := p
	cp.BetsHistory = append([]domain.Bet(nil), p.BetsHistory...)
	cp.MiniGameHistory = append([]domain.MiniGameResult(nil), p.MiniGameHistory...)
	cp.Missions = append([]domain.Mission(nil), p.Missions...)
	return cp
}
