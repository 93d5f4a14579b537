package simulator

import (
	"context"
	"encoding/json"
	"log/slog"
	"sync"
	"time"

	"github.com/alejandrodnm/betplay/internal/domain"
	"github.com/alejandrodnm/betplay/internal/ports"
	"github.com/alejandrodnm/betplay/internal/profile"
	"github.com/alejandrodnm/betplay/internal/settlement"
)

// Config contiene la configuración del simulador.
type Config struct {
	TickInterval time.Duration
}

// DefaultConfig devuelve una configuración sensata para producción.
func DefaultConfig() Config {
	return Config{TickInterval: time.Second}
}

// Manager owns the simulated event stream: it seeds the initial batch,
// advances every event through upcoming → ongoing → finished on each tick,
// injects follow-up batches to keep the stream alive, and hands finished
// events to the settlement engine. Events are append-only and the whole
// collection is snapshotted after every tick.
type Manager struct {
	mu       sync.Mutex
	cfg      Config
	store    ports.SnapshotStore
	outcomes ports.OutcomeSource
	settler  *settlement.Engine
	profiles *profile.Service
	notifier ports.Notifier
	events   []domain.SportsEvent
}

// New crea un Manager con todas las dependencias inyectadas y carga (o
// siembra) la colección de eventos.
func New(
	ctx context.Context,
	cfg Config,
	store ports.SnapshotStore,
	outcomes ports.OutcomeSource,
	settler *settlement.Engine,
	profiles *profile.Service,
	notifier ports.Notifier,
) *Manager {
	if cfg.TickInterval <= 0 {
		cfg.TickInterval = time.Second
	}

	m := &Manager{
		cfg:      cfg,
		store:    store,
		outcomes: outcomes,
		settler:  settler,
		profiles: profiles,
		notifier: notifier,
	}

	data, err := store.Load(ctx, ports.KeyEvents)
	if err != nil {
		slog.Warn("simulator: load events failed, reseeding", "err", err)
	}
	if data == nil || json.Unmarshal(data, &m.events) != nil || len(m.events) == 0 {
		m.events = seedBatch(time.Now())
		m.persist(ctx)
	}
	return m
}

// seedBatch son los dos eventos iniciales de una instalación limpia.
func seedBatch(now time.Time) []domain.SportsEvent {
	return []domain.SportsEvent{
		domain.NewEvent("Real vs Barca", "Real", "Barca",
			now.Add(90*time.Minute),
			domain.Odds{HomeWin: 1.9, Draw: 3.2, AwayWin: 2.1}),
		domain.NewEvent("Lakers vs Celtics", "LAL", "BOS",
			now.Add(130*time.Minute),
			domain.Odds{HomeWin: 1.7, Draw: 15.0, AwayWin: 2.3}),
	}
}

// nextBatch es el lote que mantiene vivo el stream cuando no quedan upcoming.
func nextBatch(now time.Time) []domain.SportsEvent {
	return []domain.SportsEvent{
		domain.NewEvent("Dortmund vs Bayern", "BVB", "FCB",
			now.Add(60*time.Minute),
			domain.Odds{HomeWin: 2.4, Draw: 3.4, AwayWin: 2.2}),
		domain.NewEvent("PSG vs OM", "PSG", "OM",
			now.Add(120*time.Minute),
			domain.Odds{HomeWin: 1.6, Draw: 3.6, AwayWin: 4.2}),
	}
}

// Tick re-evaluates every event against the wall clock. Re-checking an event
// that is already finished is a no-op, so ticking is idempotent; settlement
// runs over all finished events every tick and relies on its own at-most-once
// guard.
func (m *Manager) Tick(ctx context.Context, now time.Time) {
	m.mu.Lock()

	for i := range m.events {
		e := &m.events[i]
		switch e.Status {
		case domain.StatusUpcoming:
			if !now.Before(e.StartDate) {
				e.Status = domain.StatusOngoing
				slog.Info("event ongoing", "event", e.Title)
			}
		case domain.StatusOngoing:
			// Result available MatchDuration after start.
			if !now.Before(e.StartDate.Add(domain.MatchDuration)) {
				outcome := m.outcomes.Draw()
				e.Status = domain.StatusFinished
				e.ResolvedOutcome = &outcome
				slog.Info("event finished", "event", e.Title, "outcome", outcome)
			}
		case domain.StatusFinished:
			// terminal
		}
	}

	ongoing, upcoming := 0, 0
	for _, e := range m.events {
		switch e.Status {
		case domain.StatusOngoing:
			ongoing++
		case domain.StatusUpcoming:
			upcoming++
		}
	}
	if ongoing >= 2 && upcoming == 0 {
		batch := nextBatch(now)
		m.events = append(m.events, batch...)
		slog.Info("next batch scheduled", "events", len(batch), "total", len(m.events))
	}

	m.persist(ctx)
	finished := make([]domain.SportsEvent, 0)
	for _, e := range m.events {
		if e.Status == domain.StatusFinished {
			finished = append(finished, e)
		}
	}
	m.mu.Unlock()

	m.profiles.ResetMissionsIfNeeded(ctx, now)

	for _, e := range finished {
		m.settler.Settle(ctx, e)
	}

	if m.notifier != nil {
		if err := m.notifier.Notify(ctx, m.Events(), m.profiles.Profile()); err != nil {
			slog.Warn("notifier error", "err", err)
		}
	}
}

// Events devuelve un snapshot de solo lectura de todos los eventos.
func (m *Manager) Events() []domain.SportsEvent {
	m.mu.Lock()
	defer m.mu.Unlock()
	return append([]domain.SportsEvent(nil), m.events...)
}

// Run ejecuta el loop de ticks hasta que el contexto se cancele. Parar y
// relanzar es idempotente: el estado vive en los snapshots, no en el loop.
func (m *Manager) Run(ctx context.Context) error {
	slog.Info("simulator starting", "interval", m.cfg.TickInterval)

	m.Tick(ctx, time.Now())

	ticker := time.NewTicker(m.cfg.TickInterval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			slog.Info("simulator stopped")
			return nil
		case now := <-ticker.C:
			m.Tick(ctx, now)
		}
	}
}

// RunOnce ejecuta exactamente un tick.
func (m *Manager) RunOnce(ctx context.Context) {
	m.Tick(ctx, time.Now())
}

// persist writes the full event collection. Best-effort, caller holds the lock.
func (m *Manager) persist(ctx context.Context) {
	data, err := json.Marshal(m.events)
	if err != nil {
		slog.Warn("simulator: marshal events failed", "err", err)
		return
	}
	if err := m.store.Save(ctx, ports.KeyEvents, data); err != nil {
		slog.Warn("simulator: save events failed", "err", err)
	}
}
