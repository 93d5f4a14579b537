package simulator_test

import (
	"context"
	"encoding/json"
	"testing"
	"time"

	"github.com/alejandrodnm/betplay/internal/adapters/random"
	"github.com/alejandrodnm/betplay/internal/adapters/storage"
	"github.com/alejandrodnm/betplay/internal/domain"
	"github.com/alejandrodnm/betplay/internal/ports"
	"github.com/alejandrodnm/betplay/internal/profile"
	"github.com/alejandrodnm/betplay/internal/settlement"
	"github.com/alejandrodnm/betplay/internal/simulator"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newManager(t *testing.T, outcomes ports.OutcomeSource) (*simulator.Manager, *profile.Service, *storage.MemoryStore) {
	t.Helper()
	store := storage.NewMemoryStore()
	ctx := context.Background()
	profiles := profile.New(ctx, store, profile.DefaultConfig())
	settler := settlement.New(profiles)
	m := simulator.New(ctx, simulator.DefaultConfig(), store, outcomes, settler, profiles, nil)
	return m, profiles, store
}

func TestManager_SeedsOnFirstRun(t *testing.T) {
	m, _, store := newManager(t, random.NewUniform())

	events := m.Events()
	require.Len(t, events, 2)
	assert.Equal(t, "Real vs Barca", events[0].Title)
	assert.Equal(t, "Lakers vs Celtics", events[1].Title)
	for _, e := range events {
		assert.Equal(t, domain.StatusUpcoming, e.Status)
		assert.Nil(t, e.ResolvedOutcome)
	}

	// The seed batch is persisted immediately.
	data, err := store.Load(context.Background(), ports.KeyEvents)
	require.NoError(t, err)
	var saved []domain.SportsEvent
	require.NoError(t, json.Unmarshal(data, &saved))
	assert.Len(t, saved, 2)
}

func TestManager_ReseedsOnCorruptSnapshot(t *testing.T) {
	store := storage.NewMemoryStore()
	ctx := context.Background()
	require.NoError(t, store.Save(ctx, ports.KeyEvents, []byte("corrupt!")))

	profiles := profile.New(ctx, store, profile.DefaultConfig())
	m := simulator.New(ctx, simulator.DefaultConfig(), store, random.NewUniform(),
		settlement.New(profiles), profiles, nil)

	assert.Len(t, m.Events(), 2)
}

func TestManager_LoadsExistingEvents(t *testing.T) {
	store := storage.NewMemoryStore()
	ctx := context.Background()

	saved := []domain.SportsEvent{
		domain.NewEvent("Saved vs Match", "A", "B", time.Now().Add(time.Hour), domain.Odds{HomeWin: 2, Draw: 3, AwayWin: 4}),
	}
	data, err := json.Marshal(saved)
	require.NoError(t, err)
	require.NoError(t, store.Save(ctx, ports.KeyEvents, data))

	profiles := profile.New(ctx, store, profile.DefaultConfig())
	m := simulator.New(ctx, simulator.DefaultConfig(), store, random.NewUniform(),
		settlement.New(profiles), profiles, nil)

	events := m.Events()
	require.Len(t, events, 1)
	assert.Equal(t, "Saved vs Match", events[0].Title)
}

func TestManager_LifecycleTransitions(t *testing.T) {
	m, _, _ := newManager(t, random.NewFixed(domain.OutcomeHomeWin))
	ctx := context.Background()
	now := time.Now()

	// Before the first start nothing moves.
	m.Tick(ctx, now)
	for _, e := range m.Events() {
		assert.Equal(t, domain.StatusUpcoming, e.Status)
	}

	// Past the first start (+90m): first event goes live.
	m.Tick(ctx, now.Add(95*time.Minute))
	events := m.Events()
	assert.Equal(t, domain.StatusOngoing, events[0].Status)
	assert.Equal(t, domain.StatusUpcoming, events[1].Status)
	assert.Nil(t, events[0].ResolvedOutcome)

	// Past start+10m: result drawn from the injected source.
	m.Tick(ctx, now.Add(135*time.Minute))
	events = m.Events()
	assert.Equal(t, domain.StatusFinished, events[0].Status)
	require.NotNil(t, events[0].ResolvedOutcome)
	assert.Equal(t, domain.OutcomeHomeWin, *events[0].ResolvedOutcome)

	// Outcome set exactly when finished, for every event.
	for _, e := range m.Events() {
		assert.Equal(t, e.Status == domain.StatusFinished, e.ResolvedOutcome != nil)
	}
}

func TestManager_FinishedIsTerminal(t *testing.T) {
	m, _, _ := newManager(t, random.NewFixed(domain.OutcomeDraw))
	ctx := context.Background()
	now := time.Now()

	m.Tick(ctx, now.Add(95*time.Minute))
	m.Tick(ctx, now.Add(135*time.Minute))
	first := m.Events()[0]
	require.Equal(t, domain.StatusFinished, first.Status)

	// Ticking again must not redraw the outcome.
	m.Tick(ctx, now.Add(200*time.Minute))
	again := m.Events()[0]
	assert.Equal(t, domain.StatusFinished, again.Status)
	assert.Equal(t, *first.ResolvedOutcome, *again.ResolvedOutcome)
}

func TestManager_InjectsNextBatch(t *testing.T) {
	m, _, _ := newManager(t, random.NewUniform())
	ctx := context.Background()
	now := time.Now()

	// One big jump puts both seed events live in the same tick, with nothing
	// upcoming left — the condition for scheduling the next batch.
	m.Tick(ctx, now.Add(131*time.Minute))

	events := m.Events()
	require.Len(t, events, 4)
	assert.Equal(t, "Dortmund vs Bayern", events[2].Title)
	assert.Equal(t, "PSG vs OM", events[3].Title)
	assert.Equal(t, domain.StatusUpcoming, events[2].Status)
	assert.Equal(t, domain.StatusUpcoming, events[3].Status)

	// With upcoming events in the pool the batch is not re-injected.
	m.Tick(ctx, now.Add(132*time.Minute))
	assert.Len(t, m.Events(), 4)
}

func TestManager_SettlesBetsOnFinish(t *testing.T) {
	m, profiles, _ := newManager(t, random.NewFixed(domain.OutcomeHomeWin))
	ctx := context.Background()
	now := time.Now()

	event := m.Events()[0] // Real vs Barca, home odds 1.9
	_, ok := profiles.PlaceBet(ctx, event, domain.OutcomeHomeWin, 100, now)
	require.True(t, ok)
	require.Equal(t, 900, profiles.Profile().TotalPoints)

	m.Tick(ctx, now.Add(95*time.Minute))  // ongoing
	m.Tick(ctx, now.Add(135*time.Minute)) // finished + settled

	prof := profiles.Profile()
	require.Len(t, prof.BetsHistory, 1)
	assert.Equal(t, domain.BetWon, prof.BetsHistory[0].Status)
	assert.Equal(t, 1090, prof.TotalPoints)

	// Settlement sweeps run every tick but never double-pay.
	m.Tick(ctx, now.Add(136*time.Minute))
	assert.Equal(t, 1090, profiles.Profile().TotalPoints)
}

func TestManager_PersistsEveryTick(t *testing.T) {
	m, _, store := newManager(t, random.NewUniform())
	ctx := context.Background()
	now := time.Now()

	m.Tick(ctx, now.Add(95*time.Minute))

	data, err := store.Load(ctx, ports.KeyEvents)
	require.NoError(t, err)
	var saved []domain.SportsEvent
	require.NoError(t, json.Unmarshal(data, &saved))
	assert.Equal(t, domain.StatusOngoing, saved[0].Status)
}
