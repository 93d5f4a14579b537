package notify_test

import (
	"bytes"
	"context"
	"testing"
	"time"

	"github.com/alejandrodnm/betplay/internal/adapters/notify"
	"github.com/alejandrodnm/betplay/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func fixtures() ([]domain.SportsEvent, domain.UserProfile) {
	live := domain.NewEvent("Real vs Barca", "Real", "Barca",
		time.Now().Add(-5*time.Minute),
		domain.Odds{HomeWin: 1.9, Draw: 3.2, AwayWin: 2.1})
	live.Status = domain.StatusOngoing

	done := domain.NewEvent("PSG vs OM", "PSG", "OM",
		time.Now().Add(-time.Hour),
		domain.Odds{HomeWin: 1.6, Draw: 3.6, AwayWin: 4.2})
	outcome := domain.OutcomeAwayWin
	done.Status = domain.StatusFinished
	done.ResolvedOutcome = &outcome

	prof := domain.DefaultProfile()
	prof.TotalPoints = 1090
	prof.CurrentMultiplierBonus = 0.05
	return []domain.SportsEvent{live, done}, prof
}

func TestConsole_Compact(t *testing.T) {
	var buf bytes.Buffer
	c := notify.NewConsoleWriter(&buf, false)

	events, prof := fixtures()
	require.NoError(t, c.Notify(context.Background(), events, prof))

	out := buf.String()
	assert.Contains(t, out, "2 events")
	assert.Contains(t, out, "live:1")
	assert.Contains(t, out, "fin:1")
	assert.Contains(t, out, "pts:1090")
	assert.Contains(t, out, "x1.05")
}

func TestConsole_Table(t *testing.T) {
	var buf bytes.Buffer
	c := notify.NewConsoleWriter(&buf, true)

	events, prof := fixtures()
	require.NoError(t, c.Notify(context.Background(), events, prof))

	out := buf.String()
	assert.Contains(t, out, "Real vs Barca")
	assert.Contains(t, out, "awayWin")
	assert.Contains(t, out, "Guest")
	assert.Contains(t, out, "Place 3 bets")
}

func TestConsole_EmptyBoard(t *testing.T) {
	var buf bytes.Buffer
	c := notify.NewConsoleWriter(&buf, false)

	require.NoError(t, c.Notify(context.Background(), nil, domain.DefaultProfile()))
	assert.Contains(t, buf.String(), "0 events")
}
