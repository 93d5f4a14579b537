package profile_test

import (
	"context"
	"testing"
	"time"

	"github.com/alejandrodnm/betplay/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMissionReset_FirstRunInitializesEpoch(t *testing.T) {
	svc, _ := newService(t)
	ctx := context.Background()
	t0 := time.Date(2025, 3, 10, 9, 0, 0, 0, time.UTC)

	assert.False(t, svc.ResetMissionsIfNeeded(ctx, t0))
	assert.Equal(t, t0.Add(24*time.Hour), svc.NextMissionsReset(ctx, t0))
}

func TestMissionReset_RollingWindow(t *testing.T) {
	svc, _ := newService(t)
	ctx := context.Background()
	t0 := time.Date(2025, 3, 10, 9, 0, 0, 0, time.UTC)

	svc.ResetMissionsIfNeeded(ctx, t0)

	// Build up some progress and claim a mission.
	svc.ApplyMiniGameResult(ctx, domain.NewMiniGameResult(domain.GuessTheScore, true, t0))
	svc.ClaimMission(ctx, svc.Profile().Missions[1].ID)
	require.True(t, svc.Profile().Missions[1].Claimed)

	// 23h59m in: still the same epoch.
	assert.False(t, svc.ResetMissionsIfNeeded(ctx, t0.Add(24*time.Hour-time.Minute)))
	assert.True(t, svc.Profile().Missions[1].Claimed)

	// Exactly 24h: progress zeroed, claims cleared, epoch advances.
	resetAt := t0.Add(24 * time.Hour)
	assert.True(t, svc.ResetMissionsIfNeeded(ctx, resetAt))

	prof := svc.Profile()
	for _, m := range prof.Missions {
		assert.Equal(t, 0, m.ProgressCount)
		assert.False(t, m.Claimed)
	}
	assert.Equal(t, resetAt.Add(24*time.Hour), svc.NextMissionsReset(ctx, resetAt))

	// Points and multiplier earned before the reset are kept.
	assert.Equal(t, 1000+25+20, prof.TotalPoints)
}

func TestMissionReset_ClaimableAgainNextEpoch(t *testing.T) {
	svc, _ := newService(t)
	ctx := context.Background()
	t0 := time.Date(2025, 3, 10, 9, 0, 0, 0, time.UTC)
	svc.ResetMissionsIfNeeded(ctx, t0)

	svc.ApplyMiniGameResult(ctx, domain.NewMiniGameResult(domain.ThrowBall, true, t0))
	missionID := svc.Profile().Missions[1].ID
	svc.ClaimMission(ctx, missionID)
	pointsAfterFirstClaim := svc.Profile().TotalPoints

	svc.ResetMissionsIfNeeded(ctx, t0.Add(25*time.Hour))

	// New epoch: complete and claim the same mission again.
	svc.ApplyMiniGameResult(ctx, domain.NewMiniGameResult(domain.ThrowBall, true, t0.Add(25*time.Hour)))
	svc.ClaimMission(ctx, missionID)

	assert.Equal(t, pointsAfterFirstClaim+20+20, svc.Profile().TotalPoints)
}
