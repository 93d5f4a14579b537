package ports

import "context"

// Snapshot slots. Each component owns its own key and stores a full JSON
// snapshot under it on every mutation.
const (
	KeyEvents            = "betplay.events.v1"
	KeyProfile           = "betplay.profile.v1"
	KeyMiniGameStats     = "betplay.minigame.stats.v2"
	KeyMissionsLastReset = "betplay.missions.last_reset"
)

// SnapshotStore persists opaque snapshots under string keys.
//
// Load returns (nil, nil) when the key has never been written; callers treat
// any decode failure of the returned bytes as "absent" and reseed.
type SnapshotStore interface {
	Load(ctx context.Context, key string) ([]byte, error)
	Save(ctx context.Context, key string, data []byte) error

	// Close cierra el almacenamiento limpiamente.
	Close() error
}
