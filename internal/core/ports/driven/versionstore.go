package driven

import "context"

// VersionStore persists the version tracker: base filename to revision count.
// The tracker is read once at startup and written in full after every
// allocation.
type VersionStore interface {
	// Load returns the persisted tracker. A store with nothing saved yet
	// returns an empty, non-nil map.
	Load(ctx context.Context) (map[string]int, error)

	// Save replaces the persisted tracker with counters.
	Save(ctx context.Context, counters map[string]int) error
}
