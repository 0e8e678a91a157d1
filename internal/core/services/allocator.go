package services

import (
	"context"
	"fmt"
	"sync"

	"github.com/custodia-labs/scopegen/internal/core/domain"
	"github.com/custodia-labs/scopegen/internal/core/ports/driven"
	"github.com/custodia-labs/scopegen/internal/datefmt"
	"github.com/custodia-labs/scopegen/internal/logger"
)

// MajorVersion is the fixed major component of agreement versions.
const MajorVersion = 1

// BaseName derives the versioning key for a property and agreement term.
// Years that cannot be parsed from their dates become "XXXX".
func BaseName(property, startDate, endDate string) string {
	return fmt.Sprintf("%s - PM Agreement - %s-%s", property, datefmt.Year(startDate), datefmt.Year(endDate))
}

// VersionedFilename formats the filename for a base and revision.
func VersionedFilename(base string, revision int, ext string) string {
	return fmt.Sprintf("%s - V%d.%d%s", base, MajorVersion, revision, ext)
}

// Allocation is the result of reserving a filename.
type Allocation struct {
	BaseName string
	Revision int
	Filename string
}

// VersionAllocator hands out strictly increasing revisions per base name.
//
// The tracker is loaded once from the store when the allocator is built and
// saved in full after every allocation. Allocations within one process are
// serialised; two processes sharing a store race on read-modify-write.
type VersionAllocator struct {
	mu       sync.Mutex
	store    driven.VersionStore
	counters map[string]int
	ext      string
}

// NewVersionAllocator loads the tracker from store.
func NewVersionAllocator(ctx context.Context, store driven.VersionStore, ext string) (*VersionAllocator, error) {
	if store == nil {
		return nil, fmt.Errorf("%w: no version store configured", domain.ErrVersionStore)
	}
	counters, err := store.Load(ctx)
	if err != nil {
		return nil, fmt.Errorf("%w: loading tracker: %w", domain.ErrVersionStore, err)
	}
	if counters == nil {
		counters = make(map[string]int)
	}
	logger.Debug("version tracker loaded with %d entries", len(counters))
	return &VersionAllocator{
		store:    store,
		counters: counters,
		ext:      ext,
	}, nil
}

// Allocate reserves the next filename for the property and term and
// persists the updated tracker before returning.
func (a *VersionAllocator) Allocate(ctx context.Context, property, startDate, endDate string) (*Allocation, error) {
	base := BaseName(property, startDate, endDate)

	a.mu.Lock()
	defer a.mu.Unlock()

	current := a.counters[base]
	a.counters[base] = current + 1

	if err := a.store.Save(ctx, a.snapshot()); err != nil {
		return nil, fmt.Errorf("%w: saving tracker: %w", domain.ErrVersionStore, err)
	}

	logger.Debug("allocated revision %d for %q", current, base)
	return &Allocation{
		BaseName: base,
		Revision: current,
		Filename: VersionedFilename(base, current, a.ext),
	}, nil
}

// Peek returns the revision the next allocation for base would receive.
func (a *VersionAllocator) Peek(base string) int {
	a.mu.Lock()
	defer a.mu.Unlock()
	return a.counters[base]
}

// Snapshot returns a copy of the tracker.
func (a *VersionAllocator) Snapshot() map[string]int {
	a.mu.Lock()
	defer a.mu.Unlock()
	return a.snapshot()
}

// snapshot copies the tracker (caller must hold lock).
func (a *VersionAllocator) snapshot() map[string]int {
	out := make(map[string]int, len(a.counters))
	for k, v := range a.counters {
		out[k] = v
	}
	return out
}
