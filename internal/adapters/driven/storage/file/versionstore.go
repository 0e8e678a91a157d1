// Package file provides the JSON file-backed version tracker, the default
// storage backend.
package file

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sync"

	"github.com/custodia-labs/scopegen/internal/core/ports/driven"
	"github.com/custodia-labs/scopegen/internal/fsutil"
)

// TrackerFile is the tracker filename inside the data directory.
const TrackerFile = "version_store.json"

// Ensure VersionStore implements the interface.
var _ driven.VersionStore = (*VersionStore)(nil)

// VersionStore persists the version tracker as a JSON object mapping base
// names to their next revision.
type VersionStore struct {
	mu   sync.Mutex
	path string
}

// NewVersionStore creates a store for dataDir/version_store.json. The file
// is created on first save.
func NewVersionStore(dataDir string) *VersionStore {
	return &VersionStore{path: filepath.Join(dataDir, TrackerFile)}
}

// Path returns the tracker file path.
func (s *VersionStore) Path() string {
	return s.path
}

// Load reads the tracker. A missing file is an empty tracker.
func (s *VersionStore) Load(_ context.Context) (map[string]int, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	data, err := os.ReadFile(s.path)
	if err != nil {
		if os.IsNotExist(err) {
			return make(map[string]int), nil
		}
		return nil, fmt.Errorf("reading %s: %w", s.path, err)
	}

	counters := make(map[string]int)
	if len(data) == 0 {
		return counters, nil
	}
	if err := json.Unmarshal(data, &counters); err != nil {
		return nil, fmt.Errorf("decoding %s: %w", s.path, err)
	}
	return counters, nil
}

// Save writes the full tracker, replacing the file atomically.
func (s *VersionStore) Save(ctx context.Context, counters map[string]int) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	data, err := json.MarshalIndent(counters, "", "  ")
	if err != nil {
		return fmt.Errorf("encoding tracker: %w", err)
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	return fsutil.WriteAtomic(s.path, append(data, '\n'), 0o644)
}
