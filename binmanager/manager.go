package binmanager

import (
	"context"
	"fmt"
	"sync"

	"github.com/groopm/groopm/bin"
	"github.com/groopm/groopm/profile"
)

// Manager owns the finalized bin set for one clustering run. It is shared,
// long-lived state: the bin map and id counter are guarded by a single
// sync.RWMutex, since reads (listing, persistence) and writes (allocation,
// deletion) can be driven from different goroutines even though the
// engine's own round loop is single-threaded.
type Manager struct {
	mu     sync.RWMutex
	bins   map[int]*bin.Bin
	nextID int

	MinSize int
	MinVol  int
}

// New returns an empty Manager with the given quality-gate defaults.
func New(minSize, minVol int) *Manager {
	return &Manager{bins: make(map[int]*bin.Bin), nextID: 1, MinSize: minSize, MinVol: minVol}
}

// IsGoodBin reports whether a candidate (or grown) bin passes the quality
// gate: count >= minSize AND totalBP >= m.MinVol. minSize is a parameter
// (not m.MinSize) because the engine applies two separate minimums — a
// fixed one on a round's raw candidate set, the configured one on grown
// bins.
func (m *Manager) IsGoodBin(totalBP, count, minSize int) bool {
	return count >= minSize && totalBP >= m.MinVol
}

// MakeNewBin allocates the next bin-id (monotone) and registers a new Bin
// with the given initial membership.
func (m *Manager) MakeNewBin(members []int) *bin.Bin {
	m.mu.Lock()
	defer m.mu.Unlock()

	id := m.nextID
	m.nextID++
	b := bin.New(id, members)
	m.bins[id] = b

	return b
}

// DeleteBins removes the given bin ids. If force is false, an id with no
// registered bin returns ErrUnknownBin and no bins are removed.
func (m *Manager) DeleteBins(ids []int, force bool) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if !force {
		for _, id := range ids {
			if _, ok := m.bins[id]; !ok {
				return fmt.Errorf("binmanager: id %d: %w", id, ErrUnknownBin)
			}
		}
	}
	for _, id := range ids {
		delete(m.bins, id)
	}

	return nil
}

// Bins returns every currently registered bin.
func (m *Manager) Bins() []*bin.Bin {
	m.mu.RLock()
	defer m.mu.RUnlock()

	out := make([]*bin.Bin, 0, len(m.bins))
	for _, b := range m.bins {
		out = append(out, b)
	}

	return out
}

// SaveBins flattens every registered bin's membership into a row-index ->
// bin-id map and hands it to store.WriteBinIDs, then marks the store
// clustered.
func (m *Manager) SaveBins(ctx context.Context, store profile.Store) error {
	m.mu.RLock()
	binIDs := make(map[int]int)
	for _, b := range m.bins {
		for _, i := range b.Members() {
			binIDs[i] = b.ID
		}
	}
	m.mu.RUnlock()

	if err := store.WriteBinIDs(ctx, binIDs); err != nil {
		return fmt.Errorf("binmanager: save bins: %w", err)
	}

	return store.MarkClustered(ctx)
}
