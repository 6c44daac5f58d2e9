package profile

import "context"

var _ Store = (*InMemoryStore)(nil)

// InMemoryStore is a pure in-memory Store implementation, used by tests
// and by the synth-generated fixtures.
type InMemoryStore struct {
	ContigIDs   []string
	Coverage    [][]float64
	Aux         []float64
	Lengths     []int
	ScaleFactor int

	binIDs    map[int]int
	clustered bool
}

// NewInMemoryStore validates the supplied population and returns a ready
// Store. scaleFactor defaults to 1000 when <= 0.
func NewInMemoryStore(contigIDs []string, coverage [][]float64, aux []float64, lengths []int, scaleFactor int) (*InMemoryStore, error) {
	n := len(contigIDs)
	if len(coverage) != n || len(aux) != n || len(lengths) != n {
		return nil, ErrRowCountMismatch
	}
	if n > 0 && len(coverage[0]) < 2 {
		return nil, ErrDimensionTooLow
	}
	if scaleFactor <= 0 {
		scaleFactor = 1000
	}

	return &InMemoryStore{
		ContigIDs: contigIDs, Coverage: coverage, Aux: aux, Lengths: lengths,
		ScaleFactor: scaleFactor,
	}, nil
}

// Load returns every contig at or above lengthCutoff. Row-indices in the
// returned Profile are reassigned densely in filtered order; the caller
// owns translating them back to InMemoryStore's own indexing if needed.
func (s *InMemoryStore) Load(_ context.Context, lengthCutoff int) (Profile, error) {
	var p Profile
	p.ScaleFactor = s.ScaleFactor
	for i, length := range s.Lengths {
		if length < lengthCutoff {
			continue
		}
		p.ContigIDs = append(p.ContigIDs, s.ContigIDs[i])
		p.Coverage = append(p.Coverage, s.Coverage[i])
		p.Aux = append(p.Aux, s.Aux[i])
		p.Lengths = append(p.Lengths, length)
	}

	return p, nil
}

// WriteBinIDs stores the final bin assignment in memory, keyed by the
// row-index space of the last Load call.
func (s *InMemoryStore) WriteBinIDs(_ context.Context, binIDs map[int]int) error {
	s.binIDs = binIDs

	return nil
}

// BinIDs returns the bin assignment written by the last WriteBinIDs call,
// for test inspection.
func (s *InMemoryStore) BinIDs() map[int]int { return s.binIDs }

// MarkClustered records that clustering has run at least once.
func (s *InMemoryStore) MarkClustered(_ context.Context) error {
	s.clustered = true

	return nil
}

// IsClustered reports whether MarkClustered has been called.
func (s *InMemoryStore) IsClustered(_ context.Context) (bool, error) {
	return s.clustered, nil
}
