package profile

import "context"

// Profile is the filtered (length-cutoff-applied) contig population a
// Store.Load call returns.
type Profile struct {
	ContigIDs   []string
	Coverage    [][]float64 // N x D, D >= 2
	Aux         []float64   // N, normalized [0,1]
	Lengths     []int       // N, > 0
	ScaleFactor int
}

// Store is the clustering engine's sole external collaborator: read access
// to contig attributes, write access for the final bin assignment. It is
// read-only during clustering and write-only at the end: the engine never
// interleaves reads and writes against the same Store instance.
type Store interface {
	Load(ctx context.Context, lengthCutoff int) (Profile, error)
	WriteBinIDs(ctx context.Context, binIDs map[int]int) error
	MarkClustered(ctx context.Context) error
	IsClustered(ctx context.Context) (bool, error)
}
