package cluster_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/groopm/groopm/cluster"
	"github.com/groopm/groopm/binmanager"
	"github.com/groopm/groopm/profile"
	"github.com/groopm/groopm/synth"
)

func testConfig(opts ...cluster.Option) cluster.Config {
	base := []cluster.Option{
		cluster.WithScaleFactor(200),
		cluster.WithSpan(10),
		cluster.WithMinSize(5),
		cluster.WithMinVol(500),
		cluster.WithBreakout(10),
	}
	return cluster.NewConfig(append(base, opts...)...)
}

func newEngine(t *testing.T, f *synth.Fixture, cfg cluster.Config) (*cluster.Engine, profile.Store, *binmanager.Manager) {
	t.Helper()
	store, err := profile.NewInMemoryStore(f.IDs, f.Coverage, f.Aux, f.Lengths, cfg.ScaleFactor)
	require.NoError(t, err)
	mgr := binmanager.New(cfg.MinSize, cfg.MinVol)
	return cluster.NewEngine(cfg, store, mgr), store, mgr
}

// A single isotropic blob should yield at least one good bin with members,
// and the run should mark the store clustered.
func TestMakeCores_SingleBlob_YieldsOneBin(t *testing.T) {
	f, err := synth.Blob(80, []float64{10, 10, 10}, 0.5,
		synth.WithSeed(1), synth.WithLengthFn(synth.ConstantLengthFn(2000)))
	require.NoError(t, err)

	cfg := testConfig()
	engine, store, _ := newEngine(t, f, cfg)

	summary, err := engine.MakeCores(context.Background(), 0)
	require.NoError(t, err)
	require.GreaterOrEqual(t, summary.BinCount, 1)
	require.Greater(t, summary.ContigsBinned, 0)

	clustered, err := store.IsClustered(context.Background())
	require.NoError(t, err)
	require.True(t, clustered)
}

// Three well-separated blobs should yield multiple distinct bins rather
// than one undifferentiated mass.
func TestMakeCores_MultiBlob_YieldsMultipleBins(t *testing.T) {
	centers := [][]float64{
		{5, 5, 5},
		{100, 100, 5},
		{5, 100, 100},
	}
	f, err := synth.MultiBlob(150, centers, 0.5,
		synth.WithSeed(2), synth.WithLengthFn(synth.ConstantLengthFn(2000)))
	require.NoError(t, err)

	cfg := testConfig(cluster.WithBreakout(20))
	engine, _, _ := newEngine(t, f, cfg)

	summary, err := engine.MakeCores(context.Background(), 0)
	require.NoError(t, err)
	require.GreaterOrEqual(t, summary.BinCount, 2)
}

// A blob split into two auxiliary-channel modes (e.g. two species sharing
// one coverage niche) goes through the k-axis partition and should still
// yield at least one good bin.
func TestMakeCores_AuxSplitBlob_SeparatesByAux(t *testing.T) {
	f, err := synth.AuxSplitBlob(100, []float64{20, 20, 20}, 0.5, []float64{0.1, 0.9}, 0.02,
		synth.WithSeed(3), synth.WithLengthFn(synth.ConstantLengthFn(2000)))
	require.NoError(t, err)

	cfg := testConfig(cluster.WithBreakout(20))
	engine, _, _ := newEngine(t, f, cfg)

	summary, err := engine.MakeCores(context.Background(), 0)
	require.NoError(t, err)
	require.GreaterOrEqual(t, summary.BinCount, 1)
}

// Uniform sparse noise has no dense peak worth a bin; MakeCores must
// terminate via breakout rather than looping or panicking, leaving most
// contigs unbinned.
func TestMakeCores_SparseNoise_TerminatesWithFewBins(t *testing.T) {
	f, err := synth.SparseNoise(60, 3, 0, 200,
		synth.WithSeed(4), synth.WithLengthFn(synth.ConstantLengthFn(2000)))
	require.NoError(t, err)

	cfg := testConfig(cluster.WithBreakout(5))
	engine, _, _ := newEngine(t, f, cfg)

	summary, err := engine.MakeCores(context.Background(), 0)
	require.NoError(t, err)
	require.Less(t, summary.ContigsBinned, summary.ContigsLoaded)
}

// A length cutoff should exclude short contigs from the run entirely.
func TestMakeCores_LengthCutoff_ExcludesShortContigs(t *testing.T) {
	f, err := synth.Blob(50, []float64{10, 10, 10}, 0.5,
		synth.WithSeed(5), synth.WithLengthFn(synth.UniformLengthFn(100, 5000)))
	require.NoError(t, err)

	cfg := testConfig()
	store, err := profile.NewInMemoryStore(f.IDs, f.Coverage, f.Aux, f.Lengths, cfg.ScaleFactor)
	require.NoError(t, err)

	loaded, err := store.Load(context.Background(), 0)
	require.NoError(t, err)
	cutoffLoaded, err := store.Load(context.Background(), 2000)
	require.NoError(t, err)
	require.LessOrEqual(t, len(cutoffLoaded.ContigIDs), len(loaded.ContigIDs))

	engine := cluster.NewEngine(cfg, store, binmanager.New(cfg.MinSize, cfg.MinVol))
	summary, err := engine.MakeCores(context.Background(), 2000)
	require.NoError(t, err)
	require.Equal(t, len(cutoffLoaded.ContigIDs), summary.ContigsLoaded)
}

// Running MakeCores against an empty profile store surfaces
// ErrEmptyProfile rather than silently returning a zero Summary.
func TestMakeCores_EmptyProfile_ReturnsError(t *testing.T) {
	store, err := profile.NewInMemoryStore(nil, nil, nil, nil, 200)
	require.NoError(t, err)

	cfg := testConfig()
	engine := cluster.NewEngine(cfg, store, binmanager.New(cfg.MinSize, cfg.MinVol))

	_, err = engine.MakeCores(context.Background(), 0)
	require.ErrorIs(t, err, cluster.ErrEmptyProfile)
}
