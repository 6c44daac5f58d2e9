package cluster

import (
	"context"
	"fmt"

	"github.com/groopm/groopm/bin"
	"github.com/groopm/groopm/binmanager"
	"github.com/groopm/groopm/contig"
	"github.com/groopm/groopm/densitymap"
	"github.com/groopm/groopm/groopmlog"
	"github.com/groopm/groopm/partition"
	"github.com/groopm/groopm/profile"
	"github.com/groopm/groopm/transform"
)

var log = groopmlog.New("cluster")

// relaxedMinSize is the minimum membership the round's candidate set must
// clear before any Bin is grown from it. It is fixed, independent of
// cfg.MinSize (which gates the grown bin itself); both are 5 at the
// defaults.
const relaxedMinSize = 5

// Engine drives one clustering run end to end: load, transform, densify,
// and repeatedly carve bins out of the density lattice until breakout.
type Engine struct {
	cfg   Config
	store profile.Store
	bins  *binmanager.Manager
	xform *transform.Transformer
}

// NewEngine returns an Engine wired to store for I/O and bins for bin
// bookkeeping. The Transformer is derived from cfg's ScaleFactor and
// PhiMax.
func NewEngine(cfg Config, store profile.Store, bins *binmanager.Manager) *Engine {
	return &Engine{
		cfg:   cfg,
		store: store,
		bins:  bins,
		xform: transform.New(cfg.ScaleFactor, cfg.PhiMax),
	}
}

// Summary reports the outcome of a MakeCores run.
type Summary struct {
	ContigsLoaded     int
	ContigsBinned     int
	ContigsRestricted int
	BinCount          int
	Rounds            int
}

// MakeCores runs the full round loop: load the profile,
// transform coverage onto the lattice, then repeatedly blur, find the
// densest peak, re-densify its column, partition the candidates there,
// grow a bin from each surviving partition, and decrement the map for
// every admitted member — until Breakout consecutive rounds fail to
// produce a good bin. Bin assignments are persisted via store before
// returning.
func (e *Engine) MakeCores(ctx context.Context, lengthCutoff int) (Summary, error) {
	prof, err := e.store.Load(ctx, lengthCutoff)
	if err != nil {
		return Summary{}, fmt.Errorf("cluster: load profile: %w", err)
	}
	if len(prof.ContigIDs) == 0 {
		return Summary{}, ErrEmptyProfile
	}

	positions, _, err := e.xform.Transform(prof.Coverage)
	if err != nil {
		log.Errorf("cluster: transform: %v", err)
		return Summary{}, fmt.Errorf("cluster: transform: %w", err)
	}

	state := contig.NewAssignmentTracker(len(prof.ContigIDs))
	densityMap := densitymap.New(e.cfg.ScaleFactor, e.cfg.NumImgMaps)
	densityMap.Populate(positions, prof.Lengths, state)

	// restrict marks rows Restricted and removes them from the maps and G.
	restrict := func(rows []int) {
		for _, i := range rows {
			if err := state.Restrict(i); err != nil {
				log.Warningf("cluster: restrict %d: %v", i, err)
				continue
			}
			densityMap.Decrement(i, positions[i], prof.Lengths[i])
		}
	}

	noGoodCount := 0
	rounds := 0
	for noGoodCount < e.cfg.Breakout {
		select {
		case <-ctx.Done():
			return Summary{}, ctx.Err()
		default:
		}
		rounds++

		densityMap.Blur(e.cfg.BlurSigma)
		_, x0, y0 := densityMap.Peak()
		xs, ys, zs := densityMap.ColumnDensify(x0, y0, e.cfg.Span, prof.Lengths)

		candidates := collectCandidates(densityMap, xs, ys, zs, e.cfg.Span, state)
		if len(candidates) < 2 {
			log.Debugf("cluster: round %d: degenerate peak with %d candidate(s)", rounds, len(candidates))
			restrict(candidates)
			noGoodCount++
			continue
		}

		totalBP := 0
		for _, i := range candidates {
			totalBP += prof.Lengths[i]
		}
		if !e.bins.IsGoodBin(totalBP, len(candidates), relaxedMinSize) {
			log.Debugf("cluster: round %d: %d candidates below the quality gate", rounds, len(candidates))
			restrict(candidates)
			noGoodCount++
			continue
		}

		kVals := make([]float64, len(candidates))
		covZVals := make([]float64, len(candidates))
		for i, idx := range candidates {
			kVals[i] = prof.Aux[idx]
			covZVals[i] = float64(positions[idx].Z)
		}

		pcfg := partition.Config{
			StdevCut: e.cfg.PartitionStdevCut,
			Spread:   e.cfg.PartitionSpread,
			Bounce:   e.cfg.Bounce,
		}
		groups := partition.Compose(candidates, kVals, covZVals, pcfg)

		roundGoodCount := 0
		for _, group := range groups {
			if len(group) < 2 {
				continue
			}
			b := e.bins.MakeNewBin(group)
			tol := bin.Tolerances{
				Primary: e.cfg.PrimaryTolerance,
				Aux:     e.cfg.AuxTolerance,
				Decay:   e.cfg.ToleranceDecay,
			}
			b.Grow(positions, prof.Aux, densityMap, state, tol)

			grownBP := 0
			for _, i := range b.Members() {
				grownBP += prof.Lengths[i]
			}

			if e.bins.IsGoodBin(grownBP, b.Size(), e.cfg.MinSize) {
				for _, i := range b.Members() {
					if err := state.Bin(i); err != nil {
						log.Warningf("cluster: bin %d member %d: %v", b.ID, i, err)
						continue
					}
					densityMap.Decrement(i, positions[i], prof.Lengths[i])
				}
				roundGoodCount++
			} else {
				restrict(b.Members())
				if err := e.bins.DeleteBins([]int{b.ID}, true); err != nil {
					log.Warningf("cluster: delete bin %d: %v", b.ID, err)
				}
			}
		}

		if roundGoodCount > 0 {
			noGoodCount = 0
		} else {
			noGoodCount++
		}
		_, binnedSoFar, _ := state.Counts()
		log.Infof("cluster: round %d: %d contigs binned so far", rounds, binnedSoFar)
	}

	if err := e.bins.SaveBins(ctx, e.store); err != nil {
		return Summary{}, fmt.Errorf("cluster: save bins: %w", err)
	}

	_, binned, restricted := state.Counts()

	return Summary{
		ContigsLoaded:     len(prof.ContigIDs),
		ContigsBinned:     binned,
		ContigsRestricted: restricted,
		BinCount:          len(e.bins.Bins()),
		Rounds:            rounds,
	}, nil
}

// collectCandidates gathers every unassigned row-index within a
// (+-span, +-span, +-2*span) box around (x,y,z).
func collectCandidates(g *densitymap.Map, x, y, z, span int, state *contig.AssignmentTracker) []int {
	scale := g.Scale()
	clamp := func(v, lo, hi int) int {
		if v < lo {
			return lo
		}
		if v > hi {
			return hi
		}
		return v
	}

	xlo, xhi := clamp(x-span, 0, scale-1), clamp(x+span, 0, scale-1)
	ylo, yhi := clamp(y-span, 0, scale-1), clamp(y+span, 0, scale-1)
	zlo, zhi := clamp(z-2*span, 0, scale-1), clamp(z+2*span, 0, scale-1)

	rows := g.RowsInBox(xlo, xhi, ylo, yhi, zlo, zhi)
	out := rows[:0]
	for _, i := range rows {
		if state.IsUnassigned(i) {
			out = append(out, i)
		}
	}

	return out
}
