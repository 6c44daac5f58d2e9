package bin

import (
	"math"

	"github.com/groopm/groopm/contig"
	"github.com/groopm/groopm/densitymap"
)

// channel indices into the four per-bin distribution arrays (x, y, z, aux).
const (
	chanX = iota
	chanY
	chanZ
	chanAux
	numChannels
)

// Tolerances bundles the primary (spatial) and auxiliary tolerance
// multipliers Grow applies, plus the per-pass contraction factor.
type Tolerances struct {
	Primary float64
	Aux     float64
	Decay   float64
}

// Bin maintains one cluster's membership, per-channel mean/stdev, and
// inclusion box (lo_d <= hi_d in every channel).
type Bin struct {
	ID      int
	members map[int]struct{}

	mean [numChannels]float64
	std  [numChannels]float64
	lo   [numChannels]float64
	hi   [numChannels]float64
}

// New returns a Bin seeded with the given initial row-indices.
func New(id int, members []int) *Bin {
	set := make(map[int]struct{}, len(members))
	for _, i := range members {
		set[i] = struct{}{}
	}

	return &Bin{ID: id, members: set}
}

// Members returns the bin's current row-indices in unspecified order
// (the ordering guarantee covers bin-id assignment only, not
// membership order).
func (b *Bin) Members() []int {
	out := make([]int, 0, len(b.members))
	for i := range b.members {
		out = append(out, i)
	}

	return out
}

// Size returns the current membership count.
func (b *Bin) Size() int { return len(b.members) }

// MakeDist recomputes the per-channel mean/stdev over the current
// membership and the inclusion box: spatial channels use
// [mean-tauP*std, mean+tauP*std+1], the auxiliary channel uses
// [mean-tauK*std, mean+tauK*std] (non-rounded, no "+1" margin).
func (b *Bin) MakeDist(pos []contig.Position, aux []float64, tauP, tauK float64) error {
	if len(b.members) == 0 {
		return ErrEmptyMembership
	}

	var sum, sumSq [numChannels]float64
	n := float64(len(b.members))
	for i := range b.members {
		v := [numChannels]float64{
			float64(pos[i].X), float64(pos[i].Y), float64(pos[i].Z), aux[i],
		}
		for c := 0; c < numChannels; c++ {
			sum[c] += v[c]
			sumSq[c] += v[c] * v[c]
		}
	}
	for c := 0; c < numChannels; c++ {
		mean := sum[c] / n
		variance := sumSq[c]/n - mean*mean
		if variance < 0 {
			variance = 0
		}
		b.mean[c] = mean
		b.std[c] = math.Sqrt(variance)
	}

	for c := 0; c < chanAux; c++ {
		b.lo[c] = b.mean[c] - tauP*b.std[c]
		b.hi[c] = b.mean[c] + tauP*b.std[c] + 1
	}
	b.lo[chanAux] = b.mean[chanAux] - tauK*b.std[chanAux]
	b.hi[chanAux] = b.mean[chanAux] + tauK*b.std[chanAux]

	return nil
}

// Box returns the current inclusion box (lo, hi) for channel c.
func (b *Bin) Box(c int) (lo, hi float64) { return b.lo[c], b.hi[c] }

// Grow repeatedly recomputes the distribution and scans every lattice cell
// inside the spatial inclusion box, admitting any unassigned row-index
// there whose auxiliary value lies in the k-box. Each subsequent pass
// contracts both tolerances by tol.Decay; growth terminates when a pass
// admits zero new members, and the tolerances used are local to this call
// (the bin stores only the final distribution, not the contracted
// tolerances). Returns the total number of members admitted across all
// passes.
func (b *Bin) Grow(
	pos []contig.Position,
	aux []float64,
	g *densitymap.Map,
	state *contig.AssignmentTracker,
	tol Tolerances,
) int {
	tauP, tauK := tol.Primary, tol.Aux
	totalAdmitted := 0

	for {
		if err := b.MakeDist(pos, aux, tauP, tauK); err != nil {
			break
		}

		admitted := b.admitPass(aux, g, state)
		totalAdmitted += admitted
		if admitted == 0 {
			break
		}
		tauP *= tol.Decay
		tauK *= tol.Decay
	}

	return totalAdmitted
}

func (b *Bin) admitPass(aux []float64, g *densitymap.Map, state *contig.AssignmentTracker) int {
	scale := g.Scale()
	xLo, xHi := clampRange(b.lo[chanX], b.hi[chanX], scale)
	yLo, yHi := clampRange(b.lo[chanY], b.hi[chanY], scale)
	zLo, zHi := clampRange(b.lo[chanZ], b.hi[chanZ], scale)
	kLo, kHi := b.lo[chanAux], b.hi[chanAux]

	admitted := 0
	for x := xLo; x <= xHi; x++ {
		for y := yLo; y <= yHi; y++ {
			for z := zLo; z <= zHi; z++ {
				for _, i := range g.RowsAt(contig.Position{X: x, Y: y, Z: z}) {
					if _, already := b.members[i]; already {
						continue
					}
					if !state.IsUnassigned(i) {
						continue
					}
					if aux[i] < kLo || aux[i] > kHi {
						continue
					}
					b.members[i] = struct{}{}
					admitted++
				}
			}
		}
	}

	return admitted
}

func clampRange(lo, hi float64, scale int) (int, int) {
	l := int(math.Floor(lo))
	h := int(math.Ceil(hi))
	if l < 0 {
		l = 0
	}
	if h > scale-1 {
		h = scale - 1
	}

	return l, h
}
