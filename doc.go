// Package groopm implements density-based contig clustering for
// metagenomic binning.
//
// A set of assembled contigs, each with a per-sample coverage profile and
// a k-mer signature, is mapped onto a 3D lattice (transform), accumulated
// into a density field (densitymap), and repeatedly carved into bins by
// finding density peaks, partitioning the contigs found there along both
// the coverage and k-mer axes (partition), and growing a bin around each
// surviving partition until it stabilizes (bin). The round loop itself
// lives in cluster; binmanager owns the resulting bin set and persists it
// through a profile.Store.
//
// Subpackages:
//
//	contig/       — per-contig state and the exclusive assignment tracker
//	transform/    — coverage -> lattice coordinate mapping
//	densitymap/   — density field, blur, peak-finding, column re-densification
//	centerfinder/ — ballistic 1D density-center search
//	partition/    — greedy window expansion and two-axis composition
//	bin/          — per-bin distribution and recruitment
//	binmanager/   — bin-set bookkeeping and persistence
//	profile/      — contig attribute storage (FASTA+sidecar, in-memory)
//	cluster/      — the round-loop engine tying the above together
//	diagnostic/   — optional WebP heat-map export
//	synth/        — synthetic contig population generators, for tests
//	matrix/       — dense matrix ops (PCA support for transform)
//	groopmlog/    — logging façade
//	cmd/groopm/   — CLI entrypoint
package groopm
