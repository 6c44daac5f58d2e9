package profile

import (
	"bufio"
	"context"
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/shenwei356/bio/seqio/fai"

	"github.com/groopm/groopm/groopmlog"
)

var log = groopmlog.New("profile")

var _ Store = (*FASTAStore)(nil)

// FASTAStore reads contig identifiers and lengths from a FASTA file's .fai
// index (github.com/shenwei356/bio/seqio/fai), and per-contig coverage/k-mer
// signature from a plain TSV sidecar — coverage and k-mer summaries are not
// FASTA-derivable, so they are read from a side channel instead.
//
// Sidecar format: one row per contig, tab-separated:
// <contig_id> <aux> <cov_1> <cov_2> ... <cov_D>
type FASTAStore struct {
	FastaPath   string
	SidecarPath string
	ScaleFactor int

	binPath string
}

// NewFASTAStore returns a Store backed by the given FASTA file and
// coverage/aux sidecar. binPath is where WriteBinIDs persists the final
// assignment (one "<row_index>\t<bin_id>" row per binned contig).
func NewFASTAStore(fastaPath, sidecarPath, binPath string, scaleFactor int) *FASTAStore {
	if scaleFactor <= 0 {
		scaleFactor = 1000
	}

	return &FASTAStore{FastaPath: fastaPath, SidecarPath: sidecarPath, ScaleFactor: scaleFactor, binPath: binPath}
}

// Load reads contig lengths from the FASTA index, coverage/aux from the
// sidecar, and returns every contig at or above lengthCutoff.
func (s *FASTAStore) Load(_ context.Context, lengthCutoff int) (Profile, error) {
	log.Infof("profile: parsing FASTA index `%s`", s.FastaPath)
	faidx, err := fai.New(s.FastaPath)
	if err != nil {
		return Profile{}, fmt.Errorf("profile: fai.New: %w", err)
	}
	defer faidx.Close()

	lengths := make(map[string]int, len(faidx.Index))
	for name, rec := range faidx.Index {
		lengths[name] = rec.Length
	}

	f, err := os.Open(s.SidecarPath)
	if err != nil {
		return Profile{}, fmt.Errorf("profile: open sidecar: %w", err)
	}
	defer f.Close()

	var p Profile
	p.ScaleFactor = s.ScaleFactor

	scanner := bufio.NewScanner(f)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}
		fields := strings.Split(line, "\t")
		if len(fields) < 3 {
			continue
		}
		id := fields[0]
		length, ok := lengths[id]
		if !ok {
			return Profile{}, fmt.Errorf("profile: %w: %q", ErrSidecarMismatch, id)
		}
		if length < lengthCutoff {
			continue
		}
		aux, err := strconv.ParseFloat(fields[1], 64)
		if err != nil {
			return Profile{}, fmt.Errorf("profile: parse aux for %q: %w", id, err)
		}
		coverage := make([]float64, 0, len(fields)-2)
		for _, raw := range fields[2:] {
			v, err := strconv.ParseFloat(raw, 64)
			if err != nil {
				return Profile{}, fmt.Errorf("profile: parse coverage for %q: %w", id, err)
			}
			coverage = append(coverage, v)
		}
		if len(coverage) < 2 {
			return Profile{}, fmt.Errorf("profile: %q: %w", id, ErrDimensionTooLow)
		}

		p.ContigIDs = append(p.ContigIDs, id)
		p.Coverage = append(p.Coverage, coverage)
		p.Aux = append(p.Aux, aux)
		p.Lengths = append(p.Lengths, length)
	}
	if err := scanner.Err(); err != nil {
		return Profile{}, fmt.Errorf("profile: scan sidecar: %w", err)
	}

	return p, nil
}

// WriteBinIDs writes one "<row_index>\t<bin_id>" row per assigned contig to
// binPath. binIDs is keyed by the row-index space of the last Load call
// (sidecar order, after the length cutoff); the file carries no contig
// identifiers.
func (s *FASTAStore) WriteBinIDs(_ context.Context, binIDs map[int]int) error {
	f, err := os.Create(s.binPath)
	if err != nil {
		return fmt.Errorf("profile: create bin output: %w", err)
	}
	defer f.Close()

	w := bufio.NewWriter(f)
	defer w.Flush()
	for idx, binID := range binIDs {
		if _, err := fmt.Fprintf(w, "%d\t%d\n", idx, binID); err != nil {
			return fmt.Errorf("profile: write bin output: %w", err)
		}
	}

	return nil
}

// MarkClustered touches a sentinel file next to binPath recording that
// clustering has run at least once.
func (s *FASTAStore) MarkClustered(_ context.Context) error {
	f, err := os.Create(s.binPath + ".clustered")
	if err != nil {
		return fmt.Errorf("profile: mark clustered: %w", err)
	}

	return f.Close()
}

// IsClustered reports whether the sentinel file from MarkClustered exists.
func (s *FASTAStore) IsClustered(_ context.Context) (bool, error) {
	_, err := os.Stat(s.binPath + ".clustered")
	if err == nil {
		return true, nil
	}
	if os.IsNotExist(err) {
		return false, nil
	}

	return false, err
}
