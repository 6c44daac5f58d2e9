// Package binmanager owns the finalized set of bins: the quality gate
// (IsGoodBin), bin allocation, deletion, and persistence hand-off. It is
// shared, long-lived state across one clustering run, exclusively owned by
// the engine for the duration of MakeCores.
package binmanager
