// Package profile defines the ProfileStore contract: the clustering
// engine's sole external dependency for reading per-contig attributes and
// writing back bin assignments. Two reference implementations are
// provided: InMemoryStore for tests and synthetic fixtures, and
// FASTAStore, which reads contig identifiers/lengths from a FASTA index
// and coverage/aux values from a TSV sidecar.
package profile
