// Package contig holds the data model shared across the clustering
// pipeline: the immutable Contig record, its transformed lattice Position,
// and the process-wide row-index assignment state machine.
//
// Nothing in this package performs clustering; it only defines the records
// every other package reads and mutates.
package contig
