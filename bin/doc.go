// Package bin implements one cluster's membership, per-channel
// distribution, and the growth pass that recruits nearby unassigned
// contigs with tolerance contraction on each successive pass.
package bin
