// Package cluster drives the density-based clustering round loop: blur the
// density maps, find the peak, re-densify its column, partition the
// candidate contigs there, grow a Bin from each surviving partition, and
// decrement the maps for every admitted member — until breakout.
package cluster
