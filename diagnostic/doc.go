// Package diagnostic exports density-map snapshots as WebP heat-map
// images, supplementing the connected-region flood fill in densitymap with
// a human-viewable artifact. It is never on the clustering hot path; no
// code in this module calls it.
package diagnostic
