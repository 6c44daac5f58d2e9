// Package groopmlog is the structured logging façade shared by every
// clustering package. It wraps github.com/op/go-logging behind a
// package-level *logging.Logger per consuming package, backed by one
// process-wide formatted backend.
package groopmlog
