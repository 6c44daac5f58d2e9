package groopmlog

import (
	"os"

	logging "github.com/op/go-logging"
)

var format = logging.MustStringFormatter(
	`%{time:15:04:05.000} %{shortfunc} ▶ %{level:.4s} %{message}`,
)

// BackendFormatter is the process-wide formatted backend. cmd/groopm's main
// installs it once via logging.SetBackend(groopmlog.BackendFormatter).
var BackendFormatter = logging.NewBackendFormatter(logging.NewLogBackend(os.Stderr, "", 0), format)

// New returns a module-scoped logger. Every consuming package declares its
// own package-level `var log = groopmlog.New("<package>")`.
func New(module string) *logging.Logger {
	return logging.MustGetLogger(module)
}

// SetLevel sets the minimum severity logged across every module.
func SetLevel(level logging.Level) {
	logging.SetLevel(level, "")
}
