// Package obslog wires structured, leveled logging around the CLI and
// around the search cores, using github.com/hashicorp/go-hclog the way the
// pack's production scheduler does throughout its agent and command
// layers. pkg/prcpsp and pkg/search never import this package directly; a
// logger built here is threaded into them as a plain hclog.Logger value.
package obslog

import (
	"io"
	"os"

	"github.com/google/uuid"
	"github.com/hashicorp/go-hclog"
)

// Options configures the root logger.
type Options struct {
	Name   string
	Level  hclog.Level
	Output io.Writer
	JSON   bool
}

// New builds a named, leveled root logger. A zero Options builds an Info
// level, human-readable logger writing to stderr.
func New(opts Options) hclog.Logger {
	if opts.Output == nil {
		opts.Output = os.Stderr
	}
	if opts.Level == hclog.NoLevel {
		opts.Level = hclog.Info
	}
	if opts.Name == "" {
		opts.Name = "prcpsp"
	}
	return hclog.New(&hclog.LoggerOptions{
		Name:       opts.Name,
		Level:      opts.Level,
		Output:     opts.Output,
		JSONFormat: opts.JSON,
	})
}

// WithRunID returns logger with a run_id field set to a freshly generated
// UUID, so log lines from concurrent manual invocations sharing one log
// directory can be told apart.
func WithRunID(logger hclog.Logger) (hclog.Logger, string) {
	id := uuid.NewString()
	return logger.With("run_id", id), id
}
