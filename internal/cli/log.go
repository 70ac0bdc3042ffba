// Package cli implements the cartesian command-line interface.
//
// The commands render chart specs to SVG, PNG or PDF, browse the laid-out
// regions of a chart, serve the renderer over HTTP and manage the artifact
// cache:
//   - render: render a TOML or JSON chart spec to one or more formats
//   - inspect: browse the regions of a chart frame
//   - serve: serve the renderer as an HTTP API
//   - config: show the effective settings
//   - cache: clear or locate the artifact cache
//
// Status lines go to stdout and log records to the writer passed to [New].
// --verbose lowers the log level to debug, which adds frame construction and
// cache lookups to the output. Commands find the logger, and the HTTP
// handlers the request ID, through the context.
//
//	c := cli.New(os.Stderr, cli.LogInfo)
//	err := c.RootCommand().ExecuteContext(ctx)
package cli

import (
	"context"
	"io"
	"time"

	"github.com/charmbracelet/log"
)

// newLogger returns a logger stamping records with wall-clock time to the
// hundredth of a second, e.g. "14:32:01.45".
func newLogger(w io.Writer, level log.Level) *log.Logger {
	return log.NewWithOptions(w, log.Options{
		ReportTimestamp: true,
		TimeFormat:      "15:04:05.00",
		Level:           level,
	})
}

// progress logs how long a render or cache operation took.
type progress struct {
	logger *log.Logger
	start  time.Time
}

func newProgress(l *log.Logger) *progress {
	return &progress{logger: l, start: time.Now()}
}

// done logs "msg (12ms)".
func (p *progress) done(msg string) {
	p.logger.Infof("%s (%s)", msg, time.Since(p.start).Round(time.Millisecond))
}

type ctxKey int

const (
	loggerKey ctxKey = iota
	requestIDKey
)

func withLogger(ctx context.Context, l *log.Logger) context.Context {
	return context.WithValue(ctx, loggerKey, l)
}

// loggerFromContext falls back to log.Default for contexts that did not pass
// through the root command, such as handler tests.
func loggerFromContext(ctx context.Context) *log.Logger {
	if l, ok := ctx.Value(loggerKey).(*log.Logger); ok {
		return l
	}
	return log.Default()
}
