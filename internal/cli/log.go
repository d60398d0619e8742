package cli

import (
	"context"
	"io"
	"time"

	"github.com/charmbracelet/log"
)

// newLogger creates a logger stamping each line with "HH:MM:SS.cc".
func newLogger(w io.Writer, level log.Level) *log.Logger {
	return log.NewWithOptions(w, log.Options{
		ReportTimestamp: true,
		TimeFormat:      "15:04:05.00",
		Level:           level,
	})
}

// progress logs how long a batch took once it is done. Not safe for
// concurrent use.
type progress struct {
	logger *log.Logger
	start  time.Time
	count  int
}

func newProgress(l *log.Logger) *progress {
	return &progress{logger: l, start: time.Now()}
}

// add counts one finished item.
func (p *progress) add() { p.count++ }

// done logs msg with the item count and elapsed time,
// e.g. "Rendered 12 files (41ms)".
func (p *progress) done(msg string) {
	p.logger.Infof("%s %d files (%s)", msg, p.count, time.Since(p.start).Round(time.Millisecond))
}

type ctxKey int

const loggerKey ctxKey = 0

func withLogger(ctx context.Context, l *log.Logger) context.Context {
	return context.WithValue(ctx, loggerKey, l)
}

// loggerFromContext falls back to log.Default() so commands always have a
// logger.
func loggerFromContext(ctx context.Context) *log.Logger {
	if l, ok := ctx.Value(loggerKey).(*log.Logger); ok {
		return l
	}
	return log.Default()
}
