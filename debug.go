package tinsel

import (
	"io"
	"os"
	"time"

	"github.com/charmbracelet/log"
)

// NewLogger creates a logger writing to w (stderr when nil) at the given
// level. Timestamps are formatted as "HH:MM:SS.ms".
func NewLogger(w io.Writer, level log.Level) *log.Logger {
	if w == nil {
		w = os.Stderr
	}
	return log.NewWithOptions(w, log.Options{
		ReportTimestamp: true,
		TimeFormat:      "15:04:05.00",
		Level:           level,
		Prefix:          "tinsel",
	})
}

// frameStats holds per-frame timing and workload.
// Only populated when debug mode is on.
type frameStats struct {
	updateTime time.Duration
	particles  int
	timers     int
	busy       bool
}

// SetDebugMode enables or disables debug mode. When enabled, the logger is
// lowered to debug level and per-frame timing stats are logged.
func (s *Show) SetDebugMode(enabled bool) {
	s.debug = enabled
	if enabled {
		s.logger.SetLevel(log.DebugLevel)
	}
}

// debugLog logs one frame's stats.
func (s *Show) debugLog(stats frameStats) {
	if !s.debug {
		return
	}
	s.logger.Debug("frame",
		"update", stats.updateTime,
		"particles", stats.particles,
		"timers", stats.timers,
		"busy", stats.busy)
}
