package scheme

import (
	"fmt"
	"os"
	"time"
)

// paintStats holds per-pass query/draw metrics.
// Only populated when Config.Debug is true.
type paintStats struct {
	queryTime   time.Duration
	drawTime    time.Duration
	nodeCount   int
	objectCount int
	errorCount  int
}

// debugLog prints pass metrics to stderr.
func (r *Renderer) debugLog(stats paintStats) {
	if !r.debug {
		return
	}
	_, _ = fmt.Fprintf(os.Stderr,
		"[scheme] query: %v | draw: %v | nodes: %d | objects: %d | errors: %d\n",
		stats.queryTime, stats.drawTime, stats.nodeCount, stats.objectCount, stats.errorCount)
}
