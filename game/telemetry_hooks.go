package game

import (
	"log/slog"

	"github.com/pthm-cable/snake/telemetry"
)

// recordSession writes a finished session and handles windows and bookmarks.
func (g *Game) recordSession(r telemetry.SessionRecord) {
	if err := g.outputManager.WriteSession(r); err != nil {
		slog.Error("failed to write session", "error", err)
	}

	if summary, ok := g.collector.Add(r); ok {
		g.writeSummary(summary)
	}

	bookmarks := g.bookmarks.Check(r)
	for _, bm := range bookmarks {
		if g.logStats {
			bm.LogBookmark()
		}
		if err := g.outputManager.WriteBookmark(bm); err != nil {
			slog.Error("failed to write bookmark", "error", err)
		}
	}
}

func (g *Game) writeSummary(s telemetry.Summary) {
	if g.logStats {
		s.LogStats()
	}
	if err := g.outputManager.WriteSummary(s); err != nil {
		slog.Error("failed to write summary", "error", err)
	}
}

// flushPerf reports tick timing at the end of each perf window.
func (g *Game) flushPerf(tick uint64) {
	stats := g.perfCollector.Stats()
	if g.logStats {
		stats.LogStats()
	}
	if err := g.outputManager.WritePerf(stats, tick); err != nil {
		slog.Error("failed to write perf", "error", err)
	}
}

// flushTelemetry writes any partial summary window.
func (g *Game) flushTelemetry() {
	if summary, ok := g.collector.Flush(); ok {
		g.writeSummary(summary)
	}
}
