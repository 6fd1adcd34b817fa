package drop

import (
	"time"

	"go.uber.org/zap"
)

// debugStats holds per-frame timing and draw metrics.
// Only populated when debug mode is enabled.
type debugStats struct {
	updateTime time.Duration
	drawTime   time.Duration
	drops      int
	splashes   int
	render     RenderStats
}

// debugLogInterval is how many frames pass between debug stat lines.
const debugLogInterval = 60

// debugLog writes timing and draw stats once every debugLogInterval frames.
func (g *Game) debugLog() {
	if !g.cfg.Debug.Enabled {
		return
	}
	g.debugFrames++
	if g.debugFrames < debugLogInterval {
		return
	}
	g.debugFrames = 0
	st := g.stats
	g.log.Debug("frame",
		zap.Duration("update", st.updateTime),
		zap.Duration("draw", st.drawTime),
		zap.Int("drops", st.drops),
		zap.Int("splashes", st.splashes),
		zap.Int("commands", st.render.Commands),
		zap.Int("batches", st.render.Batches),
	)
}

// debugMaxDrops is the active drop count above which a warning is logged.
// Drops are culled once below the screen, so growth past this means the
// fall speed is too slow for the spawn rate.
const debugMaxDrops = 1000

func (g *Game) debugCheckDropCount() {
	if len(g.drops) > debugMaxDrops && !g.warnedDrops {
		g.warnedDrops = true
		g.log.Warn("active drop count exceeds threshold",
			zap.Int("drops", len(g.drops)), zap.Int("threshold", debugMaxDrops))
	}
}
