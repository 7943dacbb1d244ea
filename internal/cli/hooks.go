package cli

import (
	"context"
	"time"

	"github.com/charmbracelet/log"

	"github.com/matzehuels/treemark/pkg/observability"
)

// logHooks reports render events to the CLI logger at debug level.
type logHooks struct {
	observability.NoopRenderHooks
	logger *log.Logger
}

func (h logHooks) OnRenderStart(_ context.Context, strategy string, nodeCount int) {
	h.logger.Debug("Render started", "strategy", strategy, "nodes", nodeCount)
}

func (h logHooks) OnRenderComplete(_ context.Context, strategy string, size int, d time.Duration, err error) {
	if err != nil {
		h.logger.Debug("Render failed", "strategy", strategy, "err", err)
		return
	}
	h.logger.Debug("Render finished", "strategy", strategy, "bytes", size, "duration", d.Round(time.Microsecond))
}
