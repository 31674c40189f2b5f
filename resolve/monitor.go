package resolve

import (
	"log/slog"

	"github.com/poiesic/brandsearch/core"
	"github.com/poiesic/brandsearch/query"
)

// Monitor provides hooks to observe the resolution pipeline.
// Implement this interface to track intermediate steps during resolution.
type Monitor interface {
	Start(intent query.Intent, recordCount int)
	AfterExpansion(assets []core.Asset)
	AfterBoundary(assets []core.Asset)
	AfterFilters(assets []core.Asset)
	Finish(assets []core.Asset)
}

// noopMonitor is a no-op implementation of Monitor
type noopMonitor struct{}

var _ Monitor = (*noopMonitor)(nil)

func (n *noopMonitor) Start(_ query.Intent, _ int)   {}
func (n *noopMonitor) AfterExpansion(_ []core.Asset) {}
func (n *noopMonitor) AfterBoundary(_ []core.Asset)  {}
func (n *noopMonitor) AfterFilters(_ []core.Asset)   {}
func (n *noopMonitor) Finish(_ []core.Asset)         {}

// LogMonitor logs each pipeline stage at debug level.
type LogMonitor struct {
	logger *slog.Logger
}

var _ Monitor = (*LogMonitor)(nil)

// NewLogMonitor creates a monitor that logs stage counts to logger.
func NewLogMonitor(logger *slog.Logger) *LogMonitor {
	if logger == nil {
		logger = slog.Default()
	}
	return &LogMonitor{logger: logger}
}

func (m *LogMonitor) Start(intent query.Intent, recordCount int) {
	m.logger.Debug("resolution started",
		"intent", string(intent.Type),
		"product", intent.Product,
		"records", recordCount)
}

func (m *LogMonitor) AfterExpansion(assets []core.Asset) {
	m.logger.Debug("records expanded", "assets", len(assets))
}

func (m *LogMonitor) AfterBoundary(assets []core.Asset) {
	m.logger.Debug("product boundary applied", "assets", len(assets))
}

func (m *LogMonitor) AfterFilters(assets []core.Asset) {
	m.logger.Debug("filters applied", "assets", len(assets))
}

func (m *LogMonitor) Finish(assets []core.Asset) {
	m.logger.Debug("resolution finished", "assets", len(assets))
}
