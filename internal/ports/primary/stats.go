package primary

import (
	"context"

	"github.com/example/jobtrack/internal/core/stats"
)

// StatsService defines the primary port for the statistics engine.
type StatsService interface {
	// ComputeStatistics derives statistics from the current record set.
	ComputeStatistics(ctx context.Context) (*stats.Statistics, error)
}
