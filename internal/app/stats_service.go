package app

import (
	"context"
	"fmt"

	"github.com/example/jobtrack/internal/core/stats"
	"github.com/example/jobtrack/internal/ports/primary"
	"github.com/example/jobtrack/internal/ports/secondary"
)

// StatsServiceImpl implements the StatsService interface.
type StatsServiceImpl struct {
	appRepo secondary.ApplicationRepository
}

// NewStatsService creates a new StatsService with injected dependencies.
func NewStatsService(appRepo secondary.ApplicationRepository) *StatsServiceImpl {
	return &StatsServiceImpl{appRepo: appRepo}
}

// ComputeStatistics reads one snapshot of the record set and derives the
// statistics from it. Nothing is cached.
func (s *StatsServiceImpl) ComputeStatistics(ctx context.Context) (*stats.Statistics, error) {
	records, err := s.appRepo.List(ctx, secondary.ApplicationFilters{})
	if err != nil {
		return nil, fmt.Errorf("failed to load applications: %w", err)
	}

	result := stats.Compute(recordsToApplications(records))
	return &result, nil
}

// Ensure StatsServiceImpl implements the interface
var _ primary.StatsService = (*StatsServiceImpl)(nil)
