package reports

import (
	"context"
	"encoding/json"
	"time"

	"go.uber.org/zap"

	"max.ks1230/fintrack/internal/logger"
)

type dashboardCache interface {
	CacheDashboard(userID int64, payload []byte) error
	GetDashboard(userID int64) ([]byte, error)
	InvalidateDashboard(userID int64) error
}

// Service is the read-through front over the generator. The cache is best
// effort: any cache failure falls back to a fresh computation.
type Service struct {
	generator *Generator
	cache     dashboardCache
}

func NewService(generator *Generator, cache dashboardCache) *Service {
	return &Service{generator: generator, cache: cache}
}

func (s *Service) Dashboard(ctx context.Context, userID int64) (*Dashboard, error) {
	if s.cache != nil {
		if raw, err := s.cache.GetDashboard(userID); err == nil {
			var d Dashboard
			if err = json.Unmarshal(raw, &d); err == nil {
				return &d, nil
			}
			logger.Error("corrupt cached dashboard", zap.Int64("userID", userID), zap.Error(err))
		}
	}
	return s.Refresh(ctx, userID)
}

// Refresh recomputes the dashboard and rewarms the cache.
func (s *Service) Refresh(ctx context.Context, userID int64) (*Dashboard, error) {
	d, err := s.generator.Generate(ctx, userID, time.Now())
	if err != nil {
		return nil, err
	}
	if s.cache != nil {
		raw, err := json.Marshal(d)
		if err == nil {
			err = s.cache.CacheDashboard(userID, raw)
		}
		if err != nil {
			logger.Error("failed to cache dashboard", zap.Int64("userID", userID), zap.Error(err))
		}
	}
	return d, nil
}

func (s *Service) Invalidate(userID int64) {
	if s.cache == nil {
		return
	}
	if err := s.cache.InvalidateDashboard(userID); err != nil {
		logger.Error("failed to invalidate dashboard", zap.Int64("userID", userID), zap.Error(err))
	}
}
