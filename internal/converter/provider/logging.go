package provider

import (
	"context"
	"github.com/langowen/converter/internal/entities"
	"log/slog"
	"time"
)

// loggingService decorates a Service with logging
type loggingService struct {
	next   Service
	logger *slog.Logger
}

func NewLoggingService(logger *slog.Logger, s Service) Service {
	return &loggingService{
		next:   s,
		logger: logger,
	}
}

func (s *loggingService) FetchRates(ctx context.Context, apiKey string) (rates *entities.Rates, err error) {
	defer func(begin time.Time) {
		if err != nil {
			s.logger.Error("fetch rates failed", "method", "fetch_rates", "took", time.Since(begin), "error", err)
			return
		}
		s.logger.Info("fetch rates",
			"method", "fetch_rates",
			"base", rates.Base(),
			"count", rates.Len(),
			"took", time.Since(begin),
		)
	}(time.Now())
	return s.next.FetchRates(ctx, apiKey)
}
