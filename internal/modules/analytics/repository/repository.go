package repository

import (
	"context"
	"time"

	"portfolio-service/internal/modules/analytics/domain"
	shareddomain "portfolio-service/pkg/shared/domain"
)

// VisitorRepository abstract interface
type VisitorRepository interface {
	FetchAll(ctx context.Context, filter *domain.FilterVisitor) ([]shareddomain.Visitor, error)
	Count(ctx context.Context, filter *domain.FilterVisitorCount) (int, error)
	Save(ctx context.Context, data *shareddomain.Visitor) error
	AggregateDevices(ctx context.Context, since time.Time) ([]domain.DeviceCount, error)
	AggregateDailyVisits(ctx context.Context, since time.Time) ([]domain.DailyVisit, error)
}
