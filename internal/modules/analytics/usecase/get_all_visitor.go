package usecase

import (
	"context"

	"portfolio-service/internal/modules/analytics/domain"

	"github.com/golangid/candi/candishared"
	"github.com/golangid/candi/tracer"
)

const defaultReportLimit = 20

func (uc *analyticsUsecaseImpl) GetAllVisitor(ctx context.Context, filter *domain.FilterVisitor) (results []domain.ResponseVisitor, meta candishared.Meta, err error) {
	trace, ctx := tracer.StartTraceWithContext(ctx, "AnalyticsUsecase:GetAllVisitor")
	defer trace.Finish()

	// clamp caller supplied paging so a negative page can never turn into a negative skip
	if filter.Page <= 0 {
		filter.Page = 1
	}
	if filter.Limit <= 0 {
		filter.Limit = defaultReportLimit
	}
	filter.CalculateOffset()

	data, err := uc.repoMongo.VisitorRepo().FetchAll(ctx, filter)
	if err != nil {
		return results, meta, err
	}
	count, err := uc.repoMongo.VisitorRepo().Count(ctx, &domain.FilterVisitorCount{})
	if err != nil {
		return results, meta, err
	}
	meta = candishared.NewMeta(filter.Page, filter.Limit, count)

	for _, detail := range data {
		var res domain.ResponseVisitor
		res.Serialize(&detail)
		results = append(results, res)
	}

	return
}
