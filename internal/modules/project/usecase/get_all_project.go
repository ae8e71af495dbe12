package usecase

import (
	"context"

	"portfolio-service/internal/modules/project/domain"

	"github.com/golangid/candi/candishared"
	"github.com/golangid/candi/tracer"
)

func (uc *projectUsecaseImpl) GetAllProject(ctx context.Context, filter *domain.FilterProject) (results []domain.ResponseProject, meta candishared.Meta, err error) {
	trace, ctx := tracer.StartTraceWithContext(ctx, "ProjectUsecase:GetAllProject")
	defer trace.Finish()

	if filter.Page <= 0 {
		filter.Page = 1
	}
	if filter.Limit <= 0 {
		filter.Limit = 10
	}
	filter.CalculateOffset()

	data, err := uc.repoMongo.ProjectRepo().FetchAll(ctx, filter)
	if err != nil {
		return results, meta, err
	}
	count, err := uc.repoMongo.ProjectRepo().Count(ctx, filter)
	if err != nil {
		return results, meta, err
	}
	meta = candishared.NewMeta(filter.Page, filter.Limit, count)

	for _, detail := range data {
		var res domain.ResponseProject
		res.Serialize(&detail)
		results = append(results, res)
	}

	return
}
