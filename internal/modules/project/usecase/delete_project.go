package usecase

import (
	"context"

	"portfolio-service/internal/modules/project/domain"

	"github.com/golangid/candi/tracer"
)

func (uc *projectUsecaseImpl) DeleteProject(ctx context.Context, id string) (err error) {
	trace, ctx := tracer.StartTraceWithContext(ctx, "ProjectUsecase:DeleteProject")
	defer trace.Finish()

	repoFilter := domain.FilterProject{ID: &id}
	return uc.repoMongo.ProjectRepo().Delete(ctx, &repoFilter)
}
