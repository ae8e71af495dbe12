package usecase

import (
	"context"

	"portfolio-service/internal/modules/project/domain"

	"github.com/golangid/candi/tracer"
)

func (uc *projectUsecaseImpl) UpdateProject(ctx context.Context, req *domain.RequestProject) (err error) {
	trace, ctx := tracer.StartTraceWithContext(ctx, "ProjectUsecase:UpdateProject")
	defer trace.Finish()

	repoFilter := domain.FilterProject{ID: &req.ID}
	existing, err := uc.repoMongo.ProjectRepo().Find(ctx, &repoFilter)
	if err != nil {
		return err
	}

	updated := req.Deserialize()
	updated.ID = existing.ID
	updated.Views = existing.Views
	updated.Likes = existing.Likes
	updated.CreatedAt = existing.CreatedAt

	return uc.repoMongo.ProjectRepo().Save(ctx, &updated)
}
