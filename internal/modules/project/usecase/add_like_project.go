package usecase

import (
	"context"

	"portfolio-service/internal/modules/project/domain"

	"github.com/golangid/candi/tracer"
)

func (uc *projectUsecaseImpl) AddLikeProject(ctx context.Context, id string) (resp domain.ResponseLike, err error) {
	trace, ctx := tracer.StartTraceWithContext(ctx, "ProjectUsecase:AddLikeProject")
	defer trace.Finish()

	data, err := uc.repoMongo.ProjectRepo().IncrementLikes(ctx, id)
	if err != nil {
		return resp, err
	}

	resp.Likes = data.Likes
	return
}
