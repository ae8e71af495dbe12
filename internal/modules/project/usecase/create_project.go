package usecase

import (
	"context"

	"portfolio-service/internal/modules/project/domain"

	"github.com/golangid/candi/tracer"
)

func (uc *projectUsecaseImpl) CreateProject(ctx context.Context, req *domain.RequestProject) (result domain.ResponseProject, err error) {
	trace, ctx := tracer.StartTraceWithContext(ctx, "ProjectUsecase:CreateProject")
	defer trace.Finish()

	data := req.Deserialize()
	if err = uc.repoMongo.ProjectRepo().Save(ctx, &data); err != nil {
		return result, err
	}

	result.Serialize(&data)
	return
}
