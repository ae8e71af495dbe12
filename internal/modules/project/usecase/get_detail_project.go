package usecase

import (
	"context"

	"portfolio-service/internal/modules/project/domain"

	"github.com/golangid/candi/tracer"
)

// GetDetailProject returns one project and counts the fetch as a view,
// the increment is a single atomic document operation at the store layer.
func (uc *projectUsecaseImpl) GetDetailProject(ctx context.Context, id string) (result domain.ResponseProject, err error) {
	trace, ctx := tracer.StartTraceWithContext(ctx, "ProjectUsecase:GetDetailProject")
	defer trace.Finish()

	data, err := uc.repoMongo.ProjectRepo().IncrementViews(ctx, id)
	if err != nil {
		return result, err
	}

	result.Serialize(&data)
	return
}
