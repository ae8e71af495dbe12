package usecase

import (
	"context"

	"portfolio-service/internal/modules/project/domain"
	"portfolio-service/pkg/shared/repository"
	"portfolio-service/pkg/shared/usecase/common"

	"github.com/golangid/candi/candishared"
	"github.com/golangid/candi/codebase/factory/dependency"
)

// ProjectUsecase abstraction
type ProjectUsecase interface {
	GetAllProject(ctx context.Context, filter *domain.FilterProject) (data []domain.ResponseProject, meta candishared.Meta, err error)
	GetDetailProject(ctx context.Context, id string) (data domain.ResponseProject, err error)
	CreateProject(ctx context.Context, req *domain.RequestProject) (resp domain.ResponseProject, err error)
	UpdateProject(ctx context.Context, req *domain.RequestProject) (err error)
	DeleteProject(ctx context.Context, id string) (err error)
	AddLikeProject(ctx context.Context, id string) (resp domain.ResponseLike, err error)
}

type projectUsecaseImpl struct {
	sharedUsecase common.Usecase
	repoMongo     repository.RepoMongo
}

// NewProjectUsecase usecase impl constructor
func NewProjectUsecase(deps dependency.Dependency) (ProjectUsecase, func(sharedUsecase common.Usecase)) {
	uc := &projectUsecaseImpl{
		repoMongo: repository.GetSharedRepoMongo(),
	}
	return uc, func(sharedUsecase common.Usecase) {
		uc.sharedUsecase = sharedUsecase
	}
}
