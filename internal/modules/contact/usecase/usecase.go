package usecase

import (
	"context"

	"portfolio-service/internal/modules/contact/domain"
	"portfolio-service/pkg/shared/repository"
	"portfolio-service/pkg/shared/usecase/common"

	"github.com/golangid/candi/candishared"
	"github.com/golangid/candi/codebase/factory/dependency"
)

// ContactUsecase abstraction
type ContactUsecase interface {
	SubmitContact(ctx context.Context, req *domain.RequestContact) (resp domain.ResponseContact, err error)
	GetAllContact(ctx context.Context, filter *domain.FilterContact) (data []domain.ResponseContact, meta candishared.Meta, err error)
}

type contactUsecaseImpl struct {
	sharedUsecase common.Usecase
	repoMongo     repository.RepoMongo
}

// NewContactUsecase usecase impl constructor
func NewContactUsecase(deps dependency.Dependency) (ContactUsecase, func(sharedUsecase common.Usecase)) {
	uc := &contactUsecaseImpl{
		repoMongo: repository.GetSharedRepoMongo(),
	}
	return uc, func(sharedUsecase common.Usecase) {
		uc.sharedUsecase = sharedUsecase
	}
}
