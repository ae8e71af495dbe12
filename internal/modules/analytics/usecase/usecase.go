package usecase

import (
	"context"

	"portfolio-service/internal/modules/analytics/domain"
	"portfolio-service/pkg/shared/repository"
	"portfolio-service/pkg/shared/usecase/common"

	"github.com/golangid/candi/candishared"
	"github.com/golangid/candi/codebase/factory/dependency"
)

// AnalyticsUsecase abstraction
type AnalyticsUsecase interface {
	RecordVisit(ctx context.Context, req *domain.RequestVisit) (resp domain.ResponseVisit, err error)
	GetStatistic(ctx context.Context, filter *domain.FilterStatistic) (resp domain.ResponseStatistic, err error)
	GetAllVisitor(ctx context.Context, filter *domain.FilterVisitor) (data []domain.ResponseVisitor, meta candishared.Meta, err error)
}

type analyticsUsecaseImpl struct {
	sharedUsecase common.Usecase
	repoMongo     repository.RepoMongo
}

// NewAnalyticsUsecase usecase impl constructor
func NewAnalyticsUsecase(deps dependency.Dependency) (AnalyticsUsecase, func(sharedUsecase common.Usecase)) {
	uc := &analyticsUsecaseImpl{
		repoMongo: repository.GetSharedRepoMongo(),
	}
	return uc, func(sharedUsecase common.Usecase) {
		uc.sharedUsecase = sharedUsecase
	}
}
