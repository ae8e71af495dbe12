package usecase

import (
	"context"
	"errors"
	"testing"

	"portfolio-service/internal/modules/analytics/domain"
	mockrepo "portfolio-service/pkg/mocks/modules/analytics/repository"
	mocksharedrepo "portfolio-service/pkg/mocks/shared/repository"
	shareddomain "portfolio-service/pkg/shared/domain"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

func Test_analyticsUsecaseImpl_GetAllVisitor(t *testing.T) {
	t.Run("Testcase #1: Positive", func(t *testing.T) {

		visitorRepo := &mockrepo.VisitorRepository{}
		visitorRepo.On("FetchAll", mock.Anything, mock.Anything).Return([]shareddomain.Visitor{
			{IPAddress: "10.0.0.1", DeviceType: shareddomain.DeviceDesktop},
		}, nil)
		visitorRepo.On("Count", mock.Anything, mock.Anything).Return(45, nil)

		repoMongo := &mocksharedrepo.RepoMongo{}
		repoMongo.On("VisitorRepo").Return(visitorRepo)

		uc := analyticsUsecaseImpl{repoMongo: repoMongo}

		results, meta, err := uc.GetAllVisitor(context.Background(), &domain.FilterVisitor{Page: 2, Limit: 20})
		assert.NoError(t, err)
		assert.Len(t, results, 1)
		assert.Equal(t, 45, meta.TotalRecords)
		assert.Equal(t, 3, meta.TotalPages)
	})

	t.Run("Testcase #2: Positive, invalid paging clamped to defaults", func(t *testing.T) {

		visitorRepo := &mockrepo.VisitorRepository{}
		visitorRepo.On("FetchAll", mock.Anything, mock.MatchedBy(func(filter *domain.FilterVisitor) bool {
			return filter.Page == 1 && filter.Limit == 20 && filter.Offset == 0
		})).Return([]shareddomain.Visitor{}, nil)
		// totalRecords always counts the whole collection, never a narrowed subset
		visitorRepo.On("Count", mock.Anything, mock.MatchedBy(func(filter *domain.FilterVisitorCount) bool {
			return *filter == domain.FilterVisitorCount{}
		})).Return(0, nil)

		repoMongo := &mocksharedrepo.RepoMongo{}
		repoMongo.On("VisitorRepo").Return(visitorRepo)

		uc := analyticsUsecaseImpl{repoMongo: repoMongo}

		_, meta, err := uc.GetAllVisitor(context.Background(), &domain.FilterVisitor{Page: -1, Limit: 0})
		assert.NoError(t, err)
		assert.Equal(t, 1, meta.Page)
	})

	t.Run("Testcase #3: Negative", func(t *testing.T) {

		visitorRepo := &mockrepo.VisitorRepository{}
		visitorRepo.On("FetchAll", mock.Anything, mock.Anything).Return(nil, errors.New("Error"))

		repoMongo := &mocksharedrepo.RepoMongo{}
		repoMongo.On("VisitorRepo").Return(visitorRepo)

		uc := analyticsUsecaseImpl{repoMongo: repoMongo}

		_, _, err := uc.GetAllVisitor(context.Background(), &domain.FilterVisitor{})
		assert.Error(t, err)
	})

	t.Run("Testcase #4: Negative, count error", func(t *testing.T) {

		visitorRepo := &mockrepo.VisitorRepository{}
		visitorRepo.On("FetchAll", mock.Anything, mock.Anything).Return([]shareddomain.Visitor{}, nil)
		visitorRepo.On("Count", mock.Anything, mock.Anything).Return(0, errors.New("Error"))

		repoMongo := &mocksharedrepo.RepoMongo{}
		repoMongo.On("VisitorRepo").Return(visitorRepo)

		uc := analyticsUsecaseImpl{repoMongo: repoMongo}

		_, _, err := uc.GetAllVisitor(context.Background(), &domain.FilterVisitor{})
		assert.Error(t, err)
	})
}
