package usecase

import (
	"context"
	"errors"
	"testing"

	"portfolio-service/internal/modules/analytics/domain"
	mockrepo "portfolio-service/pkg/mocks/modules/analytics/repository"
	mockcontactrepo "portfolio-service/pkg/mocks/modules/contact/repository"
	mockprojectrepo "portfolio-service/pkg/mocks/modules/project/repository"
	mocksharedrepo "portfolio-service/pkg/mocks/shared/repository"
	shareddomain "portfolio-service/pkg/shared/domain"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

func Test_analyticsUsecaseImpl_GetStatistic(t *testing.T) {
	buildRepoMongo := func() *mocksharedrepo.RepoMongo {
		visitorRepo := &mockrepo.VisitorRepository{}
		visitorRepo.On("Count", mock.Anything, mock.Anything).Return(42, nil)
		visitorRepo.On("AggregateDailyVisits", mock.Anything, mock.Anything).Return([]domain.DailyVisit{
			{Date: "2024-01-01", Count: 5},
			{Date: "2024-01-03", Count: 2},
		}, nil)
		visitorRepo.On("AggregateDevices", mock.Anything, mock.Anything).Return([]domain.DeviceCount{
			{DeviceType: shareddomain.DeviceDesktop, Count: 30},
			{DeviceType: shareddomain.DeviceMobile, Count: 12},
		}, nil)

		contactRepo := &mockcontactrepo.ContactRepository{}
		contactRepo.On("Count", mock.Anything, mock.Anything).Return(7, nil)

		projectRepo := &mockprojectrepo.ProjectRepository{}
		projectRepo.On("Count", mock.Anything, mock.Anything).Return(4, nil)
		projectRepo.On("SumViews", mock.Anything).Return(100, nil)
		projectRepo.On("FetchPopular", mock.Anything, 5).Return([]shareddomain.Project{
			{Title: "portfolio", Views: 80, Likes: 9},
		}, nil)

		repoMongo := &mocksharedrepo.RepoMongo{}
		repoMongo.On("VisitorRepo").Return(visitorRepo)
		repoMongo.On("ContactRepo").Return(contactRepo)
		repoMongo.On("ProjectRepo").Return(projectRepo)
		return repoMongo
	}

	t.Run("Testcase #1: Positive", func(t *testing.T) {

		uc := analyticsUsecaseImpl{repoMongo: buildRepoMongo()}

		resp, err := uc.GetStatistic(context.Background(), &domain.FilterStatistic{Timeframe: "7"})
		assert.NoError(t, err)
		assert.Equal(t, 42, resp.Visitors.Total)
		assert.Len(t, resp.Visitors.Daily, 2)
		assert.Equal(t, 30, resp.Devices[shareddomain.DeviceDesktop])
		assert.Equal(t, 7, resp.Contacts.Total)
		assert.Equal(t, 100, resp.Projects.TotalViews)
		assert.Len(t, resp.Projects.Popular, 1)
		assert.Equal(t, "portfolio", resp.Projects.Popular[0].Title)
	})

	t.Run("Testcase #2: Positive, invalid timeframe falls back to default", func(t *testing.T) {

		uc := analyticsUsecaseImpl{repoMongo: buildRepoMongo()}

		for _, timeframe := range []string{"", "abc", "-5", "0"} {
			_, err := uc.GetStatistic(context.Background(), &domain.FilterStatistic{Timeframe: timeframe})
			assert.NoError(t, err)
		}
	})

	t.Run("Testcase #3: Negative, aggregation error", func(t *testing.T) {

		visitorRepo := &mockrepo.VisitorRepository{}
		visitorRepo.On("Count", mock.Anything, mock.Anything).Return(42, nil)
		visitorRepo.On("AggregateDailyVisits", mock.Anything, mock.Anything).Return(nil, errors.New("Error"))

		repoMongo := &mocksharedrepo.RepoMongo{}
		repoMongo.On("VisitorRepo").Return(visitorRepo)

		uc := analyticsUsecaseImpl{repoMongo: repoMongo}

		_, err := uc.GetStatistic(context.Background(), &domain.FilterStatistic{})
		assert.Error(t, err)
	})

	t.Run("Testcase #4: Negative, visitor count error fails the whole snapshot", func(t *testing.T) {

		visitorRepo := &mockrepo.VisitorRepository{}
		visitorRepo.On("Count", mock.Anything, mock.Anything).Return(0, errors.New("Error"))

		repoMongo := &mocksharedrepo.RepoMongo{}
		repoMongo.On("VisitorRepo").Return(visitorRepo)

		uc := analyticsUsecaseImpl{repoMongo: repoMongo}

		_, err := uc.GetStatistic(context.Background(), &domain.FilterStatistic{})
		assert.Error(t, err)
	})

	t.Run("Testcase #5: Negative, contact count error fails the whole snapshot", func(t *testing.T) {

		visitorRepo := &mockrepo.VisitorRepository{}
		visitorRepo.On("Count", mock.Anything, mock.Anything).Return(42, nil)
		visitorRepo.On("AggregateDailyVisits", mock.Anything, mock.Anything).Return([]domain.DailyVisit{}, nil)
		visitorRepo.On("AggregateDevices", mock.Anything, mock.Anything).Return([]domain.DeviceCount{}, nil)

		contactRepo := &mockcontactrepo.ContactRepository{}
		contactRepo.On("Count", mock.Anything, mock.Anything).Return(0, errors.New("Error"))

		repoMongo := &mocksharedrepo.RepoMongo{}
		repoMongo.On("VisitorRepo").Return(visitorRepo)
		repoMongo.On("ContactRepo").Return(contactRepo)

		uc := analyticsUsecaseImpl{repoMongo: repoMongo}

		_, err := uc.GetStatistic(context.Background(), &domain.FilterStatistic{})
		assert.Error(t, err)
	})
}
