package usecase

import (
	"context"
	"errors"
	"testing"

	"portfolio-service/internal/modules/project/domain"
	mockrepo "portfolio-service/pkg/mocks/modules/project/repository"
	mocksharedrepo "portfolio-service/pkg/mocks/shared/repository"
	shareddomain "portfolio-service/pkg/shared/domain"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

func Test_projectUsecaseImpl_GetAllProject(t *testing.T) {
	t.Run("Testcase #1: Positive", func(t *testing.T) {

		projectRepo := &mockrepo.ProjectRepository{}
		projectRepo.On("FetchAll", mock.Anything, mock.Anything).Return([]shareddomain.Project{
			{Title: "portfolio", Category: "web"},
		}, nil)
		projectRepo.On("Count", mock.Anything, mock.Anything).Return(1, nil)

		repoMongo := &mocksharedrepo.RepoMongo{}
		repoMongo.On("ProjectRepo").Return(projectRepo)

		uc := projectUsecaseImpl{repoMongo: repoMongo}

		results, meta, err := uc.GetAllProject(context.Background(), &domain.FilterProject{})
		assert.NoError(t, err)
		assert.Len(t, results, 1)
		assert.Equal(t, 1, meta.TotalRecords)
	})

	t.Run("Testcase #2: Negative", func(t *testing.T) {

		projectRepo := &mockrepo.ProjectRepository{}
		projectRepo.On("FetchAll", mock.Anything, mock.Anything).Return(nil, errors.New("Error"))
		projectRepo.On("Count", mock.Anything, mock.Anything).Return(0, nil)

		repoMongo := &mocksharedrepo.RepoMongo{}
		repoMongo.On("ProjectRepo").Return(projectRepo)

		uc := projectUsecaseImpl{repoMongo: repoMongo}

		_, _, err := uc.GetAllProject(context.Background(), &domain.FilterProject{})
		assert.Error(t, err)
	})

	t.Run("Testcase #3: Negative, count error", func(t *testing.T) {

		projectRepo := &mockrepo.ProjectRepository{}
		projectRepo.On("FetchAll", mock.Anything, mock.Anything).Return([]shareddomain.Project{}, nil)
		projectRepo.On("Count", mock.Anything, mock.Anything).Return(0, errors.New("Error"))

		repoMongo := &mocksharedrepo.RepoMongo{}
		repoMongo.On("ProjectRepo").Return(projectRepo)

		uc := projectUsecaseImpl{repoMongo: repoMongo}

		_, _, err := uc.GetAllProject(context.Background(), &domain.FilterProject{})
		assert.Error(t, err)
	})
}
