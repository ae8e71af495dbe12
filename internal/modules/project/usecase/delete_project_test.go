package usecase

import (
	"context"
	"testing"

	mockrepo "portfolio-service/pkg/mocks/modules/project/repository"
	mocksharedrepo "portfolio-service/pkg/mocks/shared/repository"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"go.mongodb.org/mongo-driver/mongo"
)

func Test_projectUsecaseImpl_DeleteProject(t *testing.T) {
	t.Run("Testcase #1: Positive", func(t *testing.T) {

		projectRepo := &mockrepo.ProjectRepository{}
		projectRepo.On("Delete", mock.Anything, mock.Anything).Return(nil)

		repoMongo := &mocksharedrepo.RepoMongo{}
		repoMongo.On("ProjectRepo").Return(projectRepo)

		uc := projectUsecaseImpl{repoMongo: repoMongo}

		assert.NoError(t, uc.DeleteProject(context.Background(), "507f1f77bcf86cd799439011"))
	})

	t.Run("Testcase #2: Negative, not found", func(t *testing.T) {

		projectRepo := &mockrepo.ProjectRepository{}
		projectRepo.On("Delete", mock.Anything, mock.Anything).Return(mongo.ErrNoDocuments)

		repoMongo := &mocksharedrepo.RepoMongo{}
		repoMongo.On("ProjectRepo").Return(projectRepo)

		uc := projectUsecaseImpl{repoMongo: repoMongo}

		assert.ErrorIs(t, uc.DeleteProject(context.Background(), "missing"), mongo.ErrNoDocuments)
	})
}
