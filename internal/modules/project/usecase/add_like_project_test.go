package usecase

import (
	"context"
	"testing"

	mockrepo "portfolio-service/pkg/mocks/modules/project/repository"
	mocksharedrepo "portfolio-service/pkg/mocks/shared/repository"
	shareddomain "portfolio-service/pkg/shared/domain"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"go.mongodb.org/mongo-driver/mongo"
)

func Test_projectUsecaseImpl_AddLikeProject(t *testing.T) {
	t.Run("Testcase #1: Positive", func(t *testing.T) {

		projectRepo := &mockrepo.ProjectRepository{}
		projectRepo.On("IncrementLikes", mock.Anything, "507f1f77bcf86cd799439011").Return(shareddomain.Project{Likes: 10}, nil)

		repoMongo := &mocksharedrepo.RepoMongo{}
		repoMongo.On("ProjectRepo").Return(projectRepo)

		uc := projectUsecaseImpl{repoMongo: repoMongo}

		resp, err := uc.AddLikeProject(context.Background(), "507f1f77bcf86cd799439011")
		assert.NoError(t, err)
		assert.Equal(t, 10, resp.Likes)
	})

	t.Run("Testcase #2: Negative, not found", func(t *testing.T) {

		projectRepo := &mockrepo.ProjectRepository{}
		projectRepo.On("IncrementLikes", mock.Anything, mock.Anything).Return(shareddomain.Project{}, mongo.ErrNoDocuments)

		repoMongo := &mocksharedrepo.RepoMongo{}
		repoMongo.On("ProjectRepo").Return(projectRepo)

		uc := projectUsecaseImpl{repoMongo: repoMongo}

		_, err := uc.AddLikeProject(context.Background(), "missing")
		assert.ErrorIs(t, err, mongo.ErrNoDocuments)
	})
}
