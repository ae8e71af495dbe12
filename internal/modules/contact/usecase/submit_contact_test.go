package usecase

import (
	"context"
	"errors"
	"testing"

	"portfolio-service/internal/modules/contact/domain"
	mockrepo "portfolio-service/pkg/mocks/modules/contact/repository"
	mocksharedrepo "portfolio-service/pkg/mocks/shared/repository"
	shareddomain "portfolio-service/pkg/shared/domain"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

func Test_contactUsecaseImpl_SubmitContact(t *testing.T) {
	t.Run("Testcase #1: Positive", func(t *testing.T) {

		contactRepo := &mockrepo.ContactRepository{}
		contactRepo.On("Save", mock.Anything, mock.MatchedBy(func(data *shareddomain.Contact) bool {
			return data.Email == "visitor@mail.com" && !data.Read
		})).Return(nil)

		repoMongo := &mocksharedrepo.RepoMongo{}
		repoMongo.On("ContactRepo").Return(contactRepo)

		uc := contactUsecaseImpl{repoMongo: repoMongo}

		result, err := uc.SubmitContact(context.Background(), &domain.RequestContact{
			Name: "Visitor", Email: "visitor@mail.com", Subject: "Hello", Message: "Nice site",
		})
		assert.NoError(t, err)
		assert.Equal(t, "visitor@mail.com", result.Email)
	})

	t.Run("Testcase #2: Negative", func(t *testing.T) {

		contactRepo := &mockrepo.ContactRepository{}
		contactRepo.On("Save", mock.Anything, mock.Anything).Return(errors.New("Error"))

		repoMongo := &mocksharedrepo.RepoMongo{}
		repoMongo.On("ContactRepo").Return(contactRepo)

		uc := contactUsecaseImpl{repoMongo: repoMongo}

		_, err := uc.SubmitContact(context.Background(), &domain.RequestContact{Name: "Visitor"})
		assert.Error(t, err)
	})
}
