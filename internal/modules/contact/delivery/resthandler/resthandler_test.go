package resthandler

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"portfolio-service/internal/modules/contact/domain"
	mockusecase "portfolio-service/pkg/mocks/modules/contact/usecase"
	mocksharedusecase "portfolio-service/pkg/mocks/shared/usecase"

	"github.com/golangid/candi/candishared"
	mockdeps "github.com/golangid/candi/mocks/codebase/factory/dependency"
	mockinterfaces "github.com/golangid/candi/mocks/codebase/interfaces"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

type testCase struct {
	name, reqBody                       string
	wantValidateError, wantUsecaseError error
	wantRespCode                        int
}

var errFoo = errors.New("Something error")

func TestNewRestHandler(t *testing.T) {
	mockMiddleware := &mockinterfaces.Middleware{}
	mockValidator := &mockinterfaces.Validator{}

	mockDeps := &mockdeps.Dependency{}
	mockDeps.On("GetMiddleware").Return(mockMiddleware)
	mockDeps.On("GetValidator").Return(mockValidator)

	handler := NewRestHandler(nil, mockDeps)
	assert.NotNil(t, handler)

	mockRoute := &mockinterfaces.RESTRouter{}
	mockRoute.On("Group", mock.Anything, mock.Anything).Return(mockRoute)
	mockRoute.On("GET", mock.Anything, mock.Anything, mock.Anything)
	mockRoute.On("POST", mock.Anything, mock.Anything, mock.Anything)
	handler.Mount(mockRoute)
}

func TestRestHandler_submitContact(t *testing.T) {
	tests := []testCase{
		{
			name: "Testcase #1: Positive", reqBody: `{"name": "Visitor", "email": "visitor@mail.com", "subject": "Hello", "message": "Nice site"}`, wantRespCode: 201,
		},
		{
			name: "Testcase #2: Negative, invalid payload", reqBody: `{"name": "Visitor"}`, wantValidateError: errFoo, wantRespCode: 400,
		},
		{
			name: "Testcase #3: Negative, usecase error", reqBody: `{"name": "Visitor", "email": "visitor@mail.com", "subject": "Hello", "message": "Nice site"}`, wantUsecaseError: errFoo, wantRespCode: 500,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {

			contactUsecase := &mockusecase.ContactUsecase{}
			contactUsecase.On("SubmitContact", mock.Anything, mock.Anything).Return(domain.ResponseContact{}, tt.wantUsecaseError)
			mockValidator := &mockinterfaces.Validator{}
			mockValidator.On("ValidateDocument", mock.Anything, mock.Anything).Return(tt.wantValidateError)

			uc := &mocksharedusecase.Usecase{}
			uc.On("Contact").Return(contactUsecase)

			handler := RestHandler{uc: uc, validator: mockValidator}

			req := httptest.NewRequest(http.MethodPost, "/", strings.NewReader(tt.reqBody))
			req.Header.Add("Content-Type", "application/json")
			res := httptest.NewRecorder()
			handler.submitContact(res, req)
			assert.Equal(t, tt.wantRespCode, res.Code)
		})
	}
}

func TestRestHandler_getAllContact(t *testing.T) {
	tests := []testCase{
		{
			name: "Testcase #1: Positive", wantRespCode: 200,
		},
		{
			name: "Testcase #2: Negative, invalid filter", reqBody: "?page=str", wantRespCode: 400,
		},
		{
			name: "Testcase #3: Negative, usecase error", wantUsecaseError: errFoo, wantRespCode: 500,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {

			contactUsecase := &mockusecase.ContactUsecase{}
			contactUsecase.On("GetAllContact", mock.Anything, mock.Anything).Return(
				[]domain.ResponseContact{}, candishared.Meta{}, tt.wantUsecaseError)

			uc := &mocksharedusecase.Usecase{}
			uc.On("Contact").Return(contactUsecase)

			handler := RestHandler{uc: uc}

			req := httptest.NewRequest(http.MethodGet, "/"+tt.reqBody, nil)
			res := httptest.NewRecorder()
			handler.getAllContact(res, req)
			assert.Equal(t, tt.wantRespCode, res.Code)
		})
	}
}
