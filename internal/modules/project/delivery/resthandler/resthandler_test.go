package resthandler

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"portfolio-service/internal/modules/project/domain"
	mockusecase "portfolio-service/pkg/mocks/modules/project/usecase"
	mocksharedusecase "portfolio-service/pkg/mocks/shared/usecase"

	"github.com/golangid/candi/candishared"
	mockdeps "github.com/golangid/candi/mocks/codebase/factory/dependency"
	mockinterfaces "github.com/golangid/candi/mocks/codebase/interfaces"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"go.mongodb.org/mongo-driver/mongo"
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
	mockRoute.On("PUT", mock.Anything, mock.Anything, mock.Anything)
	mockRoute.On("DELETE", mock.Anything, mock.Anything, mock.Anything)
	handler.Mount(mockRoute)

	mockRoute.AssertCalled(t, "PUT", "/:id/like", mock.Anything)
}

func TestRestHandler_getAllProject(t *testing.T) {
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

			projectUsecase := &mockusecase.ProjectUsecase{}
			projectUsecase.On("GetAllProject", mock.Anything, mock.Anything).Return(
				[]domain.ResponseProject{}, candishared.Meta{}, tt.wantUsecaseError)

			uc := &mocksharedusecase.Usecase{}
			uc.On("Project").Return(projectUsecase)

			handler := RestHandler{uc: uc}

			req := httptest.NewRequest(http.MethodGet, "/"+tt.reqBody, nil)
			res := httptest.NewRecorder()
			handler.getAllProject(res, req)
			assert.Equal(t, tt.wantRespCode, res.Code)
		})
	}
}

func TestRestHandler_getDetailProject(t *testing.T) {
	tests := []testCase{
		{
			name: "Testcase #1: Positive", wantRespCode: 200,
		},
		{
			name: "Testcase #2: Negative, not found", wantUsecaseError: mongo.ErrNoDocuments, wantRespCode: 404,
		},
		{
			name: "Testcase #3: Negative, usecase error", wantUsecaseError: errFoo, wantRespCode: 500,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {

			projectUsecase := &mockusecase.ProjectUsecase{}
			projectUsecase.On("GetDetailProject", mock.Anything, mock.Anything).Return(domain.ResponseProject{}, tt.wantUsecaseError)

			uc := &mocksharedusecase.Usecase{}
			uc.On("Project").Return(projectUsecase)

			handler := RestHandler{uc: uc}

			req := httptest.NewRequest(http.MethodGet, "/", nil)
			res := httptest.NewRecorder()
			handler.getDetailProject(res, req)
			assert.Equal(t, tt.wantRespCode, res.Code)
		})
	}
}

func TestRestHandler_createProject(t *testing.T) {
	tests := []testCase{
		{
			name: "Testcase #1: Positive", reqBody: `{"title": "portfolio", "description": "personal site", "technologies": ["go"], "category": "web"}`, wantRespCode: 201,
		},
		{
			name: "Testcase #2: Negative, invalid payload", reqBody: `{"description": "missing title"}`, wantValidateError: errFoo, wantRespCode: 400,
		},
		{
			name: "Testcase #3: Negative, usecase error", reqBody: `{"title": "portfolio"}`, wantUsecaseError: errFoo, wantRespCode: 500,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {

			projectUsecase := &mockusecase.ProjectUsecase{}
			projectUsecase.On("CreateProject", mock.Anything, mock.Anything).Return(domain.ResponseProject{}, tt.wantUsecaseError)
			mockValidator := &mockinterfaces.Validator{}
			mockValidator.On("ValidateDocument", mock.Anything, mock.Anything).Return(tt.wantValidateError)

			uc := &mocksharedusecase.Usecase{}
			uc.On("Project").Return(projectUsecase)

			handler := RestHandler{uc: uc, validator: mockValidator}

			req := httptest.NewRequest(http.MethodPost, "/", strings.NewReader(tt.reqBody))
			req.Header.Add("Content-Type", "application/json")
			res := httptest.NewRecorder()
			handler.createProject(res, req)
			assert.Equal(t, tt.wantRespCode, res.Code)
		})
	}
}

func TestRestHandler_updateProject(t *testing.T) {
	tests := []testCase{
		{
			name: "Testcase #1: Positive", reqBody: `{"title": "portfolio"}`, wantRespCode: 200,
		},
		{
			name: "Testcase #2: Negative, invalid payload", reqBody: `{}`, wantValidateError: errFoo, wantRespCode: 400,
		},
		{
			name: "Testcase #3: Negative, not found", reqBody: `{"title": "portfolio"}`, wantUsecaseError: mongo.ErrNoDocuments, wantRespCode: 404,
		},
		{
			name: "Testcase #4: Negative, usecase error", reqBody: `{"title": "portfolio"}`, wantUsecaseError: errFoo, wantRespCode: 500,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {

			projectUsecase := &mockusecase.ProjectUsecase{}
			projectUsecase.On("UpdateProject", mock.Anything, mock.Anything).Return(tt.wantUsecaseError)
			mockValidator := &mockinterfaces.Validator{}
			mockValidator.On("ValidateDocument", mock.Anything, mock.Anything).Return(tt.wantValidateError)

			uc := &mocksharedusecase.Usecase{}
			uc.On("Project").Return(projectUsecase)

			handler := RestHandler{uc: uc, validator: mockValidator}

			req := httptest.NewRequest(http.MethodPut, "/", strings.NewReader(tt.reqBody))
			req.Header.Add("Content-Type", "application/json")
			res := httptest.NewRecorder()
			handler.updateProject(res, req)
			assert.Equal(t, tt.wantRespCode, res.Code)
		})
	}
}

func TestRestHandler_deleteProject(t *testing.T) {
	tests := []testCase{
		{
			name: "Testcase #1: Positive", wantRespCode: 200,
		},
		{
			name: "Testcase #2: Negative, not found", wantUsecaseError: mongo.ErrNoDocuments, wantRespCode: 404,
		},
		{
			name: "Testcase #3: Negative, usecase error", wantUsecaseError: errFoo, wantRespCode: 500,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {

			projectUsecase := &mockusecase.ProjectUsecase{}
			projectUsecase.On("DeleteProject", mock.Anything, mock.Anything).Return(tt.wantUsecaseError)

			uc := &mocksharedusecase.Usecase{}
			uc.On("Project").Return(projectUsecase)

			handler := RestHandler{uc: uc}

			req := httptest.NewRequest(http.MethodDelete, "/", nil)
			res := httptest.NewRecorder()
			handler.deleteProject(res, req)
			assert.Equal(t, tt.wantRespCode, res.Code)
		})
	}
}

func TestRestHandler_addLikeProject(t *testing.T) {
	tests := []testCase{
		{
			name: "Testcase #1: Positive", wantRespCode: 200,
		},
		{
			name: "Testcase #2: Negative, not found", wantUsecaseError: mongo.ErrNoDocuments, wantRespCode: 404,
		},
		{
			name: "Testcase #3: Negative, usecase error", wantUsecaseError: errFoo, wantRespCode: 500,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {

			projectUsecase := &mockusecase.ProjectUsecase{}
			projectUsecase.On("AddLikeProject", mock.Anything, mock.Anything).Return(domain.ResponseLike{Likes: 1}, tt.wantUsecaseError)

			uc := &mocksharedusecase.Usecase{}
			uc.On("Project").Return(projectUsecase)

			handler := RestHandler{uc: uc}

			req := httptest.NewRequest(http.MethodPut, "/", nil)
			res := httptest.NewRecorder()
			handler.addLikeProject(res, req)
			assert.Equal(t, tt.wantRespCode, res.Code)
		})
	}
}
