package resthandler

import (
	"encoding/json"
	"errors"
	"io"
	"net/http"

	"go.mongodb.org/mongo-driver/mongo"

	"portfolio-service/internal/modules/project/domain"
	"portfolio-service/pkg/shared/usecase"

	"github.com/golangid/candi/candihelper"
	restserver "github.com/golangid/candi/codebase/app/rest_server"
	"github.com/golangid/candi/codebase/factory/dependency"
	"github.com/golangid/candi/codebase/interfaces"
	"github.com/golangid/candi/logger"
	"github.com/golangid/candi/tracer"
	"github.com/golangid/candi/wrapper"
)

const (
	messageInternalError = "Something went wrong, please try again later"
	messageNotFound      = "Project not found"
)

// RestHandler handler
type RestHandler struct {
	mw        interfaces.Middleware
	uc        usecase.Usecase
	validator interfaces.Validator
}

// NewRestHandler create new rest handler
func NewRestHandler(uc usecase.Usecase, deps dependency.Dependency) *RestHandler {
	return &RestHandler{
		uc: uc, mw: deps.GetMiddleware(), validator: deps.GetValidator(),
	}
}

// Mount handler with root "/"
func (h *RestHandler) Mount(root interfaces.RESTRouter) {
	project := root.Group("/projects")

	project.GET("/", h.getAllProject)
	project.GET("/:id", h.getDetailProject)
	project.POST("/", h.createProject)
	project.PUT("/:id", h.updateProject)
	project.DELETE("/:id", h.deleteProject)
	project.PUT("/:id/like", h.addLikeProject)
}

func (h *RestHandler) getAllProject(rw http.ResponseWriter, req *http.Request) {
	trace, ctx := tracer.StartTraceWithContext(req.Context(), "ProjectDeliveryREST:GetAllProject")
	defer trace.Finish()

	var filter domain.FilterProject
	if err := candihelper.ParseFromQueryParam(req.URL.Query(), &filter); err != nil {
		wrapper.NewHTTPResponse(http.StatusBadRequest, "Failed parse filter", err).JSON(rw)
		return
	}

	data, meta, err := h.uc.Project().GetAllProject(ctx, &filter)
	if err != nil {
		logger.LogE(err.Error())
		wrapper.NewHTTPResponse(http.StatusInternalServerError, messageInternalError).JSON(rw)
		return
	}

	wrapper.NewHTTPResponse(http.StatusOK, "Success", meta, data).JSON(rw)
}

func (h *RestHandler) getDetailProject(rw http.ResponseWriter, req *http.Request) {
	trace, ctx := tracer.StartTraceWithContext(req.Context(), "ProjectDeliveryREST:GetDetailProject")
	defer trace.Finish()

	data, err := h.uc.Project().GetDetailProject(ctx, restserver.URLParam(req, "id"))
	if errors.Is(err, mongo.ErrNoDocuments) {
		wrapper.NewHTTPResponse(http.StatusNotFound, messageNotFound).JSON(rw)
		return
	}
	if err != nil {
		logger.LogE(err.Error())
		wrapper.NewHTTPResponse(http.StatusInternalServerError, messageInternalError).JSON(rw)
		return
	}

	wrapper.NewHTTPResponse(http.StatusOK, "Success", data).JSON(rw)
}

func (h *RestHandler) createProject(rw http.ResponseWriter, req *http.Request) {
	trace, ctx := tracer.StartTraceWithContext(req.Context(), "ProjectDeliveryREST:CreateProject")
	defer trace.Finish()

	body, _ := io.ReadAll(req.Body)
	if err := h.validator.ValidateDocument("project/save", body); err != nil {
		wrapper.NewHTTPResponse(http.StatusBadRequest, "Failed validate payload", err).JSON(rw)
		return
	}

	var payload domain.RequestProject
	if err := json.Unmarshal(body, &payload); err != nil {
		wrapper.NewHTTPResponse(http.StatusBadRequest, err.Error()).JSON(rw)
		return
	}

	data, err := h.uc.Project().CreateProject(ctx, &payload)
	if err != nil {
		logger.LogE(err.Error())
		wrapper.NewHTTPResponse(http.StatusInternalServerError, messageInternalError).JSON(rw)
		return
	}

	wrapper.NewHTTPResponse(http.StatusCreated, "Project created", data).JSON(rw)
}

func (h *RestHandler) updateProject(rw http.ResponseWriter, req *http.Request) {
	trace, ctx := tracer.StartTraceWithContext(req.Context(), "ProjectDeliveryREST:UpdateProject")
	defer trace.Finish()

	body, _ := io.ReadAll(req.Body)
	if err := h.validator.ValidateDocument("project/save", body); err != nil {
		wrapper.NewHTTPResponse(http.StatusBadRequest, "Failed validate payload", err).JSON(rw)
		return
	}

	var payload domain.RequestProject
	if err := json.Unmarshal(body, &payload); err != nil {
		wrapper.NewHTTPResponse(http.StatusBadRequest, err.Error()).JSON(rw)
		return
	}
	payload.ID = restserver.URLParam(req, "id")

	err := h.uc.Project().UpdateProject(ctx, &payload)
	if errors.Is(err, mongo.ErrNoDocuments) {
		wrapper.NewHTTPResponse(http.StatusNotFound, messageNotFound).JSON(rw)
		return
	}
	if err != nil {
		logger.LogE(err.Error())
		wrapper.NewHTTPResponse(http.StatusInternalServerError, messageInternalError).JSON(rw)
		return
	}

	wrapper.NewHTTPResponse(http.StatusOK, "Project updated").JSON(rw)
}

func (h *RestHandler) deleteProject(rw http.ResponseWriter, req *http.Request) {
	trace, ctx := tracer.StartTraceWithContext(req.Context(), "ProjectDeliveryREST:DeleteProject")
	defer trace.Finish()

	err := h.uc.Project().DeleteProject(ctx, restserver.URLParam(req, "id"))
	if errors.Is(err, mongo.ErrNoDocuments) {
		wrapper.NewHTTPResponse(http.StatusNotFound, messageNotFound).JSON(rw)
		return
	}
	if err != nil {
		logger.LogE(err.Error())
		wrapper.NewHTTPResponse(http.StatusInternalServerError, messageInternalError).JSON(rw)
		return
	}

	wrapper.NewHTTPResponse(http.StatusOK, "Project deleted").JSON(rw)
}

func (h *RestHandler) addLikeProject(rw http.ResponseWriter, req *http.Request) {
	trace, ctx := tracer.StartTraceWithContext(req.Context(), "ProjectDeliveryREST:AddLikeProject")
	defer trace.Finish()

	data, err := h.uc.Project().AddLikeProject(ctx, restserver.URLParam(req, "id"))
	if errors.Is(err, mongo.ErrNoDocuments) {
		wrapper.NewHTTPResponse(http.StatusNotFound, messageNotFound).JSON(rw)
		return
	}
	if err != nil {
		logger.LogE(err.Error())
		wrapper.NewHTTPResponse(http.StatusInternalServerError, messageInternalError).JSON(rw)
		return
	}

	wrapper.NewHTTPResponse(http.StatusOK, "Success", data).JSON(rw)
}
