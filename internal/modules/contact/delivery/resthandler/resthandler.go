package resthandler

import (
	"encoding/json"
	"io"
	"net/http"

	"portfolio-service/internal/modules/contact/domain"
	"portfolio-service/pkg/shared/usecase"

	"github.com/golangid/candi/candihelper"
	"github.com/golangid/candi/codebase/factory/dependency"
	"github.com/golangid/candi/codebase/interfaces"
	"github.com/golangid/candi/logger"
	"github.com/golangid/candi/tracer"
	"github.com/golangid/candi/wrapper"
)

const messageInternalError = "Something went wrong, please try again later"

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
	contact := root.Group("/contact")

	contact.POST("/", h.submitContact)
	contact.GET("/", h.getAllContact)
}

func (h *RestHandler) submitContact(rw http.ResponseWriter, req *http.Request) {
	trace, ctx := tracer.StartTraceWithContext(req.Context(), "ContactDeliveryREST:SubmitContact")
	defer trace.Finish()

	body, _ := io.ReadAll(req.Body)
	if err := h.validator.ValidateDocument("contact/save", body); err != nil {
		wrapper.NewHTTPResponse(http.StatusBadRequest, "Failed validate payload", err).JSON(rw)
		return
	}

	var payload domain.RequestContact
	if err := json.Unmarshal(body, &payload); err != nil {
		wrapper.NewHTTPResponse(http.StatusBadRequest, err.Error()).JSON(rw)
		return
	}

	data, err := h.uc.Contact().SubmitContact(ctx, &payload)
	if err != nil {
		logger.LogE(err.Error())
		wrapper.NewHTTPResponse(http.StatusInternalServerError, messageInternalError).JSON(rw)
		return
	}

	wrapper.NewHTTPResponse(http.StatusCreated, "Message sent", data).JSON(rw)
}

func (h *RestHandler) getAllContact(rw http.ResponseWriter, req *http.Request) {
	trace, ctx := tracer.StartTraceWithContext(req.Context(), "ContactDeliveryREST:GetAllContact")
	defer trace.Finish()

	var filter domain.FilterContact
	if err := candihelper.ParseFromQueryParam(req.URL.Query(), &filter); err != nil {
		wrapper.NewHTTPResponse(http.StatusBadRequest, "Failed parse filter", err).JSON(rw)
		return
	}

	data, meta, err := h.uc.Contact().GetAllContact(ctx, &filter)
	if err != nil {
		logger.LogE(err.Error())
		wrapper.NewHTTPResponse(http.StatusInternalServerError, messageInternalError).JSON(rw)
		return
	}

	wrapper.NewHTTPResponse(http.StatusOK, "Success", meta, data).JSON(rw)
}
