package resthandler

import (
	"encoding/json"
	"io"
	"net"
	"net/http"
	"strings"

	"portfolio-service/internal/modules/analytics/domain"
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
	analytics := root.Group("/analytics")

	analytics.POST("/visit", h.recordVisit)
	analytics.GET("/stats", h.getStatistic)
	analytics.GET("/visitors", h.getAllVisitor)
}

// extractClientIP takes the network identity from the transport layer,
// proxy headers first, then the raw remote address
func extractClientIP(req *http.Request) string {
	if forwarded := req.Header.Get("X-Forwarded-For"); forwarded != "" {
		return strings.TrimSpace(strings.Split(forwarded, ",")[0])
	}
	if realIP := req.Header.Get("X-Real-IP"); realIP != "" {
		return realIP
	}
	host, _, err := net.SplitHostPort(req.RemoteAddr)
	if err != nil {
		return req.RemoteAddr
	}
	return host
}

func (h *RestHandler) recordVisit(rw http.ResponseWriter, req *http.Request) {
	trace, ctx := tracer.StartTraceWithContext(req.Context(), "AnalyticsDeliveryREST:RecordVisit")
	defer trace.Finish()

	body, _ := io.ReadAll(req.Body)
	if len(body) == 0 {
		body = []byte(`{}`)
	}
	if err := h.validator.ValidateDocument("analytics/record_visit", body); err != nil {
		wrapper.NewHTTPResponse(http.StatusBadRequest, "Failed validate payload", err).JSON(rw)
		return
	}

	var payload domain.RequestVisit
	if err := json.Unmarshal(body, &payload); err != nil {
		wrapper.NewHTTPResponse(http.StatusBadRequest, err.Error()).JSON(rw)
		return
	}
	payload.IPAddress = extractClientIP(req)
	payload.UserAgent = req.UserAgent()

	data, err := h.uc.Analytics().RecordVisit(ctx, &payload)
	if err != nil {
		logger.LogE(err.Error())
		wrapper.NewHTTPResponse(http.StatusInternalServerError, messageInternalError).JSON(rw)
		return
	}

	wrapper.NewHTTPResponse(http.StatusOK, "Visit recorded", data).JSON(rw)
}

func (h *RestHandler) getStatistic(rw http.ResponseWriter, req *http.Request) {
	trace, ctx := tracer.StartTraceWithContext(req.Context(), "AnalyticsDeliveryREST:GetStatistic")
	defer trace.Finish()

	var filter domain.FilterStatistic
	if err := candihelper.ParseFromQueryParam(req.URL.Query(), &filter); err != nil {
		wrapper.NewHTTPResponse(http.StatusBadRequest, "Failed parse filter", err).JSON(rw)
		return
	}

	data, err := h.uc.Analytics().GetStatistic(ctx, &filter)
	if err != nil {
		logger.LogE(err.Error())
		wrapper.NewHTTPResponse(http.StatusInternalServerError, messageInternalError).JSON(rw)
		return
	}

	wrapper.NewHTTPResponse(http.StatusOK, "Success", data).JSON(rw)
}

func (h *RestHandler) getAllVisitor(rw http.ResponseWriter, req *http.Request) {
	trace, ctx := tracer.StartTraceWithContext(req.Context(), "AnalyticsDeliveryREST:GetAllVisitor")
	defer trace.Finish()

	var filter domain.FilterVisitor
	if err := candihelper.ParseFromQueryParam(req.URL.Query(), &filter); err != nil {
		wrapper.NewHTTPResponse(http.StatusBadRequest, "Failed parse filter", err).JSON(rw)
		return
	}

	data, meta, err := h.uc.Analytics().GetAllVisitor(ctx, &filter)
	if err != nil {
		logger.LogE(err.Error())
		wrapper.NewHTTPResponse(http.StatusInternalServerError, messageInternalError).JSON(rw)
		return
	}

	wrapper.NewHTTPResponse(http.StatusOK, "Success", meta, data).JSON(rw)
}
