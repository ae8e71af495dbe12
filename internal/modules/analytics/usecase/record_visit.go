package usecase

import (
	"context"
	"strings"

	"portfolio-service/internal/modules/analytics/domain"
	shareddomain "portfolio-service/pkg/shared/domain"

	"github.com/golangid/candi/tracer"
)

// classifyDevice by case sensitive substring check on the raw user agent,
// "Mobile" wins over "Tablet" (mobile Safari on iPad sends both)
func classifyDevice(userAgent string) string {
	switch {
	case userAgent == "":
		return shareddomain.DeviceUnknown
	case strings.Contains(userAgent, "Mobile"):
		return shareddomain.DeviceMobile
	case strings.Contains(userAgent, "Tablet"):
		return shareddomain.DeviceTablet
	default:
		return shareddomain.DeviceDesktop
	}
}

func (uc *analyticsUsecaseImpl) RecordVisit(ctx context.Context, req *domain.RequestVisit) (resp domain.ResponseVisit, err error) {
	trace, ctx := tracer.StartTraceWithContext(ctx, "AnalyticsUsecase:RecordVisit")
	defer trace.Finish()

	// existence check is unbounded in time, a visit from a year ago still
	// marks this one as returning. Two concurrent first visits from the same
	// IP may both read zero here, the flag is advisory, not a uniqueness guarantee.
	prior, err := uc.repoMongo.VisitorRepo().Count(ctx, &domain.FilterVisitorCount{IPAddress: req.IPAddress})
	if err != nil {
		return resp, err
	}

	data := req.Deserialize()
	data.IsReturning = prior > 0
	data.DeviceType = classifyDevice(req.UserAgent)

	if err = uc.repoMongo.VisitorRepo().Save(ctx, &data); err != nil {
		return resp, err
	}

	resp.IsReturning = data.IsReturning
	return
}
