package usecase

import (
	"context"
	"strconv"
	"time"

	"portfolio-service/internal/modules/analytics/domain"
	contactdomain "portfolio-service/internal/modules/contact/domain"
	projectdomain "portfolio-service/internal/modules/project/domain"

	"github.com/golangid/candi/candihelper"
	"github.com/golangid/candi/tracer"
)

const (
	defaultTimeframeDays = 30
	dailyWindowDays      = 7
	maxPopularProjects   = 5
)

func (uc *analyticsUsecaseImpl) GetStatistic(ctx context.Context, filter *domain.FilterStatistic) (resp domain.ResponseStatistic, err error) {
	trace, ctx := tracer.StartTraceWithContext(ctx, "AnalyticsUsecase:GetStatistic")
	defer trace.Finish()

	timeframe, parseErr := strconv.Atoi(filter.Timeframe)
	if parseErr != nil || timeframe <= 0 {
		timeframe = defaultTimeframeDays
	}
	trace.SetTag("timeframe", timeframe)

	now := time.Now().UTC()
	startDate := now.AddDate(0, 0, -timeframe)
	// daily histogram always covers the trailing week, independent of timeframe
	weekAgo := now.AddDate(0, 0, -dailyWindowDays)

	// every query below is all or nothing, one failing store fails the whole snapshot
	visitorRepo := uc.repoMongo.VisitorRepo()
	if resp.Visitors.Total, err = visitorRepo.Count(ctx, &domain.FilterVisitorCount{}); err != nil {
		return resp, err
	}
	if resp.Visitors.Recent, err = visitorRepo.Count(ctx, &domain.FilterVisitorCount{Since: startDate}); err != nil {
		return resp, err
	}
	resp.Visitors.Returning, err = visitorRepo.Count(ctx, &domain.FilterVisitorCount{
		Since: startDate, IsReturning: candihelper.ToBoolPtr(true),
	})
	if err != nil {
		return resp, err
	}
	if resp.Visitors.Daily, err = visitorRepo.AggregateDailyVisits(ctx, weekAgo); err != nil {
		return resp, err
	}

	devices, err := visitorRepo.AggregateDevices(ctx, startDate)
	if err != nil {
		return resp, err
	}
	resp.Devices = make(map[string]int, len(devices))
	for _, d := range devices {
		resp.Devices[d.DeviceType] = d.Count
	}

	contactRepo := uc.repoMongo.ContactRepo()
	if resp.Contacts.Total, err = contactRepo.Count(ctx, &contactdomain.FilterContact{}); err != nil {
		return resp, err
	}
	if resp.Contacts.Recent, err = contactRepo.Count(ctx, &contactdomain.FilterContact{Since: startDate}); err != nil {
		return resp, err
	}

	projectRepo := uc.repoMongo.ProjectRepo()
	if resp.Projects.Total, err = projectRepo.Count(ctx, &projectdomain.FilterProject{}); err != nil {
		return resp, err
	}
	if resp.Projects.TotalViews, err = projectRepo.SumViews(ctx); err != nil {
		return resp, err
	}
	popular, err := projectRepo.FetchPopular(ctx, maxPopularProjects)
	if err != nil {
		return resp, err
	}
	for _, p := range popular {
		resp.Projects.Popular = append(resp.Projects.Popular, domain.PopularProject{
			Title: p.Title, Views: p.Views, Likes: p.Likes,
		})
	}

	return
}
