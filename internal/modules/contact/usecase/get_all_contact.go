package usecase

import (
	"context"

	"portfolio-service/internal/modules/contact/domain"

	"github.com/golangid/candi/candishared"
	"github.com/golangid/candi/tracer"
)

func (uc *contactUsecaseImpl) GetAllContact(ctx context.Context, filter *domain.FilterContact) (results []domain.ResponseContact, meta candishared.Meta, err error) {
	trace, ctx := tracer.StartTraceWithContext(ctx, "ContactUsecase:GetAllContact")
	defer trace.Finish()

	if filter.Page <= 0 {
		filter.Page = 1
	}
	if filter.Limit <= 0 {
		filter.Limit = 10
	}
	filter.CalculateOffset()

	data, err := uc.repoMongo.ContactRepo().FetchAll(ctx, filter)
	if err != nil {
		return results, meta, err
	}
	count, err := uc.repoMongo.ContactRepo().Count(ctx, &domain.FilterContact{})
	if err != nil {
		return results, meta, err
	}
	meta = candishared.NewMeta(filter.Page, filter.Limit, count)

	for _, detail := range data {
		var res domain.ResponseContact
		res.Serialize(&detail)
		results = append(results, res)
	}

	return
}
