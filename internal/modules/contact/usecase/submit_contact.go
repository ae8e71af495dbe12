package usecase

import (
	"context"

	"portfolio-service/internal/modules/contact/domain"

	"github.com/golangid/candi/tracer"
)

func (uc *contactUsecaseImpl) SubmitContact(ctx context.Context, req *domain.RequestContact) (result domain.ResponseContact, err error) {
	trace, ctx := tracer.StartTraceWithContext(ctx, "ContactUsecase:SubmitContact")
	defer trace.Finish()

	data := req.Deserialize()
	if err = uc.repoMongo.ContactRepo().Save(ctx, &data); err != nil {
		return result, err
	}

	result.Serialize(&data)
	return
}
