package repository

import (
	"context"

	"portfolio-service/internal/modules/contact/domain"
	shareddomain "portfolio-service/pkg/shared/domain"
)

// ContactRepository abstract interface
type ContactRepository interface {
	FetchAll(ctx context.Context, filter *domain.FilterContact) ([]shareddomain.Contact, error)
	Count(ctx context.Context, filter *domain.FilterContact) (int, error)
	Save(ctx context.Context, data *shareddomain.Contact) error
}
