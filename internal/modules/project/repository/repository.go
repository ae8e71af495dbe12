package repository

import (
	"context"

	"portfolio-service/internal/modules/project/domain"
	shareddomain "portfolio-service/pkg/shared/domain"
)

// ProjectRepository abstract interface
type ProjectRepository interface {
	FetchAll(ctx context.Context, filter *domain.FilterProject) ([]shareddomain.Project, error)
	Count(ctx context.Context, filter *domain.FilterProject) (int, error)
	Find(ctx context.Context, filter *domain.FilterProject) (shareddomain.Project, error)
	Save(ctx context.Context, data *shareddomain.Project) error
	Delete(ctx context.Context, filter *domain.FilterProject) error
	IncrementViews(ctx context.Context, id string) (shareddomain.Project, error)
	IncrementLikes(ctx context.Context, id string) (shareddomain.Project, error)
	SumViews(ctx context.Context) (int, error)
	FetchPopular(ctx context.Context, limit int) ([]shareddomain.Project, error)
}
