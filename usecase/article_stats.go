package usecase

import (
	"context"

	"content-desk/domain"
	"content-desk/port"
)

// ArticleStatsUsecase derives the dashboard aggregates. Lookup tables
// are rebuilt from the cached category and network collections on every
// call; a failed lookup fetch does not sink the whole view, the
// aggregates just fall back to placeholder names.
type ArticleStatsUsecase struct {
	articles   port.ArticleRepository
	categories port.CategoryRepository
	networks   port.NetworkRepository
}

func NewArticleStatsUsecase(
	articles port.ArticleRepository,
	categories port.CategoryRepository,
	networks port.NetworkRepository,
) *ArticleStatsUsecase {
	return &ArticleStatsUsecase{
		articles:   articles,
		categories: categories,
		networks:   networks,
	}
}

func (u *ArticleStatsUsecase) Execute(ctx context.Context) (*domain.Stats, error) {
	articles, err := u.articles.List(ctx, domain.ArticleQuery{})
	if err != nil {
		return nil, err
	}

	categories, err := u.categories.List(ctx)
	if err != nil {
		categories = nil
	}
	networks, err := u.networks.List(ctx)
	if err != nil {
		networks = nil
	}

	stats := domain.ComputeStats(
		articles,
		domain.BuildCategoryTable(categories),
		domain.BuildNetworkTable(networks),
	)
	return &stats, nil
}
