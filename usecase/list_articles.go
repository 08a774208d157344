package usecase

import (
	"context"

	"content-desk/domain"
	"content-desk/port"
)

// ArticlePage is one page of the filtered article collection, with the
// pre-pagination total for page controls.
type ArticlePage struct {
	Articles []domain.Article
	Total    int
	Page     int
	PageSize int
}

// ListArticlesUsecase serves filtered, sorted, paginated views of the
// article collection. The full collection is fetched once (through the
// cache) and narrowed in memory; the remote API's own filtering is not
// relied on.
type ListArticlesUsecase struct {
	articles        port.ArticleRepository
	defaultPageSize int
}

func NewListArticlesUsecase(articles port.ArticleRepository, defaultPageSize int) *ListArticlesUsecase {
	if defaultPageSize <= 0 {
		defaultPageSize = 20
	}
	return &ListArticlesUsecase{
		articles:        articles,
		defaultPageSize: defaultPageSize,
	}
}

func (u *ListArticlesUsecase) Execute(ctx context.Context, query domain.ArticleQuery) (*ArticlePage, error) {
	all, err := u.articles.List(ctx, domain.ArticleQuery{})
	if err != nil {
		return nil, err
	}

	filtered := domain.Apply(all, query.Filters(), query.Sort())

	page := 0
	if query.Page != nil {
		page = *query.Page
	}
	size := u.defaultPageSize
	if query.Limit != nil && *query.Limit > 0 {
		size = *query.Limit
	}

	return &ArticlePage{
		Articles: domain.Paginate(filtered, page, size),
		Total:    len(filtered),
		Page:     page,
		PageSize: size,
	}, nil
}
