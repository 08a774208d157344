package usecase

import (
	"context"
	"errors"

	"content-desk/domain"
	"content-desk/port"
)

// GetArticleUsecase fetches a single article straight from the remote
// API. Single reads bypass the collection cache.
type GetArticleUsecase struct {
	articles port.ArticleRepository
}

func NewGetArticleUsecase(articles port.ArticleRepository) *GetArticleUsecase {
	return &GetArticleUsecase{articles: articles}
}

func (u *GetArticleUsecase) Execute(ctx context.Context, id string) (*domain.Article, error) {
	if id == "" {
		return nil, errors.New("article id cannot be empty")
	}
	return u.articles.Get(ctx, id)
}
