package usecase

import (
	"context"
	"errors"

	"content-desk/domain"
	"content-desk/port"
)

// MutateArticleUsecase coordinates article writes: validate locally,
// submit, and rely on the repository to invalidate cached collections
// on success. Failed mutations are surfaced to the caller unchanged and
// never retried.
type MutateArticleUsecase struct {
	articles port.ArticleRepository
}

func NewMutateArticleUsecase(articles port.ArticleRepository) *MutateArticleUsecase {
	return &MutateArticleUsecase{articles: articles}
}

func (u *MutateArticleUsecase) Create(ctx context.Context, input domain.ArticleInput) (*domain.Article, error) {
	if err := domain.ValidateArticleInput(input); err != nil {
		return nil, err
	}
	return u.articles.Create(ctx, input)
}

func (u *MutateArticleUsecase) Update(ctx context.Context, id string, input domain.ArticleInput) (*domain.Article, error) {
	if id == "" {
		return nil, errors.New("article id cannot be empty")
	}
	if err := domain.ValidateArticleInput(input); err != nil {
		return nil, err
	}
	return u.articles.Update(ctx, id, input)
}

func (u *MutateArticleUsecase) Delete(ctx context.Context, id string) error {
	if id == "" {
		return errors.New("article id cannot be empty")
	}
	return u.articles.Delete(ctx, id)
}

func (u *MutateArticleUsecase) ChangeStatus(ctx context.Context, id string, status domain.Status) (*domain.Article, error) {
	if id == "" {
		return nil, errors.New("article id cannot be empty")
	}
	if !status.Valid() {
		return nil, &domain.ValidationError{Field: "status", Err: "must be draft, published or archived"}
	}
	return u.articles.ChangeStatus(ctx, id, status)
}
