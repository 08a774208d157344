package usecase

import (
	"context"
	"errors"
	"fmt"

	"content-desk/domain"
	"content-desk/port"
)

// ManageCategoryUsecase owns the category collection. Deletes are
// pre-checked against the cached article collection: a category that any
// article still references is refused with domain.ErrInUse before a
// request is sent. The server enforces the same rule and may still
// answer with a conflict when the local view is stale.
type ManageCategoryUsecase struct {
	categories port.CategoryRepository
	articles   port.ArticleRepository
}

func NewManageCategoryUsecase(categories port.CategoryRepository, articles port.ArticleRepository) *ManageCategoryUsecase {
	return &ManageCategoryUsecase{
		categories: categories,
		articles:   articles,
	}
}

func (u *ManageCategoryUsecase) List(ctx context.Context) ([]domain.Category, error) {
	return u.categories.List(ctx)
}

func (u *ManageCategoryUsecase) Create(ctx context.Context, input domain.CategoryInput) (*domain.Category, error) {
	if err := domain.ValidateCategoryInput(input); err != nil {
		return nil, err
	}
	return u.categories.Create(ctx, input)
}

func (u *ManageCategoryUsecase) Update(ctx context.Context, id string, input domain.CategoryInput) (*domain.Category, error) {
	if id == "" {
		return nil, errors.New("category id cannot be empty")
	}
	if err := domain.ValidateCategoryInput(input); err != nil {
		return nil, err
	}
	return u.categories.Update(ctx, id, input)
}

func (u *ManageCategoryUsecase) Delete(ctx context.Context, id string) error {
	if id == "" {
		return errors.New("category id cannot be empty")
	}

	inUse, err := u.categoryInUse(ctx, id)
	if err != nil {
		return err
	}
	if inUse {
		return fmt.Errorf("category %s: %w", id, domain.ErrInUse)
	}

	return u.categories.Delete(ctx, id)
}

// categoryInUse scans the article collection for any association with
// the category, under either representation.
func (u *ManageCategoryUsecase) categoryInUse(ctx context.Context, id string) (bool, error) {
	articles, err := u.articles.List(ctx, domain.ArticleQuery{})
	if err != nil {
		return false, err
	}
	for _, a := range articles {
		for _, cid := range domain.ResolveCategory(a).All() {
			if cid == id {
				return true, nil
			}
		}
	}
	return false, nil
}
