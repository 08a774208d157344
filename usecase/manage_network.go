package usecase

import (
	"context"
	"errors"
	"fmt"

	"content-desk/domain"
	"content-desk/port"
)

// ManageNetworkUsecase owns the network collection, with the same
// delete pre-check as categories.
type ManageNetworkUsecase struct {
	networks port.NetworkRepository
	articles port.ArticleRepository
}

func NewManageNetworkUsecase(networks port.NetworkRepository, articles port.ArticleRepository) *ManageNetworkUsecase {
	return &ManageNetworkUsecase{
		networks: networks,
		articles: articles,
	}
}

func (u *ManageNetworkUsecase) List(ctx context.Context) ([]domain.Network, error) {
	return u.networks.List(ctx)
}

func (u *ManageNetworkUsecase) Create(ctx context.Context, input domain.NetworkInput) (*domain.Network, error) {
	if err := domain.ValidateNetworkInput(input); err != nil {
		return nil, err
	}
	return u.networks.Create(ctx, input)
}

func (u *ManageNetworkUsecase) Update(ctx context.Context, id string, input domain.NetworkInput) (*domain.Network, error) {
	if id == "" {
		return nil, errors.New("network id cannot be empty")
	}
	if err := domain.ValidateNetworkInput(input); err != nil {
		return nil, err
	}
	return u.networks.Update(ctx, id, input)
}

func (u *ManageNetworkUsecase) Delete(ctx context.Context, id string) error {
	if id == "" {
		return errors.New("network id cannot be empty")
	}

	articles, err := u.articles.List(ctx, domain.ArticleQuery{})
	if err != nil {
		return err
	}
	for _, a := range articles {
		if a.NetworkID == id {
			return fmt.Errorf("network %s: %w", id, domain.ErrInUse)
		}
	}

	return u.networks.Delete(ctx, id)
}
