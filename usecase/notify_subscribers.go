package usecase

import (
	"context"
	"errors"

	"content-desk/domain"
	"content-desk/port"
)

// NotifySubscribersUsecase triggers a subscriber notification for one
// article. The request body is optional; an empty request lets the
// server pick its default recipient list and subject.
type NotifySubscribersUsecase struct {
	articles port.ArticleRepository
}

func NewNotifySubscribersUsecase(articles port.ArticleRepository) *NotifySubscribersUsecase {
	return &NotifySubscribersUsecase{articles: articles}
}

func (u *NotifySubscribersUsecase) Execute(ctx context.Context, id string, req domain.NotifyRequest) (*domain.NotifyResult, error) {
	if id == "" {
		return nil, errors.New("article id cannot be empty")
	}
	return u.articles.Notify(ctx, id, req)
}
