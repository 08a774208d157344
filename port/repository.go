package port

import (
	"context"
	"io"

	"content-desk/domain"
)

// ArticleRepository is the read/write surface over the remote article
// collection. List reads through the collection cache; mutations
// invalidate it on success.
type ArticleRepository interface {
	List(ctx context.Context, query domain.ArticleQuery) ([]domain.Article, error)
	Get(ctx context.Context, id string) (*domain.Article, error)
	Create(ctx context.Context, input domain.ArticleInput) (*domain.Article, error)
	Update(ctx context.Context, id string, input domain.ArticleInput) (*domain.Article, error)
	Delete(ctx context.Context, id string) error
	ChangeStatus(ctx context.Context, id string, status domain.Status) (*domain.Article, error)
	Notify(ctx context.Context, id string, req domain.NotifyRequest) (*domain.NotifyResult, error)
	Import(ctx context.Context, filename string, file io.Reader) (*domain.ImportResult, error)
}

// CategoryRepository manages the category collection.
type CategoryRepository interface {
	List(ctx context.Context) ([]domain.Category, error)
	Create(ctx context.Context, input domain.CategoryInput) (*domain.Category, error)
	Update(ctx context.Context, id string, input domain.CategoryInput) (*domain.Category, error)
	Delete(ctx context.Context, id string) error
}

// NetworkRepository manages the network collection.
type NetworkRepository interface {
	List(ctx context.Context) ([]domain.Network, error)
	Create(ctx context.Context, input domain.NetworkInput) (*domain.Network, error)
	Update(ctx context.Context, id string, input domain.NetworkInput) (*domain.Network, error)
	Delete(ctx context.Context, id string) error
}

// NotificationRepository reads the notification history.
type NotificationRepository interface {
	List(ctx context.Context) ([]domain.Notification, error)
}
