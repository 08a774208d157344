package usecase

import (
	"context"
	"io"

	"content-desk/domain"
)

// Hand-rolled repository mocks. Call counters track whether a mutation
// reached the repository at all.
type mockArticleRepo struct {
	articles []domain.Article
	listErr  error

	created       *domain.ArticleInput
	updated       *domain.ArticleInput
	deleteCalls   int
	statusChanges []domain.Status
	mutErr        error
}

func (m *mockArticleRepo) List(context.Context, domain.ArticleQuery) ([]domain.Article, error) {
	return m.articles, m.listErr
}

func (m *mockArticleRepo) Get(_ context.Context, id string) (*domain.Article, error) {
	for i := range m.articles {
		if m.articles[i].ID == id {
			return &m.articles[i], nil
		}
	}
	return nil, domain.ErrNotFound
}

func (m *mockArticleRepo) Create(_ context.Context, input domain.ArticleInput) (*domain.Article, error) {
	if m.mutErr != nil {
		return nil, m.mutErr
	}
	m.created = &input
	return &domain.Article{ID: "new", Title: input.Title, Status: domain.StatusDraft}, nil
}

func (m *mockArticleRepo) Update(_ context.Context, id string, input domain.ArticleInput) (*domain.Article, error) {
	if m.mutErr != nil {
		return nil, m.mutErr
	}
	m.updated = &input
	return &domain.Article{ID: id, Title: input.Title, Status: domain.StatusDraft}, nil
}

func (m *mockArticleRepo) Delete(context.Context, string) error {
	if m.mutErr != nil {
		return m.mutErr
	}
	m.deleteCalls++
	return nil
}

func (m *mockArticleRepo) ChangeStatus(_ context.Context, id string, status domain.Status) (*domain.Article, error) {
	if m.mutErr != nil {
		return nil, m.mutErr
	}
	m.statusChanges = append(m.statusChanges, status)
	return &domain.Article{ID: id, Title: "t", Status: status}, nil
}

func (m *mockArticleRepo) Notify(context.Context, string, domain.NotifyRequest) (*domain.NotifyResult, error) {
	if m.mutErr != nil {
		return nil, m.mutErr
	}
	return &domain.NotifyResult{Message: "sent"}, nil
}

func (m *mockArticleRepo) Import(context.Context, string, io.Reader) (*domain.ImportResult, error) {
	if m.mutErr != nil {
		return nil, m.mutErr
	}
	return &domain.ImportResult{Total: 1, Success: 1}, nil
}

type mockCategoryRepo struct {
	categories  []domain.Category
	listErr     error
	deleteCalls int
}

func (m *mockCategoryRepo) List(context.Context) ([]domain.Category, error) {
	return m.categories, m.listErr
}

func (m *mockCategoryRepo) Create(_ context.Context, input domain.CategoryInput) (*domain.Category, error) {
	return &domain.Category{ID: "new", Name: input.Name}, nil
}

func (m *mockCategoryRepo) Update(_ context.Context, id string, input domain.CategoryInput) (*domain.Category, error) {
	return &domain.Category{ID: id, Name: input.Name}, nil
}

func (m *mockCategoryRepo) Delete(context.Context, string) error {
	m.deleteCalls++
	return nil
}

type mockNetworkRepo struct {
	networks    []domain.Network
	listErr     error
	deleteCalls int
}

func (m *mockNetworkRepo) List(context.Context) ([]domain.Network, error) {
	return m.networks, m.listErr
}

func (m *mockNetworkRepo) Create(_ context.Context, input domain.NetworkInput) (*domain.Network, error) {
	return &domain.Network{ID: "new", Name: input.Name}, nil
}

func (m *mockNetworkRepo) Update(_ context.Context, id string, input domain.NetworkInput) (*domain.Network, error) {
	return &domain.Network{ID: id, Name: input.Name}, nil
}

func (m *mockNetworkRepo) Delete(context.Context, string) error {
	m.deleteCalls++
	return nil
}

type mockNotificationRepo struct {
	notifications []domain.Notification
	listErr       error
}

func (m *mockNotificationRepo) List(context.Context) ([]domain.Notification, error) {
	return m.notifications, m.listErr
}
