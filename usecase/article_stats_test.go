package usecase

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"content-desk/domain"
)

func TestArticleStatsUsecase_Execute(t *testing.T) {
	articles := &mockArticleRepo{articles: []domain.Article{
		{ID: "1", Title: "a", Status: domain.StatusPublished, NetworkID: "1", CategoryIDs: []string{"1"}},
		{ID: "2", Title: "b", Status: domain.StatusPublished, NetworkID: "1", CategoryIDs: []string{"1", "2"}},
		{ID: "3", Title: "c", Status: domain.StatusDraft, Featured: true},
	}}
	categories := &mockCategoryRepo{categories: []domain.Category{
		{ID: "1", Name: "Politics", Color: "#123456"},
	}}
	networks := &mockNetworkRepo{networks: []domain.Network{
		{ID: "1", Name: "National"},
	}}
	u := NewArticleStatsUsecase(articles, categories, networks)

	stats, err := u.Execute(context.Background())
	require.NoError(t, err)

	assert.Equal(t, 3, stats.Total)
	assert.Equal(t, 2, stats.Published)
	assert.Equal(t, 1, stats.Draft)
	assert.Equal(t, 1, stats.Featured)

	require.Len(t, stats.ByNetwork, 1)
	assert.Equal(t, domain.NetworkCount{Name: "National", Count: 2}, stats.ByNetwork[0])

	require.Len(t, stats.PieData, 2)
	assert.Equal(t, "Politics", stats.PieData[0].Name)
	assert.Equal(t, 2, stats.PieData[0].Value)
	assert.Equal(t, "Category #2", stats.PieData[1].Name)
}

func TestArticleStatsUsecase_LookupFailureFallsBackToPlaceholders(t *testing.T) {
	articles := &mockArticleRepo{articles: []domain.Article{
		{ID: "1", Title: "a", Status: domain.StatusPublished, NetworkID: "7", CategoryIDs: []string{"3"}},
	}}
	categories := &mockCategoryRepo{listErr: domain.ErrUnavailable}
	networks := &mockNetworkRepo{listErr: domain.ErrUnavailable}
	u := NewArticleStatsUsecase(articles, categories, networks)

	stats, err := u.Execute(context.Background())
	require.NoError(t, err)

	require.Len(t, stats.ByNetwork, 1)
	assert.Equal(t, "Network #7", stats.ByNetwork[0].Name)
	require.Len(t, stats.PieData, 1)
	assert.Equal(t, "Category #3", stats.PieData[0].Name)
}

func TestArticleStatsUsecase_ArticleFetchFailureIsFatal(t *testing.T) {
	u := NewArticleStatsUsecase(
		&mockArticleRepo{listErr: domain.ErrUnavailable},
		&mockCategoryRepo{},
		&mockNetworkRepo{},
	)

	_, err := u.Execute(context.Background())
	assert.ErrorIs(t, err, domain.ErrUnavailable)
}

func TestListNotificationsUsecase_SortsNewestFirst(t *testing.T) {
	repo := &mockNotificationRepo{notifications: []domain.Notification{
		{ID: "1", CreatedAt: ts("2026-01-01T00:00:00Z")},
		{ID: "2", SentAt: ts("2026-03-01T00:00:00Z")},
		{ID: "3"},
		{ID: "4", CreatedAt: ts("2026-02-01T00:00:00Z")},
	}}
	u := NewListNotificationsUsecase(repo)

	notifications, err := u.Execute(context.Background())
	require.NoError(t, err)

	var ids []string
	for _, n := range notifications {
		ids = append(ids, n.ID)
	}
	assert.Equal(t, []string{"2", "4", "1", "3"}, ids)
}
