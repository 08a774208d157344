package contentapi

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestClient(t *testing.T, handler http.HandlerFunc) *Client {
	t.Helper()

	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)

	return NewClient(srv.URL, "test-token", 5*time.Second)
}

func TestClient_ListArticles(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodGet, r.Method)
		assert.Equal(t, "/api/articles", r.URL.Path)
		assert.Equal(t, "published", r.URL.Query().Get("status"))
		assert.Equal(t, "Bearer test-token", r.Header.Get("Authorization"))
		assert.NotEmpty(t, r.Header.Get("X-Request-ID"))

		_, _ = w.Write([]byte(`{"data":[{"id":1,"title":"A","status":"published"},{"id":"2","title":"B","status":"draft"}]}`))
	})

	articles, err := client.ListArticles(context.Background(), map[string]string{"status": "published"})
	require.NoError(t, err)
	require.Len(t, articles, 2)
	assert.Equal(t, "1", articles[0].ID.String())
	assert.Equal(t, "2", articles[1].ID.String())
}

func TestClient_ListArticles_MalformedEnvelopeDegradesToEmpty(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{"unexpected":true}`))
	})

	articles, err := client.ListArticles(context.Background(), nil)
	require.NoError(t, err)
	assert.Empty(t, articles)
}

func TestClient_CreateArticle(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "/api/articles", r.URL.Path)
		assert.Equal(t, "application/json", r.Header.Get("Content-Type"))

		var form ArticleForm
		require.NoError(t, json.NewDecoder(r.Body).Decode(&form))
		assert.Equal(t, "Fresh", form.Title)
		assert.Equal(t, []string{"1", "2"}, form.CategoryIDs)

		w.WriteHeader(http.StatusCreated)
		_, _ = w.Write([]byte(`{"id":10,"title":"Fresh","status":"draft"}`))
	})

	created, err := client.CreateArticle(context.Background(), ArticleForm{
		Title:       "Fresh",
		CategoryIDs: []string{"1", "2"},
	})
	require.NoError(t, err)
	assert.Equal(t, "10", created.ID.String())
}

func TestClient_ChangeArticleStatus(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPatch, r.Method)
		assert.Equal(t, "/api/articles/7/status", r.URL.Path)

		body, _ := io.ReadAll(r.Body)
		assert.JSONEq(t, `{"status":"published"}`, string(body))

		_, _ = w.Write([]byte(`{"id":7,"title":"x","status":"published"}`))
	})

	updated, err := client.ChangeArticleStatus(context.Background(), "7", "published")
	require.NoError(t, err)
	assert.Equal(t, "published", updated.Status)
}

func TestClient_DeleteArticle_EmptyBodyIsFine(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodDelete, r.Method)
		w.WriteHeader(http.StatusNoContent)
	})

	assert.NoError(t, client.DeleteArticle(context.Background(), "7"))
}

func TestClient_ErrorClassification(t *testing.T) {
	tests := []struct {
		name        string
		status      int
		body        string
		wantMessage string
	}{
		{"conflict with message", http.StatusConflict, `{"message":"category is in use"}`, "category is in use"},
		{"server error with message", http.StatusInternalServerError, `{"message":"boom"}`, "boom"},
		{"server error without message", http.StatusBadGateway, `oops`, ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
				w.WriteHeader(tt.status)
				_, _ = w.Write([]byte(tt.body))
			})

			_, err := client.ListArticles(context.Background(), nil)
			var apiErr *APIError
			require.ErrorAs(t, err, &apiErr)
			assert.Equal(t, tt.status, apiErr.StatusCode)
			assert.Equal(t, tt.wantMessage, apiErr.Message)
		})
	}
}

func TestClient_TransportFailure(t *testing.T) {
	client := NewClient("http://127.0.0.1:1", "", 100*time.Millisecond)

	_, err := client.ListArticles(context.Background(), nil)
	require.Error(t, err)

	var apiErr *APIError
	assert.False(t, errors.As(err, &apiErr), "transport failures are not API errors")
}

func TestClient_NotifySubscribers(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/api/articles/3/notify", r.URL.Path)

		var req NotifyRequestModel
		require.NoError(t, json.NewDecoder(r.Body).Decode(&req))
		assert.Equal(t, []string{"a@example.com"}, req.Recipients)

		_, _ = w.Write([]byte(`{"html":"<p>preview</p>","message":"queued"}`))
	})

	result, err := client.NotifySubscribers(context.Background(), "3", NotifyRequestModel{
		Recipients: []string{"a@example.com"},
		Subject:    "New article",
	})
	require.NoError(t, err)
	assert.Equal(t, "<p>preview</p>", result.HTML)
	assert.Equal(t, "queued", result.Message)
}

func TestClient_ImportArticles(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/api/import/articles", r.URL.Path)
		assert.Contains(t, r.Header.Get("Content-Type"), "multipart/form-data")

		file, header, err := r.FormFile("file")
		require.NoError(t, err)
		defer file.Close()
		assert.Equal(t, "batch.json", header.Filename)

		content, _ := io.ReadAll(file)
		assert.JSONEq(t, `[{"title":"one"}]`, string(content))

		_, _ = w.Write([]byte(`{"total":1,"success":0,"errors":[{"index":0,"error":"missing content"}]}`))
	})

	result, err := client.ImportArticles(context.Background(), "batch.json", strings.NewReader(`[{"title":"one"}]`))
	require.NoError(t, err)
	assert.Equal(t, 1, result.Total)
	assert.Equal(t, 0, result.Success)
	require.Len(t, result.Errors, 1)
	assert.Equal(t, "missing content", result.Errors[0].Error)
}

func TestClient_ListNotifications(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/api/notifications", r.URL.Path)
		_, _ = w.Write([]byte(`{"notifications":[{"id":1,"articleId":2,"status":"sent"}]}`))
	})

	notifications, err := client.ListNotifications(context.Background())
	require.NoError(t, err)
	require.Len(t, notifications, 1)
	assert.Equal(t, "2", notifications[0].ArticleID.String())
}
