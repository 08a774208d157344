// Package contentapi provides the HTTP client for the remote content API.
package contentapi

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"net/url"
	"time"

	"github.com/google/uuid"
)

// maxResponseBytes bounds how much of a response body gets read.
const maxResponseBytes = 8 << 20

// APIError is a non-2xx response from the content API. Message comes
// from the body's "message" field when the server sent one.
type APIError struct {
	StatusCode int
	Message    string
}

func (e *APIError) Error() string {
	if e.Message != "" {
		return fmt.Sprintf("content API status %d: %s", e.StatusCode, e.Message)
	}
	return fmt.Sprintf("content API status %d", e.StatusCode)
}

// Client talks to the content API. All requests share one bounded
// timeout; there is no retry at this layer.
type Client struct {
	httpClient *http.Client
	baseURL    string
	token      string
}

// NewClient creates a content API client.
func NewClient(baseURL, token string, timeout time.Duration) *Client {
	return &Client{
		httpClient: &http.Client{Timeout: timeout},
		baseURL:    baseURL,
		token:      token,
	}
}

// ListArticles fetches the article collection. Params follow the list
// endpoint's query vocabulary; nil fetches the unfiltered collection.
func (c *Client) ListArticles(ctx context.Context, params map[string]string) ([]ArticleModel, error) {
	body, err := c.do(ctx, http.MethodGet, "/api/articles", params, nil)
	if err != nil {
		return nil, err
	}
	return decodeItems[ArticleModel](extractList(body)), nil
}

// GetArticle fetches a single article by id.
func (c *Client) GetArticle(ctx context.Context, id string) (*ArticleModel, error) {
	body, err := c.do(ctx, http.MethodGet, "/api/articles/"+url.PathEscape(id), nil, nil)
	if err != nil {
		return nil, err
	}
	return decodeOne[ArticleModel](body)
}

// CreateArticle submits a new article and returns the created record.
func (c *Client) CreateArticle(ctx context.Context, form ArticleForm) (*ArticleModel, error) {
	body, err := c.do(ctx, http.MethodPost, "/api/articles", nil, form)
	if err != nil {
		return nil, err
	}
	return decodeOne[ArticleModel](body)
}

// UpdateArticle submits partial form fields for an existing article.
func (c *Client) UpdateArticle(ctx context.Context, id string, form ArticleForm) (*ArticleModel, error) {
	body, err := c.do(ctx, http.MethodPut, "/api/articles/"+url.PathEscape(id), nil, form)
	if err != nil {
		return nil, err
	}
	return decodeOne[ArticleModel](body)
}

// DeleteArticle removes an article.
func (c *Client) DeleteArticle(ctx context.Context, id string) error {
	_, err := c.do(ctx, http.MethodDelete, "/api/articles/"+url.PathEscape(id), nil, nil)
	return err
}

// ChangeArticleStatus moves an article through its lifecycle.
func (c *Client) ChangeArticleStatus(ctx context.Context, id, status string) (*ArticleModel, error) {
	body, err := c.do(ctx, http.MethodPatch, "/api/articles/"+url.PathEscape(id)+"/status", nil, StatusChangeModel{Status: status})
	if err != nil {
		return nil, err
	}
	return decodeOne[ArticleModel](body)
}

// NotifySubscribers asks the API to notify subscribers about an article.
func (c *Client) NotifySubscribers(ctx context.Context, id string, req NotifyRequestModel) (*NotifyResponseModel, error) {
	body, err := c.do(ctx, http.MethodPost, "/api/articles/"+url.PathEscape(id)+"/notify", nil, req)
	if err != nil {
		return nil, err
	}
	return decodeOne[NotifyResponseModel](body)
}

// ListCategories fetches the category collection.
func (c *Client) ListCategories(ctx context.Context) ([]CategoryModel, error) {
	body, err := c.do(ctx, http.MethodGet, "/api/categories", nil, nil)
	if err != nil {
		return nil, err
	}
	return decodeItems[CategoryModel](extractList(body)), nil
}

// CreateCategory submits a new category.
func (c *Client) CreateCategory(ctx context.Context, form CategoryForm) (*CategoryModel, error) {
	body, err := c.do(ctx, http.MethodPost, "/api/categories", nil, form)
	if err != nil {
		return nil, err
	}
	return decodeOne[CategoryModel](body)
}

// UpdateCategory submits category form fields.
func (c *Client) UpdateCategory(ctx context.Context, id string, form CategoryForm) (*CategoryModel, error) {
	body, err := c.do(ctx, http.MethodPut, "/api/categories/"+url.PathEscape(id), nil, form)
	if err != nil {
		return nil, err
	}
	return decodeOne[CategoryModel](body)
}

// DeleteCategory removes a category. The server may refuse with a
// conflict status when articles still reference it.
func (c *Client) DeleteCategory(ctx context.Context, id string) error {
	_, err := c.do(ctx, http.MethodDelete, "/api/categories/"+url.PathEscape(id), nil, nil)
	return err
}

// ListNetworks fetches the network collection.
func (c *Client) ListNetworks(ctx context.Context) ([]NetworkModel, error) {
	body, err := c.do(ctx, http.MethodGet, "/api/networks", nil, nil)
	if err != nil {
		return nil, err
	}
	return decodeItems[NetworkModel](extractList(body)), nil
}

// CreateNetwork submits a new network.
func (c *Client) CreateNetwork(ctx context.Context, form NetworkForm) (*NetworkModel, error) {
	body, err := c.do(ctx, http.MethodPost, "/api/networks", nil, form)
	if err != nil {
		return nil, err
	}
	return decodeOne[NetworkModel](body)
}

// UpdateNetwork submits network form fields.
func (c *Client) UpdateNetwork(ctx context.Context, id string, form NetworkForm) (*NetworkModel, error) {
	body, err := c.do(ctx, http.MethodPut, "/api/networks/"+url.PathEscape(id), nil, form)
	if err != nil {
		return nil, err
	}
	return decodeOne[NetworkModel](body)
}

// DeleteNetwork removes a network.
func (c *Client) DeleteNetwork(ctx context.Context, id string) error {
	_, err := c.do(ctx, http.MethodDelete, "/api/networks/"+url.PathEscape(id), nil, nil)
	return err
}

// ListNotifications fetches the notification history.
func (c *Client) ListNotifications(ctx context.Context) ([]NotificationModel, error) {
	body, err := c.do(ctx, http.MethodGet, "/api/notifications", nil, nil)
	if err != nil {
		return nil, err
	}
	return decodeItems[NotificationModel](extractList(body)), nil
}

// ImportArticles uploads a .json file as multipart form data and returns
// the server's import report.
func (c *Client) ImportArticles(ctx context.Context, filename string, file io.Reader) (*ImportResultModel, error) {
	var buf bytes.Buffer
	writer := multipart.NewWriter(&buf)

	part, err := writer.CreateFormFile("file", filename)
	if err != nil {
		return nil, fmt.Errorf("create form file: %w", err)
	}
	if _, err := io.Copy(part, file); err != nil {
		return nil, fmt.Errorf("copy import payload: %w", err)
	}
	if err := writer.Close(); err != nil {
		return nil, fmt.Errorf("close multipart writer: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+"/api/import/articles", &buf)
	if err != nil {
		return nil, fmt.Errorf("build request: %w", err)
	}
	req.Header.Set("Content-Type", writer.FormDataContentType())
	c.setCommonHeaders(req)

	body, err := c.send(req)
	if err != nil {
		return nil, err
	}
	return decodeOne[ImportResultModel](body)
}

func (c *Client) do(ctx context.Context, method, path string, params map[string]string, payload any) ([]byte, error) {
	var body io.Reader
	if payload != nil {
		data, err := json.Marshal(payload)
		if err != nil {
			return nil, fmt.Errorf("marshal request body: %w", err)
		}
		body = bytes.NewReader(data)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, body)
	if err != nil {
		return nil, fmt.Errorf("build request: %w", err)
	}

	if len(params) > 0 {
		q := req.URL.Query()
		for k, v := range params {
			q.Set(k, v)
		}
		req.URL.RawQuery = q.Encode()
	}

	if payload != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	c.setCommonHeaders(req)

	return c.send(req)
}

func (c *Client) setCommonHeaders(req *http.Request) {
	req.Header.Set("Accept", "application/json")
	req.Header.Set("X-Request-ID", uuid.NewString())
	if c.token != "" {
		req.Header.Set("Authorization", "Bearer "+c.token)
	}
}

func (c *Client) send(req *http.Request) ([]byte, error) {
	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("%s %s: %w", req.Method, req.URL.Path, err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(io.LimitReader(resp.Body, maxResponseBytes))
	if err != nil {
		return nil, fmt.Errorf("read response: %w", err)
	}

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, &APIError{
			StatusCode: resp.StatusCode,
			Message:    extractMessage(body),
		}
	}

	return body, nil
}

// extractMessage pulls the optional "message" field out of an error body.
func extractMessage(body []byte) string {
	var envelope struct {
		Message string `json:"message"`
	}
	if err := json.Unmarshal(body, &envelope); err != nil {
		return ""
	}
	return envelope.Message
}

func decodeOne[T any](body []byte) (*T, error) {
	var out T
	if len(bytes.TrimSpace(body)) == 0 {
		return &out, nil
	}
	if err := json.Unmarshal(body, &out); err != nil {
		return nil, fmt.Errorf("decode response: %w", err)
	}
	return &out, nil
}
