package gateway

import (
	"context"
	"io"
	"net/url"

	"content-desk/domain"
	"content-desk/driver/contentapi"
	"content-desk/port"
)

// ArticleAPI is the slice of the content API client the article gateway
// depends on.
type ArticleAPI interface {
	ListArticles(ctx context.Context, params map[string]string) ([]contentapi.ArticleModel, error)
	GetArticle(ctx context.Context, id string) (*contentapi.ArticleModel, error)
	CreateArticle(ctx context.Context, form contentapi.ArticleForm) (*contentapi.ArticleModel, error)
	UpdateArticle(ctx context.Context, id string, form contentapi.ArticleForm) (*contentapi.ArticleModel, error)
	DeleteArticle(ctx context.Context, id string) error
	ChangeArticleStatus(ctx context.Context, id, status string) (*contentapi.ArticleModel, error)
	NotifySubscribers(ctx context.Context, id string, req contentapi.NotifyRequestModel) (*contentapi.NotifyResponseModel, error)
	ImportArticles(ctx context.Context, filename string, file io.Reader) (*contentapi.ImportResultModel, error)
}

// ArticleGateway implements port.ArticleRepository over the content API
// with a read-through collection cache. It is the only writer of the
// article cache key: reads populate it, successful mutations drop it.
type ArticleGateway struct {
	api   ArticleAPI
	cache port.CollectionCache
}

// NewArticleGateway creates an article gateway.
func NewArticleGateway(api ArticleAPI, cache port.CollectionCache) *ArticleGateway {
	return &ArticleGateway{api: api, cache: cache}
}

// List fetches the article collection for the given query, reading
// through the cache. Cache trouble is logged and treated as a miss; the
// remote API stays the source of truth.
func (g *ArticleGateway) List(ctx context.Context, query domain.ArticleQuery) ([]domain.Article, error) {
	key := cacheKey(port.KeyArticles, query.Params())

	var models []contentapi.ArticleModel
	if readCollection(ctx, g.cache, key, &models) {
		return articlesToDomain(models), nil
	}

	models, err := g.api.ListArticles(ctx, query.Params())
	if err != nil {
		return nil, classify("ListArticles", err)
	}

	storeCollection(ctx, g.cache, key, models)
	return articlesToDomain(models), nil
}

// Get fetches one article, bypassing the collection cache.
func (g *ArticleGateway) Get(ctx context.Context, id string) (*domain.Article, error) {
	model, err := g.api.GetArticle(ctx, id)
	if err != nil {
		return nil, classify("GetArticle", err)
	}
	a := articleToDomain(*model)
	return &a, nil
}

// Create submits a new article and invalidates the collection.
func (g *ArticleGateway) Create(ctx context.Context, input domain.ArticleInput) (*domain.Article, error) {
	model, err := g.api.CreateArticle(ctx, articleForm(input))
	if err != nil {
		return nil, classify("CreateArticle", err)
	}
	g.invalidate(ctx, port.KeyArticles)

	a := articleToDomain(*model)
	return &a, nil
}

// Update submits form fields for an article and invalidates the
// collection.
func (g *ArticleGateway) Update(ctx context.Context, id string, input domain.ArticleInput) (*domain.Article, error) {
	model, err := g.api.UpdateArticle(ctx, id, articleForm(input))
	if err != nil {
		return nil, classify("UpdateArticle", err)
	}
	g.invalidate(ctx, port.KeyArticles)

	a := articleToDomain(*model)
	return &a, nil
}

// Delete removes an article and invalidates the collection.
func (g *ArticleGateway) Delete(ctx context.Context, id string) error {
	if err := g.api.DeleteArticle(ctx, id); err != nil {
		return classify("DeleteArticle", err)
	}
	g.invalidate(ctx, port.KeyArticles)
	return nil
}

// ChangeStatus moves an article through its lifecycle and invalidates
// the collection.
func (g *ArticleGateway) ChangeStatus(ctx context.Context, id string, status domain.Status) (*domain.Article, error) {
	model, err := g.api.ChangeArticleStatus(ctx, id, string(status))
	if err != nil {
		return nil, classify("ChangeArticleStatus", err)
	}
	g.invalidate(ctx, port.KeyArticles)

	a := articleToDomain(*model)
	return &a, nil
}

// Notify asks the API to notify subscribers. Success invalidates the
// notification history along with the article collection.
func (g *ArticleGateway) Notify(ctx context.Context, id string, req domain.NotifyRequest) (*domain.NotifyResult, error) {
	resp, err := g.api.NotifySubscribers(ctx, id, contentapi.NotifyRequestModel{
		Recipients: req.Recipients,
		Subject:    req.Subject,
	})
	if err != nil {
		return nil, classify("NotifySubscribers", err)
	}
	g.invalidate(ctx, port.KeyArticles, port.KeyNotifications)

	return &domain.NotifyResult{HTML: resp.HTML, Message: resp.Message}, nil
}

// Import uploads a bulk article file and invalidates the collection.
func (g *ArticleGateway) Import(ctx context.Context, filename string, file io.Reader) (*domain.ImportResult, error) {
	model, err := g.api.ImportArticles(ctx, filename, file)
	if err != nil {
		return nil, classify("ImportArticles", err)
	}
	g.invalidate(ctx, port.KeyArticles)

	result := &domain.ImportResult{
		Total:   model.Total,
		Success: model.Success,
		Errors:  make([]domain.ImportError, 0, len(model.Errors)),
	}
	for _, e := range model.Errors {
		result.Errors = append(result.Errors, domain.ImportError{Index: e.Index, Error: e.Error})
	}
	return result, nil
}

func (g *ArticleGateway) invalidate(ctx context.Context, collections ...string) {
	invalidate(ctx, g.cache, collections...)
}

// cacheKey derives the parameterized cache key for a list call:
// the bare collection key, or "<key>?<canonical query>" when the call
// carries parameters. url.Values encoding sorts keys, so equivalent
// queries share one entry.
func cacheKey(collection string, params map[string]string) string {
	if len(params) == 0 {
		return collection
	}
	values := url.Values{}
	for k, v := range params {
		values.Set(k, v)
	}
	return collection + "?" + values.Encode()
}
