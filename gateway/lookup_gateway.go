package gateway

import (
	"context"
	"encoding/json"

	"content-desk/domain"
	"content-desk/driver/contentapi"
	"content-desk/logger"
	"content-desk/port"
)

// CategoryAPI is the slice of the content API client the category
// gateway depends on.
type CategoryAPI interface {
	ListCategories(ctx context.Context) ([]contentapi.CategoryModel, error)
	CreateCategory(ctx context.Context, form contentapi.CategoryForm) (*contentapi.CategoryModel, error)
	UpdateCategory(ctx context.Context, id string, form contentapi.CategoryForm) (*contentapi.CategoryModel, error)
	DeleteCategory(ctx context.Context, id string) error
}

// NetworkAPI is the slice of the content API client the network gateway
// depends on.
type NetworkAPI interface {
	ListNetworks(ctx context.Context) ([]contentapi.NetworkModel, error)
	CreateNetwork(ctx context.Context, form contentapi.NetworkForm) (*contentapi.NetworkModel, error)
	UpdateNetwork(ctx context.Context, id string, form contentapi.NetworkForm) (*contentapi.NetworkModel, error)
	DeleteNetwork(ctx context.Context, id string) error
}

// CategoryGateway implements port.CategoryRepository. Category mutations
// invalidate the article collection too: rows and aggregates resolve
// category names from the lookup table.
type CategoryGateway struct {
	api   CategoryAPI
	cache port.CollectionCache
}

// NewCategoryGateway creates a category gateway.
func NewCategoryGateway(api CategoryAPI, cache port.CollectionCache) *CategoryGateway {
	return &CategoryGateway{api: api, cache: cache}
}

// List fetches the category collection through the cache.
func (g *CategoryGateway) List(ctx context.Context) ([]domain.Category, error) {
	var models []contentapi.CategoryModel
	if readCollection(ctx, g.cache, port.KeyCategories, &models) {
		return mapSlice(models, categoryToDomain), nil
	}

	models, err := g.api.ListCategories(ctx)
	if err != nil {
		return nil, classify("ListCategories", err)
	}
	storeCollection(ctx, g.cache, port.KeyCategories, models)

	return mapSlice(models, categoryToDomain), nil
}

// Create submits a new category.
func (g *CategoryGateway) Create(ctx context.Context, input domain.CategoryInput) (*domain.Category, error) {
	model, err := g.api.CreateCategory(ctx, categoryForm(input))
	if err != nil {
		return nil, classify("CreateCategory", err)
	}
	invalidate(ctx, g.cache, port.KeyCategories, port.KeyArticles)

	c := categoryToDomain(*model)
	return &c, nil
}

// Update submits category form fields.
func (g *CategoryGateway) Update(ctx context.Context, id string, input domain.CategoryInput) (*domain.Category, error) {
	model, err := g.api.UpdateCategory(ctx, id, categoryForm(input))
	if err != nil {
		return nil, classify("UpdateCategory", err)
	}
	invalidate(ctx, g.cache, port.KeyCategories, port.KeyArticles)

	c := categoryToDomain(*model)
	return &c, nil
}

// Delete removes a category. A server-side conflict surfaces as
// domain.ErrConflict.
func (g *CategoryGateway) Delete(ctx context.Context, id string) error {
	if err := g.api.DeleteCategory(ctx, id); err != nil {
		return classify("DeleteCategory", err)
	}
	invalidate(ctx, g.cache, port.KeyCategories, port.KeyArticles)
	return nil
}

// NetworkGateway implements port.NetworkRepository.
type NetworkGateway struct {
	api   NetworkAPI
	cache port.CollectionCache
}

// NewNetworkGateway creates a network gateway.
func NewNetworkGateway(api NetworkAPI, cache port.CollectionCache) *NetworkGateway {
	return &NetworkGateway{api: api, cache: cache}
}

// List fetches the network collection through the cache.
func (g *NetworkGateway) List(ctx context.Context) ([]domain.Network, error) {
	var models []contentapi.NetworkModel
	if readCollection(ctx, g.cache, port.KeyNetworks, &models) {
		return mapSlice(models, networkToDomain), nil
	}

	models, err := g.api.ListNetworks(ctx)
	if err != nil {
		return nil, classify("ListNetworks", err)
	}
	storeCollection(ctx, g.cache, port.KeyNetworks, models)

	return mapSlice(models, networkToDomain), nil
}

// Create submits a new network.
func (g *NetworkGateway) Create(ctx context.Context, input domain.NetworkInput) (*domain.Network, error) {
	model, err := g.api.CreateNetwork(ctx, networkForm(input))
	if err != nil {
		return nil, classify("CreateNetwork", err)
	}
	invalidate(ctx, g.cache, port.KeyNetworks, port.KeyArticles)

	n := networkToDomain(*model)
	return &n, nil
}

// Update submits network form fields.
func (g *NetworkGateway) Update(ctx context.Context, id string, input domain.NetworkInput) (*domain.Network, error) {
	model, err := g.api.UpdateNetwork(ctx, id, networkForm(input))
	if err != nil {
		return nil, classify("UpdateNetwork", err)
	}
	invalidate(ctx, g.cache, port.KeyNetworks, port.KeyArticles)

	n := networkToDomain(*model)
	return &n, nil
}

// Delete removes a network.
func (g *NetworkGateway) Delete(ctx context.Context, id string) error {
	if err := g.api.DeleteNetwork(ctx, id); err != nil {
		return classify("DeleteNetwork", err)
	}
	invalidate(ctx, g.cache, port.KeyNetworks, port.KeyArticles)
	return nil
}

func readCollection[T any](ctx context.Context, cache port.CollectionCache, key string, out *[]T) bool {
	data, ok, err := cache.Get(ctx, key)
	if err != nil {
		logger.Logger.Warn("cache read failed", "key", key, "err", err)
		return false
	}
	if !ok {
		return false
	}
	if err := json.Unmarshal(data, out); err != nil {
		logger.Logger.Warn("cache snapshot corrupt", "key", key, "err", err)
		return false
	}
	return true
}

func storeCollection[T any](ctx context.Context, cache port.CollectionCache, key string, models []T) {
	data, err := json.Marshal(models)
	if err != nil {
		logger.Logger.Warn("cache snapshot marshal failed", "key", key, "err", err)
		return
	}
	if err := cache.Set(ctx, key, data); err != nil {
		logger.Logger.Warn("cache write failed", "key", key, "err", err)
	}
}

func invalidate(ctx context.Context, cache port.CollectionCache, collections ...string) {
	if err := cache.Invalidate(ctx, collections...); err != nil {
		logger.Logger.Warn("cache invalidation failed", "collections", collections, "err", err)
	}
}

func mapSlice[T, U any](in []T, f func(T) U) []U {
	out := make([]U, 0, len(in))
	for _, v := range in {
		out = append(out, f(v))
	}
	return out
}
