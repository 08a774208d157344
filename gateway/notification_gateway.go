package gateway

import (
	"context"

	"content-desk/domain"
	"content-desk/driver/contentapi"
	"content-desk/port"
)

// NotificationAPI is the slice of the content API client the
// notification gateway depends on.
type NotificationAPI interface {
	ListNotifications(ctx context.Context) ([]contentapi.NotificationModel, error)
}

// NotificationGateway implements port.NotificationRepository. History is
// read-only here; entries appear through notify mutations on the article
// gateway, which invalidate this collection.
type NotificationGateway struct {
	api   NotificationAPI
	cache port.CollectionCache
}

// NewNotificationGateway creates a notification gateway.
func NewNotificationGateway(api NotificationAPI, cache port.CollectionCache) *NotificationGateway {
	return &NotificationGateway{api: api, cache: cache}
}

// List fetches the notification history through the cache.
func (g *NotificationGateway) List(ctx context.Context) ([]domain.Notification, error) {
	var models []contentapi.NotificationModel
	if readCollection(ctx, g.cache, port.KeyNotifications, &models) {
		return mapSlice(models, notificationToDomain), nil
	}

	models, err := g.api.ListNotifications(ctx)
	if err != nil {
		return nil, classify("ListNotifications", err)
	}
	storeCollection(ctx, g.cache, port.KeyNotifications, models)

	return mapSlice(models, notificationToDomain), nil
}
