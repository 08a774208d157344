package usecase

import (
	"context"

	"content-desk/domain"
	"content-desk/port"
)

// ListNotificationsUsecase serves the notification history newest-first.
type ListNotificationsUsecase struct {
	notifications port.NotificationRepository
}

func NewListNotificationsUsecase(notifications port.NotificationRepository) *ListNotificationsUsecase {
	return &ListNotificationsUsecase{notifications: notifications}
}

func (u *ListNotificationsUsecase) Execute(ctx context.Context) ([]domain.Notification, error) {
	notifications, err := u.notifications.List(ctx)
	if err != nil {
		return nil, err
	}
	domain.SortNotifications(notifications)
	return notifications, nil
}
