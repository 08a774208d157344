package domain

import (
	"sort"
	"time"
)

// NotificationStatus is the delivery state of a subscriber notification.
type NotificationStatus string

const (
	NotificationSent    NotificationStatus = "sent"
	NotificationFailed  NotificationStatus = "failed"
	NotificationPending NotificationStatus = "pending"
)

// Notification records one attempt to notify subscribers about an article.
type Notification struct {
	ID             string
	ArticleID      string
	Recipients     []string
	RecipientCount int
	Subject        string
	HTML           string
	Status         NotificationStatus
	CreatedAt      *time.Time
	SentAt         *time.Time
}

// EffectiveTime is the timestamp used for ordering and display: send time
// when present, creation time otherwise.
func (n Notification) EffectiveTime() *time.Time {
	if n.SentAt != nil {
		return n.SentAt
	}
	return n.CreatedAt
}

// SortNotifications orders history newest-first by effective time.
// Entries without any timestamp sink to the end.
func SortNotifications(notifications []Notification) {
	sort.SliceStable(notifications, func(i, j int) bool {
		ti, tj := notifications[i].EffectiveTime(), notifications[j].EffectiveTime()
		if ti == nil {
			return false
		}
		if tj == nil {
			return true
		}
		return ti.After(*tj)
	})
}

// NotifyRequest is the optional payload of a notify call.
type NotifyRequest struct {
	Recipients []string
	Subject    string
}

// NotifyResult is what a successful notify call returns. HTML, when
// present, is a rendered preview the caller may display.
type NotifyResult struct {
	HTML    string
	Message string
}

// ImportError describes one failed record of a bulk import.
type ImportError struct {
	Index int    `json:"index"`
	Error string `json:"error"`
}

// ImportResult is the remote API's bulk import report, surfaced verbatim.
type ImportResult struct {
	Total   int           `json:"total"`
	Success int           `json:"success"`
	Errors  []ImportError `json:"errors"`
}
