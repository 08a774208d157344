package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNotification_EffectiveTime(t *testing.T) {
	created := timePtr("2024-03-01T10:00:00Z")
	sent := timePtr("2024-03-01T10:05:00Z")

	n := Notification{CreatedAt: created, SentAt: sent}
	assert.Equal(t, sent, n.EffectiveTime())

	n = Notification{CreatedAt: created}
	assert.Equal(t, created, n.EffectiveTime())

	assert.Nil(t, Notification{}.EffectiveTime())
}

func TestSortNotifications_NewestFirstBySendTime(t *testing.T) {
	notifications := []Notification{
		{ID: "created-only", CreatedAt: timePtr("2024-03-02T00:00:00Z")},
		{ID: "sent-late", CreatedAt: timePtr("2024-03-01T00:00:00Z"), SentAt: timePtr("2024-03-03T00:00:00Z")},
		{ID: "no-times"},
		{ID: "sent-early", SentAt: timePtr("2024-02-28T00:00:00Z")},
	}

	SortNotifications(notifications)

	assert.Equal(t, "sent-late", notifications[0].ID)
	assert.Equal(t, "created-only", notifications[1].ID)
	assert.Equal(t, "sent-early", notifications[2].ID)
	assert.Equal(t, "no-times", notifications[3].ID)
}
