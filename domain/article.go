package domain

import (
	"errors"
	"fmt"
	"time"
)

// Status is the lifecycle state of an article.
type Status string

const (
	StatusDraft     Status = "draft"
	StatusPublished Status = "published"
	StatusArchived  Status = "archived"
)

// Valid reports whether s is one of the three lifecycle states.
func (s Status) Valid() bool {
	switch s {
	case StatusDraft, StatusPublished, StatusArchived:
		return true
	}
	return false
}

// ParseStatus validates a raw status string. An empty string maps to draft.
func ParseStatus(raw string) (Status, error) {
	if raw == "" {
		return StatusDraft, nil
	}
	s := Status(raw)
	if !s.Valid() {
		return "", fmt.Errorf("invalid status: %q", raw)
	}
	return s, nil
}

// Article is a unit of editorial content. Identifiers are strings
// everywhere; the wire layer coerces numeric ids before they get here.
//
// Category association carries both representations the backend has used
// over time: CategoryIDs is the current list form, CategoryID the legacy
// scalar. Resolution between the two lives in resolve.go.
type Article struct {
	ID          string
	Title       string
	Content     string
	Summary     string
	Slug        string
	Status      Status
	Featured    bool
	CoverURL    string
	CategoryID  string
	CategoryIDs []string
	NetworkID   string
	CreatedAt   *time.Time
	UpdatedAt   *time.Time
	PublishedAt *time.Time
}

// NewArticle builds a minimally valid article.
func NewArticle(id, title string, status Status) (*Article, error) {
	if id == "" {
		return nil, errors.New("article ID cannot be empty")
	}
	if title == "" {
		return nil, errors.New("article title cannot be empty")
	}
	if status == "" {
		status = StatusDraft
	}
	if !status.Valid() {
		return nil, fmt.Errorf("invalid status: %q", status)
	}

	return &Article{
		ID:     id,
		Title:  title,
		Status: status,
	}, nil
}

// ArticleInput carries the form fields accepted by create and update.
// The remote API originates every identifier; inputs never carry one.
type ArticleInput struct {
	Title       string
	Content     string
	Summary     string
	Slug        string
	Status      Status
	Featured    bool
	CoverURL    string
	CategoryIDs []string
	NetworkID   string
}
