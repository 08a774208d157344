package rest

import (
	"time"

	"content-desk/domain"
	"content-desk/usecase"
)

// articleResponse is the JSON shape of an article. Both category
// representations are echoed so existing consumers keep working;
// categoryId carries the resolved primary association.
type articleResponse struct {
	ID          string     `json:"id"`
	Title       string     `json:"title"`
	Content     string     `json:"content"`
	Summary     string     `json:"summary,omitempty"`
	Slug        string     `json:"slug,omitempty"`
	Status      string     `json:"status"`
	Featured    bool       `json:"featured"`
	CoverImage  string     `json:"coverImage,omitempty"`
	CategoryID  string     `json:"categoryId,omitempty"`
	CategoryIDs []string   `json:"categoryIds,omitempty"`
	NetworkID   string     `json:"networkId,omitempty"`
	CreatedAt   *time.Time `json:"createdAt,omitempty"`
	UpdatedAt   *time.Time `json:"updatedAt,omitempty"`
	PublishedAt *time.Time `json:"publishedAt,omitempty"`
}

func toArticleResponse(a domain.Article) articleResponse {
	primary, _ := domain.ResolveCategory(a).Primary()
	return articleResponse{
		ID:          a.ID,
		Title:       a.Title,
		Content:     a.Content,
		Summary:     a.Summary,
		Slug:        a.Slug,
		Status:      string(a.Status),
		Featured:    a.Featured,
		CoverImage:  a.CoverURL,
		CategoryID:  primary,
		CategoryIDs: domain.ResolveCategory(a).All(),
		NetworkID:   a.NetworkID,
		CreatedAt:   a.CreatedAt,
		UpdatedAt:   a.UpdatedAt,
		PublishedAt: a.PublishedAt,
	}
}

// articlePageResponse wraps one page of articles with its pagination
// envelope.
type articlePageResponse struct {
	Articles []articleResponse `json:"articles"`
	Total    int               `json:"total"`
	Page     int               `json:"page"`
	PageSize int               `json:"pageSize"`
}

func toArticlePageResponse(page *usecase.ArticlePage) articlePageResponse {
	resp := articlePageResponse{
		Articles: make([]articleResponse, 0, len(page.Articles)),
		Total:    page.Total,
		Page:     page.Page,
		PageSize: page.PageSize,
	}
	for _, a := range page.Articles {
		resp.Articles = append(resp.Articles, toArticleResponse(a))
	}
	return resp
}

// articleRequest is the create/update request body.
type articleRequest struct {
	Title       string   `json:"title"`
	Content     string   `json:"content"`
	Summary     string   `json:"summary"`
	Slug        string   `json:"slug"`
	Status      string   `json:"status"`
	Featured    bool     `json:"featured"`
	CoverImage  string   `json:"coverImage"`
	CategoryIDs []string `json:"categoryIds"`
	NetworkID   string   `json:"networkId"`
}

func (r articleRequest) toInput() domain.ArticleInput {
	return domain.ArticleInput{
		Title:       r.Title,
		Content:     r.Content,
		Summary:     r.Summary,
		Slug:        r.Slug,
		Status:      domain.Status(r.Status),
		Featured:    r.Featured,
		CoverURL:    r.CoverImage,
		CategoryIDs: r.CategoryIDs,
		NetworkID:   r.NetworkID,
	}
}

type statusChangeRequest struct {
	Status string `json:"status"`
}

type categoryResponse struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	Slug        string `json:"slug,omitempty"`
	Color       string `json:"color,omitempty"`
	Description string `json:"description,omitempty"`
}

func toCategoryResponse(c domain.Category) categoryResponse {
	return categoryResponse{
		ID:          c.ID,
		Name:        c.Name,
		Slug:        c.Slug,
		Color:       c.Color,
		Description: c.Description,
	}
}

type categoryRequest struct {
	Name        string `json:"name"`
	Slug        string `json:"slug"`
	Color       string `json:"color"`
	Description string `json:"description"`
}

func (r categoryRequest) toInput() domain.CategoryInput {
	return domain.CategoryInput{
		Name:        r.Name,
		Slug:        r.Slug,
		Color:       r.Color,
		Description: r.Description,
	}
}

type networkResponse struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	Slug        string `json:"slug,omitempty"`
	Description string `json:"description,omitempty"`
}

func toNetworkResponse(n domain.Network) networkResponse {
	return networkResponse{
		ID:          n.ID,
		Name:        n.Name,
		Slug:        n.Slug,
		Description: n.Description,
	}
}

type networkRequest struct {
	Name        string `json:"name"`
	Slug        string `json:"slug"`
	Description string `json:"description"`
}

func (r networkRequest) toInput() domain.NetworkInput {
	return domain.NetworkInput{
		Name:        r.Name,
		Slug:        r.Slug,
		Description: r.Description,
	}
}

type notifyRequest struct {
	Recipients []string `json:"recipients"`
	Subject    string   `json:"subject"`
}

type notifyResponse struct {
	HTML    string `json:"html,omitempty"`
	Message string `json:"message,omitempty"`
}

type notificationResponse struct {
	ID             string     `json:"id"`
	ArticleID      string     `json:"articleId"`
	RecipientCount int        `json:"recipientCount"`
	Subject        string     `json:"subject,omitempty"`
	Status         string     `json:"status"`
	CreatedAt      *time.Time `json:"createdAt,omitempty"`
	SentAt         *time.Time `json:"sentAt,omitempty"`
}

func toNotificationResponse(n domain.Notification) notificationResponse {
	count := n.RecipientCount
	if count == 0 {
		count = len(n.Recipients)
	}
	return notificationResponse{
		ID:             n.ID,
		ArticleID:      n.ArticleID,
		RecipientCount: count,
		Subject:        n.Subject,
		Status:         string(n.Status),
		CreatedAt:      n.CreatedAt,
		SentAt:         n.SentAt,
	}
}

type errorResponse struct {
	Message string `json:"message"`
}
