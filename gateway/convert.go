package gateway

import (
	"content-desk/domain"
	"content-desk/driver/contentapi"
	"content-desk/logger"
)

func articleToDomain(m contentapi.ArticleModel) domain.Article {
	status, err := domain.ParseStatus(m.Status)
	if err != nil {
		// The lifecycle invariant holds even against a misbehaving
		// backend: unknown statuses degrade to draft.
		logger.Logger.Warn("unknown article status, treating as draft", "id", m.ID.String(), "status", m.Status)
		status = domain.StatusDraft
	}

	a := domain.Article{
		ID:          m.ID.String(),
		Title:       m.Title,
		Content:     m.Content,
		Summary:     m.Summary,
		Slug:        m.Slug,
		Status:      status,
		Featured:    m.Featured,
		CoverURL:    m.CoverImage,
		CreatedAt:   m.CreatedAt,
		UpdatedAt:   m.UpdatedAt,
		PublishedAt: m.PublishedAt,
	}

	if m.CategoryID != nil {
		a.CategoryID = m.CategoryID.String()
	}
	for _, id := range m.CategoryIDs {
		if id.String() != "" {
			a.CategoryIDs = append(a.CategoryIDs, id.String())
		}
	}
	if m.NetworkID != nil {
		a.NetworkID = m.NetworkID.String()
	}

	return a
}

func articlesToDomain(models []contentapi.ArticleModel) []domain.Article {
	articles := make([]domain.Article, 0, len(models))
	for _, m := range models {
		articles = append(articles, articleToDomain(m))
	}
	return articles
}

func articleForm(in domain.ArticleInput) contentapi.ArticleForm {
	return contentapi.ArticleForm{
		Title:       in.Title,
		Content:     in.Content,
		Summary:     in.Summary,
		Slug:        in.Slug,
		Status:      string(in.Status),
		Featured:    in.Featured,
		CoverImage:  in.CoverURL,
		CategoryIDs: in.CategoryIDs,
		NetworkID:   in.NetworkID,
	}
}

func categoryToDomain(m contentapi.CategoryModel) domain.Category {
	return domain.Category{
		ID:          m.ID.String(),
		Name:        m.Name,
		Slug:        m.Slug,
		Color:       m.Color,
		Description: m.Description,
	}
}

func categoryForm(in domain.CategoryInput) contentapi.CategoryForm {
	return contentapi.CategoryForm{
		Name:        in.Name,
		Slug:        in.Slug,
		Color:       in.Color,
		Description: in.Description,
	}
}

func networkToDomain(m contentapi.NetworkModel) domain.Network {
	return domain.Network{
		ID:          m.ID.String(),
		Name:        m.Name,
		Slug:        m.Slug,
		Description: m.Description,
	}
}

func networkForm(in domain.NetworkInput) contentapi.NetworkForm {
	return contentapi.NetworkForm{
		Name:        in.Name,
		Slug:        in.Slug,
		Description: in.Description,
	}
}

func notificationToDomain(m contentapi.NotificationModel) domain.Notification {
	status := domain.NotificationStatus(m.Status)
	switch status {
	case domain.NotificationSent, domain.NotificationFailed, domain.NotificationPending:
	default:
		status = domain.NotificationPending
	}

	return domain.Notification{
		ID:             m.ID.String(),
		ArticleID:      m.ArticleID.String(),
		Recipients:     m.Recipients,
		RecipientCount: m.RecipientCount,
		Subject:        m.Subject,
		HTML:           m.HTML,
		Status:         status,
		CreatedAt:      m.CreatedAt,
		SentAt:         m.SentAt,
	}
}
