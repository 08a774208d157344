package rest

import (
	"errors"
	"net/http"
	"strconv"
	"strings"

	"github.com/labstack/echo/v4"

	"content-desk/domain"
	"content-desk/logger"
	"content-desk/usecase"
)

// Handler holds the usecases behind the REST surface.
type Handler struct {
	list          *usecase.ListArticlesUsecase
	get           *usecase.GetArticleUsecase
	mutate        *usecase.MutateArticleUsecase
	stats         *usecase.ArticleStatsUsecase
	categories    *usecase.ManageCategoryUsecase
	networks      *usecase.ManageNetworkUsecase
	notify        *usecase.NotifySubscribersUsecase
	importer      *usecase.ImportArticlesUsecase
	notifications *usecase.ListNotificationsUsecase
}

// NewHandler creates a Handler over the full usecase set.
func NewHandler(
	list *usecase.ListArticlesUsecase,
	get *usecase.GetArticleUsecase,
	mutate *usecase.MutateArticleUsecase,
	stats *usecase.ArticleStatsUsecase,
	categories *usecase.ManageCategoryUsecase,
	networks *usecase.ManageNetworkUsecase,
	notify *usecase.NotifySubscribersUsecase,
	importer *usecase.ImportArticlesUsecase,
	notifications *usecase.ListNotificationsUsecase,
) *Handler {
	return &Handler{
		list:          list,
		get:           get,
		mutate:        mutate,
		stats:         stats,
		categories:    categories,
		networks:      networks,
		notify:        notify,
		importer:      importer,
		notifications: notifications,
	}
}

// ListArticles serves GET /api/articles.
func (h *Handler) ListArticles(c echo.Context) error {
	query, err := parseArticleQuery(c)
	if err != nil {
		return c.JSON(http.StatusBadRequest, errorResponse{Message: err.Error()})
	}

	page, err := h.list.Execute(c.Request().Context(), query)
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(http.StatusOK, toArticlePageResponse(page))
}

// GetArticle serves GET /api/articles/:id.
func (h *Handler) GetArticle(c echo.Context) error {
	article, err := h.get.Execute(c.Request().Context(), c.Param("id"))
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(http.StatusOK, toArticleResponse(*article))
}

// CreateArticle serves POST /api/articles.
func (h *Handler) CreateArticle(c echo.Context) error {
	var req articleRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, errorResponse{Message: "invalid request body"})
	}

	article, err := h.mutate.Create(c.Request().Context(), req.toInput())
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(http.StatusCreated, toArticleResponse(*article))
}

// UpdateArticle serves PUT /api/articles/:id.
func (h *Handler) UpdateArticle(c echo.Context) error {
	var req articleRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, errorResponse{Message: "invalid request body"})
	}

	article, err := h.mutate.Update(c.Request().Context(), c.Param("id"), req.toInput())
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(http.StatusOK, toArticleResponse(*article))
}

// DeleteArticle serves DELETE /api/articles/:id.
func (h *Handler) DeleteArticle(c echo.Context) error {
	if err := h.mutate.Delete(c.Request().Context(), c.Param("id")); err != nil {
		return writeError(c, err)
	}
	return c.NoContent(http.StatusNoContent)
}

// ChangeArticleStatus serves PATCH /api/articles/:id/status.
func (h *Handler) ChangeArticleStatus(c echo.Context) error {
	var req statusChangeRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, errorResponse{Message: "invalid request body"})
	}

	article, err := h.mutate.ChangeStatus(c.Request().Context(), c.Param("id"), domain.Status(req.Status))
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(http.StatusOK, toArticleResponse(*article))
}

// NotifySubscribers serves POST /api/articles/:id/notify. The body is
// optional.
func (h *Handler) NotifySubscribers(c echo.Context) error {
	var req notifyRequest
	if c.Request().ContentLength > 0 {
		if err := c.Bind(&req); err != nil {
			return c.JSON(http.StatusBadRequest, errorResponse{Message: "invalid request body"})
		}
	}

	result, err := h.notify.Execute(c.Request().Context(), c.Param("id"), domain.NotifyRequest{
		Recipients: req.Recipients,
		Subject:    req.Subject,
	})
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(http.StatusOK, notifyResponse{HTML: result.HTML, Message: result.Message})
}

// GetStats serves GET /api/articles/stats.
func (h *Handler) GetStats(c echo.Context) error {
	stats, err := h.stats.Execute(c.Request().Context())
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(http.StatusOK, stats)
}

// ImportArticles serves POST /api/import/articles with a multipart
// "file" field.
func (h *Handler) ImportArticles(c echo.Context) error {
	fileHeader, err := c.FormFile("file")
	if err != nil {
		return c.JSON(http.StatusBadRequest, errorResponse{Message: "file field is required"})
	}

	file, err := fileHeader.Open()
	if err != nil {
		return c.JSON(http.StatusBadRequest, errorResponse{Message: "cannot read uploaded file"})
	}
	defer file.Close()

	result, err := h.importer.Execute(c.Request().Context(), fileHeader.Filename, file)
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(http.StatusOK, result)
}

// ListCategories serves GET /api/categories.
func (h *Handler) ListCategories(c echo.Context) error {
	categories, err := h.categories.List(c.Request().Context())
	if err != nil {
		return writeError(c, err)
	}

	resp := make([]categoryResponse, 0, len(categories))
	for _, cat := range categories {
		resp = append(resp, toCategoryResponse(cat))
	}
	return c.JSON(http.StatusOK, resp)
}

// CreateCategory serves POST /api/categories.
func (h *Handler) CreateCategory(c echo.Context) error {
	var req categoryRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, errorResponse{Message: "invalid request body"})
	}

	category, err := h.categories.Create(c.Request().Context(), req.toInput())
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(http.StatusCreated, toCategoryResponse(*category))
}

// UpdateCategory serves PUT /api/categories/:id.
func (h *Handler) UpdateCategory(c echo.Context) error {
	var req categoryRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, errorResponse{Message: "invalid request body"})
	}

	category, err := h.categories.Update(c.Request().Context(), c.Param("id"), req.toInput())
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(http.StatusOK, toCategoryResponse(*category))
}

// DeleteCategory serves DELETE /api/categories/:id.
func (h *Handler) DeleteCategory(c echo.Context) error {
	if err := h.categories.Delete(c.Request().Context(), c.Param("id")); err != nil {
		return writeError(c, err)
	}
	return c.NoContent(http.StatusNoContent)
}

// ListNetworks serves GET /api/networks.
func (h *Handler) ListNetworks(c echo.Context) error {
	networks, err := h.networks.List(c.Request().Context())
	if err != nil {
		return writeError(c, err)
	}

	resp := make([]networkResponse, 0, len(networks))
	for _, n := range networks {
		resp = append(resp, toNetworkResponse(n))
	}
	return c.JSON(http.StatusOK, resp)
}

// CreateNetwork serves POST /api/networks.
func (h *Handler) CreateNetwork(c echo.Context) error {
	var req networkRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, errorResponse{Message: "invalid request body"})
	}

	network, err := h.networks.Create(c.Request().Context(), req.toInput())
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(http.StatusCreated, toNetworkResponse(*network))
}

// UpdateNetwork serves PUT /api/networks/:id.
func (h *Handler) UpdateNetwork(c echo.Context) error {
	var req networkRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, errorResponse{Message: "invalid request body"})
	}

	network, err := h.networks.Update(c.Request().Context(), c.Param("id"), req.toInput())
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(http.StatusOK, toNetworkResponse(*network))
}

// DeleteNetwork serves DELETE /api/networks/:id.
func (h *Handler) DeleteNetwork(c echo.Context) error {
	if err := h.networks.Delete(c.Request().Context(), c.Param("id")); err != nil {
		return writeError(c, err)
	}
	return c.NoContent(http.StatusNoContent)
}

// ListNotifications serves GET /api/notifications.
func (h *Handler) ListNotifications(c echo.Context) error {
	notifications, err := h.notifications.Execute(c.Request().Context())
	if err != nil {
		return writeError(c, err)
	}

	resp := make([]notificationResponse, 0, len(notifications))
	for _, n := range notifications {
		resp = append(resp, toNotificationResponse(n))
	}
	return c.JSON(http.StatusOK, resp)
}

// Health serves GET /health.
func (h *Handler) Health(c echo.Context) error {
	return c.JSON(http.StatusOK, map[string]string{"status": "ok"})
}

// parseArticleQuery is the inverse of domain.ArticleQuery.Params:
// absent keys stay absent, present keys are parsed strictly.
func parseArticleQuery(c echo.Context) (domain.ArticleQuery, error) {
	var query domain.ArticleQuery

	if raw := c.QueryParam("page"); raw != "" {
		page, err := strconv.Atoi(raw)
		if err != nil || page < 0 {
			return query, errors.New("page must be a non-negative integer")
		}
		query.Page = &page
	}
	if raw := c.QueryParam("limit"); raw != "" {
		limit, err := strconv.Atoi(raw)
		if err != nil || limit <= 0 {
			return query, errors.New("limit must be a positive integer")
		}
		query.Limit = &limit
	}

	query.Search = c.QueryParam("search")

	if raw := c.QueryParam("status"); raw != "" {
		status := domain.Status(raw)
		if !status.Valid() {
			return query, errors.New("status must be draft, published or archived")
		}
		query.Status = status
	}
	if raw := c.QueryParam("networkId"); raw != "" {
		query.NetworkID = &raw
	}
	if raw := c.QueryParam("featured"); raw != "" {
		query.Featured = raw == "true"
	}

	if raw := c.QueryParam("sortBy"); raw != "" {
		switch col := domain.SortColumn(raw); col {
		case domain.SortByTitle, domain.SortByCreatedAt, domain.SortByStatus, domain.SortByNetworkID:
			query.SortBy = col
		default:
			return query, errors.New("sortBy must be title, createdAt, status or networkId")
		}
	}
	if raw := c.QueryParam("sortDir"); raw != "" {
		switch dir := domain.SortDirection(raw); dir {
		case domain.SortAsc, domain.SortDesc:
			query.SortDir = dir
		default:
			return query, errors.New("sortDir must be asc or desc")
		}
	}

	if raw := c.QueryParam("categoryIds"); raw != "" {
		for _, id := range strings.Split(raw, ",") {
			if id = strings.TrimSpace(id); id != "" {
				query.CategoryIDs = append(query.CategoryIDs, id)
			}
		}
	}

	return query, nil
}

// writeError maps domain failures onto HTTP statuses. The in-use and
// conflict cases stay distinguishable for the caller.
func writeError(c echo.Context, err error) error {
	var vErr *domain.ValidationError
	if errors.As(err, &vErr) {
		return c.JSON(http.StatusBadRequest, errorResponse{Message: vErr.Error()})
	}

	switch {
	case errors.Is(err, domain.ErrInUse):
		return c.JSON(http.StatusConflict, errorResponse{Message: "entity has associated articles"})
	case errors.Is(err, domain.ErrConflict):
		return c.JSON(http.StatusConflict, errorResponse{Message: "entity is in use and cannot be modified"})
	case errors.Is(err, domain.ErrNotFound):
		return c.JSON(http.StatusNotFound, errorResponse{Message: "not found"})
	case errors.Is(err, domain.ErrUnavailable):
		return c.JSON(http.StatusBadGateway, errorResponse{Message: "content API unavailable"})
	}

	logger.Logger.Error("request failed", "err", err)
	return c.JSON(http.StatusInternalServerError, errorResponse{Message: "internal error"})
}
