package contentapi

import (
	"bytes"
	"encoding/json"
	"fmt"
	"time"
)

// FlexID absorbs the backend's inconsistency between numeric and string
// identifiers. It unmarshals from either and always renders the decimal
// string form, so ids compare by string equality everywhere downstream.
type FlexID string

func (f *FlexID) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	if len(data) == 0 || bytes.Equal(data, []byte("null")) {
		*f = ""
		return nil
	}
	if data[0] == '"' {
		var s string
		if err := json.Unmarshal(data, &s); err != nil {
			return err
		}
		*f = FlexID(s)
		return nil
	}
	var n json.Number
	if err := json.Unmarshal(data, &n); err != nil {
		return fmt.Errorf("id is neither string nor number: %w", err)
	}
	*f = FlexID(n.String())
	return nil
}

func (f FlexID) MarshalJSON() ([]byte, error) {
	return json.Marshal(string(f))
}

func (f FlexID) String() string {
	return string(f)
}

// ArticleModel is the wire shape of an article. Both category
// representations are kept; resolving between them is domain logic.
type ArticleModel struct {
	ID          FlexID     `json:"id"`
	Title       string     `json:"title"`
	Content     string     `json:"content"`
	Summary     string     `json:"summary,omitempty"`
	Slug        string     `json:"slug,omitempty"`
	Status      string     `json:"status"`
	Featured    bool       `json:"featured"`
	CoverImage  string     `json:"coverImage,omitempty"`
	CategoryID  *FlexID    `json:"categoryId,omitempty"`
	CategoryIDs []FlexID   `json:"categoryIds,omitempty"`
	NetworkID   *FlexID    `json:"networkId,omitempty"`
	CreatedAt   *time.Time `json:"createdAt,omitempty"`
	UpdatedAt   *time.Time `json:"updatedAt,omitempty"`
	PublishedAt *time.Time `json:"publishedAt,omitempty"`
}

// ArticleForm is the request body for article create/update.
type ArticleForm struct {
	Title       string   `json:"title"`
	Content     string   `json:"content"`
	Summary     string   `json:"summary,omitempty"`
	Slug        string   `json:"slug,omitempty"`
	Status      string   `json:"status,omitempty"`
	Featured    bool     `json:"featured"`
	CoverImage  string   `json:"coverImage,omitempty"`
	CategoryIDs []string `json:"categoryIds,omitempty"`
	NetworkID   string   `json:"networkId,omitempty"`
}

// CategoryModel is the wire shape of a category.
type CategoryModel struct {
	ID          FlexID `json:"id"`
	Name        string `json:"name"`
	Slug        string `json:"slug,omitempty"`
	Color       string `json:"color,omitempty"`
	Description string `json:"description,omitempty"`
}

// CategoryForm is the request body for category create/update.
type CategoryForm struct {
	Name        string `json:"name"`
	Slug        string `json:"slug,omitempty"`
	Color       string `json:"color,omitempty"`
	Description string `json:"description,omitempty"`
}

// NetworkModel is the wire shape of a network.
type NetworkModel struct {
	ID          FlexID `json:"id"`
	Name        string `json:"name"`
	Slug        string `json:"slug,omitempty"`
	Description string `json:"description,omitempty"`
}

// NetworkForm is the request body for network create/update.
type NetworkForm struct {
	Name        string `json:"name"`
	Slug        string `json:"slug,omitempty"`
	Description string `json:"description,omitempty"`
}

// NotificationModel is the wire shape of a notification history entry.
type NotificationModel struct {
	ID             FlexID     `json:"id"`
	ArticleID      FlexID     `json:"articleId"`
	Recipients     []string   `json:"recipients,omitempty"`
	RecipientCount int        `json:"recipientCount,omitempty"`
	Subject        string     `json:"subject,omitempty"`
	HTML           string     `json:"html,omitempty"`
	Status         string     `json:"status"`
	CreatedAt      *time.Time `json:"createdAt,omitempty"`
	SentAt         *time.Time `json:"sentAt,omitempty"`
}

// NotifyRequestModel is the optional notify request body.
type NotifyRequestModel struct {
	Recipients []string `json:"recipients,omitempty"`
	Subject    string   `json:"subject,omitempty"`
}

// NotifyResponseModel is the notify success payload. HTML carries a
// rendered preview when the server produced one.
type NotifyResponseModel struct {
	HTML    string `json:"html,omitempty"`
	Message string `json:"message,omitempty"`
}

// StatusChangeModel is the change-status request body.
type StatusChangeModel struct {
	Status string `json:"status"`
}

// ImportResultModel is the bulk import report.
type ImportResultModel struct {
	Total   int                `json:"total"`
	Success int                `json:"success"`
	Errors  []ImportErrorModel `json:"errors"`
}

// ImportErrorModel describes one rejected import record.
type ImportErrorModel struct {
	Index int    `json:"index"`
	Error string `json:"error"`
}
