package domain

import (
	"strconv"
	"strings"
)

// SortColumn names a sortable article field. The values match the remote
// API's parameter vocabulary.
type SortColumn string

const (
	SortByTitle     SortColumn = "title"
	SortByCreatedAt SortColumn = "createdAt"
	SortByStatus    SortColumn = "status"
	SortByNetworkID SortColumn = "networkId"
)

// SortDirection is asc or desc.
type SortDirection string

const (
	SortAsc  SortDirection = "asc"
	SortDesc SortDirection = "desc"
)

// ArticleQuery is the structured form of an article list request.
// Pointer fields distinguish "absent" from zero values: a page of 0 is a
// real first page and must survive into the parameter map.
type ArticleQuery struct {
	Page        *int
	Limit       *int
	Search      string
	Status      Status
	NetworkID   *string
	Featured    bool
	SortBy      SortColumn
	SortDir     SortDirection
	CategoryIDs []string
}

// Params flattens the query into the remote API's string parameter map.
//
// Inclusion rules:
//   - page, limit, networkId: present whenever set, zero included;
//   - search, status: present only when non-empty;
//   - featured: present only when true, serialized as "true" (the API has
//     no way to request non-featured only);
//   - sortBy, sortDir: present only when set;
//   - categoryIds: present only when non-empty, comma-joined in order.
//
// Absent fields are absent keys, never empty strings.
func (q ArticleQuery) Params() map[string]string {
	params := make(map[string]string)

	if q.Page != nil {
		params["page"] = strconv.Itoa(*q.Page)
	}
	if q.Limit != nil {
		params["limit"] = strconv.Itoa(*q.Limit)
	}
	if q.Search != "" {
		params["search"] = q.Search
	}
	if q.Status != "" {
		params["status"] = string(q.Status)
	}
	if q.NetworkID != nil {
		params["networkId"] = *q.NetworkID
	}
	if q.Featured {
		params["featured"] = "true"
	}
	if q.SortBy != "" {
		params["sortBy"] = string(q.SortBy)
	}
	if q.SortDir != "" {
		params["sortDir"] = string(q.SortDir)
	}
	if len(q.CategoryIDs) > 0 {
		params["categoryIds"] = strings.Join(q.CategoryIDs, ",")
	}

	return params
}

// Filters extracts the client-side filter set implied by the query.
func (q ArticleQuery) Filters() Filters {
	f := Filters{
		Search:       q.Search,
		Status:       q.Status,
		CategoryIDs:  q.CategoryIDs,
		FeaturedOnly: q.Featured,
	}
	if q.NetworkID != nil {
		f.NetworkID = *q.NetworkID
	}
	return f
}

// Sort extracts the sort spec implied by the query.
func (q ArticleQuery) Sort() Sort {
	return Sort{Column: q.SortBy, Direction: q.SortDir}
}
