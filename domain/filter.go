package domain

import (
	"sort"
	"strings"
	"time"

	"golang.org/x/text/collate"
	"golang.org/x/text/language"
)

// Filters is the composable predicate set applied to the article
// collection. Zero-valued fields are no-ops; active fields narrow the
// collection by logical AND.
type Filters struct {
	Search       string
	Status       Status
	CategoryIDs  []string
	NetworkID    string
	FeaturedOnly bool
}

// Sort is a single-column sort spec. A zero Column leaves the input
// order untouched.
type Sort struct {
	Column    SortColumn
	Direction SortDirection
}

// Apply filters and sorts the collection, returning a new slice. The
// input is never mutated.
func Apply(articles []Article, f Filters, s Sort) []Article {
	out := make([]Article, 0, len(articles))
	for _, a := range articles {
		if f.matches(a) {
			out = append(out, a)
		}
	}

	if s.Column != "" {
		sortArticles(out, s)
	}
	return out
}

// Paginate returns the zero-based page of the given size. Out-of-range
// pages yield an empty slice.
func Paginate(articles []Article, page, size int) []Article {
	if page < 0 || size <= 0 {
		return []Article{}
	}
	start := page * size
	if start >= len(articles) {
		return []Article{}
	}
	end := start + size
	if end > len(articles) {
		end = len(articles)
	}
	return articles[start:end]
}

func (f Filters) matches(a Article) bool {
	if f.Search != "" {
		needle := strings.ToLower(f.Search)
		if !strings.Contains(strings.ToLower(a.Title), needle) &&
			!strings.Contains(strings.ToLower(a.Content), needle) {
			return false
		}
	}
	if f.Status != "" && a.Status != f.Status {
		return false
	}
	if len(f.CategoryIDs) > 0 && !intersects(ResolveCategory(a).All(), f.CategoryIDs) {
		return false
	}
	if f.NetworkID != "" && a.NetworkID != f.NetworkID {
		return false
	}
	if f.FeaturedOnly && !a.Featured {
		return false
	}
	return true
}

func intersects(have, want []string) bool {
	for _, h := range have {
		for _, w := range want {
			if h == w {
				return true
			}
		}
	}
	return false
}

// sortArticles orders in place. Comparison is always on the string
// representation of the column (missing values compare as ""), using
// locale-aware collation. Descending flips the comparator sign rather
// than reversing the sorted output.
func sortArticles(articles []Article, s Sort) {
	coll := collate.New(language.Und)
	desc := s.Direction == SortDesc

	sort.Slice(articles, func(i, j int) bool {
		cmp := coll.CompareString(sortKey(articles[i], s.Column), sortKey(articles[j], s.Column))
		if desc {
			cmp = -cmp
		}
		return cmp < 0
	})
}

func sortKey(a Article, col SortColumn) string {
	switch col {
	case SortByTitle:
		return a.Title
	case SortByCreatedAt:
		return formatTime(a.CreatedAt)
	case SortByStatus:
		return string(a.Status)
	case SortByNetworkID:
		return a.NetworkID
	}
	return ""
}

func formatTime(t *time.Time) string {
	if t == nil {
		return ""
	}
	return t.UTC().Format(time.RFC3339)
}
