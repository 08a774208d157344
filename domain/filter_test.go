package domain

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func timePtr(s string) *time.Time {
	t, err := time.Parse(time.RFC3339, s)
	if err != nil {
		panic(err)
	}
	return &t
}

func TestApply_Filters(t *testing.T) {
	articles := []Article{
		{ID: "1", Title: "City Budget Approved", Content: "council vote", Status: StatusPublished, NetworkID: "10", Featured: true, CategoryIDs: []string{"1"}},
		{ID: "2", Title: "Match Report", Content: "the budget cup final", Status: StatusDraft, NetworkID: "20", CategoryID: "2"},
		{ID: "3", Title: "Weather", Content: "sunny", Status: StatusPublished, NetworkID: "10"},
	}

	tests := []struct {
		name    string
		filters Filters
		wantIDs []string
	}{
		{"no filters keeps everything", Filters{}, []string{"1", "2", "3"}},
		{"search matches title or content, case-insensitive", Filters{Search: "BUDGET"}, []string{"1", "2"}},
		{"status exact match", Filters{Status: StatusPublished}, []string{"1", "3"}},
		{"category set intersects list and legacy scalar alike", Filters{CategoryIDs: []string{"1", "2"}}, []string{"1", "2"}},
		{"network id exact match", Filters{NetworkID: "10"}, []string{"1", "3"}},
		{"featured only", Filters{FeaturedOnly: true}, []string{"1"}},
		{"filters compose conjunctively", Filters{Search: "budget", Status: StatusPublished, NetworkID: "10"}, []string{"1"}},
		{"conjunction can be empty", Filters{Search: "budget", FeaturedOnly: true, NetworkID: "20"}, nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Apply(articles, tt.filters, Sort{})
			var ids []string
			for _, a := range got {
				ids = append(ids, a.ID)
			}
			assert.Equal(t, tt.wantIDs, ids)
		})
	}
}

func TestApply_CategoryFilterMatchesBothRepresentations(t *testing.T) {
	articles := []Article{
		{ID: "list", CategoryIDs: []string{"1"}},
		{ID: "scalar", CategoryID: "1"},
		{ID: "empty", CategoryIDs: []string{}},
	}

	got := Apply(articles, Filters{CategoryIDs: []string{"1"}}, Sort{})
	require.Len(t, got, 2)
	assert.Equal(t, "list", got[0].ID)
	assert.Equal(t, "scalar", got[1].ID)
}

func TestApply_SortByCreatedAtDesc(t *testing.T) {
	articles := []Article{
		{ID: "c", CreatedAt: timePtr("2024-01-01T00:00:00Z")},
		{ID: "a", CreatedAt: timePtr("2024-01-03T00:00:00Z")},
		{ID: "d", CreatedAt: timePtr("2023-12-31T00:00:00Z")},
		{ID: "b", CreatedAt: timePtr("2024-01-02T00:00:00Z")},
	}

	got := Apply(articles, Filters{}, Sort{Column: SortByCreatedAt, Direction: SortDesc})
	require.Len(t, got, 4)
	assert.Equal(t, "a", got[0].ID)
	assert.Equal(t, "b", got[1].ID)
	assert.Equal(t, "c", got[2].ID)
	assert.Equal(t, "d", got[3].ID)
}

func TestApply_DescReversesAscWithoutTies(t *testing.T) {
	articles := []Article{
		{ID: "1", Title: "banana"},
		{ID: "2", Title: "apple"},
		{ID: "3", Title: "cherry"},
	}

	asc := Apply(articles, Filters{}, Sort{Column: SortByTitle, Direction: SortAsc})
	desc := Apply(articles, Filters{}, Sort{Column: SortByTitle, Direction: SortDesc})

	require.Len(t, asc, 3)
	for i := range asc {
		assert.Equal(t, asc[i].ID, desc[len(desc)-1-i].ID)
	}
}

func TestApply_MissingValuesSortAsEmptyString(t *testing.T) {
	articles := []Article{
		{ID: "dated", CreatedAt: timePtr("2024-01-01T00:00:00Z")},
		{ID: "undated"},
	}

	got := Apply(articles, Filters{}, Sort{Column: SortByCreatedAt, Direction: SortAsc})
	assert.Equal(t, "undated", got[0].ID)
}

func TestApply_DoesNotMutateInput(t *testing.T) {
	articles := []Article{
		{ID: "2", Title: "b"},
		{ID: "1", Title: "a"},
	}

	Apply(articles, Filters{}, Sort{Column: SortByTitle, Direction: SortAsc})
	assert.Equal(t, "2", articles[0].ID)
	assert.Equal(t, "1", articles[1].ID)
}

func TestPaginate(t *testing.T) {
	articles := []Article{{ID: "1"}, {ID: "2"}, {ID: "3"}, {ID: "4"}, {ID: "5"}}

	tests := []struct {
		name    string
		page    int
		size    int
		wantIDs []string
	}{
		{"first page", 0, 2, []string{"1", "2"}},
		{"middle page", 1, 2, []string{"3", "4"}},
		{"short last page", 2, 2, []string{"5"}},
		{"out of range page is empty", 3, 2, []string{}},
		{"negative page is empty", -1, 2, []string{}},
		{"zero size is empty", 0, 0, []string{}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Paginate(articles, tt.page, tt.size)
			ids := make([]string, 0, len(got))
			for _, a := range got {
				ids = append(ids, a.ID)
			}
			assert.Equal(t, tt.wantIDs, ids)
		})
	}
}
