package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestComputeStats_StatusCountsPartitionTheCollection(t *testing.T) {
	articles := []Article{
		{ID: "1", Status: StatusPublished, Featured: true},
		{ID: "2", Status: StatusPublished},
		{ID: "3", Status: StatusDraft},
		{ID: "4", Status: StatusArchived},
	}

	stats := ComputeStats(articles, nil, nil)

	assert.Equal(t, 4, stats.Total)
	assert.Equal(t, 2, stats.Published)
	assert.Equal(t, 1, stats.Draft)
	assert.Equal(t, 1, stats.Archived)
	assert.Equal(t, stats.Total, stats.Published+stats.Draft+stats.Archived)
	assert.Equal(t, 1, stats.Featured)
}

func TestComputeStats_ByNetwork(t *testing.T) {
	networks := BuildNetworkTable([]Network{{ID: "1", Name: "Metro"}})
	articles := []Article{
		{ID: "1", Status: StatusDraft, NetworkID: "1"},
		{ID: "2", Status: StatusDraft, NetworkID: "1"},
		{ID: "3", Status: StatusDraft, NetworkID: "99"},
		{ID: "4", Status: StatusDraft}, // no network, excluded
	}

	stats := ComputeStats(articles, nil, networks)

	require.Len(t, stats.ByNetwork, 2)
	assert.Equal(t, NetworkCount{Name: "Metro", Count: 2}, stats.ByNetwork[0])
	assert.Equal(t, NetworkCount{Name: "Network #99", Count: 1}, stats.ByNetwork[1])
}

func TestComputeStats_ByNetworkTruncatesToTopFive(t *testing.T) {
	var articles []Article
	ids := []string{"1", "2", "3", "4", "5", "6", "7"}
	for i, id := range ids {
		// id "1" appears 7 times, "2" six times, and so on down.
		for n := 0; n < len(ids)-i; n++ {
			articles = append(articles, Article{Status: StatusDraft, NetworkID: id})
		}
	}

	stats := ComputeStats(articles, nil, nil)

	require.Len(t, stats.ByNetwork, 5)
	assert.Equal(t, "Network #1", stats.ByNetwork[0].Name)
	assert.Equal(t, 7, stats.ByNetwork[0].Count)
	assert.Equal(t, "Network #5", stats.ByNetwork[4].Name)
}

func TestComputeStats_PieCountsEveryMembership(t *testing.T) {
	categories := BuildCategoryTable([]Category{
		{ID: "1", Name: "Politics", Color: "#111111"},
		{ID: "2", Name: "Sports"},
	})
	articles := []Article{
		{ID: "1", Status: StatusDraft, CategoryIDs: []string{"1", "2"}},
		{ID: "2", Status: StatusDraft, CategoryID: "1"},
	}

	stats := ComputeStats(articles, categories, nil)

	require.Len(t, stats.PieData, 2)
	assert.Equal(t, "Politics", stats.PieData[0].Name)
	assert.Equal(t, 2, stats.PieData[0].Value)
	assert.Equal(t, "#111111", stats.PieData[0].Color)
	assert.Equal(t, "Sports", stats.PieData[1].Name)
	assert.Equal(t, 1, stats.PieData[1].Value)
}

func TestComputeStats_UnresolvableCategoryGetsFallbackLabelAndColor(t *testing.T) {
	categories := BuildCategoryTable([]Category{{ID: "1", Name: "Politics"}})
	articles := []Article{
		{ID: "1", Status: StatusDraft, CategoryIDs: []string{"1", "3"}},
	}

	stats := ComputeStats(articles, categories, nil)

	require.Len(t, stats.PieData, 2)

	byName := map[string]PieSlice{}
	for _, s := range stats.PieData {
		byName[s.Name] = s
	}
	assert.Equal(t, 1, byName["Politics"].Value)
	assert.Equal(t, 1, byName["Category #3"].Value)

	// Palette colors cycle by encounter order: Politics has no color of
	// its own so it takes the first slot, the unresolved id the second.
	assert.Equal(t, fallbackPalette[0], byName["Politics"].Color)
	assert.Equal(t, fallbackPalette[1], byName["Category #3"].Color)
}

func TestComputeStats_EmptyCollection(t *testing.T) {
	stats := ComputeStats(nil, nil, nil)

	assert.Zero(t, stats.Total)
	assert.Empty(t, stats.ByNetwork)
	assert.Empty(t, stats.PieData)
}
