package domain

import "sort"

// fallbackPalette supplies deterministic colors for pie groups whose
// category carries no color of its own. Cycled by encounter order.
var fallbackPalette = []string{
	"#3b82f6", "#10b981", "#f59e0b", "#ef4444",
	"#8b5cf6", "#ec4899", "#14b8a6", "#f97316",
}

// topNetworks caps the byNetwork breakdown for the dashboard.
const topNetworks = 5

// NetworkCount is one byNetwork group.
type NetworkCount struct {
	Name  string `json:"name"`
	Count int    `json:"count"`
}

// PieSlice is one category-distribution group.
type PieSlice struct {
	Name  string `json:"name"`
	Value int    `json:"value"`
	Color string `json:"color"`
}

// Stats is the derived aggregate view of the article collection.
type Stats struct {
	Total     int            `json:"total"`
	Published int            `json:"published"`
	Draft     int            `json:"draft"`
	Archived  int            `json:"archived"`
	Featured  int            `json:"featured"`
	ByNetwork []NetworkCount `json:"byNetwork"`
	PieData   []PieSlice     `json:"pieData"`
}

// ComputeStats derives aggregates with a full pass over the collection.
// Collections are bounded (hundreds to low thousands), so there is no
// incremental path.
//
// The pie distribution counts every category membership of every article:
// an article with N categories contributes one unit to N groups. This
// deliberately differs from the single primary-category rule used for row
// display; conflating the two would undercount multi-category articles.
func ComputeStats(articles []Article, categories map[string]Category, networks map[string]Network) Stats {
	stats := Stats{Total: len(articles)}

	networkCounts := make(map[string]int)
	var networkOrder []string

	pieCounts := make(map[string]int)
	pieColors := make(map[string]string)
	var pieOrder []string
	paletteNext := 0

	for _, a := range articles {
		switch a.Status {
		case StatusPublished:
			stats.Published++
		case StatusDraft:
			stats.Draft++
		case StatusArchived:
			stats.Archived++
		}
		if a.Featured {
			stats.Featured++
		}

		if a.NetworkID != "" {
			name := "Network #" + a.NetworkID
			if n, ok := networks[a.NetworkID]; ok && n.Name != "" {
				name = n.Name
			}
			if _, seen := networkCounts[name]; !seen {
				networkOrder = append(networkOrder, name)
			}
			networkCounts[name]++
		}

		for _, id := range ResolveCategory(a).All() {
			name := "Category #" + id
			color := ""
			if c, ok := categories[id]; ok {
				if c.Name != "" {
					name = c.Name
				}
				color = c.Color
			}
			if _, seen := pieCounts[name]; !seen {
				pieOrder = append(pieOrder, name)
				if color == "" {
					color = fallbackPalette[paletteNext%len(fallbackPalette)]
					paletteNext++
				}
				pieColors[name] = color
			}
			pieCounts[name]++
		}
	}

	stats.ByNetwork = make([]NetworkCount, 0, len(networkOrder))
	for _, name := range networkOrder {
		stats.ByNetwork = append(stats.ByNetwork, NetworkCount{Name: name, Count: networkCounts[name]})
	}
	// Stable sort keeps encounter order among equal counts.
	sort.SliceStable(stats.ByNetwork, func(i, j int) bool {
		return stats.ByNetwork[i].Count > stats.ByNetwork[j].Count
	})
	if len(stats.ByNetwork) > topNetworks {
		stats.ByNetwork = stats.ByNetwork[:topNetworks]
	}

	stats.PieData = make([]PieSlice, 0, len(pieOrder))
	for _, name := range pieOrder {
		stats.PieData = append(stats.PieData, PieSlice{
			Name:  name,
			Value: pieCounts[name],
			Color: pieColors[name],
		})
	}
	sort.SliceStable(stats.PieData, func(i, j int) bool {
		return stats.PieData[i].Value > stats.PieData[j].Value
	})

	return stats
}
