package domain

// Category classifies articles and doubles as the grouping key for the
// distribution aggregates.
type Category struct {
	ID          string
	Name        string
	Slug        string
	Color       string
	Description string
}

// Network is a distribution channel; an article belongs to at most one.
type Network struct {
	ID          string
	Name        string
	Slug        string
	Description string
}

// CategoryInput carries the form fields accepted by category create/update.
type CategoryInput struct {
	Name        string
	Slug        string
	Color       string
	Description string
}

// NetworkInput carries the form fields accepted by network create/update.
type NetworkInput struct {
	Name        string
	Slug        string
	Description string
}

// BuildCategoryTable indexes categories by id. Duplicate ids resolve
// last-write-wins in iteration order.
func BuildCategoryTable(categories []Category) map[string]Category {
	table := make(map[string]Category, len(categories))
	for _, c := range categories {
		table[c.ID] = c
	}
	return table
}

// BuildNetworkTable indexes networks by id, last-write-wins.
func BuildNetworkTable(networks []Network) map[string]Network {
	table := make(map[string]Network, len(networks))
	for _, n := range networks {
		table[n.ID] = n
	}
	return table
}
