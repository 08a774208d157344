package domain

// ResolutionKind tags which category representation an article carries.
type ResolutionKind int

const (
	// ResolutionNone means the article has no category association.
	ResolutionNone ResolutionKind = iota
	// ResolutionScalar means only the legacy single-category field is set.
	ResolutionScalar
	// ResolutionList means the multi-category list is set; it wins over
	// the scalar whenever both are present.
	ResolutionList
)

// CategoryResolution is the outcome of resolving an article's category
// association. Call sites branch on Kind instead of re-deriving the
// presence checks themselves.
type CategoryResolution struct {
	Kind ResolutionKind
	IDs  []string
	ID   string
}

// ResolveCategory determines which category representation applies to a.
// A non-empty list wins; an empty list counts as absent and falls back to
// the legacy scalar; neither yields ResolutionNone.
func ResolveCategory(a Article) CategoryResolution {
	if len(a.CategoryIDs) > 0 {
		return CategoryResolution{Kind: ResolutionList, IDs: a.CategoryIDs}
	}
	if a.CategoryID != "" {
		return CategoryResolution{Kind: ResolutionScalar, ID: a.CategoryID}
	}
	return CategoryResolution{Kind: ResolutionNone}
}

// Primary returns the id representing the article in list/table display:
// the first list element, or the legacy scalar.
func (r CategoryResolution) Primary() (string, bool) {
	switch r.Kind {
	case ResolutionList:
		return r.IDs[0], true
	case ResolutionScalar:
		return r.ID, true
	}
	return "", false
}

// All returns every resolved category id. The scalar form is wrapped as a
// single-element list. Aggregation iterates this; display uses Primary.
func (r CategoryResolution) All() []string {
	switch r.Kind {
	case ResolutionList:
		return r.IDs
	case ResolutionScalar:
		return []string{r.ID}
	}
	return nil
}

// PrimaryCategory looks the article's primary category up in the table.
// A miss returns nil, never an error.
func PrimaryCategory(a Article, table map[string]Category) *Category {
	id, ok := ResolveCategory(a).Primary()
	if !ok {
		return nil
	}
	c, ok := table[id]
	if !ok {
		return nil
	}
	return &c
}

// ResolveNetwork looks the article's network up in the table. There is no
// list form for networks; resolution is directly by the scalar id.
func ResolveNetwork(a Article, table map[string]Network) *Network {
	if a.NetworkID == "" {
		return nil
	}
	n, ok := table[a.NetworkID]
	if !ok {
		return nil
	}
	return &n
}
