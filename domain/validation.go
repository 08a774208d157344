package domain

import "regexp"

// slugRegex admits lowercase alphanumerics separated by single hyphens.
var slugRegex = regexp.MustCompile(`^[a-z0-9]+(?:-[a-z0-9]+)*$`)

// ValidateArticleInput checks the form fields before any request is
// sent. Failures block submission at the caller.
func ValidateArticleInput(in ArticleInput) error {
	if in.Title == "" {
		return &ValidationError{Field: "title", Err: "must not be empty"}
	}
	if in.Status != "" && !in.Status.Valid() {
		return &ValidationError{Field: "status", Err: "must be draft, published or archived"}
	}
	if in.Slug != "" && !slugRegex.MatchString(in.Slug) {
		return &ValidationError{Field: "slug", Err: "must be lowercase alphanumerics and hyphens"}
	}
	return nil
}

// ValidateCategoryInput checks category form fields.
func ValidateCategoryInput(in CategoryInput) error {
	if in.Name == "" {
		return &ValidationError{Field: "name", Err: "must not be empty"}
	}
	if in.Slug != "" && !slugRegex.MatchString(in.Slug) {
		return &ValidationError{Field: "slug", Err: "must be lowercase alphanumerics and hyphens"}
	}
	return nil
}

// ValidateNetworkInput checks network form fields.
func ValidateNetworkInput(in NetworkInput) error {
	if in.Name == "" {
		return &ValidationError{Field: "name", Err: "must not be empty"}
	}
	if in.Slug != "" && !slugRegex.MatchString(in.Slug) {
		return &ValidationError{Field: "slug", Err: "must be lowercase alphanumerics and hyphens"}
	}
	return nil
}
