package models

import "strings"

// RecipeFilter is the set of optional recipe search parameters. All present
// parameters combine with logical AND; an absent (empty) parameter imposes
// no constraint, so the zero value matches every recipe.
type RecipeFilter struct {
	// Search is a free-text term matched case-insensitively against title,
	// description, ingredient lines, category and cuisine.
	Search string

	// Category restricts results to recipes whose category contains the
	// term, case-insensitively.
	Category string

	// Cuisine restricts results to recipes whose cuisine contains the
	// term, case-insensitively.
	Cuisine string
}

// IsEmpty reports whether the filter imposes no constraint at all.
func (f RecipeFilter) IsEmpty() bool {
	return f.Search == "" && f.Category == "" && f.Cuisine == ""
}

// Matches is the predicate form of the filter, used by the in-memory store's
// filtered lookup. The SQL backends express the same semantics with
// LOWER(column) LIKE patterns.
func (f RecipeFilter) Matches(recipe Recipe) bool {
	if f.Search != "" && !matchesSearch(recipe, f.Search) {
		return false
	}
	if f.Category != "" && !containsFold(recipe.Category, f.Category) {
		return false
	}
	if f.Cuisine != "" && !containsFold(recipe.Cuisine, f.Cuisine) {
		return false
	}
	return true
}

func matchesSearch(recipe Recipe, term string) bool {
	if containsFold(recipe.Title, term) ||
		containsFold(recipe.Description, term) ||
		containsFold(recipe.Category, term) ||
		containsFold(recipe.Cuisine, term) {
		return true
	}
	for _, ingredient := range recipe.Ingredients {
		if containsFold(ingredient, term) {
			return true
		}
	}
	return false
}

func containsFold(s, substr string) bool {
	return strings.Contains(strings.ToLower(s), strings.ToLower(substr))
}
