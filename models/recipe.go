package models

import "time"

// Difficulty is the self-reported skill level required by a recipe.
type Difficulty string

// Recognized difficulty levels. Anything else is rejected at validation time.
const (
	DifficultyBeginner     Difficulty = "Beginner"
	DifficultyIntermediate Difficulty = "Intermediate"
	DifficultyAdvanced     Difficulty = "Advanced"
)

// Valid reports whether d is one of the recognized difficulty levels.
func (d Difficulty) Valid() bool {
	switch d {
	case DifficultyBeginner, DifficultyIntermediate, DifficultyAdvanced:
		return true
	}
	return false
}

// Recipe represents a published recipe entity.
//
// CreatedBy is established once at creation time and never transferred;
// every mutating operation is authorized against it.
type Recipe struct {
	// RecipeID is the internal unique identifier of the recipe.
	// It is server-assigned and immutable.
	RecipeID int64 `json:"id"`

	// Title is the recipe headline. Required.
	Title string `json:"title"`

	// Description is a short free-form summary. Required.
	Description string `json:"description"`

	// Ingredients is the ordered list of ingredient lines. Required,
	// at least one entry.
	Ingredients []string `json:"ingredients"`

	// Instructions is the ordered list of preparation steps. Required,
	// at least one entry.
	Instructions []string `json:"instructions"`

	// CookingTime is the total preparation time in minutes. Must be positive.
	CookingTime int `json:"cooking_time"`

	// Servings is the number of portions the recipe yields. Must be positive.
	Servings int `json:"servings"`

	// Difficulty is one of the recognized levels,
	// defaulting to DifficultyIntermediate when absent.
	Difficulty Difficulty `json:"difficulty"`

	// Category is the dish category, e.g. "Main Course".
	Category string `json:"category"`

	// Cuisine is the national or regional cuisine, e.g. "Italian".
	Cuisine string `json:"cuisine"`

	// ImageURL is an optional link to a picture of the finished dish.
	ImageURL string `json:"image_url,omitempty"`

	// CreatedBy is the UserID of the owner. Immutable after creation.
	CreatedBy int64 `json:"created_by"`

	// CreatedAt is the timestamp when the recipe was published.
	CreatedAt time.Time `json:"created_at"`

	// UpdatedAt advances on every successful recipe mutation.
	UpdatedAt time.Time `json:"updated_at"`
}

// TableName returns the name of the database table
// associated with the Recipe model.
func (r Recipe) TableName() string {
	return "recipes"
}

// RecipeUpdate carries the optional fields of a recipe update request.
// A nil field means "keep the current value".
type RecipeUpdate struct {
	Title        *string     `json:"title,omitempty"`
	Description  *string     `json:"description,omitempty"`
	Ingredients  []string    `json:"ingredients,omitempty"`
	Instructions []string    `json:"instructions,omitempty"`
	CookingTime  *int        `json:"cooking_time,omitempty"`
	Servings     *int        `json:"servings,omitempty"`
	Difficulty   *Difficulty `json:"difficulty,omitempty"`
	Category     *string     `json:"category,omitempty"`
	Cuisine      *string     `json:"cuisine,omitempty"`
	ImageURL     *string     `json:"image_url,omitempty"`
}

// Apply merges the update into recipe, leaving nil fields untouched.
// Ownership and identifiers are never affected.
func (u RecipeUpdate) Apply(recipe *Recipe) {
	if u.Title != nil {
		recipe.Title = *u.Title
	}
	if u.Description != nil {
		recipe.Description = *u.Description
	}
	if u.Ingredients != nil {
		recipe.Ingredients = u.Ingredients
	}
	if u.Instructions != nil {
		recipe.Instructions = u.Instructions
	}
	if u.CookingTime != nil {
		recipe.CookingTime = *u.CookingTime
	}
	if u.Servings != nil {
		recipe.Servings = *u.Servings
	}
	if u.Difficulty != nil {
		recipe.Difficulty = *u.Difficulty
	}
	if u.Category != nil {
		recipe.Category = *u.Category
	}
	if u.Cuisine != nil {
		recipe.Cuisine = *u.Cuisine
	}
	if u.ImageURL != nil {
		recipe.ImageURL = *u.ImageURL
	}
}
