package validation

import (
	"fmt"

	"recipebox/internal/models"
)

const (
	minTitleLen       = 3
	maxTitleLen       = 100
	minDescriptionLen = 10
	maxDescriptionLen = 500
)

// RecipePayload is the explicit shape of a recipe create or update request.
// Nil fields were absent from the payload.
type RecipePayload struct {
	Title        *string
	Description  *string
	Ingredients  *[]string
	Instructions *[]string
	Category     *string
	CookingTime  *int
	Servings     *int
}

// ValidateRecipeCreate checks a full creation payload: every field is
// required and must be within bounds. All violations are collected.
func ValidateRecipeCreate(p RecipePayload) error {
	var v Violations

	if p.Title == nil || *p.Title == "" {
		v.Add("Title is required")
	} else {
		checkTitle(&v, *p.Title)
	}

	if p.Description == nil || *p.Description == "" {
		v.Add("Description is required")
	} else {
		checkDescription(&v, *p.Description)
	}

	if p.Ingredients == nil || len(*p.Ingredients) == 0 {
		v.Add("Ingredients must be a non-empty array")
	}
	if p.Instructions == nil || len(*p.Instructions) == 0 {
		v.Add("Instructions must be a non-empty array")
	}

	if p.Category == nil || *p.Category == "" {
		v.Add("Category is required")
	} else {
		checkCategory(&v, *p.Category)
	}

	if p.CookingTime == nil || *p.CookingTime < 1 {
		v.Add("Cooking time must be at least 1 minute")
	}
	if p.Servings == nil || *p.Servings < 1 {
		v.Add("Servings must be at least 1")
	}

	return v.Err()
}

// ValidateRecipeUpdate checks only the fields present in the payload; present
// fields must satisfy the same bounds as creation.
func ValidateRecipeUpdate(p RecipePayload) error {
	var v Violations

	if p.Title != nil {
		checkTitle(&v, *p.Title)
	}
	if p.Description != nil {
		checkDescription(&v, *p.Description)
	}
	if p.Ingredients != nil && len(*p.Ingredients) == 0 {
		v.Add("Ingredients must be a non-empty array")
	}
	if p.Instructions != nil && len(*p.Instructions) == 0 {
		v.Add("Instructions must be a non-empty array")
	}
	if p.Category != nil {
		checkCategory(&v, *p.Category)
	}
	if p.CookingTime != nil && *p.CookingTime < 1 {
		v.Add("Cooking time must be at least 1 minute")
	}
	if p.Servings != nil && *p.Servings < 1 {
		v.Add("Servings must be at least 1")
	}

	return v.Err()
}

func checkTitle(v *Violations, title string) {
	if len(title) < minTitleLen {
		v.Add(fmt.Sprintf("Title must be at least %d characters", minTitleLen))
	} else if len(title) > maxTitleLen {
		v.Add(fmt.Sprintf("Title cannot exceed %d characters", maxTitleLen))
	}
}

func checkDescription(v *Violations, description string) {
	if len(description) < minDescriptionLen {
		v.Add(fmt.Sprintf("Description must be at least %d characters", minDescriptionLen))
	} else if len(description) > maxDescriptionLen {
		v.Add(fmt.Sprintf("Description cannot exceed %d characters", maxDescriptionLen))
	}
}

func checkCategory(v *Violations, category string) {
	if !models.RecipeCategory(category).Valid() {
		v.Add("Category must be breakfast, lunch, dinner, dessert, or snacks")
	}
}
