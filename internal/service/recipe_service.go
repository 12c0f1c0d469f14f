package service

import (
	"context"

	"recipebox/internal/models"
	"recipebox/internal/repository"
	"recipebox/internal/validation"
)

// RecipeService handles recipe CRUD with ownership-based authorization.
// Every write runs the same gate sequence: validate payload, resolve the
// record, compare its author against the acting identity, then mutate.
type RecipeService struct {
	recipeRepo repository.RecipeRepository
}

// NewRecipeService returns a new RecipeService.
func NewRecipeService(recipeRepo repository.RecipeRepository) *RecipeService {
	return &RecipeService{recipeRepo: recipeRepo}
}

// CreateRecipeInput carries a full recipe creation payload.
type CreateRecipeInput struct {
	Title        string
	Description  string
	Ingredients  []string
	Instructions []string
	Category     string
	CookingTime  int
	Servings     int
}

// UpdateRecipeInput carries a partial recipe update. Nil fields were absent
// from the payload and keep their prior values.
type UpdateRecipeInput struct {
	Title        *string
	Description  *string
	Ingredients  *[]string
	Instructions *[]string
	Category     *string
	CookingTime  *int
	Servings     *int
}

// Create validates the payload and persists a new recipe owned by authorID.
func (s *RecipeService) Create(ctx context.Context, authorID uint, in CreateRecipeInput) (*models.Recipe, error) {
	if err := validation.ValidateRecipeCreate(validation.RecipePayload{
		Title:        &in.Title,
		Description:  &in.Description,
		Ingredients:  &in.Ingredients,
		Instructions: &in.Instructions,
		Category:     &in.Category,
		CookingTime:  &in.CookingTime,
		Servings:     &in.Servings,
	}); err != nil {
		return nil, err
	}

	recipe := &models.Recipe{
		Title:        in.Title,
		Description:  in.Description,
		Ingredients:  in.Ingredients,
		Instructions: in.Instructions,
		Category:     models.RecipeCategory(in.Category),
		CookingTime:  in.CookingTime,
		Servings:     in.Servings,
		AuthorID:     authorID,
	}

	if err := s.recipeRepo.Create(ctx, recipe); err != nil {
		return nil, err
	}
	return recipe, nil
}

// Get returns a single recipe by ID with its author expanded.
func (s *RecipeService) Get(ctx context.Context, id uint) (*models.Recipe, error) {
	return s.recipeRepo.GetByID(ctx, id)
}

// List returns all recipes matching the filter, newest first.
func (s *RecipeService) List(ctx context.Context, filter repository.RecipeFilter) ([]models.Recipe, error) {
	return s.recipeRepo.List(ctx, filter)
}

// ListMine returns all recipes authored by the given identity, newest first.
func (s *RecipeService) ListMine(ctx context.Context, authorID uint) ([]models.Recipe, error) {
	return s.recipeRepo.ListByAuthor(ctx, authorID)
}

// Update applies a partial update to a recipe after the ownership gate.
// Absent fields are left unchanged; the author never changes.
func (s *RecipeService) Update(ctx context.Context, id, actorID uint, in UpdateRecipeInput) (*models.Recipe, error) {
	recipe, err := s.recipeRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if recipe.AuthorID != actorID {
		return nil, models.NewForbiddenError("Not authorized to update this recipe")
	}

	if err := validation.ValidateRecipeUpdate(validation.RecipePayload{
		Title:        in.Title,
		Description:  in.Description,
		Ingredients:  in.Ingredients,
		Instructions: in.Instructions,
		Category:     in.Category,
		CookingTime:  in.CookingTime,
		Servings:     in.Servings,
	}); err != nil {
		return nil, err
	}

	if in.Title != nil {
		recipe.Title = *in.Title
	}
	if in.Description != nil {
		recipe.Description = *in.Description
	}
	if in.Ingredients != nil {
		recipe.Ingredients = *in.Ingredients
	}
	if in.Instructions != nil {
		recipe.Instructions = *in.Instructions
	}
	if in.Category != nil {
		recipe.Category = models.RecipeCategory(*in.Category)
	}
	if in.CookingTime != nil {
		recipe.CookingTime = *in.CookingTime
	}
	if in.Servings != nil {
		recipe.Servings = *in.Servings
	}

	if err := s.recipeRepo.Update(ctx, recipe); err != nil {
		return nil, err
	}
	return recipe, nil
}

// Delete permanently removes a recipe after the ownership gate.
func (s *RecipeService) Delete(ctx context.Context, id, actorID uint) error {
	recipe, err := s.recipeRepo.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if recipe.AuthorID != actorID {
		return models.NewForbiddenError("Not authorized to delete this recipe")
	}

	return s.recipeRepo.Delete(ctx, id)
}
