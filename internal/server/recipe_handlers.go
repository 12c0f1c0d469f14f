package server

import (
	"recipebox/internal/models"
	"recipebox/internal/repository"
	"recipebox/internal/service"

	"github.com/gofiber/fiber/v2"
)

// createRecipeRequest is the explicit shape of a recipe creation payload.
type createRecipeRequest struct {
	Title        string   `json:"title"`
	Description  string   `json:"description"`
	Ingredients  []string `json:"ingredients"`
	Instructions []string `json:"instructions"`
	Category     string   `json:"category"`
	CookingTime  int      `json:"cookingTime"`
	Servings     int      `json:"servings"`
}

// updateRecipeRequest is the explicit shape of a partial recipe update.
// Pointer fields distinguish "absent" from "set to zero".
type updateRecipeRequest struct {
	Title        *string   `json:"title"`
	Description  *string   `json:"description"`
	Ingredients  *[]string `json:"ingredients"`
	Instructions *[]string `json:"instructions"`
	Category     *string   `json:"category"`
	CookingTime  *int      `json:"cookingTime"`
	Servings     *int      `json:"servings"`
}

// CreateRecipe handles POST /api/recipes
func (s *Server) CreateRecipe(c *fiber.Ctx) error {
	var req createRecipeRequest
	if err := c.BodyParser(&req); err != nil {
		return models.NewValidationError("Invalid request body")
	}

	recipe, err := s.recipeService.Create(c.Context(), identity(c), service.CreateRecipeInput{
		Title:        req.Title,
		Description:  req.Description,
		Ingredients:  req.Ingredients,
		Instructions: req.Instructions,
		Category:     req.Category,
		CookingTime:  req.CookingTime,
		Servings:     req.Servings,
	})
	if err != nil {
		return err
	}

	return c.Status(fiber.StatusCreated).JSON(
		models.OKMessage("Recipe created successfully", recipe))
}

// ListRecipes handles GET /api/recipes with optional category and search filters.
func (s *Server) ListRecipes(c *fiber.Ctx) error {
	recipes, err := s.recipeService.List(c.Context(), repository.RecipeFilter{
		Category: c.Query("category"),
		Search:   c.Query("search"),
	})
	if err != nil {
		return err
	}

	return c.JSON(models.OKList(len(recipes), recipes))
}

// ListMyRecipes handles GET /api/recipes/my/recipes
func (s *Server) ListMyRecipes(c *fiber.Ctx) error {
	recipes, err := s.recipeService.ListMine(c.Context(), identity(c))
	if err != nil {
		return err
	}

	return c.JSON(models.OKList(len(recipes), recipes))
}

// GetRecipe handles GET /api/recipes/:id
func (s *Server) GetRecipe(c *fiber.Ctx) error {
	id, err := parseID(c, "id")
	if err != nil {
		return err
	}

	recipe, err := s.recipeService.Get(c.Context(), id)
	if err != nil {
		return err
	}

	return c.JSON(models.OK(recipe))
}

// UpdateRecipe handles PUT /api/recipes/:id
func (s *Server) UpdateRecipe(c *fiber.Ctx) error {
	id, err := parseID(c, "id")
	if err != nil {
		return err
	}

	var req updateRecipeRequest
	if err := c.BodyParser(&req); err != nil {
		return models.NewValidationError("Invalid request body")
	}

	recipe, err := s.recipeService.Update(c.Context(), id, identity(c), service.UpdateRecipeInput{
		Title:        req.Title,
		Description:  req.Description,
		Ingredients:  req.Ingredients,
		Instructions: req.Instructions,
		Category:     req.Category,
		CookingTime:  req.CookingTime,
		Servings:     req.Servings,
	})
	if err != nil {
		return err
	}

	return c.JSON(models.OKMessage("Recipe updated successfully", recipe))
}

// DeleteRecipe handles DELETE /api/recipes/:id
func (s *Server) DeleteRecipe(c *fiber.Ctx) error {
	id, err := parseID(c, "id")
	if err != nil {
		return err
	}

	if err := s.recipeService.Delete(c.Context(), id, identity(c)); err != nil {
		return err
	}

	return c.JSON(models.Response{
		Success: true,
		Message: "Recipe deleted successfully",
	})
}
