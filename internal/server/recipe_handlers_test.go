package server

import (
	"fmt"
	"net/http"
	"testing"

	"recipebox/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func recipeBody(title string) map[string]any {
	return map[string]any{
		"title":        title,
		"description":  "Eggs poached in spiced tomato sauce.",
		"ingredients":  []string{"eggs", "tomatoes", "paprika"},
		"instructions": []string{"Simmer sauce", "Crack eggs", "Cover and cook"},
		"category":     "breakfast",
		"cookingTime":  25,
		"servings":     2,
	}
}

func TestCreateRecipe(t *testing.T) {
	s, app := newTestServer(t)
	user, token := seedUser(t, s, "chef_julia", "julia@example.com", "Password123")

	t.Run("Success", func(t *testing.T) {
		resp, env := doJSON(t, app, http.MethodPost, "/api/recipes", recipeBody("Shakshuka"), token)

		assert.Equal(t, http.StatusCreated, resp.StatusCode)
		assert.True(t, env.Success)
		assert.Equal(t, "Recipe created successfully", env.Message)

		var recipe models.Recipe
		decodeData(t, env, &recipe)
		assert.NotZero(t, recipe.ID)
		assert.Equal(t, "Shakshuka", recipe.Title)
		assert.Equal(t, user.ID, recipe.AuthorID)
		// The author comes back expanded, identity taken from the token.
		assert.Equal(t, "chef_julia", recipe.Author.Username)
	})

	t.Run("Requires Authentication", func(t *testing.T) {
		resp, _ := doJSON(t, app, http.MethodPost, "/api/recipes", recipeBody("Anonymous Stew"), "")
		assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
	})

	t.Run("All Violations Reported Together", func(t *testing.T) {
		resp, env := doJSON(t, app, http.MethodPost, "/api/recipes", map[string]any{
			"title":    "ab",
			"category": "brunch",
		}, token)

		assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
		assert.Contains(t, env.Message, "Title must be at least 3 characters")
		assert.Contains(t, env.Message, "Description is required")
		assert.Contains(t, env.Message, "Ingredients must be a non-empty array")
		assert.Contains(t, env.Message, "Instructions must be a non-empty array")
		assert.Contains(t, env.Message, "Category must be breakfast, lunch, dinner, dessert, or snacks")
		assert.Contains(t, env.Message, "Cooking time must be at least 1 minute")
		assert.Contains(t, env.Message, "Servings must be at least 1")
	})
}

func TestListRecipes(t *testing.T) {
	s, app := newTestServer(t)
	_, token := seedUser(t, s, "chef_julia", "julia@example.com", "Password123")

	titles := []struct {
		title    string
		category string
	}{
		{"Shakshuka", "breakfast"},
		{"Lentil Soup", "lunch"},
		{"Chocolate Cake", "dessert"},
	}
	for _, r := range titles {
		body := recipeBody(r.title)
		body["category"] = r.category
		resp, _ := doJSON(t, app, http.MethodPost, "/api/recipes", body, token)
		require.Equal(t, http.StatusCreated, resp.StatusCode)
	}

	t.Run("All", func(t *testing.T) {
		resp, env := doJSON(t, app, http.MethodGet, "/api/recipes", nil, "")

		assert.Equal(t, http.StatusOK, resp.StatusCode)
		assert.True(t, env.Success)
		require.NotNil(t, env.Count)
		assert.Equal(t, 3, *env.Count)

		var recipes []models.Recipe
		decodeData(t, env, &recipes)
		assert.Len(t, recipes, 3)
	})

	t.Run("Category Filter", func(t *testing.T) {
		_, env := doJSON(t, app, http.MethodGet, "/api/recipes?category=lunch", nil, "")
		require.NotNil(t, env.Count)
		assert.Equal(t, 1, *env.Count)

		var recipes []models.Recipe
		decodeData(t, env, &recipes)
		require.Len(t, recipes, 1)
		assert.Equal(t, "Lentil Soup", recipes[0].Title)
	})

	t.Run("Search Filter", func(t *testing.T) {
		_, env := doJSON(t, app, http.MethodGet, "/api/recipes?search=CAKE", nil, "")
		require.NotNil(t, env.Count)
		assert.Equal(t, 1, *env.Count)
	})

	t.Run("No Match Is Empty Not Error", func(t *testing.T) {
		resp, env := doJSON(t, app, http.MethodGet, "/api/recipes?search=paella", nil, "")
		assert.Equal(t, http.StatusOK, resp.StatusCode)
		require.NotNil(t, env.Count)
		assert.Equal(t, 0, *env.Count)
	})
}

func TestGetRecipe(t *testing.T) {
	s, app := newTestServer(t)
	_, token := seedUser(t, s, "chef_julia", "julia@example.com", "Password123")

	_, created := doJSON(t, app, http.MethodPost, "/api/recipes", recipeBody("Shakshuka"), token)
	var recipe models.Recipe
	decodeData(t, created, &recipe)

	t.Run("Success Without Token", func(t *testing.T) {
		resp, env := doJSON(t, app, http.MethodGet, fmt.Sprintf("/api/recipes/%d", recipe.ID), nil, "")

		assert.Equal(t, http.StatusOK, resp.StatusCode)
		var got models.Recipe
		decodeData(t, env, &got)
		assert.Equal(t, "Shakshuka", got.Title)
		assert.Equal(t, "chef_julia", got.Author.Username)
	})

	t.Run("Not Found", func(t *testing.T) {
		resp, env := doJSON(t, app, http.MethodGet, "/api/recipes/9999", nil, "")
		assert.Equal(t, http.StatusNotFound, resp.StatusCode)
		assert.Equal(t, "Recipe not found", env.Message)
	})

	t.Run("Malformed ID", func(t *testing.T) {
		resp, env := doJSON(t, app, http.MethodGet, "/api/recipes/abc", nil, "")
		assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
		assert.Equal(t, "Invalid ID format", env.Message)
	})
}

func TestListMyRecipes(t *testing.T) {
	s, app := newTestServer(t)
	_, juliaToken := seedUser(t, s, "chef_julia", "julia@example.com", "Password123")
	_, marcoToken := seedUser(t, s, "chef_marco", "marco@example.com", "Password123")

	doJSON(t, app, http.MethodPost, "/api/recipes", recipeBody("Shakshuka"), juliaToken)
	doJSON(t, app, http.MethodPost, "/api/recipes", recipeBody("Carbonara"), marcoToken)

	// The literal path must win over the :id segment.
	t.Run("Only Own Recipes", func(t *testing.T) {
		resp, env := doJSON(t, app, http.MethodGet, "/api/recipes/my/recipes", nil, juliaToken)

		assert.Equal(t, http.StatusOK, resp.StatusCode)
		require.NotNil(t, env.Count)
		assert.Equal(t, 1, *env.Count)

		var recipes []models.Recipe
		decodeData(t, env, &recipes)
		require.Len(t, recipes, 1)
		assert.Equal(t, "Shakshuka", recipes[0].Title)
	})

	t.Run("Requires Authentication", func(t *testing.T) {
		resp, _ := doJSON(t, app, http.MethodGet, "/api/recipes/my/recipes", nil, "")
		assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
	})
}

func TestUpdateRecipe(t *testing.T) {
	s, app := newTestServer(t)
	owner, ownerToken := seedUser(t, s, "chef_julia", "julia@example.com", "Password123")
	_, otherToken := seedUser(t, s, "chef_marco", "marco@example.com", "Password123")

	_, created := doJSON(t, app, http.MethodPost, "/api/recipes", recipeBody("Shakshuka"), ownerToken)
	var recipe models.Recipe
	decodeData(t, created, &recipe)
	path := fmt.Sprintf("/api/recipes/%d", recipe.ID)

	t.Run("Owner Partial Update", func(t *testing.T) {
		resp, env := doJSON(t, app, http.MethodPut, path, map[string]any{
			"title":    "Shakshuka Deluxe",
			"servings": 6,
		}, ownerToken)

		assert.Equal(t, http.StatusOK, resp.StatusCode)
		assert.Equal(t, "Recipe updated successfully", env.Message)

		var got models.Recipe
		decodeData(t, env, &got)
		assert.Equal(t, "Shakshuka Deluxe", got.Title)
		assert.Equal(t, 6, got.Servings)
		// Absent fields keep their prior values; ownership never moves.
		assert.Equal(t, "Eggs poached in spiced tomato sauce.", got.Description)
		assert.Equal(t, owner.ID, got.AuthorID)
	})

	t.Run("Empty Body Changes Nothing", func(t *testing.T) {
		resp, env := doJSON(t, app, http.MethodPut, path, map[string]any{}, ownerToken)

		assert.Equal(t, http.StatusOK, resp.StatusCode)
		var got models.Recipe
		decodeData(t, env, &got)
		assert.Equal(t, "Shakshuka Deluxe", got.Title)
		assert.Equal(t, 6, got.Servings)
	})

	t.Run("Non-Owner Forbidden", func(t *testing.T) {
		resp, env := doJSON(t, app, http.MethodPut, path, map[string]any{
			"title": "Hijacked Recipe",
		}, otherToken)

		assert.Equal(t, http.StatusForbidden, resp.StatusCode)
		assert.Equal(t, "Not authorized to update this recipe", env.Message)
	})

	t.Run("Invalid Present Field", func(t *testing.T) {
		resp, env := doJSON(t, app, http.MethodPut, path, map[string]any{
			"category": "midnight",
		}, ownerToken)

		assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
		assert.Contains(t, env.Message, "Category must be breakfast, lunch, dinner, dessert, or snacks")
	})

	t.Run("Not Found", func(t *testing.T) {
		resp, env := doJSON(t, app, http.MethodPut, "/api/recipes/9999", map[string]any{
			"title": "Nothing Here",
		}, ownerToken)

		assert.Equal(t, http.StatusNotFound, resp.StatusCode)
		assert.Equal(t, "Recipe not found", env.Message)
	})

	t.Run("Requires Authentication", func(t *testing.T) {
		resp, _ := doJSON(t, app, http.MethodPut, path, map[string]any{"title": "Nope"}, "")
		assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
	})
}

func TestDeleteRecipe(t *testing.T) {
	s, app := newTestServer(t)
	_, ownerToken := seedUser(t, s, "chef_julia", "julia@example.com", "Password123")
	_, otherToken := seedUser(t, s, "chef_marco", "marco@example.com", "Password123")

	_, created := doJSON(t, app, http.MethodPost, "/api/recipes", recipeBody("Shakshuka"), ownerToken)
	var recipe models.Recipe
	decodeData(t, created, &recipe)
	path := fmt.Sprintf("/api/recipes/%d", recipe.ID)

	t.Run("Non-Owner Forbidden", func(t *testing.T) {
		resp, env := doJSON(t, app, http.MethodDelete, path, nil, otherToken)
		assert.Equal(t, http.StatusForbidden, resp.StatusCode)
		assert.Equal(t, "Not authorized to delete this recipe", env.Message)
	})

	t.Run("Owner Deletes", func(t *testing.T) {
		resp, env := doJSON(t, app, http.MethodDelete, path, nil, ownerToken)
		assert.Equal(t, http.StatusOK, resp.StatusCode)
		assert.True(t, env.Success)
		assert.Equal(t, "Recipe deleted successfully", env.Message)

		resp, _ = doJSON(t, app, http.MethodGet, path, nil, "")
		assert.Equal(t, http.StatusNotFound, resp.StatusCode)
	})

	t.Run("Already Deleted", func(t *testing.T) {
		resp, env := doJSON(t, app, http.MethodDelete, path, nil, ownerToken)
		assert.Equal(t, http.StatusNotFound, resp.StatusCode)
		assert.Equal(t, "Recipe not found", env.Message)
	})
}
