// Package seed provides database seeding utilities for development and testing.
package seed

import (
	"fmt"
	"math/rand"
	"strings"

	"recipebox/internal/models"

	"github.com/brianvoe/gofakeit/v6"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

// Options configures the seeder.
type Options struct {
	NumUsers   int
	NumRecipes int
	// Password is assigned to every seeded user so developers can log in.
	Password string
}

// DefaultOptions returns a small development data set.
func DefaultOptions() Options {
	return Options{
		NumUsers:   10,
		NumRecipes: 40,
		Password:   "Password123",
	}
}

var dishAdjectives = []string{
	"Classic", "Spicy", "Creamy", "Rustic", "Smoky", "Zesty", "Herbed",
	"Roasted", "Grilled", "Slow-Cooked", "Quick", "Homestyle",
}

// Run populates the database with fake users and recipes.
func Run(db *gorm.DB, opts Options) error {
	hashed, err := bcrypt.GenerateFromPassword([]byte(opts.Password), bcrypt.DefaultCost)
	if err != nil {
		return fmt.Errorf("failed to hash seed password: %w", err)
	}

	users := make([]*models.User, 0, opts.NumUsers)
	for i := 0; i < opts.NumUsers; i++ {
		user := &models.User{
			Username: fmt.Sprintf("%s%d", strings.ToLower(gofakeit.Username()), i),
			Email:    fmt.Sprintf("%d_%s", i, gofakeit.Email()),
			Password: string(hashed),
			Bio:      gofakeit.SentenceSimple(),
		}
		if err := db.Create(user).Error; err != nil {
			return fmt.Errorf("failed to seed user: %w", err)
		}
		users = append(users, user)
	}

	for i := 0; i < opts.NumRecipes; i++ {
		author := users[rand.Intn(len(users))]
		recipe := FakeRecipe(author.ID)
		if err := db.Create(recipe).Error; err != nil {
			return fmt.Errorf("failed to seed recipe: %w", err)
		}
	}

	return nil
}

// FakeRecipe builds a valid random recipe owned by authorID.
func FakeRecipe(authorID uint) *models.Recipe {
	adjective := dishAdjectives[rand.Intn(len(dishAdjectives))]
	dish := gofakeit.Dinner()

	ingredients := make(models.StringList, 0, 5)
	for j := 0; j < 3+rand.Intn(3); j++ {
		ingredients = append(ingredients, gofakeit.Breakfast())
	}

	instructions := models.StringList{
		"Prepare all ingredients",
		"Combine and cook until done",
		"Season to taste and serve",
	}

	category := models.RecipeCategories[rand.Intn(len(models.RecipeCategories))]

	return &models.Recipe{
		Title:        fmt.Sprintf("%s %s", adjective, dish),
		Description:  gofakeit.Paragraph(1, 2, 8, " "),
		Ingredients:  ingredients,
		Instructions: instructions,
		Category:     category,
		CookingTime:  5 + rand.Intn(115),
		Servings:     1 + rand.Intn(7),
		AuthorID:     authorID,
	}
}
