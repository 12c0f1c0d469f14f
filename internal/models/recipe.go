package models

import (
	"database/sql/driver"
	"encoding/json"
	"fmt"
	"time"
)

// RecipeCategory is the closed set of categories a recipe can belong to.
type RecipeCategory string

const (
	CategoryBreakfast RecipeCategory = "breakfast"
	CategoryLunch     RecipeCategory = "lunch"
	CategoryDinner    RecipeCategory = "dinner"
	CategoryDessert   RecipeCategory = "dessert"
	CategorySnacks    RecipeCategory = "snacks"
)

// RecipeCategories lists every valid category, in display order.
var RecipeCategories = []RecipeCategory{
	CategoryBreakfast,
	CategoryLunch,
	CategoryDinner,
	CategoryDessert,
	CategorySnacks,
}

// Valid reports whether the category is one of the known values.
func (c RecipeCategory) Valid() bool {
	for _, known := range RecipeCategories {
		if c == known {
			return true
		}
	}
	return false
}

// StringList stores an ordered sequence of strings as a JSON text column,
// keeping the schema portable between Postgres and the sqlite test driver.
type StringList []string

// Value implements driver.Valuer.
func (l StringList) Value() (driver.Value, error) {
	if l == nil {
		l = StringList{}
	}
	b, err := json.Marshal(l)
	if err != nil {
		return nil, err
	}
	return string(b), nil
}

// Scan implements sql.Scanner.
func (l *StringList) Scan(value any) error {
	if value == nil {
		*l = nil
		return nil
	}
	switch v := value.(type) {
	case []byte:
		return json.Unmarshal(v, l)
	case string:
		return json.Unmarshal([]byte(v), l)
	default:
		return fmt.Errorf("unsupported column type %T for StringList", value)
	}
}

// Recipe represents a recipe owned by exactly one user. AuthorID is set at
// creation from the authenticated identity and never changed by updates.
type Recipe struct {
	ID           uint           `gorm:"primaryKey" json:"id"`
	Title        string         `gorm:"size:100;not null" json:"title"`
	Description  string         `gorm:"size:500;not null" json:"description"`
	Ingredients  StringList     `gorm:"type:text;not null" json:"ingredients"`
	Instructions StringList     `gorm:"type:text;not null" json:"instructions"`
	Category     RecipeCategory `gorm:"type:varchar(20);not null;index" json:"category"`
	CookingTime  int            `gorm:"not null" json:"cookingTime"`
	Servings     int            `gorm:"not null" json:"servings"`
	AuthorID     uint           `gorm:"not null;index" json:"authorId"`
	Author       User           `gorm:"foreignKey:AuthorID" json:"author"`
	CreatedAt    time.Time      `json:"createdAt"`
	UpdatedAt    time.Time      `json:"updatedAt"`
}
