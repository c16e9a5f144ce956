package model

import (
	"errors"
	"fmt"
)

// CategoryID enumerates the fixed set of grocery categories.
type CategoryID string

const (
	CategoryVegetables  CategoryID = "vegetables"
	CategoryFruit       CategoryID = "fruit"
	CategoryMeat        CategoryID = "meat"
	CategoryDairy       CategoryID = "dairy"
	CategoryCarbs       CategoryID = "carbs"
	CategorySweets      CategoryID = "sweets"
	CategorySpices      CategoryID = "spices"
	CategoryConvenience CategoryID = "convenience"
	CategoryHygiene     CategoryID = "hygiene"
	CategoryOther       CategoryID = "other"
)

// Category is a fixed classification for items.
// Color is an ANSI-256 color token consumed by the UI layer.
type Category struct {
	ID    CategoryID
	Name  string
	Color string
}

// ErrUnknownCategory is returned when a display name from the remote store
// matches no registered category.
var ErrUnknownCategory = errors.New("unknown category")

// The registry is defined once and never mutated. Display names matter:
// remote records persist the category by name, not by id.
var categories = []Category{
	{CategoryVegetables, "Vegetables", "40"},
	{CategoryFruit, "Fruit", "220"},
	{CategoryMeat, "Meat", "203"},
	{CategoryDairy, "Dairy", "111"},
	{CategoryCarbs, "Carbs", "179"},
	{CategorySweets, "Sweets", "213"},
	{CategorySpices, "Spices", "167"},
	{CategoryConvenience, "Convenience", "38"},
	{CategoryHygiene, "Hygiene", "141"},
	{CategoryOther, "Other", "245"},
}

var (
	byID   = make(map[CategoryID]Category, len(categories))
	byName = make(map[string]Category, len(categories))
)

func init() {
	for _, c := range categories {
		byID[c.ID] = c
		byName[c.Name] = c
	}
}

// Categories returns the registry in its fixed display order.
func Categories() []Category {
	out := make([]Category, len(categories))
	copy(out, categories)
	return out
}

// Lookup resolves a category id. Unknown ids fall back to Other so the
// function stays total; ids are a closed enum, callers pass the constants.
func Lookup(id CategoryID) Category {
	if c, ok := byID[id]; ok {
		return c
	}
	return byID[CategoryOther]
}

// FindByDisplayName resolves a category by its exact display name, the form
// the remote store persists. The miss case is a decode error for callers.
func FindByDisplayName(name string) (Category, error) {
	c, ok := byName[name]
	if !ok {
		return Category{}, fmt.Errorf("%w: %q", ErrUnknownCategory, name)
	}
	return c, nil
}
