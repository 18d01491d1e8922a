// Package domain defines the core types and interfaces for meal planning.
// It depends only on the unit and quantity packages.
package domain

import (
	"cmp"
	"fmt"
	"slices"
	"strings"
	"time"

	"github.com/hammamikhairi/menurandi/internal/quantity"
)

// Ingredient is a base ingredient used in recipes and home stocks. It is a
// comparable value: two ingredients with equal fields are the same map key.
type Ingredient struct {
	Name      string
	Type      IngredientType
	StoredIn  StorageType
	ExpiresOn Date // zero when the ingredient does not expire
}

// Compare orders ingredients by name, then by their remaining fields.
func (i Ingredient) Compare(o Ingredient) int {
	return cmp.Or(
		strings.Compare(i.Name, o.Name),
		strings.Compare(string(i.Type), string(o.Type)),
		strings.Compare(string(i.StoredIn), string(o.StoredIn)),
		i.ExpiresOn.Compare(o.ExpiresOn),
	)
}

func (i Ingredient) String() string { return i.Name }

// Quantities maps each ingredient to how much of it is needed.
type Quantities = quantity.Map[Ingredient]

// Recipe stores everything known about a dish.
type Recipe struct {
	ID           string
	Name         string
	Description  string
	Type         RecipeType
	Instructions RecipeInstructions
	Tags         []string
	LastCooked   Date
	Cook         *Cook
	Version      int
}

// RecipeSummary is a lightweight view of a recipe for listing.
type RecipeSummary struct {
	ID          string
	Name        string
	Description string
	Type        RecipeType
	Tags        []string
}

// Summary returns the listing view of r.
func (r *Recipe) Summary() RecipeSummary {
	return RecipeSummary{
		ID:          r.ID,
		Name:        r.Name,
		Description: r.Description,
		Type:        r.Type,
		Tags:        slices.Clone(r.Tags),
	}
}

// Clone returns a copy of r that shares no mutable state with it.
func (r *Recipe) Clone() *Recipe {
	out := *r
	out.Tags = slices.Clone(r.Tags)
	out.Instructions.Quantities = r.Instructions.Quantities.Clone()
	out.Instructions.RequiredEquipment = slices.Clone(r.Instructions.RequiredEquipment)
	if r.Cook != nil {
		cook := *r.Cook
		out.Cook = &cook
	}
	return &out
}

// Ingredients returns the recipe's ingredients, sorted.
func (r *Recipe) Ingredients() []Ingredient {
	return r.Instructions.Ingredients()
}

// NormalizedQuantities returns the recipe's quantities for one serving.
func (r *Recipe) NormalizedQuantities() (Quantities, error) {
	q, err := r.Instructions.NormalizedQuantities()
	if err != nil {
		return nil, fmt.Errorf("recipe %s: %w", r.Name, err)
	}
	return q, nil
}

// RecipeInstructions holds how a recipe is made and for how many servings
// its quantities are written.
type RecipeInstructions struct {
	Quantities        Quantities
	Servings          int
	Text              string
	RequiredEquipment []CookingEquipment
	EstimatedDuration time.Duration
	OriginalLink      string
}

// Ingredients returns the ingredients used by the instructions, sorted.
func (ri RecipeInstructions) Ingredients() []Ingredient {
	return ri.Quantities.Keys()
}

// NormalizedQuantities rescales the quantities to a single serving. Recipes
// that need a minimum batch size are not handled specially.
func (ri RecipeInstructions) NormalizedQuantities() (Quantities, error) {
	if ri.Servings <= 0 {
		return nil, fmt.Errorf("%w: got %d", ErrInvalidServings, ri.Servings)
	}
	return quantity.Scale(ri.Quantities, 1/float64(ri.Servings))
}
