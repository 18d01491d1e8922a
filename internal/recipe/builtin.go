package recipe

import (
	"time"

	"github.com/hammamikhairi/menurandi/internal/domain"
	"github.com/hammamikhairi/menurandi/internal/quantity"
	"github.com/hammamikhairi/menurandi/internal/unit"
)

// Ingredients shared by the built-in recipes. Using the same values across
// recipes is what lets their quantities aggregate into one entry.
var (
	Garlic        = pantry("garlic", domain.IngredientVegetable)
	OliveOil      = pantry("olive oil", domain.IngredientOil)
	VegetableOil  = pantry("vegetable oil", domain.IngredientOil)
	SesameOil     = pantry("sesame oil", domain.IngredientOil)
	SoySauce      = pantry("soy sauce", domain.IngredientCondiment)
	Salt          = pantry("salt", domain.IngredientSpice)
	BlackPepper   = pantry("black pepper", domain.IngredientSpice)
	Spaghetti     = pantry("spaghetti", domain.IngredientGrain)
	Rice          = pantry("rice", domain.IngredientGrain)
	Flour         = pantry("flour", domain.IngredientGrain)
	Sugar         = pantry("sugar", domain.IngredientSweetener)
	Cornstarch    = pantry("cornstarch", domain.IngredientGrain)
	BakingPowder  = pantry("baking powder", domain.IngredientCondiment)
	CannedTomato  = pantry("canned tomatoes", domain.IngredientVegetable)
	Broth         = pantry("vegetable broth", domain.IngredientCondiment)
	Onion         = pantry("onion", domain.IngredientVegetable)
	Butter        = fridge("butter", domain.IngredientFat)
	Milk          = fridge("milk", domain.IngredientDairy)
	Eggs          = fridge("eggs", domain.IngredientDairy)
	HeavyCream    = fridge("heavy cream", domain.IngredientDairy)
	CremeFraiche  = fridge("creme fraiche", domain.IngredientDairy)
	Gruyere       = fridge("gruyere cheese", domain.IngredientDairy)
	ChickenBreast = fridge("chicken breast", domain.IngredientMeat)
	BellPepper    = fridge("bell pepper", domain.IngredientVegetable)
	Carrot        = fridge("carrot", domain.IngredientVegetable)
	Ginger        = fridge("fresh ginger", domain.IngredientHerb)
	Basil         = fridge("basil", domain.IngredientHerb)
	Broccoli      = freezer("broccoli florets", domain.IngredientVegetable)
	SnapPeas      = freezer("snap peas", domain.IngredientLegume)
)

func pantry(name string, t domain.IngredientType) domain.Ingredient {
	return domain.Ingredient{Name: name, Type: t, StoredIn: domain.StoragePantry}
}

func fridge(name string, t domain.IngredientType) domain.Ingredient {
	return domain.Ingredient{Name: name, Type: t, StoredIn: domain.StorageFridge}
}

func freezer(name string, t domain.IngredientType) domain.Ingredient {
	return domain.Ingredient{Name: name, Type: t, StoredIn: domain.StorageFreezer}
}

func q(name unit.Name, amount float64) quantity.Quantity {
	return quantity.MustNew(name, amount)
}

func chickenAlfredo() *domain.Recipe {
	return &domain.Recipe{
		ID:          "chicken-alfredo",
		Name:        "Chicken Alfredo",
		Description: "Creamy spaghetti alfredo with pan-seared chicken. Rich, indulgent, and not from a jar.",
		Type:        domain.RecipeMainCourse,
		Tags:        []string{"italian", "pasta", "chicken", "comfort"},
		Instructions: domain.RecipeInstructions{
			Servings: 2,
			Quantities: domain.Quantities{
				Spaghetti:     q(unit.Gram, 250),
				ChickenBreast: q(unit.Piece, 2),
				CremeFraiche:  q(unit.Cup, 1),
				Gruyere:       q(unit.Gram, 100),
				Butter:        q(unit.Gram, 40),
				Garlic:        q(unit.Teaspoon, 2),
				OliveOil:      q(unit.Tablespoon, 1),
				Salt:          q(unit.Pinch, 2),
				BlackPepper:   q(unit.Pinch, 1),
			},
			Text: "Boil the pasta in salted water. Sear the seasoned chicken in olive oil, " +
				"then melt the butter with the garlic, stir in the creme fraiche and " +
				"let it reduce. Melt in the gruyere off the heat and toss with the pasta.",
			EstimatedDuration: 35 * time.Minute,
		},
		Version: 1,
	}
}

func vegetableStirFry() *domain.Recipe {
	return &domain.Recipe{
		ID:          "vegetable-stir-fry",
		Name:        "Vegetable Stir Fry",
		Description: "Fast, crunchy, and customizable. The key is a screaming hot pan and not overcrowding it.",
		Type:        domain.RecipeStirFry,
		Tags:        []string{"asian", "vegetables", "quick", "vegan", "healthy"},
		Instructions: domain.RecipeInstructions{
			Servings: 2,
			Quantities: domain.Quantities{
				BellPepper:   q(unit.Piece, 1),
				Broccoli:     q(unit.Cup, 2),
				Carrot:       q(unit.Piece, 1),
				SnapPeas:     q(unit.Cup, 1),
				Garlic:       q(unit.Tablespoon, 1),
				Ginger:       q(unit.Tablespoon, 1),
				SoySauce:     q(unit.Tablespoon, 2),
				SesameOil:    q(unit.Tablespoon, 1),
				VegetableOil: q(unit.Tablespoon, 2),
				Cornstarch:   q(unit.Teaspoon, 1),
				Rice:         q(unit.Cup, 1),
			},
			Text: "Start the rice. Prep every vegetable before the pan goes on. Stir-fry " +
				"broccoli and carrots first, then peppers and snap peas, add garlic and " +
				"ginger, and finish with the soy and sesame sauce.",
			RequiredEquipment: []domain.CookingEquipment{domain.EquipmentRiceCooker},
			EstimatedDuration: 25 * time.Minute,
		},
		Version: 1,
	}
}

func tomatoSoup() *domain.Recipe {
	return &domain.Recipe{
		ID:          "tomato-soup",
		Name:        "Tomato Soup",
		Description: "Pantry tomato soup with a splash of cream. Better the next day.",
		Type:        domain.RecipeSoup,
		Tags:        []string{"vegetarian", "soup", "comfort"},
		Instructions: domain.RecipeInstructions{
			Servings: 4,
			Quantities: domain.Quantities{
				CannedTomato: q(unit.Gram, 800),
				Onion:        q(unit.Piece, 1),
				Garlic:       q(unit.Teaspoon, 1),
				OliveOil:     q(unit.Tablespoon, 3),
				Broth:        q(unit.Liter, 1),
				HeavyCream:   q(unit.Milliliter, 100),
				Basil:        q(unit.Bundle, 1),
				Salt:         q(unit.Pinch, 2),
			},
			Text: "Sweat the onion and garlic in olive oil, add tomatoes and broth, " +
				"simmer twenty minutes, blend, and finish with cream and basil.",
			RequiredEquipment: []domain.CookingEquipment{domain.EquipmentImmersionBlender},
			EstimatedDuration: 40 * time.Minute,
		},
		Version: 1,
	}
}

func pancakes() *domain.Recipe {
	return &domain.Recipe{
		ID:          "pancakes",
		Name:        "Pancakes",
		Description: "Fluffy weekend pancakes.",
		Type:        domain.RecipeBreakfast,
		Tags:        []string{"breakfast", "sweet", "vegetarian"},
		Instructions: domain.RecipeInstructions{
			Servings: 4,
			Quantities: domain.Quantities{
				Flour:        q(unit.Gram, 250),
				Milk:         q(unit.Milliliter, 500),
				Eggs:         q(unit.Piece, 2),
				Butter:       q(unit.Gram, 50),
				Sugar:        q(unit.Tablespoon, 2),
				BakingPowder: q(unit.Teaspoon, 2),
				Salt:         q(unit.Pinch, 1),
			},
			Text:              "Whisk the dry ingredients, then the milk, eggs and melted butter. Rest ten minutes and cook in a hot pan.",
			EstimatedDuration: 30 * time.Minute,
		},
		Version: 1,
	}
}
