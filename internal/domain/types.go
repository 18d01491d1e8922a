package domain

// RecipeType classifies a dish. To be extended as needed.
type RecipeType string

const (
	RecipeAppetizer  RecipeType = "appetizer"
	RecipeSoup       RecipeType = "soup"
	RecipeSalad      RecipeType = "salad"
	RecipeMainCourse RecipeType = "main_course"
	RecipeSide       RecipeType = "side"
	RecipeDish       RecipeType = "dish"
	RecipeDessert    RecipeType = "dessert"
	RecipeBread      RecipeType = "bread"
	RecipeBreakfast  RecipeType = "breakfast"
	RecipeSnack      RecipeType = "snack"
	RecipeDrink      RecipeType = "drink"
	RecipeSauce      RecipeType = "sauce"
	RecipeCasserole  RecipeType = "casserole"
	RecipeStirFry    RecipeType = "stir_fry"
	RecipeGrill      RecipeType = "grill"
)

// IngredientType classifies an ingredient. To be extended as needed.
type IngredientType string

const (
	IngredientVegetable IngredientType = "vegetable"
	IngredientFruit     IngredientType = "fruit"
	IngredientMeat      IngredientType = "meat"
	IngredientSeafood   IngredientType = "seafood"
	IngredientDairy     IngredientType = "dairy"
	IngredientGrain     IngredientType = "grain"
	IngredientLegume    IngredientType = "legume"
	IngredientNut       IngredientType = "nut"
	IngredientSeed      IngredientType = "seed"
	IngredientOil       IngredientType = "oil"
	IngredientFat       IngredientType = "fat"
	IngredientHerb      IngredientType = "herb"
	IngredientSpice     IngredientType = "spice"
	IngredientSweetener IngredientType = "sweetener"
	IngredientCondiment IngredientType = "condiment"
)

// StorageType is where an ingredient is kept at home.
type StorageType string

const (
	StoragePantry  StorageType = "pantry"
	StorageFridge  StorageType = "fridge"
	StorageFreezer StorageType = "freezer"
)

// CookingEquipment is a piece of kitchen equipment a recipe may require.
type CookingEquipment string

const (
	EquipmentMandoline        CookingEquipment = "mandoline"
	EquipmentMortarAndPestle  CookingEquipment = "mortar_and_pestle"
	EquipmentFoodDehydrator   CookingEquipment = "food_dehydrator"
	EquipmentSousVide         CookingEquipment = "sous_vide_precision_cooker"
	EquipmentImmersionBlender CookingEquipment = "immersion_blender"
	EquipmentMeatGrinder      CookingEquipment = "meat_grinder"
	EquipmentPressureCooker   CookingEquipment = "pressure_cooker"
	EquipmentRiceCooker       CookingEquipment = "rice_cooker"
	EquipmentCrepePan         CookingEquipment = "crepe_pan"
	EquipmentSpiralizer       CookingEquipment = "spiralizer"
	EquipmentCitrusZester     CookingEquipment = "citrus_zester"
	EquipmentFoodMill         CookingEquipment = "food_mill"
	EquipmentSiphon           CookingEquipment = "siphon"
	EquipmentTamis            CookingEquipment = "tamis"
	EquipmentButterChurn      CookingEquipment = "butter_churn"
)

// MealType is a meal of the day.
type MealType string

const (
	MealBreakfast MealType = "breakfast"
	MealBrunch    MealType = "brunch"
	MealLunch     MealType = "lunch"
	MealTea       MealType = "tea"
	MealDiner     MealType = "diner"
)

// mealTypes lists meal types in the order they happen during a day.
var mealTypes = []MealType{MealBreakfast, MealBrunch, MealLunch, MealTea, MealDiner}

// MealTypes returns every meal type in chronological order.
func MealTypes() []MealType {
	return append([]MealType(nil), mealTypes...)
}

// AgeGroup of a guest.
type AgeGroup string

const (
	AgeInfant   AgeGroup = "infant"
	AgeChild    AgeGroup = "child"
	AgeTeenager AgeGroup = "teenager"
	AgeAdult    AgeGroup = "adult"
	AgeSenior   AgeGroup = "senior"
)
