// Package planner plans meals into menus and derives what they need: the
// total quantities per day or per menu and the shopping list for a home.
package planner

import (
	"context"
	"fmt"
	"math"

	"github.com/hammamikhairi/menurandi/internal/domain"
	"github.com/hammamikhairi/menurandi/internal/logger"
	"github.com/hammamikhairi/menurandi/internal/shopping"
)

// Option configures the planner.
type Option func(*Planner)

// WithDefaultPortion sets the portion given to guests planned without one.
func WithDefaultPortion(p float64) Option {
	return func(pl *Planner) {
		if p > 0 {
			pl.defaultPortion = p
		}
	}
}

// Planner manages menus. It depends only on interfaces.
type Planner struct {
	recipes        domain.RecipeSource
	store          domain.MenuStore
	log            *logger.Logger
	defaultPortion float64
}

// New creates a planner with the given dependencies and options.
func New(recipes domain.RecipeSource, store domain.MenuStore, log *logger.Logger, opts ...Option) *Planner {
	p := &Planner{
		recipes:        recipes,
		store:          store,
		log:            log,
		defaultPortion: 1,
	}
	for _, opt := range opts {
		opt(p)
	}
	return p
}

// ListRecipes returns all available recipes.
func (p *Planner) ListRecipes(ctx context.Context) ([]domain.RecipeSummary, error) {
	return p.recipes.List(ctx)
}

// SearchRecipes returns the recipes matching query.
func (p *Planner) SearchRecipes(ctx context.Context, query string) ([]domain.RecipeSummary, error) {
	return p.recipes.Search(ctx, query)
}

// NewMenu creates and stores an empty menu.
func (p *Planner) NewMenu(ctx context.Context) (*domain.Menu, error) {
	menu := &domain.Menu{}
	if err := p.store.Save(ctx, menu); err != nil {
		return nil, fmt.Errorf("saving menu: %w", err)
	}
	p.log.Info("created menu %s", menu.ID)
	return menu, nil
}

// Menu returns a copy of a stored menu.
func (p *Planner) Menu(ctx context.Context, menuID string) (*domain.Menu, error) {
	menu, err := p.store.Load(ctx, menuID)
	if err != nil {
		return nil, fmt.Errorf("loading menu %s: %w", menuID, err)
	}
	return menu, nil
}

// Menus returns every stored menu.
func (p *Planner) Menus(ctx context.Context) ([]*domain.Menu, error) {
	return p.store.List(ctx)
}

// DeleteMenu removes a menu.
func (p *Planner) DeleteMenu(ctx context.Context, menuID string) error {
	if err := p.store.Delete(ctx, menuID); err != nil {
		return fmt.Errorf("deleting menu %s: %w", menuID, err)
	}
	p.log.Info("deleted menu %s", menuID)
	return nil
}

// PlanMeal puts a meal of the given type on date, replacing any meal of
// that type already planned there. Guests without a portion get the
// default one; a negative portion is rejected. The meal is also rejected,
// and the menu left untouched, when its quantities cannot be computed.
func (p *Planner) PlanMeal(ctx context.Context, menuID string, date domain.Date, mealType domain.MealType,
	recipeIDs []string, guests domain.Guests, cook *domain.Cook) (*domain.Meal, error) {
	if date.IsZero() {
		return nil, fmt.Errorf("planning %s: date is required", mealType)
	}
	if len(recipeIDs) == 0 {
		return nil, fmt.Errorf("planning %s on %s: no recipes", mealType, date)
	}

	menu, err := p.Menu(ctx, menuID)
	if err != nil {
		return nil, err
	}

	meal := &domain.Meal{Type: mealType, Cook: cook}
	for _, id := range recipeIDs {
		r, err := p.recipes.Get(ctx, id)
		if err != nil {
			return nil, fmt.Errorf("getting recipe %s: %w", id, err)
		}
		meal.Recipes = append(meal.Recipes, r)
	}
	for _, g := range guests {
		if g.Portion < 0 || math.IsNaN(g.Portion) || math.IsInf(g.Portion, 0) {
			return nil, fmt.Errorf("guest %q portion %v: %w", g.Name, g.Portion, domain.ErrInvalidPortion)
		}
		if g.Portion == 0 {
			g.Portion = p.defaultPortion
		}
		meal.Guests = append(meal.Guests, g)
	}

	if _, err := meal.Quantities(); err != nil {
		return nil, fmt.Errorf("planning %s on %s: %w", mealType, date, err)
	}

	day, err := menu.On(date)
	if err != nil {
		day = &domain.DailyMenu{Date: date, Meals: make(domain.DailyMeals)}
		if err := menu.AddDailyMenu(day); err != nil {
			return nil, err
		}
	}
	if _, ok := day.Meals[mealType]; ok {
		p.log.Info("replacing %s on %s in menu %s", mealType, date, menuID)
	}
	day.Meals[mealType] = meal

	if err := p.store.Save(ctx, menu); err != nil {
		return nil, fmt.Errorf("saving menu: %w", err)
	}

	p.log.Info("planned %s on %s (%d recipes, %.2f portions)", mealType, date, len(meal.Recipes), meal.Portions())
	return meal, nil
}

// UnplanMeal removes the meal of the given type on date. A day left
// without meals is dropped from the menu.
func (p *Planner) UnplanMeal(ctx context.Context, menuID string, date domain.Date, mealType domain.MealType) error {
	menu, err := p.Menu(ctx, menuID)
	if err != nil {
		return err
	}
	day, err := menu.On(date)
	if err != nil {
		return err
	}
	if _, ok := day.Meals[mealType]; !ok {
		return fmt.Errorf("%s on %s: %w", mealType, date, domain.ErrNotFound)
	}
	delete(day.Meals, mealType)

	if len(day.Meals) == 0 {
		kept := menu.DailyMenus[:0]
		for _, d := range menu.DailyMenus {
			if d != day {
				kept = append(kept, d)
			}
		}
		menu.DailyMenus = kept
	}

	if err := p.store.Save(ctx, menu); err != nil {
		return fmt.Errorf("saving menu: %w", err)
	}
	p.log.Info("removed %s on %s from menu %s", mealType, date, menuID)
	return nil
}

// MenuQuantities returns what the whole menu needs.
func (p *Planner) MenuQuantities(ctx context.Context, menuID string) (domain.Quantities, error) {
	menu, err := p.Menu(ctx, menuID)
	if err != nil {
		return nil, err
	}
	q, err := menu.Quantities()
	if err != nil {
		return nil, fmt.Errorf("menu %s quantities: %w", menuID, err)
	}
	p.log.Debug("menu %s needs %d ingredients", menuID, len(q))
	return q, nil
}

// DayQuantities returns what the meals planned on date need.
func (p *Planner) DayQuantities(ctx context.Context, menuID string, date domain.Date) (domain.Quantities, error) {
	menu, err := p.Menu(ctx, menuID)
	if err != nil {
		return nil, err
	}
	day, err := menu.On(date)
	if err != nil {
		return nil, err
	}
	return day.Quantities()
}

// ShoppingList returns what must be bought for the menu, given what home
// already has in stock on asOf. A nil home has no stock.
func (p *Planner) ShoppingList(ctx context.Context, menuID string, home *domain.Home, asOf domain.Date) (shopping.List, error) {
	need, err := p.MenuQuantities(ctx, menuID)
	if err != nil {
		return shopping.List{}, err
	}

	var stock domain.Quantities
	if home != nil {
		stock = home.Stocks
	}

	list, err := shopping.Build(need, stock, asOf)
	if err != nil {
		return shopping.List{}, fmt.Errorf("menu %s shopping list: %w", menuID, err)
	}
	for _, it := range list.Items {
		if it.StockIgnored {
			p.log.Warn("stock of %s could not be matched against %s", it.Ingredient, it.Quantity.Unit())
		}
	}
	p.log.Info("shopping list for menu %s: %d items", menuID, list.Len())
	return list, nil
}
