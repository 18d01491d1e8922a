package domain

import (
	"fmt"
	"slices"
	"strings"
	"time"

	"github.com/hammamikhairi/menurandi/internal/quantity"
)

// Meal is a set of recipes cooked by a cook for guests.
type Meal struct {
	Type    MealType
	Recipes []*Recipe
	Guests  Guests
	Cook    *Cook
}

// CookingTime returns the sum of the recipes' estimated durations.
func (m *Meal) CookingTime() time.Duration {
	var total time.Duration
	for _, r := range m.Recipes {
		total += r.Instructions.EstimatedDuration
	}
	return total
}

// Portions returns how many standard servings the guests eat.
func (m *Meal) Portions() float64 {
	return m.Guests.Portions()
}

// Quantities returns what the whole meal needs: every recipe normalized to
// one serving, summed, then scaled by the guests' portions.
func (m *Meal) Quantities() (Quantities, error) {
	portions := m.Portions()
	if portions <= 0 {
		return nil, fmt.Errorf("%s: %w", m.Type, ErrNoGuests)
	}

	normalized := make([]Quantities, 0, len(m.Recipes))
	for _, r := range m.Recipes {
		q, err := r.NormalizedQuantities()
		if err != nil {
			return nil, err
		}
		normalized = append(normalized, q)
	}

	total, err := quantity.Add(normalized...)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", m.Type, err)
	}
	return quantity.Scale(total, portions)
}

// DailyMeals holds at most one meal per meal type.
type DailyMeals map[MealType]*Meal

// Types returns the meal types present, in the order they happen during a
// day. Unknown types come last, sorted by name.
func (dm DailyMeals) Types() []MealType {
	out := make([]MealType, 0, len(dm))
	for t := range dm {
		out = append(out, t)
	}
	slices.SortFunc(out, func(a, b MealType) int {
		ia, ib := slices.Index(mealTypes, a), slices.Index(mealTypes, b)
		switch {
		case ia >= 0 && ib >= 0:
			return ia - ib
		case ia >= 0:
			return -1
		case ib >= 0:
			return 1
		default:
			return strings.Compare(string(a), string(b))
		}
	})
	return out
}

// DailyMenu groups the meals planned for one date.
type DailyMenu struct {
	Date  Date
	Meals DailyMeals
}

// Day returns the weekday name of the menu's date.
func (d *DailyMenu) Day() string {
	return d.Date.Weekday().String()
}

// Quantities sums the quantities of every meal of the day, in meal order.
func (d *DailyMenu) Quantities() (Quantities, error) {
	perMeal := make([]Quantities, 0, len(d.Meals))
	for _, t := range d.Meals.Types() {
		q, err := d.Meals[t].Quantities()
		if err != nil {
			return nil, fmt.Errorf("%s: %w", d.Date, err)
		}
		perMeal = append(perMeal, q)
	}
	total, err := quantity.Add(perMeal...)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", d.Date, err)
	}
	return total, nil
}

// Menu is a collection of daily menus, kept in date order.
type Menu struct {
	ID         string
	DailyMenus []*DailyMenu
}

// AddDailyMenu inserts d at its date. A menu holds one daily menu per date.
func (m *Menu) AddDailyMenu(d *DailyMenu) error {
	if _, err := m.On(d.Date); err == nil {
		return fmt.Errorf("daily menu for %s: %w", d.Date, ErrAlreadyExists)
	}
	i, _ := slices.BinarySearchFunc(m.DailyMenus, d.Date, func(dm *DailyMenu, t Date) int {
		return dm.Date.Compare(t)
	})
	m.DailyMenus = slices.Insert(m.DailyMenus, i, d)
	return nil
}

// StartDate returns the earliest date of the menu.
func (m *Menu) StartDate() (Date, error) {
	if len(m.DailyMenus) == 0 {
		return Date{}, fmt.Errorf("start date of empty menu: %w", ErrNotFound)
	}
	return m.DailyMenus[0].Date, nil
}

// Dates returns the planned dates in order.
func (m *Menu) Dates() []Date {
	out := make([]Date, 0, len(m.DailyMenus))
	for _, d := range m.DailyMenus {
		out = append(out, d.Date)
	}
	return out
}

// At returns the i-th daily menu.
func (m *Menu) At(i int) (*DailyMenu, error) {
	if i < 0 || i >= len(m.DailyMenus) {
		return nil, fmt.Errorf("daily menu #%d: %w", i, ErrNotFound)
	}
	return m.DailyMenus[i], nil
}

// On returns the daily menu planned for date.
func (m *Menu) On(date Date) (*DailyMenu, error) {
	for _, d := range m.DailyMenus {
		if d.Date == date {
			return d, nil
		}
	}
	return nil, fmt.Errorf("daily menu for %s: %w", date, ErrNotFound)
}

// Quantities sums the quantities of every day, in date order.
func (m *Menu) Quantities() (Quantities, error) {
	perDay := make([]Quantities, 0, len(m.DailyMenus))
	for _, d := range m.DailyMenus {
		q, err := d.Quantities()
		if err != nil {
			return nil, err
		}
		perDay = append(perDay, q)
	}
	return quantity.Add(perDay...)
}

// Clone copies the menu structure: days, meal maps, meals and guest lists.
// Recipes and cooks are shared.
func (m *Menu) Clone() *Menu {
	out := &Menu{ID: m.ID, DailyMenus: make([]*DailyMenu, 0, len(m.DailyMenus))}
	for _, d := range m.DailyMenus {
		day := &DailyMenu{Date: d.Date, Meals: make(DailyMeals, len(d.Meals))}
		for t, meal := range d.Meals {
			cp := *meal
			cp.Recipes = slices.Clone(meal.Recipes)
			cp.Guests = slices.Clone(meal.Guests)
			day.Meals[t] = &cp
		}
		out.DailyMenus = append(out.DailyMenus, day)
	}
	return out
}
