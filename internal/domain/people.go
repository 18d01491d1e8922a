package domain

import "strings"

// Person is anyone taking part in a meal.
type Person struct {
	Name     string
	LastName string
}

// FullName returns the first and last name joined by a space.
func (p Person) FullName() string {
	return strings.TrimSpace(p.Name + " " + p.LastName)
}

// Cook identifies who cooks a meal. Useful in non-singular households.
type Cook struct {
	Person
	Specialty RecipeType
}

// Guest eats a meal. Portion is how much the guest eats relative to one
// standard serving.
type Guest struct {
	Name     string
	AgeGroup AgeGroup
	Portion  float64
}

// Guests is everyone eating a meal.
type Guests []Guest

// Portions returns the sum of every guest's portion.
func (g Guests) Portions() float64 {
	var total float64
	for _, guest := range g {
		total += guest.Portion
	}
	return total
}
