// Menurandi plans a week of meals from the built-in recipes and prints
// the shopping list for it.
//
// Usage:
//
//	menurandi [-verbose] [-quiet] [-convention metric|imperial] [-start YYYY-MM-DD] [-export file]
package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"os/signal"
	"path/filepath"
	"slices"
	"time"

	"github.com/hammamikhairi/menurandi/internal/config"
	"github.com/hammamikhairi/menurandi/internal/display"
	"github.com/hammamikhairi/menurandi/internal/domain"
	"github.com/hammamikhairi/menurandi/internal/logger"
	"github.com/hammamikhairi/menurandi/internal/planner"
	"github.com/hammamikhairi/menurandi/internal/quantity"
	"github.com/hammamikhairi/menurandi/internal/recipe"
	"github.com/hammamikhairi/menurandi/internal/shopping"
	"github.com/hammamikhairi/menurandi/internal/storage"
	"github.com/hammamikhairi/menurandi/internal/unit"
)

func main() {
	if err := run(os.Args[1:], os.Stdout); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return
		}
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}

// run plans the sample week and writes the shopping list to out. Every
// resource it opens is closed before it returns.
func run(args []string, out io.Writer) error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}

	fs := flag.NewFlagSet("menurandi", flag.ContinueOnError)
	verbose := fs.Bool("verbose", false, "enable verbose/debug logging")
	quiet := fs.Bool("quiet", false, "disable all logging")
	logFile := fs.String("log-file", cfg.LogFile, "file to write logs to (use \"stderr\" to log to console)")
	convention := fs.String("convention", cfg.DisplayConvention, "units to display amounts in: metric or imperial")
	export := fs.String("export", cfg.ExportPath, "write the shopping list to this file (msgpack)")
	start := fs.String("start", "", "first day of the planned week, YYYY-MM-DD (default: next monday)")
	if err := fs.Parse(args); err != nil {
		return err
	}

	logLevel := cfg.Level()
	if *verbose {
		logLevel = logger.LevelVerbose
	}
	if *quiet {
		logLevel = logger.LevelOff
	}

	logOut, closeLog, err := openLog(*logFile)
	if err != nil {
		return err
	}
	defer closeLog()
	log := logger.New(logLevel, logOut)

	conv, err := unit.ParseConvention(*convention)
	if err != nil {
		return fmt.Errorf("invalid -convention: %w", err)
	}

	monday := nextMonday(domain.DateOf(time.Now()))
	if *start != "" {
		if monday, err = domain.ParseDate(*start); err != nil {
			return fmt.Errorf("invalid -start: %w", err)
		}
	}

	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt)
	defer cancel()

	recipes := recipe.NewMemorySource(log)
	store := storage.NewMemoryStore(log)
	plan := planner.New(recipes, store, log, planner.WithDefaultPortion(cfg.DefaultPortion))

	menuID, err := planWeek(ctx, plan, monday)
	if err != nil {
		return fmt.Errorf("planning week: %w", err)
	}

	list, err := plan.ShoppingList(ctx, menuID, sampleHome(monday), monday)
	if err != nil {
		return fmt.Errorf("shopping list: %w", err)
	}

	fmt.Fprintln(out, display.RenderShoppingList(list, conv))

	if *export != "" {
		if err := writeList(*export, list); err != nil {
			return fmt.Errorf("export: %w", err)
		}
		log.Info("shopping list written to %s", *export)
	}
	return nil
}

// openLog returns the writer logs go to and a func closing it. An empty
// path or "stderr" logs to the console.
func openLog(path string) (io.Writer, func() error, error) {
	if path == "" || path == "stderr" {
		return os.Stderr, func() error { return nil }, nil
	}
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return nil, nil, fmt.Errorf("creating log directory: %w", err)
		}
	}
	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		return nil, nil, fmt.Errorf("opening log file: %w", err)
	}
	return f, f.Close, nil
}

func nextMonday(d domain.Date) domain.Date {
	days := (int(time.Monday) - int(d.Weekday()) + 7) % 7
	if days == 0 {
		days = 7
	}
	return d.AddDays(days)
}

type plannedMeal struct {
	day     int
	meal    domain.MealType
	recipes []string
	guests  domain.Guests
}

var (
	household = domain.Guests{
		{Name: "Sam", AgeGroup: domain.AgeAdult, Portion: 1},
		{Name: "Alex", AgeGroup: domain.AgeAdult, Portion: 1},
		{Name: "Noa", AgeGroup: domain.AgeChild, Portion: 0.5},
	}
	withFriends = slices.Concat(household, domain.Guests{
		{Name: "Jo", AgeGroup: domain.AgeAdult},
		{Name: "Lou", AgeGroup: domain.AgeSenior},
	})
)

var sampleWeek = []plannedMeal{
	{0, domain.MealDiner, []string{"tomato-soup"}, household},
	{1, domain.MealDiner, []string{"vegetable-stir-fry"}, household},
	{2, domain.MealLunch, []string{"tomato-soup"}, household[:2]},
	{3, domain.MealDiner, []string{"chicken-alfredo"}, household},
	{5, domain.MealBrunch, []string{"pancakes"}, withFriends},
	{5, domain.MealDiner, []string{"vegetable-stir-fry"}, withFriends},
	{6, domain.MealBreakfast, []string{"pancakes"}, household},
}

func planWeek(ctx context.Context, p *planner.Planner, monday domain.Date) (string, error) {
	menu, err := p.NewMenu(ctx)
	if err != nil {
		return "", err
	}
	cook := &domain.Cook{Person: domain.Person{Name: "Sam"}, Specialty: domain.RecipeMainCourse}
	for _, m := range sampleWeek {
		if _, err := p.PlanMeal(ctx, menu.ID, monday.AddDays(m.day), m.meal, m.recipes, m.guests, cook); err != nil {
			return "", err
		}
	}
	return menu.ID, nil
}

// sampleHome is a household that already has a few things at hand.
func sampleHome(today domain.Date) *domain.Home {
	oldMilk := recipe.Milk
	oldMilk.ExpiresOn = today.AddDays(-2)
	return &domain.Home{
		Cooks:     []domain.Cook{{Person: domain.Person{Name: "Sam"}}},
		Equipment: []domain.CookingEquipment{domain.EquipmentRiceCooker, domain.EquipmentImmersionBlender},
		Stocks: domain.Quantities{
			recipe.Flour:    quantity.MustNew(unit.Kilogram, 1),
			recipe.Rice:     quantity.MustNew(unit.Cup, 1),
			recipe.OliveOil: quantity.MustNew(unit.Milliliter, 250),
			recipe.Garlic:   quantity.MustNew(unit.Piece, 4),
			recipe.Salt:     quantity.MustNew(unit.Pinch, 50),
			recipe.Butter:   quantity.MustNew(unit.Gram, 125),
			oldMilk:         quantity.MustNew(unit.Liter, 1),
		},
	}
}

func writeList(path string, list shopping.List) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	if err := shopping.Encode(f, list); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}
