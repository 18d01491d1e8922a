// Package display renders shopping lists for the terminal with lipgloss.
//
// Amounts are shown in the units of the requested convention and
// formatted with a locale-aware number printer.
package display

import (
	"fmt"
	"slices"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
	"golang.org/x/text/number"

	"github.com/hammamikhairi/menurandi/internal/domain"
	"github.com/hammamikhairi/menurandi/internal/quantity"
	"github.com/hammamikhairi/menurandi/internal/shopping"
	"github.com/hammamikhairi/menurandi/internal/unit"
)

// ── Styles ───────────────────────────────────────────────────────

var (
	// TitleStyle is used for the list header.
	TitleStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#94a3b8")).
			Bold(true)

	sectionStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#bbf7d0"))

	itemStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#d4d4d8"))

	amountStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#fde68a"))

	leaderStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#52525b"))

	noteStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#71717a")).
			Italic(true)

	warnStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#fca5a5"))
)

// maxWidth caps the list width on wide terminals.
const maxWidth = 64

var storageOrder = []domain.StorageType{
	domain.StoragePantry,
	domain.StorageFridge,
	domain.StorageFreezer,
}

var storageTitles = map[domain.StorageType]string{
	domain.StoragePantry:  "Pantry",
	domain.StorageFridge:  "Fridge",
	domain.StorageFreezer: "Freezer",
}

// Option configures rendering.
type Option func(*renderer)

// WithWidth fixes the width instead of asking the terminal.
func WithWidth(w int) Option {
	return func(r *renderer) {
		if w > 0 {
			r.width = w
		}
	}
}

// WithLanguage sets the language used to format numbers.
func WithLanguage(tag language.Tag) Option {
	return func(r *renderer) {
		r.printer = message.NewPrinter(tag)
	}
}

type renderer struct {
	width   int
	printer *message.Printer
}

func newRenderer(opts []Option) *renderer {
	r := &renderer{
		width:   min(termWidth(), maxWidth),
		printer: message.NewPrinter(language.English),
	}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// FormatQuantity returns q in the units of conv, e.g. "1.5 cup". Amounts
// keep at most two decimals.
func FormatQuantity(q quantity.Quantity, conv unit.Convention, opts ...Option) string {
	return newRenderer(opts).quantity(q, conv)
}

func (r *renderer) quantity(q quantity.Quantity, conv unit.Convention) string {
	shown := q.In(conv)
	amount := r.printer.Sprint(number.Decimal(shown.Amount(), number.MaxFractionDigits(2)))
	if shown.Unit().Name == "" {
		return amount
	}
	return amount + " " + shown.Unit().String()
}

// RenderShoppingList returns the list grouped by storage location, one
// line per item with its amount right-aligned.
func RenderShoppingList(list shopping.List, conv unit.Convention, opts ...Option) string {
	r := newRenderer(opts)

	var b strings.Builder
	b.WriteString(RenderTitle("Shopping list", r.width))
	b.WriteByte('\n')

	if list.Len() == 0 {
		b.WriteString(noteStyle.Render("  Nothing to buy, the home has it all."))
		b.WriteByte('\n')
		return b.String()
	}

	groups := list.ByStorage()
	for _, st := range storageSections(groups) {
		b.WriteByte('\n')
		b.WriteString(sectionStyle.Render(storageTitle(st)))
		b.WriteByte('\n')
		for _, it := range groups[st] {
			b.WriteString(r.item(it, conv))
			b.WriteByte('\n')
		}
	}

	if n := ignoredCount(list); n > 0 {
		b.WriteByte('\n')
		b.WriteString(warnStyle.Render(fmt.Sprintf("  %d item(s) have stock in units that could not be compared.", n)))
		b.WriteByte('\n')
	}
	return b.String()
}

func (r *renderer) item(it shopping.Item, conv unit.Convention) string {
	name := "  " + it.Ingredient.Name
	amount := r.quantity(it.Quantity, conv)

	var note string
	switch {
	case it.StockIgnored:
		note = " (stock not comparable)"
	case it.Partial:
		note = " (partly in stock)"
	}

	fill := r.width - lipgloss.Width(name) - lipgloss.Width(amount) - lipgloss.Width(note) - 2
	leader := " "
	if fill > 0 {
		leader = " " + strings.Repeat(".", fill) + " "
	}
	return itemStyle.Render(name) + leaderStyle.Render(leader) + amountStyle.Render(amount) + noteStyle.Render(note)
}

// storageSections returns the storage types present in groups, known
// locations first.
func storageSections(groups map[domain.StorageType][]shopping.Item) []domain.StorageType {
	var out []domain.StorageType
	for _, st := range storageOrder {
		if _, ok := groups[st]; ok {
			out = append(out, st)
		}
	}
	var extra []domain.StorageType
	for st := range groups {
		if _, known := storageTitles[st]; !known {
			extra = append(extra, st)
		}
	}
	slices.Sort(extra)
	return append(out, extra...)
}

func storageTitle(st domain.StorageType) string {
	if t, ok := storageTitles[st]; ok {
		return t
	}
	if st == "" {
		return "Elsewhere"
	}
	return strings.ToUpper(string(st[:1])) + string(st[1:])
}

func ignoredCount(list shopping.List) int {
	n := 0
	for _, it := range list.Items {
		if it.StockIgnored {
			n++
		}
	}
	return n
}
