package domain

import "context"

// RecipeSource provides recipes. Implementations can be in-memory (hardcoded),
// file-based or API-backed.
type RecipeSource interface {
	List(ctx context.Context) ([]RecipeSummary, error)
	Get(ctx context.Context, id string) (*Recipe, error)
	Search(ctx context.Context, query string) ([]RecipeSummary, error)
}

// MenuStore keeps planned menus. Implementations return copies, so callers
// may modify a loaded menu and Save it back.
type MenuStore interface {
	Save(ctx context.Context, menu *Menu) error
	Load(ctx context.Context, id string) (*Menu, error)
	Delete(ctx context.Context, id string) error
	List(ctx context.Context) ([]*Menu, error)
}
