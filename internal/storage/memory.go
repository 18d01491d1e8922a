// Package storage provides menu store implementations.
package storage

import (
	"context"
	"sort"
	"sync"

	"github.com/google/uuid"

	"github.com/hammamikhairi/menurandi/internal/domain"
	"github.com/hammamikhairi/menurandi/internal/logger"
)

// Compile-time interface check.
var _ domain.MenuStore = (*MemoryStore)(nil)

// MemoryStore is an in-memory menu store. Safe for concurrent access.
// Menus are copied on the way in and out so callers never share state
// with the store.
type MemoryStore struct {
	mu    sync.RWMutex
	menus map[string]*domain.Menu
	log   *logger.Logger
}

// NewMemoryStore creates an empty in-memory menu store.
func NewMemoryStore(log *logger.Logger) *MemoryStore {
	return &MemoryStore{
		menus: make(map[string]*domain.Menu),
		log:   log,
	}
}

// Save stores a menu, overwriting any menu with the same ID. A menu without
// an ID is assigned a new one.
func (s *MemoryStore) Save(ctx context.Context, menu *domain.Menu) error {
	if menu.ID == "" {
		menu.ID = uuid.NewString()
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	s.log.Debug("saving menu %s (days=%d)", menu.ID, len(menu.DailyMenus))
	s.menus[menu.ID] = menu.Clone()
	return nil
}

// Load retrieves a copy of a menu by ID.
func (s *MemoryStore) Load(ctx context.Context, id string) (*domain.Menu, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	menu, ok := s.menus[id]
	if !ok {
		s.log.Debug("menu not found: %s", id)
		return nil, domain.ErrNotFound
	}
	return menu.Clone(), nil
}

// Delete removes a menu by ID.
func (s *MemoryStore) Delete(ctx context.Context, id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.menus[id]; !ok {
		return domain.ErrNotFound
	}
	delete(s.menus, id)
	s.log.Debug("deleted menu %s", id)
	return nil
}

// List returns copies of all menus, ordered by start date then ID. Empty
// menus come first.
func (s *MemoryStore) List(ctx context.Context) ([]*domain.Menu, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]*domain.Menu, 0, len(s.menus))
	for _, m := range s.menus {
		out = append(out, m.Clone())
	}
	sort.Slice(out, func(i, j int) bool {
		si, _ := out[i].StartDate()
		sj, _ := out[j].StartDate()
		if c := si.Compare(sj); c != 0 {
			return c < 0
		}
		return out[i].ID < out[j].ID
	})
	s.log.Debug("listing menus, count=%d", len(out))
	return out, nil
}
