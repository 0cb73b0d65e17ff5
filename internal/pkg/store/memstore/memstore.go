// Package memstore is an in-memory store.Store used by `serve --memory` and
// by handler tests. It mirrors the constraints the SQL schema enforces:
// unique category codes, restrict-on-delete for referenced categories and
// foreign keys on inserts.
package memstore

import (
	"context"
	"fmt"
	"sort"
	"strings"
	"sync"
	"time"

	"github.com/ougirez/landscape/internal/domain"
	"github.com/ougirez/landscape/internal/domain/dto"
	"github.com/ougirez/landscape/internal/pkg/constants"
	"github.com/ougirez/landscape/internal/pkg/store"
	"github.com/shopspring/decimal"
)

type factRow struct {
	line           domain.BudgetLine
	contingencyPct *decimal.Decimal
}

type vendorKey struct {
	factID  int64
	partyID int64
}

type Store struct {
	mu sync.RWMutex

	uoms        map[string]domain.UOM
	confidence  map[string]domain.ConfidencePolicy
	categories  map[int64]domain.Category
	categoryUOM map[int64]map[string]struct{}
	categoryPE  map[int64]map[domain.PELevel]struct{}
	budgets     map[int64]domain.BudgetVersion
	facts       map[int64]*factRow
	parties     map[int64]domain.Party
	notes       map[int64]domain.Note
	vendors     map[vendorKey]domain.LineVendorLink

	seq           int64
	effectiveView bool
	now           func() time.Time
}

var _ store.Store = (*Store)(nil)

type Option func(*Store)

// WithoutEffectiveView makes the store behave like a database where the
// effective view was never created.
func WithoutEffectiveView() Option {
	return func(s *Store) { s.effectiveView = false }
}

func WithClock(now func() time.Time) Option {
	return func(s *Store) { s.now = now }
}

func New(opts ...Option) *Store {
	s := &Store{
		uoms:          map[string]domain.UOM{},
		confidence:    map[string]domain.ConfidencePolicy{},
		categories:    map[int64]domain.Category{},
		categoryUOM:   map[int64]map[string]struct{}{},
		categoryPE:    map[int64]map[domain.PELevel]struct{}{},
		budgets:       map[int64]domain.BudgetVersion{},
		facts:         map[int64]*factRow{},
		parties:       map[int64]domain.Party{},
		notes:         map[int64]domain.Note{},
		vendors:       map[vendorKey]domain.LineVendorLink{},
		effectiveView: true,
		now:           time.Now,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

func (s *Store) nextID() int64 {
	s.seq++
	return s.seq
}

func fkErr(format string, args ...interface{}) error {
	return fmt.Errorf("%w: %s", constants.ErrDBForeignKey, fmt.Sprintf(format, args...))
}

// categories

func (s *Store) ListCategories(_ context.Context, opts store.ListCategoriesOpts) ([]*domain.Category, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	selected := make([]*domain.Category, 0, len(s.categories))
	for id, c := range s.categories {
		if opts.ActiveOnly && !c.IsActive {
			continue
		}
		if opts.PELevel != nil {
			if _, ok := s.categoryPE[id][*opts.PELevel]; !ok {
				continue
			}
		}
		c := c
		selected = append(selected, &c)
	}

	sort.Slice(selected, func(i, j int) bool {
		return lessCategory(selected[i], selected[j])
	})

	return selected, nil
}

func lessCategory(a, b *domain.Category) bool {
	if a.Kind != b.Kind {
		return a.Kind < b.Kind
	}
	for _, pair := range [][2]*string{{a.Class, b.Class}, {a.Event, b.Event}, {a.Scope, b.Scope}, {a.Detail, b.Detail}} {
		if c := compareNullsLast(pair[0], pair[1]); c != 0 {
			return c < 0
		}
	}
	return a.ID < b.ID
}

func compareNullsLast(a, b *string) int {
	switch {
	case a == nil && b == nil:
		return 0
	case a == nil:
		return 1
	case b == nil:
		return -1
	default:
		return strings.Compare(*a, *b)
	}
}

func (s *Store) GetCategory(_ context.Context, categoryID int64) (*domain.Category, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	c, ok := s.categories[categoryID]
	if !ok {
		return nil, constants.ErrDBNotFound
	}
	return &c, nil
}

func (s *Store) ListCategoryUOMs(_ context.Context, categoryIDs []int64) ([]*domain.CategoryUOM, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	var selected []*domain.CategoryUOM
	for _, id := range sortedIDs(categoryIDs) {
		for _, code := range sortedKeys(s.categoryUOM[id]) {
			selected = append(selected, &domain.CategoryUOM{CategoryID: id, UOMCode: code})
		}
	}
	return selected, nil
}

func (s *Store) ListCategoryPELevels(_ context.Context, categoryIDs []int64) ([]*domain.CategoryPELevel, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	var selected []*domain.CategoryPELevel
	for _, id := range sortedIDs(categoryIDs) {
		for _, level := range sortedKeys(s.categoryPE[id]) {
			selected = append(selected, &domain.CategoryPELevel{CategoryID: id, PELevel: level})
		}
	}
	return selected, nil
}

func (s *Store) codeTaken(code string, except int64) bool {
	for id, c := range s.categories {
		if id != except && c.Code == code {
			return true
		}
	}
	return false
}

func (s *Store) CreateCategory(_ context.Context, req *dto.CreateCategoryRequest) (int64, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.codeTaken(req.Code, 0) {
		return 0, fmt.Errorf("%w: code %q", constants.ErrDBUniqueViolation, req.Code)
	}
	if req.ParentID != nil {
		if _, ok := s.categories[*req.ParentID]; !ok {
			return 0, fkErr("parent %d", *req.ParentID)
		}
	}

	isActive := true
	if req.IsActive != nil {
		isActive = *req.IsActive
	}

	now := s.now()
	id := s.nextID()
	s.categories[id] = domain.Category{
		ID:        id,
		Code:      req.Code,
		Kind:      req.Kind,
		Class:     req.Class,
		Event:     req.Event,
		Scope:     req.Scope,
		Detail:    req.Detail,
		ParentID:  req.ParentID,
		IsActive:  isActive,
		CreatedAt: now,
		UpdatedAt: now,
	}

	return id, nil
}

func (s *Store) UpsertCategory(_ context.Context, seed *dto.SeedCategory) (int64, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	now := s.now()
	for id, c := range s.categories {
		if c.Code != seed.Code {
			continue
		}
		c.Kind = seed.Kind
		c.Class, c.Event, c.Scope, c.Detail = optional(seed.Class), optional(seed.Event), optional(seed.Scope), optional(seed.Detail)
		c.IsActive = true
		c.UpdatedAt = now
		s.categories[id] = c
		return id, nil
	}

	id := s.nextID()
	s.categories[id] = domain.Category{
		ID:        id,
		Code:      seed.Code,
		Kind:      seed.Kind,
		Class:     optional(seed.Class),
		Event:     optional(seed.Event),
		Scope:     optional(seed.Scope),
		Detail:    optional(seed.Detail),
		IsActive:  true,
		CreatedAt: now,
		UpdatedAt: now,
	}
	return id, nil
}

func (s *Store) UpdateCategory(_ context.Context, categoryID int64, req *dto.UpdateCategoryRequest) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	c, ok := s.categories[categoryID]
	if !ok {
		return constants.ErrDBNotFound
	}
	if req.Code != nil {
		if s.codeTaken(*req.Code, categoryID) {
			return fmt.Errorf("%w: code %q", constants.ErrDBUniqueViolation, *req.Code)
		}
		c.Code = *req.Code
	}
	if req.Kind != nil {
		c.Kind = *req.Kind
	}
	if req.Class != nil {
		c.Class = req.Class
	}
	if req.Event != nil {
		c.Event = req.Event
	}
	if req.Scope != nil {
		c.Scope = req.Scope
	}
	if req.Detail != nil {
		c.Detail = req.Detail
	}
	if req.ParentID != nil {
		if _, ok := s.categories[*req.ParentID]; !ok {
			return fkErr("parent %d", *req.ParentID)
		}
		c.ParentID = req.ParentID
	}
	if req.IsActive != nil {
		c.IsActive = *req.IsActive
	}
	c.UpdatedAt = s.now()
	s.categories[categoryID] = c

	return nil
}

func (s *Store) DeleteCategory(_ context.Context, categoryID int64) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.categories[categoryID]; !ok {
		return constants.ErrDBNotFound
	}
	for factID, f := range s.facts {
		if f.line.CategoryID == categoryID {
			return fkErr("category %d is referenced by fact %d", categoryID, factID)
		}
	}

	delete(s.categories, categoryID)
	delete(s.categoryUOM, categoryID)
	delete(s.categoryPE, categoryID)
	for id, c := range s.categories {
		if c.ParentID != nil && *c.ParentID == categoryID {
			c.ParentID = nil
			s.categories[id] = c
		}
	}

	return nil
}

func (s *Store) AddCategoryUOMs(_ context.Context, categoryID int64, uomCodes []string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.categories[categoryID]; !ok {
		return fkErr("category %d", categoryID)
	}
	for _, code := range uomCodes {
		if _, ok := s.uoms[code]; !ok {
			return fkErr("uom %q", code)
		}
	}

	set, ok := s.categoryUOM[categoryID]
	if !ok {
		set = map[string]struct{}{}
		s.categoryUOM[categoryID] = set
	}
	for _, code := range uomCodes {
		set[code] = struct{}{}
	}

	return nil
}

func (s *Store) AddCategoryPELevels(_ context.Context, categoryID int64, levels []domain.PELevel) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.categories[categoryID]; !ok {
		return fkErr("category %d", categoryID)
	}
	for _, level := range levels {
		if !level.Valid() {
			return fmt.Errorf("%w: pe_level %q", constants.ErrDBCheckViolation, level)
		}
	}

	set, ok := s.categoryPE[categoryID]
	if !ok {
		set = map[domain.PELevel]struct{}{}
		s.categoryPE[categoryID] = set
	}
	for _, level := range levels {
		set[level] = struct{}{}
	}

	return nil
}

func (s *Store) ClearCategoryUOMs(_ context.Context, categoryID int64) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	delete(s.categoryUOM, categoryID)
	return nil
}

func (s *Store) ClearCategoryPELevels(_ context.Context, categoryID int64) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	delete(s.categoryPE, categoryID)
	return nil
}

func optional(v string) *string {
	if v == "" {
		return nil
	}
	return &v
}

func sortedIDs(ids []int64) []int64 {
	out := append([]int64(nil), ids...)
	sort.Slice(out, func(i, j int) bool { return out[i] < out[j] })
	return out
}

func sortedKeys[K ~string](m map[K]struct{}) []K {
	keys := make([]K, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Slice(keys, func(i, j int) bool { return keys[i] < keys[j] })
	return keys
}
