package memory

import (
	"context"
	"sort"

	"github.com/jhoicas/Finanzas-api/internal/domain"
	"github.com/jhoicas/Finanzas-api/internal/domain/entity"
	"github.com/jhoicas/Finanzas-api/internal/domain/repository"
)

// CategoryRepository implementa repository.CategoryRepository en memoria. Único por (organización, nombre).
type CategoryRepository struct {
	t *table[entity.Category]
}

func NewCategoryRepository() *CategoryRepository {
	return &CategoryRepository{t: newTable[entity.Category]()}
}

func (r *CategoryRepository) Create(ctx context.Context, c *entity.Category) (*entity.Category, error) {
	r.t.mu.Lock()
	defer r.t.mu.Unlock()
	row, ok := r.insert(c)
	if !ok {
		return nil, domain.ErrDuplicate
	}
	return row, nil
}

// CreateMany omite duplicados, incluidos los repetidos dentro del mismo lote.
func (r *CategoryRepository) CreateMany(ctx context.Context, items []*entity.Category) (repository.BatchResult, error) {
	r.t.mu.Lock()
	defer r.t.mu.Unlock()
	var res repository.BatchResult
	for _, c := range items {
		if _, ok := r.insert(c); ok {
			res.Count++
		}
	}
	return res, nil
}

func (r *CategoryRepository) insert(c *entity.Category) (*entity.Category, bool) {
	if r.t.exists(func(x *entity.Category) bool {
		return x.OrganizationID == c.OrganizationID && x.Name == c.Name
	}) {
		return nil, false
	}
	row := *c
	row.ID = newID()
	row.CreatedAt = now()
	row.UpdatedAt = row.CreatedAt
	r.t.put(row.ID, &row)
	return r.t.get(row.ID), true
}

func (r *CategoryRepository) FindByID(ctx context.Context, organizationID, id string) (*entity.Category, error) {
	r.t.mu.RLock()
	defer r.t.mu.RUnlock()
	row := r.t.get(id)
	if row == nil || row.OrganizationID != organizationID {
		return nil, nil
	}
	return row, nil
}

func (r *CategoryRepository) FindByOrganizationID(ctx context.Context, organizationID string) ([]*entity.Category, error) {
	r.t.mu.RLock()
	defer r.t.mu.RUnlock()
	return r.t.filter(func(c *entity.Category) bool { return c.OrganizationID == organizationID }), nil
}

// SubCategoryRepository implementa repository.SubCategoryRepository en memoria. Único por (categoría, nombre).
type SubCategoryRepository struct {
	t *table[entity.SubCategory]
}

func NewSubCategoryRepository() *SubCategoryRepository {
	return &SubCategoryRepository{t: newTable[entity.SubCategory]()}
}

func (r *SubCategoryRepository) Create(ctx context.Context, s *entity.SubCategory) (*entity.SubCategory, error) {
	r.t.mu.Lock()
	defer r.t.mu.Unlock()
	row, ok := r.insert(s)
	if !ok {
		return nil, domain.ErrDuplicate
	}
	return row, nil
}

func (r *SubCategoryRepository) CreateMany(ctx context.Context, items []*entity.SubCategory) (repository.BatchResult, error) {
	r.t.mu.Lock()
	defer r.t.mu.Unlock()
	var res repository.BatchResult
	for _, s := range items {
		if _, ok := r.insert(s); ok {
			res.Count++
		}
	}
	return res, nil
}

func (r *SubCategoryRepository) insert(s *entity.SubCategory) (*entity.SubCategory, bool) {
	if r.t.exists(func(x *entity.SubCategory) bool {
		return x.CategoryID == s.CategoryID && x.Name == s.Name
	}) {
		return nil, false
	}
	row := *s
	row.ID = newID()
	row.CreatedAt = now()
	row.UpdatedAt = row.CreatedAt
	r.t.put(row.ID, &row)
	return r.t.get(row.ID), true
}

func (r *SubCategoryRepository) FindByCategoryID(ctx context.Context, organizationID, categoryID string) ([]*entity.SubCategory, error) {
	r.t.mu.RLock()
	defer r.t.mu.RUnlock()
	return r.t.filter(func(s *entity.SubCategory) bool {
		return s.OrganizationID == organizationID && s.CategoryID == categoryID
	}), nil
}

// CategoryCreditCardRepository catálogo global de tarjetas; nombre único.
type CategoryCreditCardRepository struct {
	t *table[entity.CategoryCreditCard]
}

func NewCategoryCreditCardRepository() *CategoryCreditCardRepository {
	return &CategoryCreditCardRepository{t: newTable[entity.CategoryCreditCard]()}
}

func (r *CategoryCreditCardRepository) CreateMany(ctx context.Context, items []*entity.CategoryCreditCard) (repository.BatchResult, error) {
	r.t.mu.Lock()
	defer r.t.mu.Unlock()
	var res repository.BatchResult
	for _, c := range items {
		if r.t.exists(func(x *entity.CategoryCreditCard) bool { return x.Name == c.Name }) {
			continue
		}
		row := *c
		row.ID = newID()
		row.CreatedAt = now()
		r.t.put(row.ID, &row)
		res.Count++
	}
	return res, nil
}

// SearchMany devuelve el catálogo ordenado por nombre.
func (r *CategoryCreditCardRepository) SearchMany(ctx context.Context) ([]*entity.CategoryCreditCard, error) {
	r.t.mu.RLock()
	defer r.t.mu.RUnlock()
	out := r.t.filter(func(*entity.CategoryCreditCard) bool { return true })
	sort.SliceStable(out, func(i, j int) bool { return out[i].Name < out[j].Name })
	return out, nil
}
