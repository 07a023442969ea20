package memory

import (
	"context"

	"github.com/jhoicas/Finanzas-api/internal/domain"
	"github.com/jhoicas/Finanzas-api/internal/domain/entity"
	"github.com/jhoicas/Finanzas-api/internal/domain/repository"
)

// CompanyRepository implementa repository.CompanyRepository en memoria. Único por (organización, nombre).
type CompanyRepository struct {
	t *table[entity.Company]
}

func NewCompanyRepository() *CompanyRepository {
	return &CompanyRepository{t: newTable[entity.Company]()}
}

func (r *CompanyRepository) Create(ctx context.Context, c *entity.Company) (*entity.Company, error) {
	r.t.mu.Lock()
	defer r.t.mu.Unlock()
	row, ok := r.insert(c)
	if !ok {
		return nil, domain.ErrDuplicate
	}
	return row, nil
}

func (r *CompanyRepository) CreateMany(ctx context.Context, items []*entity.Company) (repository.BatchResult, error) {
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

func (r *CompanyRepository) insert(c *entity.Company) (*entity.Company, bool) {
	if r.t.exists(func(x *entity.Company) bool {
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

func (r *CompanyRepository) FindByOrganizationID(ctx context.Context, organizationID string) ([]*entity.Company, error) {
	r.t.mu.RLock()
	defer r.t.mu.RUnlock()
	return r.t.filter(func(c *entity.Company) bool { return c.OrganizationID == organizationID }), nil
}
