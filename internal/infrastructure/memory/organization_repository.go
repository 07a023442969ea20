package memory

import (
	"context"

	"github.com/jhoicas/Finanzas-api/internal/domain"
	"github.com/jhoicas/Finanzas-api/internal/domain/entity"
)

// OrganizationRepository implementa repository.OrganizationRepository en memoria.
type OrganizationRepository struct {
	t *table[entity.Organization]
}

// NewOrganizationRepository crea el repositorio vacío.
func NewOrganizationRepository() *OrganizationRepository {
	return &OrganizationRepository{t: newTable[entity.Organization]()}
}

// Create asigna id y timestamps. Email repetido devuelve ErrOrganizationAlreadyExists.
func (r *OrganizationRepository) Create(ctx context.Context, org *entity.Organization) (*entity.Organization, error) {
	r.t.mu.Lock()
	defer r.t.mu.Unlock()
	if r.t.exists(func(o *entity.Organization) bool { return o.Email == org.Email }) {
		return nil, domain.ErrOrganizationAlreadyExists
	}
	row := *org
	row.ID = newID()
	row.CreatedAt = now()
	row.UpdatedAt = row.CreatedAt
	r.t.put(row.ID, &row)
	return r.t.get(row.ID), nil
}

func (r *OrganizationRepository) FindByID(ctx context.Context, id string) (*entity.Organization, error) {
	r.t.mu.RLock()
	defer r.t.mu.RUnlock()
	return r.t.get(id), nil
}

func (r *OrganizationRepository) FindByEmail(ctx context.Context, email string) (*entity.Organization, error) {
	r.t.mu.RLock()
	defer r.t.mu.RUnlock()
	found := r.t.filter(func(o *entity.Organization) bool { return o.Email == email })
	if len(found) == 0 {
		return nil, nil
	}
	return found[0], nil
}

func (r *OrganizationRepository) UpdatePassword(ctx context.Context, id, passwordHash string) error {
	r.t.mu.Lock()
	defer r.t.mu.Unlock()
	row, ok := r.t.rows[id]
	if !ok {
		return domain.ErrOrganizationNotFound
	}
	row.PasswordHash = passwordHash
	row.UpdatedAt = now()
	return nil
}
