package memory

import (
	"context"

	"github.com/jhoicas/Finanzas-api/internal/domain/entity"
)

// BillRepository implementa repository.BillRepository en memoria.
type BillRepository struct {
	t *table[entity.Bill]
}

func NewBillRepository() *BillRepository {
	return &BillRepository{t: newTable[entity.Bill]()}
}

func (r *BillRepository) Create(ctx context.Context, b *entity.Bill) (*entity.Bill, error) {
	r.t.mu.Lock()
	defer r.t.mu.Unlock()
	row := *b
	row.ID = newID()
	row.CreatedAt = now()
	row.UpdatedAt = row.CreatedAt
	r.t.put(row.ID, &row)
	return r.t.get(row.ID), nil
}

func (r *BillRepository) FindByID(ctx context.Context, organizationID, id string) (*entity.Bill, error) {
	r.t.mu.RLock()
	defer r.t.mu.RUnlock()
	row := r.t.get(id)
	if row == nil || row.OrganizationID != organizationID {
		return nil, nil
	}
	return row, nil
}

func (r *BillRepository) FindByOrganizationID(ctx context.Context, organizationID string) ([]*entity.Bill, error) {
	r.t.mu.RLock()
	defer r.t.mu.RUnlock()
	return r.t.filter(func(b *entity.Bill) bool { return b.OrganizationID == organizationID }), nil
}

func (r *BillRepository) UpdatePaid(ctx context.Context, organizationID, id string, paid bool) (*entity.Bill, error) {
	r.t.mu.Lock()
	defer r.t.mu.Unlock()
	row, ok := r.t.rows[id]
	if !ok || row.OrganizationID != organizationID {
		return nil, nil
	}
	row.Paid = paid
	row.UpdatedAt = now()
	return r.t.get(id), nil
}

// Delete es idempotente: borrar una cuenta inexistente no es error en el adaptador.
func (r *BillRepository) Delete(ctx context.Context, organizationID, id string) error {
	r.t.mu.Lock()
	defer r.t.mu.Unlock()
	if row, ok := r.t.rows[id]; ok && row.OrganizationID == organizationID {
		r.t.remove(id)
	}
	return nil
}
