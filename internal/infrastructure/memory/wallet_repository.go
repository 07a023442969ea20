package memory

import (
	"context"

	"github.com/jhoicas/Finanzas-api/internal/domain/entity"
)

// WalletRepository implementa repository.WalletRepository en memoria.
type WalletRepository struct {
	t *table[entity.Wallet]
}

func NewWalletRepository() *WalletRepository {
	return &WalletRepository{t: newTable[entity.Wallet]()}
}

func (r *WalletRepository) Create(ctx context.Context, w *entity.Wallet) (*entity.Wallet, error) {
	r.t.mu.Lock()
	defer r.t.mu.Unlock()
	row := *w
	row.ID = newID()
	row.CreatedAt = now()
	row.UpdatedAt = row.CreatedAt
	r.t.put(row.ID, &row)
	return r.t.get(row.ID), nil
}

// FindByID solo encuentra la billetera si pertenece a organizationID.
func (r *WalletRepository) FindByID(ctx context.Context, organizationID, id string) (*entity.Wallet, error) {
	r.t.mu.RLock()
	defer r.t.mu.RUnlock()
	return r.owned(organizationID, id), nil
}

func (r *WalletRepository) FindByOrganizationID(ctx context.Context, organizationID string) ([]*entity.Wallet, error) {
	r.t.mu.RLock()
	defer r.t.mu.RUnlock()
	return r.t.filter(func(w *entity.Wallet) bool { return w.OrganizationID == organizationID }), nil
}

func (r *WalletRepository) Update(ctx context.Context, organizationID, id string, patch entity.WalletPatch) (*entity.Wallet, error) {
	r.t.mu.Lock()
	defer r.t.mu.Unlock()
	row, ok := r.t.rows[id]
	if !ok || row.OrganizationID != organizationID {
		return nil, nil
	}
	if patch.Name != nil {
		row.Name = *patch.Name
	}
	if patch.Balance != nil {
		row.Balance = *patch.Balance
	}
	row.UpdatedAt = now()
	return r.t.get(id), nil
}

func (r *WalletRepository) Delete(ctx context.Context, organizationID, id string) (*entity.Wallet, error) {
	r.t.mu.Lock()
	defer r.t.mu.Unlock()
	row := r.owned(organizationID, id)
	if row == nil {
		return nil, nil
	}
	r.t.remove(id)
	return row, nil
}

func (r *WalletRepository) owned(organizationID, id string) *entity.Wallet {
	row := r.t.get(id)
	if row == nil || row.OrganizationID != organizationID {
		return nil
	}
	return row
}
