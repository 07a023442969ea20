package postgres

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jhoicas/Finanzas-api/internal/domain/entity"
	"github.com/jhoicas/Finanzas-api/internal/domain/repository"
)

var _ repository.WalletRepository = (*WalletRepo)(nil)

// WalletRepo billeteras sobre PostgreSQL. Todas las consultas filtran por organization_id.
type WalletRepo struct {
	db Querier
}

func NewWalletRepository(db Querier) *WalletRepo {
	return &WalletRepo{db: db}
}

const walletColumns = `id, organization_id, name, balance, created_at, updated_at`

func scanWallet(row pgx.Row) (*entity.Wallet, error) {
	var w entity.Wallet
	if err := row.Scan(&w.ID, &w.OrganizationID, &w.Name, &w.Balance, &w.CreatedAt, &w.UpdatedAt); err != nil {
		return nil, err
	}
	return &w, nil
}

func (r *WalletRepo) Create(ctx context.Context, w *entity.Wallet) (*entity.Wallet, error) {
	query := `
		INSERT INTO wallets (organization_id, name, balance)
		VALUES ($1, $2, $3)
		RETURNING ` + walletColumns
	out, err := scanWallet(r.db.QueryRow(ctx, query, w.OrganizationID, w.Name, w.Balance))
	if err != nil {
		return nil, fmt.Errorf("insert wallet: %w", err)
	}
	return out, nil
}

func (r *WalletRepo) FindByID(ctx context.Context, organizationID, id string) (*entity.Wallet, error) {
	query := `SELECT ` + walletColumns + ` FROM wallets WHERE organization_id = $1 AND id = $2`
	out, err := scanWallet(r.db.QueryRow(ctx, query, organizationID, id))
	if err != nil {
		if isAbsent(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("get wallet: %w", err)
	}
	return out, nil
}

func (r *WalletRepo) FindByOrganizationID(ctx context.Context, organizationID string) ([]*entity.Wallet, error) {
	query := `SELECT ` + walletColumns + ` FROM wallets WHERE organization_id = $1 ORDER BY created_at`
	rows, err := r.db.Query(ctx, query, organizationID)
	if err != nil {
		return nil, fmt.Errorf("list wallets: %w", err)
	}
	defer rows.Close()

	list := make([]*entity.Wallet, 0)
	for rows.Next() {
		w, err := scanWallet(rows)
		if err != nil {
			return nil, fmt.Errorf("scan wallet: %w", err)
		}
		list = append(list, w)
	}
	return list, rows.Err()
}

// Update aplica solo los campos no nil del patch. Devuelve (nil, nil) si la fila no existe.
func (r *WalletRepo) Update(ctx context.Context, organizationID, id string, p entity.WalletPatch) (*entity.Wallet, error) {
	query := `
		UPDATE wallets SET
			name = COALESCE($3, name),
			balance = COALESCE($4, balance),
			updated_at = now()
		WHERE organization_id = $1 AND id = $2
		RETURNING ` + walletColumns
	out, err := scanWallet(r.db.QueryRow(ctx, query, organizationID, id, p.Name, p.Balance))
	if err != nil {
		if isAbsent(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("update wallet: %w", err)
	}
	return out, nil
}

func (r *WalletRepo) Delete(ctx context.Context, organizationID, id string) (*entity.Wallet, error) {
	query := `DELETE FROM wallets WHERE organization_id = $1 AND id = $2 RETURNING ` + walletColumns
	out, err := scanWallet(r.db.QueryRow(ctx, query, organizationID, id))
	if err != nil {
		if isAbsent(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("delete wallet: %w", err)
	}
	return out, nil
}
