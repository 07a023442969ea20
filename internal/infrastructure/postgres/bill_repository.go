package postgres

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jhoicas/Finanzas-api/internal/domain/entity"
	"github.com/jhoicas/Finanzas-api/internal/domain/repository"
)

var _ repository.BillRepository = (*BillRepo)(nil)

// BillRepo cuentas por pagar sobre PostgreSQL.
type BillRepo struct {
	db Querier
}

func NewBillRepository(db Querier) *BillRepo {
	return &BillRepo{db: db}
}

const billColumns = `id, organization_id, description, amount, due_date, paid, category_id, wallet_id, created_at, updated_at`

func scanBill(row pgx.Row) (*entity.Bill, error) {
	var b entity.Bill
	if err := row.Scan(&b.ID, &b.OrganizationID, &b.Description, &b.Amount, &b.DueDate, &b.Paid,
		&b.CategoryID, &b.WalletID, &b.CreatedAt, &b.UpdatedAt); err != nil {
		return nil, err
	}
	return &b, nil
}

func (r *BillRepo) Create(ctx context.Context, b *entity.Bill) (*entity.Bill, error) {
	query := `
		INSERT INTO bills (organization_id, description, amount, due_date, paid, category_id, wallet_id)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
		RETURNING ` + billColumns
	out, err := scanBill(r.db.QueryRow(ctx, query,
		b.OrganizationID, b.Description, b.Amount, b.DueDate, b.Paid, b.CategoryID, b.WalletID,
	))
	if err != nil {
		return nil, fmt.Errorf("insert bill: %w", err)
	}
	return out, nil
}

func (r *BillRepo) FindByID(ctx context.Context, organizationID, id string) (*entity.Bill, error) {
	query := `SELECT ` + billColumns + ` FROM bills WHERE organization_id = $1 AND id = $2`
	out, err := scanBill(r.db.QueryRow(ctx, query, organizationID, id))
	if err != nil {
		if isAbsent(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("get bill: %w", err)
	}
	return out, nil
}

func (r *BillRepo) FindByOrganizationID(ctx context.Context, organizationID string) ([]*entity.Bill, error) {
	query := `SELECT ` + billColumns + ` FROM bills WHERE organization_id = $1 ORDER BY due_date, created_at`
	rows, err := r.db.Query(ctx, query, organizationID)
	if err != nil {
		return nil, fmt.Errorf("list bills: %w", err)
	}
	defer rows.Close()

	list := make([]*entity.Bill, 0)
	for rows.Next() {
		b, err := scanBill(rows)
		if err != nil {
			return nil, fmt.Errorf("scan bill: %w", err)
		}
		list = append(list, b)
	}
	return list, rows.Err()
}

func (r *BillRepo) UpdatePaid(ctx context.Context, organizationID, id string, paid bool) (*entity.Bill, error) {
	query := `
		UPDATE bills SET paid = $3, updated_at = now()
		WHERE organization_id = $1 AND id = $2
		RETURNING ` + billColumns
	out, err := scanBill(r.db.QueryRow(ctx, query, organizationID, id, paid))
	if err != nil {
		if isAbsent(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("update bill paid: %w", err)
	}
	return out, nil
}

func (r *BillRepo) Delete(ctx context.Context, organizationID, id string) error {
	if _, err := r.db.Exec(ctx, `DELETE FROM bills WHERE organization_id = $1 AND id = $2`, organizationID, id); err != nil && !isMalformedID(err) {
		return fmt.Errorf("delete bill: %w", err)
	}
	return nil
}
