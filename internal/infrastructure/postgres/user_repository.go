package postgres

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jhoicas/Finanzas-api/internal/domain"
	"github.com/jhoicas/Finanzas-api/internal/domain/entity"
	"github.com/jhoicas/Finanzas-api/internal/domain/repository"
)

var _ repository.UserRepository = (*UserRepo)(nil)

// UserRepo usuarios de una organización sobre PostgreSQL.
type UserRepo struct {
	db Querier
}

// NewUserRepository construye el adaptador de persistencia para usuarios.
func NewUserRepository(db Querier) *UserRepo {
	return &UserRepo{db: db}
}

const userColumns = `id, organization_id, name, email, role, created_at, updated_at`

func scanUser(row pgx.Row) (*entity.User, error) {
	var u entity.User
	if err := row.Scan(&u.ID, &u.OrganizationID, &u.Name, &u.Email, &u.Role, &u.CreatedAt, &u.UpdatedAt); err != nil {
		return nil, err
	}
	return &u, nil
}

// Create persiste el usuario. Email repetido en la organización devuelve ErrDuplicate.
func (r *UserRepo) Create(ctx context.Context, u *entity.User) (*entity.User, error) {
	query := `
		INSERT INTO users (organization_id, name, email, role)
		VALUES ($1, $2, $3, $4)
		RETURNING ` + userColumns
	out, err := scanUser(r.db.QueryRow(ctx, query, u.OrganizationID, u.Name, u.Email, u.Role))
	if err != nil {
		if isUniqueViolation(err) {
			return nil, domain.ErrDuplicate
		}
		return nil, fmt.Errorf("insert user: %w", err)
	}
	return out, nil
}

// FindByOrganizationID lista usuarios de la organización.
func (r *UserRepo) FindByOrganizationID(ctx context.Context, organizationID string) ([]*entity.User, error) {
	query := `SELECT ` + userColumns + ` FROM users WHERE organization_id = $1 ORDER BY created_at`
	rows, err := r.db.Query(ctx, query, organizationID)
	if err != nil {
		return nil, fmt.Errorf("list users: %w", err)
	}
	defer rows.Close()

	list := make([]*entity.User, 0)
	for rows.Next() {
		u, err := scanUser(rows)
		if err != nil {
			return nil, fmt.Errorf("scan user: %w", err)
		}
		list = append(list, u)
	}
	return list, rows.Err()
}
