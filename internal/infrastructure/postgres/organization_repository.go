package postgres

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jhoicas/Finanzas-api/internal/domain"
	"github.com/jhoicas/Finanzas-api/internal/domain/entity"
	"github.com/jhoicas/Finanzas-api/internal/domain/repository"
)

// Asegura que OrganizationRepo implementa repository.OrganizationRepository.
var _ repository.OrganizationRepository = (*OrganizationRepo)(nil)

// OrganizationRepo implementación del puerto OrganizationRepository sobre PostgreSQL.
type OrganizationRepo struct {
	db Querier
}

// NewOrganizationRepository construye el adaptador (pool o tx).
func NewOrganizationRepository(db Querier) *OrganizationRepo {
	return &OrganizationRepo{db: db}
}

const organizationColumns = `id, name, email, password_hash, image, created_at, updated_at`

func scanOrganization(row pgx.Row) (*entity.Organization, error) {
	var o entity.Organization
	if err := row.Scan(&o.ID, &o.Name, &o.Email, &o.PasswordHash, &o.Image, &o.CreatedAt, &o.UpdatedAt); err != nil {
		return nil, err
	}
	return &o, nil
}

// Create inserta la organización. Un email ya registrado devuelve ErrOrganizationAlreadyExists.
func (r *OrganizationRepo) Create(ctx context.Context, org *entity.Organization) (*entity.Organization, error) {
	query := `
		INSERT INTO organizations (name, email, password_hash, image)
		VALUES ($1, $2, $3, $4)
		RETURNING ` + organizationColumns
	o, err := scanOrganization(r.db.QueryRow(ctx, query, org.Name, org.Email, org.PasswordHash, org.Image))
	if err != nil {
		if isUniqueViolation(err) {
			return nil, domain.ErrOrganizationAlreadyExists
		}
		return nil, fmt.Errorf("insert organization: %w", err)
	}
	return o, nil
}

// FindByID obtiene una organización por ID.
func (r *OrganizationRepo) FindByID(ctx context.Context, id string) (*entity.Organization, error) {
	query := `SELECT ` + organizationColumns + ` FROM organizations WHERE id = $1`
	o, err := scanOrganization(r.db.QueryRow(ctx, query, id))
	if err != nil {
		if isAbsent(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("get organization: %w", err)
	}
	return o, nil
}

// FindByEmail obtiene una organización por email.
func (r *OrganizationRepo) FindByEmail(ctx context.Context, email string) (*entity.Organization, error) {
	query := `SELECT ` + organizationColumns + ` FROM organizations WHERE email = $1`
	o, err := scanOrganization(r.db.QueryRow(ctx, query, email))
	if err != nil {
		if isAbsent(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("get organization by email: %w", err)
	}
	return o, nil
}

// UpdatePassword reemplaza el hash de contraseña.
func (r *OrganizationRepo) UpdatePassword(ctx context.Context, id, passwordHash string) error {
	cmd, err := r.db.Exec(ctx, `UPDATE organizations SET password_hash = $2, updated_at = now() WHERE id = $1`, id, passwordHash)
	if err != nil {
		return fmt.Errorf("update organization password: %w", err)
	}
	if cmd.RowsAffected() == 0 {
		return domain.ErrOrganizationNotFound
	}
	return nil
}
