package postgres

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jhoicas/Finanzas-api/internal/domain"
	"github.com/jhoicas/Finanzas-api/internal/domain/entity"
	"github.com/jhoicas/Finanzas-api/internal/domain/repository"
)

// Asegura que CompanyRepo implementa repository.CompanyRepository.
var _ repository.CompanyRepository = (*CompanyRepo)(nil)

// CompanyRepo instituciones financieras de la organización sobre PostgreSQL.
type CompanyRepo struct {
	db Querier
}

// NewCompanyRepository construye el adaptador de persistencia para instituciones.
func NewCompanyRepository(db Querier) *CompanyRepo {
	return &CompanyRepo{db: db}
}

const companyColumns = `id, organization_id, name, code, type, created_at, updated_at`

func scanCompany(row pgx.Row) (*entity.Company, error) {
	var c entity.Company
	if err := row.Scan(&c.ID, &c.OrganizationID, &c.Name, &c.Code, &c.Type, &c.CreatedAt, &c.UpdatedAt); err != nil {
		return nil, err
	}
	return &c, nil
}

// Create persiste una institución. Nombre repetido en la organización devuelve ErrDuplicate.
func (r *CompanyRepo) Create(ctx context.Context, c *entity.Company) (*entity.Company, error) {
	query := `
		INSERT INTO companies (organization_id, name, code, type)
		VALUES ($1, $2, $3, $4)
		RETURNING ` + companyColumns
	out, err := scanCompany(r.db.QueryRow(ctx, query, c.OrganizationID, c.Name, c.Code, c.Type))
	if err != nil {
		if isUniqueViolation(err) {
			return nil, domain.ErrDuplicate
		}
		return nil, fmt.Errorf("insert company: %w", err)
	}
	return out, nil
}

// CreateMany inserta en batch; los nombres ya registrados se omiten.
func (r *CompanyRepo) CreateMany(ctx context.Context, items []*entity.Company) (repository.BatchResult, error) {
	b := &pgx.Batch{}
	for _, c := range items {
		b.Queue(`
			INSERT INTO companies (organization_id, name, code, type)
			VALUES ($1, $2, $3, $4)
			ON CONFLICT (organization_id, name) DO NOTHING`,
			c.OrganizationID, c.Name, c.Code, c.Type)
	}
	n, err := execBatch(ctx, r.db, b, "companies")
	return repository.BatchResult{Count: n}, err
}

// FindByOrganizationID lista instituciones ordenadas por nombre.
func (r *CompanyRepo) FindByOrganizationID(ctx context.Context, organizationID string) ([]*entity.Company, error) {
	query := `SELECT ` + companyColumns + ` FROM companies WHERE organization_id = $1 ORDER BY name`
	rows, err := r.db.Query(ctx, query, organizationID)
	if err != nil {
		return nil, fmt.Errorf("list companies: %w", err)
	}
	defer rows.Close()

	list := make([]*entity.Company, 0)
	for rows.Next() {
		c, err := scanCompany(rows)
		if err != nil {
			return nil, fmt.Errorf("scan company: %w", err)
		}
		list = append(list, c)
	}
	return list, rows.Err()
}
