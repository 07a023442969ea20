package postgres

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jhoicas/Finanzas-api/internal/domain/entity"
	"github.com/jhoicas/Finanzas-api/internal/domain/repository"
)

var (
	_ repository.InvestmentRepository = (*InvestmentRepo)(nil)
	_ repository.AccessLogRepository  = (*AccessLogRepo)(nil)
	_ repository.SuggestionRepository = (*SuggestionRepo)(nil)
)

// InvestmentRepo inversiones sobre PostgreSQL.
type InvestmentRepo struct {
	db Querier
}

func NewInvestmentRepository(db Querier) *InvestmentRepo {
	return &InvestmentRepo{db: db}
}

const investmentColumns = `id, organization_id, name, type, amount, company_id, created_at`

func scanInvestment(row pgx.Row) (*entity.Investment, error) {
	var i entity.Investment
	if err := row.Scan(&i.ID, &i.OrganizationID, &i.Name, &i.Type, &i.Amount, &i.CompanyID, &i.CreatedAt); err != nil {
		return nil, err
	}
	return &i, nil
}

func (r *InvestmentRepo) Create(ctx context.Context, i *entity.Investment) (*entity.Investment, error) {
	query := `
		INSERT INTO investments (organization_id, name, type, amount, company_id)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING ` + investmentColumns
	out, err := scanInvestment(r.db.QueryRow(ctx, query, i.OrganizationID, i.Name, i.Type, i.Amount, i.CompanyID))
	if err != nil {
		return nil, fmt.Errorf("insert investment: %w", err)
	}
	return out, nil
}

func (r *InvestmentRepo) FindByOrganizationID(ctx context.Context, organizationID string) ([]*entity.Investment, error) {
	query := `SELECT ` + investmentColumns + ` FROM investments WHERE organization_id = $1 ORDER BY created_at`
	rows, err := r.db.Query(ctx, query, organizationID)
	if err != nil {
		return nil, fmt.Errorf("list investments: %w", err)
	}
	defer rows.Close()

	list := make([]*entity.Investment, 0)
	for rows.Next() {
		i, err := scanInvestment(rows)
		if err != nil {
			return nil, fmt.Errorf("scan investment: %w", err)
		}
		list = append(list, i)
	}
	return list, rows.Err()
}

// AccessLogRepo registro de accesos sobre PostgreSQL.
type AccessLogRepo struct {
	db Querier
}

func NewAccessLogRepository(db Querier) *AccessLogRepo {
	return &AccessLogRepo{db: db}
}

const accessLogColumns = `id, organization_id, action, ip, user_agent, created_at`

func scanAccessLog(row pgx.Row) (*entity.AccessLog, error) {
	var l entity.AccessLog
	if err := row.Scan(&l.ID, &l.OrganizationID, &l.Action, &l.IP, &l.UserAgent, &l.CreatedAt); err != nil {
		return nil, err
	}
	return &l, nil
}

func (r *AccessLogRepo) Create(ctx context.Context, l *entity.AccessLog) (*entity.AccessLog, error) {
	query := `
		INSERT INTO access_logs (organization_id, action, ip, user_agent)
		VALUES ($1, $2, $3, $4)
		RETURNING ` + accessLogColumns
	out, err := scanAccessLog(r.db.QueryRow(ctx, query, l.OrganizationID, l.Action, l.IP, l.UserAgent))
	if err != nil {
		return nil, fmt.Errorf("insert access log: %w", err)
	}
	return out, nil
}

// FindByOrganizationID más reciente primero.
func (r *AccessLogRepo) FindByOrganizationID(ctx context.Context, organizationID string) ([]*entity.AccessLog, error) {
	query := `SELECT ` + accessLogColumns + ` FROM access_logs WHERE organization_id = $1 ORDER BY created_at DESC`
	rows, err := r.db.Query(ctx, query, organizationID)
	if err != nil {
		return nil, fmt.Errorf("list access logs: %w", err)
	}
	defer rows.Close()

	list := make([]*entity.AccessLog, 0)
	for rows.Next() {
		l, err := scanAccessLog(rows)
		if err != nil {
			return nil, fmt.Errorf("scan access log: %w", err)
		}
		list = append(list, l)
	}
	return list, rows.Err()
}

// SuggestionRepo sugerencias sobre PostgreSQL.
type SuggestionRepo struct {
	db Querier
}

func NewSuggestionRepository(db Querier) *SuggestionRepo {
	return &SuggestionRepo{db: db}
}

func (r *SuggestionRepo) Create(ctx context.Context, s *entity.Suggestion) (*entity.Suggestion, error) {
	query := `
		INSERT INTO suggestions (organization_id, title, description)
		VALUES ($1, $2, $3)
		RETURNING id, organization_id, title, description, created_at`
	var out entity.Suggestion
	err := r.db.QueryRow(ctx, query, s.OrganizationID, s.Title, s.Description).Scan(
		&out.ID, &out.OrganizationID, &out.Title, &out.Description, &out.CreatedAt,
	)
	if err != nil {
		return nil, fmt.Errorf("insert suggestion: %w", err)
	}
	return &out, nil
}

func (r *SuggestionRepo) FindByOrganizationID(ctx context.Context, organizationID string) ([]*entity.Suggestion, error) {
	query := `
		SELECT id, organization_id, title, description, created_at
		FROM suggestions WHERE organization_id = $1 ORDER BY created_at`
	rows, err := r.db.Query(ctx, query, organizationID)
	if err != nil {
		return nil, fmt.Errorf("list suggestions: %w", err)
	}
	defer rows.Close()

	list := make([]*entity.Suggestion, 0)
	for rows.Next() {
		var s entity.Suggestion
		if err := rows.Scan(&s.ID, &s.OrganizationID, &s.Title, &s.Description, &s.CreatedAt); err != nil {
			return nil, fmt.Errorf("scan suggestion: %w", err)
		}
		list = append(list, &s)
	}
	return list, rows.Err()
}
