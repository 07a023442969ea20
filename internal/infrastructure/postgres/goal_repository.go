package postgres

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jhoicas/Finanzas-api/internal/domain/entity"
	"github.com/jhoicas/Finanzas-api/internal/domain/repository"
)

var _ repository.GoalRepository = (*GoalRepo)(nil)

// GoalRepo metas sobre PostgreSQL.
type GoalRepo struct {
	db Querier
}

func NewGoalRepository(db Querier) *GoalRepo {
	return &GoalRepo{db: db}
}

const goalColumns = `id, organization_id, title, description, target_amount, current_amount, deadline, created_at, updated_at`

func scanGoal(row pgx.Row) (*entity.Goal, error) {
	var g entity.Goal
	if err := row.Scan(&g.ID, &g.OrganizationID, &g.Title, &g.Description, &g.TargetAmount,
		&g.CurrentAmount, &g.Deadline, &g.CreatedAt, &g.UpdatedAt); err != nil {
		return nil, err
	}
	return &g, nil
}

func (r *GoalRepo) Create(ctx context.Context, g *entity.Goal) (*entity.Goal, error) {
	query := `
		INSERT INTO goals (organization_id, title, description, target_amount, current_amount, deadline)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING ` + goalColumns
	out, err := scanGoal(r.db.QueryRow(ctx, query,
		g.OrganizationID, g.Title, g.Description, g.TargetAmount, g.CurrentAmount, g.Deadline,
	))
	if err != nil {
		return nil, fmt.Errorf("insert goal: %w", err)
	}
	return out, nil
}

func (r *GoalRepo) FindByID(ctx context.Context, organizationID, id string) (*entity.Goal, error) {
	query := `SELECT ` + goalColumns + ` FROM goals WHERE organization_id = $1 AND id = $2`
	out, err := scanGoal(r.db.QueryRow(ctx, query, organizationID, id))
	if err != nil {
		if isAbsent(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("get goal: %w", err)
	}
	return out, nil
}

func (r *GoalRepo) FindByOrganizationID(ctx context.Context, organizationID string) ([]*entity.Goal, error) {
	query := `SELECT ` + goalColumns + ` FROM goals WHERE organization_id = $1 ORDER BY deadline, created_at`
	rows, err := r.db.Query(ctx, query, organizationID)
	if err != nil {
		return nil, fmt.Errorf("list goals: %w", err)
	}
	defer rows.Close()

	list := make([]*entity.Goal, 0)
	for rows.Next() {
		g, err := scanGoal(rows)
		if err != nil {
			return nil, fmt.Errorf("scan goal: %w", err)
		}
		list = append(list, g)
	}
	return list, rows.Err()
}

// Update aplica solo los campos presentes; description "" se escribe tal cual.
func (r *GoalRepo) Update(ctx context.Context, organizationID, id string, p entity.GoalPatch) (*entity.Goal, error) {
	query := `
		UPDATE goals SET
			title = COALESCE($3, title),
			description = COALESCE($4, description),
			target_amount = COALESCE($5, target_amount),
			current_amount = COALESCE($6, current_amount),
			deadline = COALESCE($7, deadline),
			updated_at = now()
		WHERE organization_id = $1 AND id = $2
		RETURNING ` + goalColumns
	out, err := scanGoal(r.db.QueryRow(ctx, query, organizationID, id,
		p.Title, p.Description, p.TargetAmount, p.CurrentAmount, p.Deadline,
	))
	if err != nil {
		if isAbsent(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("update goal: %w", err)
	}
	return out, nil
}

func (r *GoalRepo) Delete(ctx context.Context, organizationID, id string) (*entity.Goal, error) {
	query := `DELETE FROM goals WHERE organization_id = $1 AND id = $2 RETURNING ` + goalColumns
	out, err := scanGoal(r.db.QueryRow(ctx, query, organizationID, id))
	if err != nil {
		if isAbsent(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("delete goal: %w", err)
	}
	return out, nil
}
