package memory

import (
	"context"

	"github.com/jhoicas/Finanzas-api/internal/domain/entity"
)

// GoalRepository implementa repository.GoalRepository en memoria.
type GoalRepository struct {
	t *table[entity.Goal]
}

func NewGoalRepository() *GoalRepository {
	return &GoalRepository{t: newTable[entity.Goal]()}
}

func (r *GoalRepository) Create(ctx context.Context, g *entity.Goal) (*entity.Goal, error) {
	r.t.mu.Lock()
	defer r.t.mu.Unlock()
	row := *g
	row.ID = newID()
	row.CreatedAt = now()
	row.UpdatedAt = row.CreatedAt
	r.t.put(row.ID, &row)
	return r.t.get(row.ID), nil
}

func (r *GoalRepository) FindByID(ctx context.Context, organizationID, id string) (*entity.Goal, error) {
	r.t.mu.RLock()
	defer r.t.mu.RUnlock()
	row := r.t.get(id)
	if row == nil || row.OrganizationID != organizationID {
		return nil, nil
	}
	return row, nil
}

func (r *GoalRepository) FindByOrganizationID(ctx context.Context, organizationID string) ([]*entity.Goal, error) {
	r.t.mu.RLock()
	defer r.t.mu.RUnlock()
	return r.t.filter(func(g *entity.Goal) bool { return g.OrganizationID == organizationID }), nil
}

func (r *GoalRepository) Update(ctx context.Context, organizationID, id string, p entity.GoalPatch) (*entity.Goal, error) {
	r.t.mu.Lock()
	defer r.t.mu.Unlock()
	row, ok := r.t.rows[id]
	if !ok || row.OrganizationID != organizationID {
		return nil, nil
	}
	if p.Title != nil {
		row.Title = *p.Title
	}
	if p.Description != nil {
		row.Description = *p.Description
	}
	if p.TargetAmount != nil {
		row.TargetAmount = *p.TargetAmount
	}
	if p.CurrentAmount != nil {
		row.CurrentAmount = *p.CurrentAmount
	}
	if p.Deadline != nil {
		row.Deadline = *p.Deadline
	}
	row.UpdatedAt = now()
	return r.t.get(id), nil
}

func (r *GoalRepository) Delete(ctx context.Context, organizationID, id string) (*entity.Goal, error) {
	r.t.mu.Lock()
	defer r.t.mu.Unlock()
	row := r.t.get(id)
	if row == nil || row.OrganizationID != organizationID {
		return nil, nil
	}
	r.t.remove(id)
	return row, nil
}
