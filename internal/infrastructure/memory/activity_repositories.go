package memory

import (
	"context"
	"slices"

	"github.com/jhoicas/Finanzas-api/internal/domain"
	"github.com/jhoicas/Finanzas-api/internal/domain/entity"
)

// InvestmentRepository implementa repository.InvestmentRepository en memoria.
type InvestmentRepository struct {
	t *table[entity.Investment]
}

func NewInvestmentRepository() *InvestmentRepository {
	return &InvestmentRepository{t: newTable[entity.Investment]()}
}

func (r *InvestmentRepository) Create(ctx context.Context, i *entity.Investment) (*entity.Investment, error) {
	r.t.mu.Lock()
	defer r.t.mu.Unlock()
	row := *i
	row.ID = newID()
	row.CreatedAt = now()
	r.t.put(row.ID, &row)
	return r.t.get(row.ID), nil
}

func (r *InvestmentRepository) FindByOrganizationID(ctx context.Context, organizationID string) ([]*entity.Investment, error) {
	r.t.mu.RLock()
	defer r.t.mu.RUnlock()
	return r.t.filter(func(i *entity.Investment) bool { return i.OrganizationID == organizationID }), nil
}

// AccessLogRepository implementa repository.AccessLogRepository en memoria.
type AccessLogRepository struct {
	t *table[entity.AccessLog]
}

func NewAccessLogRepository() *AccessLogRepository {
	return &AccessLogRepository{t: newTable[entity.AccessLog]()}
}

func (r *AccessLogRepository) Create(ctx context.Context, l *entity.AccessLog) (*entity.AccessLog, error) {
	r.t.mu.Lock()
	defer r.t.mu.Unlock()
	row := *l
	row.ID = newID()
	row.CreatedAt = now()
	r.t.put(row.ID, &row)
	return r.t.get(row.ID), nil
}

// FindByOrganizationID más reciente primero.
func (r *AccessLogRepository) FindByOrganizationID(ctx context.Context, organizationID string) ([]*entity.AccessLog, error) {
	r.t.mu.RLock()
	defer r.t.mu.RUnlock()
	out := r.t.filter(func(l *entity.AccessLog) bool { return l.OrganizationID == organizationID })
	slices.Reverse(out)
	return out, nil
}

// SuggestionRepository implementa repository.SuggestionRepository en memoria.
type SuggestionRepository struct {
	t *table[entity.Suggestion]
}

func NewSuggestionRepository() *SuggestionRepository {
	return &SuggestionRepository{t: newTable[entity.Suggestion]()}
}

func (r *SuggestionRepository) Create(ctx context.Context, s *entity.Suggestion) (*entity.Suggestion, error) {
	r.t.mu.Lock()
	defer r.t.mu.Unlock()
	row := *s
	row.ID = newID()
	row.CreatedAt = now()
	r.t.put(row.ID, &row)
	return r.t.get(row.ID), nil
}

func (r *SuggestionRepository) FindByOrganizationID(ctx context.Context, organizationID string) ([]*entity.Suggestion, error) {
	r.t.mu.RLock()
	defer r.t.mu.RUnlock()
	return r.t.filter(func(s *entity.Suggestion) bool { return s.OrganizationID == organizationID }), nil
}

// UserRepository implementa repository.UserRepository en memoria. Email único por organización.
type UserRepository struct {
	t *table[entity.User]
}

func NewUserRepository() *UserRepository {
	return &UserRepository{t: newTable[entity.User]()}
}

func (r *UserRepository) Create(ctx context.Context, u *entity.User) (*entity.User, error) {
	r.t.mu.Lock()
	defer r.t.mu.Unlock()
	if r.t.exists(func(x *entity.User) bool {
		return x.OrganizationID == u.OrganizationID && x.Email == u.Email
	}) {
		return nil, domain.ErrDuplicate
	}
	row := *u
	row.ID = newID()
	row.CreatedAt = now()
	row.UpdatedAt = row.CreatedAt
	r.t.put(row.ID, &row)
	return r.t.get(row.ID), nil
}

func (r *UserRepository) FindByOrganizationID(ctx context.Context, organizationID string) ([]*entity.User, error) {
	r.t.mu.RLock()
	defer r.t.mu.RUnlock()
	return r.t.filter(func(u *entity.User) bool { return u.OrganizationID == organizationID }), nil
}
