package organization_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/Finanzas-api/internal/application/dto"
	"github.com/jhoicas/Finanzas-api/internal/application/organization"
	"github.com/jhoicas/Finanzas-api/internal/domain/entity"
	"github.com/jhoicas/Finanzas-api/internal/infrastructure/memory"
	"github.com/jhoicas/Finanzas-api/pkg/password"
)

type countingRepo struct {
	*memory.OrganizationRepository
	creates int
}

func (c *countingRepo) Create(ctx context.Context, o *entity.Organization) (*entity.Organization, error) {
	c.creates++
	return c.OrganizationRepository.Create(ctx, o)
}

type countingHasher struct {
	password.Hasher
	calls int
}

func (h *countingHasher) Hash(plain string) (string, error) {
	h.calls++
	return h.Hasher.Hash(plain)
}

func TestCreateOrganization_Idempotente(t *testing.T) {
	ctx := context.Background()
	repo := &countingRepo{OrganizationRepository: memory.NewOrganizationRepository()}
	hasher := &countingHasher{Hasher: password.NewBcryptHasher(password.DefaultCost)}
	uc := organization.NewCreateOrganizationUseCase(repo, hasher)
	in := dto.CreateOrganizationRequest{Name: "Casa", Email: "Casa@Mail.com", Password: "secreto123"}

	first, err := uc.Execute(ctx, in)
	require.NoError(t, err)
	assert.True(t, first.Created)
	assert.Equal(t, "casa@mail.com", first.Organization.Email)

	second, err := uc.Execute(ctx, in)
	require.NoError(t, err)
	assert.True(t, second.Created)
	assert.Equal(t, first.Organization.ID, second.Organization.ID)
	assert.Equal(t, 1, repo.creates)
	assert.Equal(t, 1, hasher.calls)
}

func TestCreateOrganization_GuardaHashBcrypt(t *testing.T) {
	ctx := context.Background()
	repo := memory.NewOrganizationRepository()
	uc := organization.NewCreateOrganizationUseCase(repo, password.NewBcryptHasher(password.DefaultCost))

	_, err := uc.Execute(ctx, dto.CreateOrganizationRequest{Name: "Casa", Email: "casa@mail.com", Password: "secreto123"})
	require.NoError(t, err)

	stored, err := repo.FindByEmail(ctx, "casa@mail.com")
	require.NoError(t, err)
	assert.NotEqual(t, "secreto123", stored.PasswordHash)
	assert.NoError(t, password.NewBcryptHasher(0).Compare(stored.PasswordHash, "secreto123"))
}
