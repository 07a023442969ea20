package user_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/Finanzas-api/internal/application/dto"
	"github.com/jhoicas/Finanzas-api/internal/application/user"
	"github.com/jhoicas/Finanzas-api/internal/domain"
	"github.com/jhoicas/Finanzas-api/internal/domain/entity"
	"github.com/jhoicas/Finanzas-api/internal/infrastructure/memory"
)

func TestCreateUser_RolPorDefectoYDuplicado(t *testing.T) {
	ctx := context.Background()
	repo := memory.NewUserRepository()
	uc := user.NewCreateUserUseCase(repo)

	out, err := uc.Execute(ctx, "org", dto.CreateUserRequest{Name: "Ana", Email: "ana@mail.com"})
	require.NoError(t, err)
	assert.Equal(t, entity.RoleMember, out.Role)

	_, err = uc.Execute(ctx, "org", dto.CreateUserRequest{Name: "Ana", Email: "ANA@mail.com"})
	assert.ErrorIs(t, err, domain.ErrDuplicate)

	list, err := user.NewSearchUsersUseCase(repo).Execute(ctx, "org")
	require.NoError(t, err)
	assert.Len(t, list.Users, 1)
}
