// Package user casos de uso de usuarios de una organización.
package user

import (
	"context"

	"github.com/jhoicas/Finanzas-api/internal/application/dto"
	"github.com/jhoicas/Finanzas-api/internal/domain/entity"
	"github.com/jhoicas/Finanzas-api/internal/domain/repository"
)

func toUserResponse(u *entity.User) dto.UserResponse {
	return dto.UserResponse{
		ID:             u.ID,
		OrganizationID: u.OrganizationID,
		Name:           u.Name,
		Email:          u.Email,
		Role:           u.Role,
		CreatedAt:      u.CreatedAt,
		UpdatedAt:      u.UpdatedAt,
	}
}

// CreateUserUseCase agrega un usuario a la organización. Sin rol explícito queda como member.
type CreateUserUseCase struct {
	repo repository.UserRepository
}

func NewCreateUserUseCase(repo repository.UserRepository) *CreateUserUseCase {
	return &CreateUserUseCase{repo: repo}
}

func (uc *CreateUserUseCase) Execute(ctx context.Context, organizationID string, in dto.CreateUserRequest) (*dto.UserResponse, error) {
	role := in.Role
	if role == "" {
		role = entity.RoleMember
	}
	created, err := uc.repo.Create(ctx, &entity.User{
		OrganizationID: organizationID,
		Name:           in.Name,
		Email:          entity.NormalizeEmail(in.Email),
		Role:           role,
	})
	if err != nil {
		return nil, err
	}
	out := toUserResponse(created)
	return &out, nil
}

// SearchUsersUseCase lista usuarios de la organización.
type SearchUsersUseCase struct {
	repo repository.UserRepository
}

func NewSearchUsersUseCase(repo repository.UserRepository) *SearchUsersUseCase {
	return &SearchUsersUseCase{repo: repo}
}

// Execute devuelve {users: [...]}.
func (uc *SearchUsersUseCase) Execute(ctx context.Context, organizationID string) (*dto.UserListResponse, error) {
	list, err := uc.repo.FindByOrganizationID(ctx, organizationID)
	if err != nil {
		return nil, err
	}
	out := &dto.UserListResponse{Users: make([]dto.UserResponse, 0, len(list))}
	for _, u := range list {
		out.Users = append(out.Users, toUserResponse(u))
	}
	return out, nil
}
