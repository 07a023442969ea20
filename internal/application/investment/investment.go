// Package investment casos de uso de inversiones.
package investment

import (
	"context"

	"github.com/jhoicas/Finanzas-api/internal/application/dto"
	"github.com/jhoicas/Finanzas-api/internal/domain/entity"
	"github.com/jhoicas/Finanzas-api/internal/domain/repository"
)

func toInvestmentResponse(i *entity.Investment) dto.InvestmentResponse {
	return dto.InvestmentResponse{
		ID:             i.ID,
		OrganizationID: i.OrganizationID,
		Name:           i.Name,
		Type:           i.Type,
		Amount:         i.Amount,
		CompanyID:      i.CompanyID,
		CreatedAt:      i.CreatedAt,
	}
}

type CreateInvestmentUseCase struct {
	repo repository.InvestmentRepository
}

func NewCreateInvestmentUseCase(repo repository.InvestmentRepository) *CreateInvestmentUseCase {
	return &CreateInvestmentUseCase{repo: repo}
}

func (uc *CreateInvestmentUseCase) Execute(ctx context.Context, organizationID string, in dto.CreateInvestmentRequest) (*dto.InvestmentResponse, error) {
	created, err := uc.repo.Create(ctx, &entity.Investment{
		OrganizationID: organizationID,
		Name:           in.Name,
		Type:           in.Type,
		Amount:         in.Amount,
		CompanyID:      in.CompanyID,
	})
	if err != nil {
		return nil, err
	}
	out := toInvestmentResponse(created)
	return &out, nil
}

type SearchInvestmentsUseCase struct {
	repo repository.InvestmentRepository
}

func NewSearchInvestmentsUseCase(repo repository.InvestmentRepository) *SearchInvestmentsUseCase {
	return &SearchInvestmentsUseCase{repo: repo}
}

func (uc *SearchInvestmentsUseCase) Execute(ctx context.Context, organizationID string) ([]dto.InvestmentResponse, error) {
	list, err := uc.repo.FindByOrganizationID(ctx, organizationID)
	if err != nil {
		return nil, err
	}
	out := make([]dto.InvestmentResponse, 0, len(list))
	for _, i := range list {
		out = append(out, toInvestmentResponse(i))
	}
	return out, nil
}
