// Package company contiene los casos de uso de instituciones financieras (bancos) de la organización.
package company

import (
	"context"

	"github.com/jhoicas/Finanzas-api/internal/application/dto"
	"github.com/jhoicas/Finanzas-api/internal/domain/entity"
	"github.com/jhoicas/Finanzas-api/internal/domain/repository"
)

func toCompanyResponse(c *entity.Company) dto.CompanyResponse {
	return dto.CompanyResponse{
		ID:             c.ID,
		OrganizationID: c.OrganizationID,
		Name:           c.Name,
		Code:           c.Code,
		Type:           c.Type,
		CreatedAt:      c.CreatedAt,
		UpdatedAt:      c.UpdatedAt,
	}
}

func newCompany(organizationID string, in dto.CreateCompanyRequest) *entity.Company {
	return &entity.Company{
		OrganizationID: organizationID,
		Name:           in.Name,
		Code:           in.Code,
		Type:           in.Type,
	}
}

// CreateCompanyUseCase registra una institución.
type CreateCompanyUseCase struct {
	repo repository.CompanyRepository
}

// NewCreateCompanyUseCase construye el caso de uso.
func NewCreateCompanyUseCase(repo repository.CompanyRepository) *CreateCompanyUseCase {
	return &CreateCompanyUseCase{repo: repo}
}

// Execute persiste la institución.
func (uc *CreateCompanyUseCase) Execute(ctx context.Context, organizationID string, in dto.CreateCompanyRequest) (*dto.CompanyResponse, error) {
	created, err := uc.repo.Create(ctx, newCompany(organizationID, in))
	if err != nil {
		return nil, err
	}
	out := toCompanyResponse(created)
	return &out, nil
}

// ImportCompaniesUseCase carga masiva; omite nombres ya registrados en la organización.
type ImportCompaniesUseCase struct {
	repo repository.CompanyRepository
}

// NewImportCompaniesUseCase construye el caso de uso.
func NewImportCompaniesUseCase(repo repository.CompanyRepository) *ImportCompaniesUseCase {
	return &ImportCompaniesUseCase{repo: repo}
}

func (uc *ImportCompaniesUseCase) Execute(ctx context.Context, organizationID string, in dto.ImportCompaniesRequest) (*dto.BatchResponse, error) {
	items := make([]*entity.Company, 0, len(in.Items))
	for _, it := range in.Items {
		items = append(items, newCompany(organizationID, it))
	}
	res, err := uc.repo.CreateMany(ctx, items)
	if err != nil {
		return nil, err
	}
	return &dto.BatchResponse{Count: res.Count}, nil
}

// SearchCompaniesUseCase lista instituciones de la organización.
type SearchCompaniesUseCase struct {
	repo repository.CompanyRepository
}

// NewSearchCompaniesUseCase construye el caso de uso.
func NewSearchCompaniesUseCase(repo repository.CompanyRepository) *SearchCompaniesUseCase {
	return &SearchCompaniesUseCase{repo: repo}
}

// Execute devuelve {companies: [...]}.
func (uc *SearchCompaniesUseCase) Execute(ctx context.Context, organizationID string) (*dto.CompanyListResponse, error) {
	list, err := uc.repo.FindByOrganizationID(ctx, organizationID)
	if err != nil {
		return nil, err
	}
	out := &dto.CompanyListResponse{Companies: make([]dto.CompanyResponse, 0, len(list))}
	for _, c := range list {
		out.Companies = append(out.Companies, toCompanyResponse(c))
	}
	return out, nil
}
