package company_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/Finanzas-api/internal/application/company"
	"github.com/jhoicas/Finanzas-api/internal/application/dto"
	"github.com/jhoicas/Finanzas-api/internal/infrastructure/memory"
)

func TestImportCompanies_NMenosK(t *testing.T) {
	ctx := context.Background()
	repo := memory.NewCompanyRepository()
	_, err := company.NewCreateCompanyUseCase(repo).Execute(ctx, "org", dto.CreateCompanyRequest{Name: "Bancolombia", Code: "007", Type: "bank"})
	require.NoError(t, err)

	items := []dto.CreateCompanyRequest{
		{Name: "Bancolombia", Code: "007", Type: "bank"},
		{Name: "Davivienda", Code: "051", Type: "bank"},
		{Name: "Nu", Type: "credit_card"},
	}
	out, err := company.NewImportCompaniesUseCase(repo).Execute(ctx, "org", dto.ImportCompaniesRequest{Items: items})
	require.NoError(t, err)
	assert.Equal(t, len(items)-1, out.Count)

	list, err := company.NewSearchCompaniesUseCase(repo).Execute(ctx, "org")
	require.NoError(t, err)
	assert.Len(t, list.Companies, 3)

	other, err := company.NewSearchCompaniesUseCase(repo).Execute(ctx, "otra")
	require.NoError(t, err)
	assert.Empty(t, other.Companies)
}
