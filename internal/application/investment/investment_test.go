package investment_test

import (
	"context"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/Finanzas-api/internal/application/dto"
	"github.com/jhoicas/Finanzas-api/internal/application/investment"
	"github.com/jhoicas/Finanzas-api/internal/infrastructure/memory"
)

func TestInvestments_PorOrganizacion(t *testing.T) {
	ctx := context.Background()
	repo := memory.NewInvestmentRepository()
	out, err := investment.NewCreateInvestmentUseCase(repo).Execute(ctx, "org", dto.CreateInvestmentRequest{
		Name: "CDT 90 días", Type: "cdt", Amount: decimal.RequireFromString("1000000.25"),
	})
	require.NoError(t, err)
	assert.Nil(t, out.CompanyID)

	list, err := investment.NewSearchInvestmentsUseCase(repo).Execute(ctx, "org")
	require.NoError(t, err)
	require.Len(t, list, 1)
	assert.Equal(t, "1000000.25", list[0].Amount.String())

	none, err := investment.NewSearchInvestmentsUseCase(repo).Execute(ctx, "otra")
	require.NoError(t, err)
	assert.Empty(t, none)
}
