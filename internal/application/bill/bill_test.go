package bill_test

import (
	"context"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/Finanzas-api/internal/application/bill"
	"github.com/jhoicas/Finanzas-api/internal/application/dto"
	"github.com/jhoicas/Finanzas-api/internal/domain"
	"github.com/jhoicas/Finanzas-api/internal/domain/entity"
	"github.com/jhoicas/Finanzas-api/internal/infrastructure/memory"
)

type spyBillRepo struct {
	*memory.BillRepository
	deletes int
	paids   int
}

func (s *spyBillRepo) Delete(ctx context.Context, org, id string) error {
	s.deletes++
	return s.BillRepository.Delete(ctx, org, id)
}

func (s *spyBillRepo) UpdatePaid(ctx context.Context, org, id string, paid bool) (*entity.Bill, error) {
	s.paids++
	return s.BillRepository.UpdatePaid(ctx, org, id, paid)
}

func newBill(t *testing.T, repo *spyBillRepo, org string) *dto.BillResponse {
	t.Helper()
	out, err := bill.NewCreateBillUseCase(repo).Execute(context.Background(), org, dto.CreateBillRequest{
		Description: "Luz",
		Amount:      decimal.RequireFromString("120.50"),
		DueDate:     time.Date(2026, 11, 1, 0, 0, 0, 0, time.UTC),
	})
	require.NoError(t, err)
	return out
}

func TestCreateBill_NoPagada(t *testing.T) {
	repo := &spyBillRepo{BillRepository: memory.NewBillRepository()}
	out := newBill(t, repo, "org")
	assert.False(t, out.Paid)
	assert.Equal(t, "120.5", out.Amount.String())
}

func TestMarkBillAsPaid_IdaYVuelta(t *testing.T) {
	ctx := context.Background()
	repo := &spyBillRepo{BillRepository: memory.NewBillRepository()}
	created := newBill(t, repo, "org")
	uc := bill.NewMarkBillAsPaidUseCase(repo)

	out, err := uc.Execute(ctx, "org", created.ID, true)
	require.NoError(t, err)
	assert.True(t, out.Paid)

	out, err = uc.Execute(ctx, "org", created.ID, false)
	require.NoError(t, err)
	assert.False(t, out.Paid)
}

func TestMarkBillAsPaid_Inexistente(t *testing.T) {
	repo := &spyBillRepo{BillRepository: memory.NewBillRepository()}
	created := newBill(t, repo, "org-a")

	_, err := bill.NewMarkBillAsPaidUseCase(repo).Execute(context.Background(), "org-b", created.ID, true)
	assert.ErrorIs(t, err, domain.ErrBillNotFound)
	assert.Equal(t, 0, repo.paids)
}

func TestDeleteBill_SinLlamadaSiNoExiste(t *testing.T) {
	ctx := context.Background()
	repo := &spyBillRepo{BillRepository: memory.NewBillRepository()}
	uc := bill.NewDeleteBillUseCase(repo)

	err := uc.Execute(ctx, "org", "no-existe")
	assert.ErrorIs(t, err, domain.ErrBillNotFound)
	assert.Equal(t, 0, repo.deletes)

	created := newBill(t, repo, "org")
	require.NoError(t, uc.Execute(ctx, "org", created.ID))
	assert.Equal(t, 1, repo.deletes)

	list, err := bill.NewSearchBillsUseCase(repo).Execute(ctx, "org")
	require.NoError(t, err)
	assert.Empty(t, list)
}
