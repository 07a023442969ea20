//go:build integration

package postgres_test

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/wait"

	"github.com/jhoicas/Finanzas-api/internal/domain"
	"github.com/jhoicas/Finanzas-api/internal/domain/entity"
	"github.com/jhoicas/Finanzas-api/internal/domain/repository"
	"github.com/jhoicas/Finanzas-api/internal/infrastructure/postgres"
	"github.com/jhoicas/Finanzas-api/pkg/config"
)

func setupStore(t *testing.T, ctx context.Context) (repository.Store, *postgres.TxRunner) {
	t.Helper()
	req := testcontainers.ContainerRequest{
		Image:        "postgres:16-alpine",
		ExposedPorts: []string{"5432/tcp"},
		Env: map[string]string{
			"POSTGRES_USER":     "test",
			"POSTGRES_PASSWORD": "test",
			"POSTGRES_DB":       "finanzas",
		},
		WaitingFor: wait.ForLog("database system is ready to accept connections").WithOccurrence(2),
	}
	container, err := testcontainers.GenericContainer(ctx, testcontainers.GenericContainerRequest{
		ContainerRequest: req,
		Started:          true,
	})
	require.NoError(t, err)
	t.Cleanup(func() { _ = container.Terminate(ctx) })

	host, err := container.Host(ctx)
	require.NoError(t, err)
	port, err := container.MappedPort(ctx, "5432")
	require.NoError(t, err)

	pool, err := postgres.NewPool(ctx, config.DBConfig{
		DatabaseURL: fmt.Sprintf("postgres://test:test@%s:%s/finanzas?sslmode=disable", host, port.Port()),
	})
	require.NoError(t, err)
	t.Cleanup(pool.Close)

	require.NoError(t, postgres.Migrate(pool))
	require.NoError(t, postgres.Migrate(pool), "sin cambios pendientes no debe fallar")

	return postgres.NewStore(pool), postgres.NewTxRunner(pool)
}

func TestIntegration_Store(t *testing.T) {
	ctx := context.Background()
	store, tx := setupStore(t, ctx)

	orgA, err := store.Organizations.Create(ctx, &entity.Organization{Name: "A", Email: "a@mail.com", PasswordHash: "h"})
	require.NoError(t, err)
	orgB, err := store.Organizations.Create(ctx, &entity.Organization{Name: "B", Email: "b@mail.com", PasswordHash: "h"})
	require.NoError(t, err)

	t.Run("email de organización único", func(t *testing.T) {
		_, err := store.Organizations.Create(ctx, &entity.Organization{Name: "A2", Email: "a@mail.com", PasswordHash: "h"})
		assert.ErrorIs(t, err, domain.ErrOrganizationAlreadyExists)
	})

	t.Run("billetera aislada y update parcial", func(t *testing.T) {
		w, err := store.Wallets.Create(ctx, &entity.Wallet{OrganizationID: orgA.ID, Name: "Caja", Balance: decimal.RequireFromString("10.50")})
		require.NoError(t, err)

		other, err := store.Wallets.FindByID(ctx, orgB.ID, w.ID)
		require.NoError(t, err)
		assert.Nil(t, other)

		name := "Banco"
		updated, err := store.Wallets.Update(ctx, orgA.ID, w.ID, entity.WalletPatch{Name: &name})
		require.NoError(t, err)
		assert.Equal(t, "Banco", updated.Name)
		assert.True(t, decimal.RequireFromString("10.50").Equal(updated.Balance))

		gone, err := store.Wallets.Delete(ctx, orgB.ID, w.ID)
		require.NoError(t, err)
		assert.Nil(t, gone)
	})

	t.Run("id que no es UUID se trata como ausente", func(t *testing.T) {
		bill, err := store.Bills.FindByID(ctx, orgA.ID, "abc")
		require.NoError(t, err)
		assert.Nil(t, bill)

		wallet, err := store.Wallets.FindByID(ctx, orgA.ID, "abc")
		require.NoError(t, err)
		assert.Nil(t, wallet)

		goal, err := store.Goals.Delete(ctx, orgA.ID, "abc")
		require.NoError(t, err)
		assert.Nil(t, goal)

		category, err := store.Categories.FindByID(ctx, orgA.ID, "abc")
		require.NoError(t, err)
		assert.Nil(t, category)

		subs, err := store.SubCategories.FindByCategoryID(ctx, orgA.ID, "abc")
		require.NoError(t, err)
		assert.Empty(t, subs)

		require.NoError(t, store.Bills.Delete(ctx, orgA.ID, "abc"))
	})

	t.Run("cuenta pagada ida y vuelta", func(t *testing.T) {
		b, err := store.Bills.Create(ctx, &entity.Bill{OrganizationID: orgA.ID, Description: "Luz", Amount: decimal.NewFromInt(90), DueDate: time.Now()})
		require.NoError(t, err)
		paid, err := store.Bills.UpdatePaid(ctx, orgA.ID, b.ID, true)
		require.NoError(t, err)
		assert.True(t, paid.Paid)
		unpaid, err := store.Bills.UpdatePaid(ctx, orgA.ID, b.ID, false)
		require.NoError(t, err)
		assert.False(t, unpaid.Paid)
	})

	t.Run("import omite duplicados", func(t *testing.T) {
		_, err := store.Companies.Create(ctx, &entity.Company{OrganizationID: orgA.ID, Name: "Bancolombia", Type: entity.CompanyTypeBank})
		require.NoError(t, err)
		res, err := store.Companies.CreateMany(ctx, []*entity.Company{
			{OrganizationID: orgA.ID, Name: "Bancolombia", Type: entity.CompanyTypeBank},
			{OrganizationID: orgA.ID, Name: "Davivienda", Type: entity.CompanyTypeBank},
			{OrganizationID: orgB.ID, Name: "Bancolombia", Type: entity.CompanyTypeBank},
		})
		require.NoError(t, err)
		assert.Equal(t, 2, res.Count)
	})

	t.Run("token de recuperación en transacción", func(t *testing.T) {
		token := &entity.PasswordResetToken{
			Token:     "0123456789abcdef0123456789abcdef0123456789abcdef0123456789abcdef",
			Email:     orgA.Email,
			ExpiresAt: time.Now().Add(time.Hour),
			CreatedAt: time.Now(),
		}
		require.NoError(t, store.PasswordResetTokens.Create(ctx, token))

		err := tx.Run(ctx, func(s repository.Store) error {
			if err := s.Organizations.UpdatePassword(ctx, orgA.ID, "nuevo"); err != nil {
				return err
			}
			return s.PasswordResetTokens.MarkUsed(ctx, token.Token)
		})
		require.NoError(t, err)

		got, err := store.PasswordResetTokens.FindByToken(ctx, token.Token)
		require.NoError(t, err)
		assert.True(t, got.Used)
		assert.ErrorIs(t, store.PasswordResetTokens.MarkUsed(ctx, token.Token), domain.ErrInvalidResetToken)
	})

	t.Run("accesos más reciente primero", func(t *testing.T) {
		for _, a := range []string{"login", "password_reset"} {
			_, err := store.AccessLogs.Create(ctx, &entity.AccessLog{OrganizationID: orgA.ID, Action: a})
			require.NoError(t, err)
		}
		logs, err := store.AccessLogs.FindByOrganizationID(ctx, orgA.ID)
		require.NoError(t, err)
		require.Len(t, logs, 2)
		assert.Equal(t, "password_reset", logs[0].Action)
	})
}
