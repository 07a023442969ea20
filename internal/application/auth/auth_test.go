package auth_test

import (
	"context"
	"encoding/hex"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/Finanzas-api/internal/application/auth"
	"github.com/jhoicas/Finanzas-api/internal/application/dto"
	"github.com/jhoicas/Finanzas-api/internal/domain"
	"github.com/jhoicas/Finanzas-api/internal/domain/entity"
	"github.com/jhoicas/Finanzas-api/internal/domain/repository"
	"github.com/jhoicas/Finanzas-api/internal/infrastructure/memory"
	"github.com/jhoicas/Finanzas-api/pkg/jwt"
	"github.com/jhoicas/Finanzas-api/pkg/password"
)

type mailerStub struct {
	err   error
	to    string
	token string
	calls int
}

func (m *mailerStub) SendPasswordReset(ctx context.Context, to, token string, redirectURL *string) error {
	m.calls++
	m.to, m.token = to, token
	return m.err
}

type observerSpy struct {
	channels []string
}

func (o *observerSpy) NotificationFailed(ctx context.Context, channel string, err error) {
	o.channels = append(o.channels, channel)
}

type hasherSpy struct {
	password.Hasher
	hashes int
}

func (h *hasherSpy) Hash(plain string) (string, error) {
	h.hashes++
	return h.Hasher.Hash(plain)
}

type fixture struct {
	store  memoryStore
	hasher *hasherSpy
	now    time.Time
	org    *entity.Organization
}

type memoryStore struct {
	orgs   *memory.OrganizationRepository
	tokens *memory.PasswordResetTokenRepository
	logs   *memory.AccessLogRepository
}

func newFixture(t *testing.T) *fixture {
	t.Helper()
	f := &fixture{
		store: memoryStore{
			orgs:   memory.NewOrganizationRepository(),
			tokens: memory.NewPasswordResetTokenRepository(),
			logs:   memory.NewAccessLogRepository(),
		},
		hasher: &hasherSpy{Hasher: password.NewBcryptHasher(password.DefaultCost)},
		now:    time.Date(2026, 10, 14, 12, 0, 0, 0, time.UTC),
	}
	hash, err := f.hasher.Hasher.Hash("original123")
	require.NoError(t, err)
	f.org, err = f.store.orgs.Create(context.Background(), &entity.Organization{Name: "Casa", Email: "casa@mail.com", PasswordHash: hash})
	require.NoError(t, err)
	return f
}

func (f *fixture) clock() time.Time { return f.now }

func (f *fixture) forgot(mailer auth.Mailer, obs auth.NotificationObserver) *auth.ForgotPasswordUseCase {
	return auth.NewForgotPasswordUseCase(f.store.tokens, mailer, obs, f.clock)
}

func (f *fixture) tx() repository.TxRunner {
	return memory.NewTxRunner(repository.Store{
		Organizations:       f.store.orgs,
		PasswordResetTokens: f.store.tokens,
		AccessLogs:          f.store.logs,
	})
}

func (f *fixture) reset() *auth.ResetPasswordUseCase {
	return auth.NewResetPasswordUseCase(f.store.orgs, f.store.tokens, f.tx(), f.hasher, f.clock)
}

func TestForgotPassword_TokenHexDe64YUnaHora(t *testing.T) {
	f := newFixture(t)
	mailer := &mailerStub{}

	out, err := f.forgot(mailer, &observerSpy{}).Execute(context.Background(), dto.ForgotPasswordRequest{Email: "casa@mail.com"})
	require.NoError(t, err)
	assert.Len(t, out.Token, 64)
	_, decodeErr := hex.DecodeString(out.Token)
	assert.NoError(t, decodeErr)
	assert.Equal(t, 3600*time.Second, out.ExpiresAt.Sub(f.now))
	assert.Equal(t, out.Token, mailer.token)

	stored, err := f.store.tokens.FindByToken(context.Background(), out.Token)
	require.NoError(t, err)
	require.NotNil(t, stored)
	assert.Equal(t, "casa@mail.com", stored.Email)
}

func TestForgotPassword_FalloDelMailerNoFalla(t *testing.T) {
	f := newFixture(t)
	obs := &observerSpy{}

	out, err := f.forgot(&mailerStub{err: errors.New("smtp caído")}, obs).Execute(context.Background(), dto.ForgotPasswordRequest{Email: "casa@mail.com"})
	require.NoError(t, err)
	assert.Len(t, out.Token, 64)
	assert.Equal(t, f.now.Add(time.Hour), out.ExpiresAt)
	assert.Equal(t, []string{auth.ChannelEmail}, obs.channels)
}

type panicMailer struct{}

func (panicMailer) SendPasswordReset(ctx context.Context, to, token string, redirectURL *string) error {
	panic("adaptador roto")
}

func TestForgotPassword_PanicDelMailerNoFalla(t *testing.T) {
	f := newFixture(t)
	obs := &observerSpy{}

	var out *dto.ForgotPasswordResult
	require.NotPanics(t, func() {
		var err error
		out, err = f.forgot(panicMailer{}, obs).Execute(context.Background(), dto.ForgotPasswordRequest{Email: "casa@mail.com"})
		require.NoError(t, err)
	})
	assert.Len(t, out.Token, 64)
	assert.Equal(t, []string{auth.ChannelEmail}, obs.channels)

	stored, err := f.store.tokens.FindByToken(context.Background(), out.Token)
	require.NoError(t, err)
	assert.NotNil(t, stored)
}

func TestForgotPassword_TokensDistintos(t *testing.T) {
	f := newFixture(t)
	uc := f.forgot(&mailerStub{}, nil)
	a, err := uc.Execute(context.Background(), dto.ForgotPasswordRequest{Email: "casa@mail.com"})
	require.NoError(t, err)
	b, err := uc.Execute(context.Background(), dto.ForgotPasswordRequest{Email: "casa@mail.com"})
	require.NoError(t, err)
	assert.NotEqual(t, a.Token, b.Token)
}

func TestResetPassword_OrganizacionInexistenteAntesDeHashear(t *testing.T) {
	f := newFixture(t)
	err := f.reset().Execute(context.Background(), dto.ResetPasswordRequest{Email: "nadie@mail.com", Token: "x", Password: "nueva1234"})
	assert.ErrorIs(t, err, domain.ErrOrganizationNotFound)
	assert.Equal(t, 0, f.hasher.hashes)
}

func TestResetPassword_CambiaYConsumeToken(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t)
	issued, err := f.forgot(&mailerStub{}, nil).Execute(ctx, dto.ForgotPasswordRequest{Email: "casa@mail.com"})
	require.NoError(t, err)

	in := dto.ResetPasswordRequest{Email: "casa@mail.com", Token: issued.Token, Password: "nueva1234"}
	require.NoError(t, f.reset().Execute(ctx, in))

	org, err := f.store.orgs.FindByEmail(ctx, "casa@mail.com")
	require.NoError(t, err)
	assert.NoError(t, f.hasher.Compare(org.PasswordHash, "nueva1234"))

	assert.ErrorIs(t, f.reset().Execute(ctx, in), domain.ErrInvalidResetToken)

	logs, err := f.store.logs.FindByOrganizationID(ctx, f.org.ID)
	require.NoError(t, err)
	require.Len(t, logs, 1)
	assert.Equal(t, entity.AccessActionPasswordReset, logs[0].Action)
}

// racingTx simula otra petición que consume el token justo antes de la transacción.
type racingTx struct {
	inner  repository.TxRunner
	tokens *memory.PasswordResetTokenRepository
	token  string
}

func (r *racingTx) Run(ctx context.Context, fn func(repository.Store) error) error {
	if err := r.tokens.MarkUsed(ctx, r.token); err != nil {
		return err
	}
	return r.inner.Run(ctx, fn)
}

func TestResetPassword_TokenConsumidoPorOtraPeticion(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t)
	issued, err := f.forgot(&mailerStub{}, nil).Execute(ctx, dto.ForgotPasswordRequest{Email: "casa@mail.com"})
	require.NoError(t, err)

	tx := &racingTx{inner: f.tx(), tokens: f.store.tokens, token: issued.Token}
	uc := auth.NewResetPasswordUseCase(f.store.orgs, f.store.tokens, tx, f.hasher, f.clock)
	err = uc.Execute(ctx, dto.ResetPasswordRequest{Email: "casa@mail.com", Token: issued.Token, Password: "nueva1234"})
	assert.ErrorIs(t, err, domain.ErrInvalidResetToken)

	org, err := f.store.orgs.FindByEmail(ctx, "casa@mail.com")
	require.NoError(t, err)
	assert.NoError(t, f.hasher.Compare(org.PasswordHash, "original123"), "la contraseña no cambia")
	logs, err := f.store.logs.FindByOrganizationID(ctx, f.org.ID)
	require.NoError(t, err)
	assert.Empty(t, logs)
}

func TestResetPassword_TokenInvalido(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t)
	issued, err := f.forgot(&mailerStub{}, nil).Execute(ctx, dto.ForgotPasswordRequest{Email: "casa@mail.com"})
	require.NoError(t, err)
	_, err = f.store.orgs.Create(ctx, &entity.Organization{Name: "Otra", Email: "otra@mail.com"})
	require.NoError(t, err)

	t.Run("email distinto", func(t *testing.T) {
		err := f.reset().Execute(ctx, dto.ResetPasswordRequest{Email: "otra@mail.com", Token: issued.Token, Password: "nueva1234"})
		assert.ErrorIs(t, err, domain.ErrInvalidResetToken)
	})
	t.Run("token desconocido", func(t *testing.T) {
		err := f.reset().Execute(ctx, dto.ResetPasswordRequest{Email: "casa@mail.com", Token: "desconocido", Password: "nueva1234"})
		assert.ErrorIs(t, err, domain.ErrInvalidResetToken)
	})
	t.Run("expirado", func(t *testing.T) {
		late := auth.NewResetPasswordUseCase(f.store.orgs, f.store.tokens, f.tx(), f.hasher, func() time.Time {
			return f.now.Add(auth.ResetTokenTTL)
		})
		err := late.Execute(ctx, dto.ResetPasswordRequest{Email: "casa@mail.com", Token: issued.Token, Password: "nueva1234"})
		assert.ErrorIs(t, err, domain.ErrInvalidResetToken)
	})
	assert.Equal(t, 0, f.hasher.hashes)
}

func TestLogin(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t)
	cfg := auth.JWTConfig{Secret: "test-secret", ExpMinutes: 5, Issuer: "finanzas-api"}
	uc := auth.NewLoginUseCase(f.store.orgs, f.store.logs, f.hasher, cfg)

	out, err := uc.Execute(ctx, dto.LoginRequest{Email: "CASA@mail.com", Password: "original123", IP: "10.0.0.1", UserAgent: "test"})
	require.NoError(t, err)
	orgID, email, err := jwt.Parse(cfg.Secret, out.Token)
	require.NoError(t, err)
	assert.Equal(t, f.org.ID, orgID)
	assert.Equal(t, "casa@mail.com", email)

	logs, err := f.store.logs.FindByOrganizationID(ctx, f.org.ID)
	require.NoError(t, err)
	require.Len(t, logs, 1)
	assert.Equal(t, entity.AccessActionLogin, logs[0].Action)
	assert.Equal(t, "10.0.0.1", logs[0].IP)

	_, err = uc.Execute(ctx, dto.LoginRequest{Email: "casa@mail.com", Password: "mala"})
	assert.ErrorIs(t, err, domain.ErrUnauthorized)
	_, err = uc.Execute(ctx, dto.LoginRequest{Email: "nadie@mail.com", Password: "x"})
	assert.ErrorIs(t, err, domain.ErrUnauthorized)
}
