package mail_test

import (
	"context"
	"net/url"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/Finanzas-api/internal/infrastructure/mail"
	"github.com/jhoicas/Finanzas-api/pkg/logger"
)

func TestResetLink(t *testing.T) {
	t.Run("usa la base sin redirect", func(t *testing.T) {
		link, err := mail.ResetLink("http://app.local/reset", nil, "abc")
		require.NoError(t, err)
		assert.Equal(t, "http://app.local/reset?token=abc", link)
	})

	t.Run("redirect conserva sus parámetros", func(t *testing.T) {
		redirect := "https://web.example.com/cambiar?lang=es"
		link, err := mail.ResetLink("http://app.local/reset", &redirect, "abc")
		require.NoError(t, err)
		u, err := url.Parse(link)
		require.NoError(t, err)
		assert.Equal(t, "web.example.com", u.Host)
		assert.Equal(t, "es", u.Query().Get("lang"))
		assert.Equal(t, "abc", u.Query().Get("token"))
	})

	t.Run("redirect vacío usa la base", func(t *testing.T) {
		empty := ""
		link, err := mail.ResetLink("http://app.local/reset", &empty, "abc")
		require.NoError(t, err)
		assert.Contains(t, link, "app.local")
	})

	t.Run("url inválida", func(t *testing.T) {
		bad := "://sin-esquema"
		_, err := mail.ResetLink("http://app.local", &bad, "abc")
		assert.Error(t, err)
	})
}

func TestLogMailer(t *testing.T) {
	m := mail.NewLogMailer(logger.Nop(), "http://app.local/reset")
	assert.NoError(t, m.SendPasswordReset(context.Background(), "a@mail.com", "tok", nil))
}
