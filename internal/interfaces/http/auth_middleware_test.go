package http_test

import (
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	apphttp "github.com/jhoicas/Finanzas-api/internal/interfaces/http"
	pkgjwt "github.com/jhoicas/Finanzas-api/pkg/jwt"
)

const (
	testJWTSecret = "test-secret-key-for-unit-tests"
	testOrgID     = "00000000-0000-0000-0000-000000000002"
	testEmail     = "org@finanzas.test"
	testIssuer    = "finanzas-test"
	testExpMin    = 60
)

// buildMiddlewareApp app mínima: AuthMiddleware y un handler que devuelve los locals.
func buildMiddlewareApp() *fiber.App {
	app := fiber.New()
	app.Get("/me", apphttp.AuthMiddleware(testJWTSecret), func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{
			"organization_id": apphttp.GetOrganizationID(c),
			"email":           apphttp.GetEmail(c),
		})
	})
	return app
}

func bearer(t *testing.T, secret string, expMin int) string {
	t.Helper()
	tok, err := pkgjwt.Generate(secret, testOrgID, testEmail, testIssuer, expMin)
	require.NoError(t, err, "debe generarse un token JWT válido")
	return "Bearer " + tok
}

func getMe(t *testing.T, app *fiber.App, authHeader string) *http.Response {
	t.Helper()
	req := httptest.NewRequest(http.MethodGet, "/me", nil)
	if authHeader != "" {
		req.Header.Set("Authorization", authHeader)
	}
	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	return resp
}

func TestAuthMiddleware_ExtraeClaims(t *testing.T) {
	resp := getMe(t, buildMiddlewareApp(), bearer(t, testJWTSecret, testExpMin))
	defer resp.Body.Close()

	assert.Equal(t, http.StatusOK, resp.StatusCode)
	var body map[string]string
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	assert.Equal(t, testOrgID, body["organization_id"])
	assert.Equal(t, testEmail, body["email"])
}

func TestAuthMiddleware_Rechazos(t *testing.T) {
	cases := []struct {
		name   string
		header func(t *testing.T) string
		code   string
	}{
		{"sin header", func(t *testing.T) string { return "" }, "MISSING_TOKEN"},
		{"formato inválido", func(t *testing.T) string { return "Token abc" }, "INVALID_TOKEN"},
		{"token malformado", func(t *testing.T) string { return "Bearer token.invalido.aqui" }, "INVALID_TOKEN"},
		{"expirado", func(t *testing.T) string { return bearer(t, testJWTSecret, -1) }, "INVALID_TOKEN"},
		{"otro secret", func(t *testing.T) string { return bearer(t, "otro-secret-completamente-distinto", testExpMin) }, "INVALID_TOKEN"},
	}
	app := buildMiddlewareApp()
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			resp := getMe(t, app, tc.header(t))
			defer resp.Body.Close()

			assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
			body, _ := io.ReadAll(resp.Body)
			assert.Contains(t, string(body), tc.code)
		})
	}
}
