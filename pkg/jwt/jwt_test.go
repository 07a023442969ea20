package jwt_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	pkgjwt "github.com/jhoicas/Finanzas-api/pkg/jwt"
)

const (
	testSecret = "test-secret-key-for-unit-tests"
	testOrgID  = "00000000-0000-0000-0000-000000000002"
)

func TestJWT_GenerateAndParse(t *testing.T) {
	tok, err := pkgjwt.Generate(testSecret, testOrgID, "org@finanzas.test", "finanzas-test", 60)
	require.NoError(t, err)

	orgID, email, err := pkgjwt.Parse(testSecret, tok)
	require.NoError(t, err)
	assert.Equal(t, testOrgID, orgID)
	assert.Equal(t, "org@finanzas.test", email)
}

func TestJWT_TokenExpirado_RetornaError(t *testing.T) {
	tok, err := pkgjwt.Generate(testSecret, testOrgID, "org@finanzas.test", "finanzas-test", -1)
	require.NoError(t, err)

	_, _, err = pkgjwt.Parse(testSecret, tok)
	assert.Error(t, err, "token expirado debe retornar error")
}

func TestJWT_SecretIncorrecto_RetornaError(t *testing.T) {
	tok, err := pkgjwt.Generate(testSecret, testOrgID, "org@finanzas.test", "finanzas-test", 60)
	require.NoError(t, err)

	_, _, err = pkgjwt.Parse("otro-secret-completamente-distinto", tok)
	assert.Error(t, err)
}

func TestJWT_SinOrganizacion_RetornaError(t *testing.T) {
	tok, err := pkgjwt.Generate(testSecret, "", "org@finanzas.test", "finanzas-test", 60)
	require.NoError(t, err)

	_, _, err = pkgjwt.Parse(testSecret, tok)
	assert.Error(t, err)
}

func TestJWT_SecretVacio(t *testing.T) {
	_, err := pkgjwt.Generate("", testOrgID, "", "finanzas-test", 60)
	assert.Error(t, err)
}
