package password_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"github.com/jhoicas/Finanzas-api/pkg/password"
)

func TestBcryptHasher_UsaCostoOcho(t *testing.T) {
	h := password.NewBcryptHasher(0)
	hash, err := h.Hash("secreto-123")
	require.NoError(t, err)

	cost, err := bcrypt.Cost([]byte(hash))
	require.NoError(t, err)
	assert.Equal(t, password.DefaultCost, cost)
	assert.NotContains(t, hash, "secreto-123")
}

func TestBcryptHasher_Compare(t *testing.T) {
	h := password.NewBcryptHasher(password.DefaultCost)
	hash, err := h.Hash("secreto-123")
	require.NoError(t, err)

	assert.NoError(t, h.Compare(hash, "secreto-123"))
	assert.Error(t, h.Compare(hash, "otra"))
}
