package password_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tu-usuario/crm-eventos/pkg/password"
)

func TestHash_DosLlamadasProducenDigestsDistintos(t *testing.T) {
	h1, err := password.Hash("correcthorse")
	require.NoError(t, err)
	h2, err := password.Hash("correcthorse")
	require.NoError(t, err)

	assert.NotEqual(t, h1, h2, "el salt aleatorio debe producir digests distintos")
	assert.True(t, password.Verify("correcthorse", h1), "el primer digest debe verificar")
	assert.True(t, password.Verify("correcthorse", h2), "el segundo digest debe verificar")
}

func TestVerify_PasswordIncorrecto(t *testing.T) {
	h, err := password.Hash("secreto123")
	require.NoError(t, err)

	assert.False(t, password.Verify("otro-password", h))
}

func TestVerify_DigestMalformado_DevuelveFalse(t *testing.T) {
	// Nunca debe lanzar pánico ni propagar error: solo false.
	assert.False(t, password.Verify("secreto123", "no-es-un-hash-bcrypt"))
	assert.False(t, password.Verify("secreto123", ""))
}
