package jwt_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	pkgjwt "github.com/jhoicas/Planta-api/pkg/jwt"
)

const testSecret = "test-secret-key-for-unit-tests"

func TestGenerateYParse(t *testing.T) {
	tok, err := pkgjwt.Generate(testSecret, "user-1", "Ana Pérez", "planta-api", 60)
	require.NoError(t, err)

	userID, fullName, err := pkgjwt.Parse(testSecret, tok)
	require.NoError(t, err)
	assert.Equal(t, "user-1", userID)
	assert.Equal(t, "Ana Pérez", fullName)
}

func TestParse_FirmaIncorrecta(t *testing.T) {
	tok, err := pkgjwt.Generate(testSecret, "user-1", "Ana Pérez", "planta-api", 60)
	require.NoError(t, err)

	_, _, err = pkgjwt.Parse("otro-secret", tok)
	assert.Error(t, err)
}

func TestParse_TokenExpirado(t *testing.T) {
	tok, err := pkgjwt.Generate(testSecret, "user-1", "Ana Pérez", "planta-api", -5)
	require.NoError(t, err)

	_, _, err = pkgjwt.Parse(testSecret, tok)
	assert.Error(t, err)
}

func TestGenerate_SecretVacio(t *testing.T) {
	_, err := pkgjwt.Generate("", "user-1", "Ana Pérez", "planta-api", 60)
	assert.Error(t, err)
}
