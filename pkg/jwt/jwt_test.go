package jwt_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	pkgjwt "github.com/jhoicas/reportes-taller/pkg/jwt"
)

func TestGenerateYParse(t *testing.T) {
	tok, err := pkgjwt.Generate("secreto", "u-1", pkgjwt.RoleAdmin, "reportes-taller", 5)
	require.NoError(t, err)

	userID, role, err := pkgjwt.Parse("secreto", tok)
	require.NoError(t, err)
	assert.Equal(t, "u-1", userID)
	assert.Equal(t, pkgjwt.RoleAdmin, role)
}

func TestParse_FirmaIncorrecta(t *testing.T) {
	tok, err := pkgjwt.Generate("secreto", "u-1", pkgjwt.RoleVendedor, "x", 5)
	require.NoError(t, err)

	_, _, err = pkgjwt.Parse("otro-secreto", tok)
	assert.Error(t, err)
}

func TestParse_Expirado(t *testing.T) {
	tok, err := pkgjwt.Generate("secreto", "u-1", pkgjwt.RoleVendedor, "x", -1)
	require.NoError(t, err)

	_, _, err = pkgjwt.Parse("secreto", tok)
	assert.Error(t, err)
}

func TestSecretVacio(t *testing.T) {
	_, err := pkgjwt.Generate("", "u", "admin", "x", 5)
	assert.Error(t, err)
	_, _, err = pkgjwt.Parse("", "token")
	assert.Error(t, err)
}
