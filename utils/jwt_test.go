package utils

import (
	"testing"

	"github.com/golang-jwt/jwt"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func signedToken(t *testing.T, claims jwt.MapClaims) string {
	t.Helper()
	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte("backend-only-secret"))
	require.NoError(t, err)
	return token
}

func TestDecodeStaffClaims(t *testing.T) {
	token := signedToken(t, jwt.MapClaims{"username": "alice", "role": "Admin"})

	claims, err := DecodeStaffClaims(token)
	require.NoError(t, err)
	assert.Equal(t, "alice", claims.Username)
	assert.Equal(t, "Admin", claims.Role)
}

func TestDecodeStaffClaimsDefaultsRole(t *testing.T) {
	token := signedToken(t, jwt.MapClaims{"username": "bob"})

	claims, err := DecodeStaffClaims(token)
	require.NoError(t, err)
	assert.Equal(t, "bob", claims.Username)
	assert.Equal(t, DefaultRole, claims.Role)
}

func TestDecodeStaffClaimsMalformedToken(t *testing.T) {
	claims, err := DecodeStaffClaims("not-a-jwt")
	assert.Error(t, err)
	assert.Equal(t, DefaultRole, claims.Role)
}

func TestRoleAllows(t *testing.T) {
	assert.True(t, RoleAllows("Admin", "Supervisor", "Admin"))
	assert.False(t, RoleAllows("Receptionist", "Supervisor", "Admin"))
	assert.False(t, RoleAllows("", "Admin"))
}
