package utils

import (
	"github.com/golang-jwt/jwt"
)

// DefaultRole is assumed when the access token carries no role claim.
const DefaultRole = "Receptionist"

// StaffClaims are the claims the upstream backend embeds in access tokens.
type StaffClaims struct {
	Username string
	Role     string
}

// DecodeStaffClaims extracts username and role from an upstream access token
// WITHOUT verifying the signature. The signing key belongs to the backend;
// these claims gate UI affordances only and are re-verified server-side on
// every proxied request.
func DecodeStaffClaims(tokenString string) (StaffClaims, error) {
	out := StaffClaims{Role: DefaultRole}

	claims := jwt.MapClaims{}
	parser := &jwt.Parser{}
	if _, _, err := parser.ParseUnverified(tokenString, claims); err != nil {
		return out, err
	}

	if username, ok := claims["username"].(string); ok {
		out.Username = username
	}
	if role, ok := claims["role"].(string); ok && role != "" {
		out.Role = role
	}
	return out, nil
}

// RoleAllows reports whether a role is in the allowed set.
func RoleAllows(role string, allowed ...string) bool {
	for _, a := range allowed {
		if role == a {
			return true
		}
	}
	return false
}
