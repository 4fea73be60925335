package models

// AuthUser is the identity decoded from a verified access token.
type AuthUser struct {
	Email string `json:"email"`
	Role  string `json:"role"`
}

// HasRole reports whether the user's role is one of roles.
func (u *AuthUser) HasRole(roles ...string) bool {
	if u == nil {
		return false
	}
	for _, role := range roles {
		if u.Role == role {
			return true
		}
	}
	return false
}
