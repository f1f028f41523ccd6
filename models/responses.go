package models

// AuthResponse is the success payload of the register and login endpoints:
// the created or authenticated user together with a signed bearer token.
// The User value never carries the password hash (see [User.PasswordHash]).
type AuthResponse struct {
	User  User   `json:"user"`
	Token string `json:"token"`
}

// UserResponse wraps a single user, as returned by GET /api/auth/me.
type UserResponse struct {
	User User `json:"user"`
}
