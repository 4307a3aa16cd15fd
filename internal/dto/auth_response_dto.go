package dto

// LoginResponse is the data payload of a successful login. The same tokens
// are also set as HTTP-only cookies; the body copy exists for clients that
// authenticate via the Authorization header instead.
type LoginResponse struct {
	User         UserResponse `json:"user"`
	AccessToken  string       `json:"accessToken"`
	RefreshToken string       `json:"refreshToken"`
}

// RegisterResponse is the data payload of a successful signup. Signup issues
// tokens (the refresh token is persisted) but sets no cookies.
type RegisterResponse struct {
	User UserResponse `json:"user"`
}
