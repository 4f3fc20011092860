package model

// AccessToken is the object carried in the obj claim of a session token.
type AccessToken struct {
	ID       string `json:"id"`
	Username string `json:"username"`
}

type RegisterRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

type RegisterResponse struct {
	Status
	Created
	User    User        `json:"user"`
	Profile UserProfile `json:"profile"`
}

type LoginRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

type LoginResponse struct {
	Status
	Token string `json:"token"`
	User  User   `json:"user"`
}
