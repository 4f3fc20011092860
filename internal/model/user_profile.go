package model

type UserProfile struct {
	UserID     string `json:"user_id"`
	Nickname   string `json:"nickname"`
	Level      int    `json:"level"`
	Experience int    `json:"experience"`
	CreatedAt  string `json:"created_at"`
	UpdatedAt  string `json:"updated_at"`
}

type CreateUserProfileRequest struct {
	Nickname   string `json:"nickname"`
	Level      *int   `json:"level"`
	Experience *int   `json:"experience"`
}

type CreateUserProfileResponse struct {
	Status
	Created
	Profile UserProfile `json:"profile"`
}

type UpdateUserProfileRequest struct {
	Nickname   *string `json:"nickname"`
	Level      *int    `json:"level"`
	Experience *int    `json:"experience"`
}

type UpdateUserProfileResponse struct {
	Status
	Profile UserProfile `json:"profile"`
}
