package model

type User struct {
	ID        string `json:"user_id"`
	Username  string `json:"username"`
	IsActive  bool   `json:"is_active"`
	CreatedAt string `json:"created_at"`
	UpdatedAt string `json:"updated_at"`
}

type GetUsersRequest struct{}

type GetUsersResponse struct {
	Status
	Users []User `json:"users"`
}

type GetUserRequest struct {
	UserID string `json:"user_id"`
}

type GetUserResponse struct {
	Status
	User User `json:"user"`
}

type GetMeRequest struct{}

type GetMeResponse struct {
	Status
	Profile     UserProfile `json:"profile"`
	ActiveTheme *string     `json:"activeTheme"`
}

// UpdateMeRequest changes the account (username, password) and the profile
// (nickname, level, experience) of the caller. Absent fields are kept.
type UpdateMeRequest struct {
	Username   *string `json:"username"`
	Password   *string `json:"password"`
	Nickname   *string `json:"nickname"`
	Level      *int    `json:"level"`
	Experience *int    `json:"experience"`
}

type UpdateMeResponse struct {
	Status
	User    User        `json:"user"`
	Profile UserProfile `json:"profile"`
}

type DeleteMeRequest struct{}

type DeleteMeResponse struct {
	Status
}

type GetMyThemesRequest struct{}

type GetMyThemesResponse struct {
	Status
	AvailableThemes []Theme `json:"availableThemes"`
	ActiveTheme     *Theme  `json:"activeTheme"`
}

type UpdateMyThemeRequest struct {
	ThemeID string `json:"theme_id"`
}

type UpdateMyThemeResponse struct {
	Status
	UserConfig UserConfig `json:"userConfig"`
}
