package model

type UserConfig struct {
	UserID        string `json:"user_id"`
	ActiveThemeID string `json:"active_theme_id"`
	Theme         *Theme `json:"theme,omitempty"`
	CreatedAt     string `json:"created_at"`
	UpdatedAt     string `json:"updated_at"`
}

type GetUserConfigRequest struct {
	UserID string `json:"user_id"`
}

type GetUserConfigResponse struct {
	Status
	Config UserConfig `json:"config"`
}

type CreateUserConfigRequest struct {
	UserID        string `json:"user_id"`
	ActiveThemeID string `json:"active_theme_id"`
}

type CreateUserConfigResponse struct {
	Status
	Created
	Config UserConfig `json:"config"`
}

type UpdateUserConfigRequest struct {
	UserID        string  `json:"user_id"`
	ActiveThemeID *string `json:"active_theme_id"`
}

type UpdateUserConfigResponse struct {
	Status
	Config UserConfig `json:"config"`
}

type DeleteUserConfigRequest struct {
	UserID string `json:"user_id"`
}

type DeleteUserConfigResponse struct {
	Status
}
