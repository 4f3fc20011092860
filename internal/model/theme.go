package model

type Theme struct {
	ID        string            `json:"theme_id"`
	Name      string            `json:"name"`
	NameKR    string            `json:"name_kr,omitempty"`
	Mode      string            `json:"mode"`
	Colors    map[string]string `json:"colors"`
	Variables map[string]any    `json:"variables"`
	IsDefault bool              `json:"is_default"`
	CreatedAt string            `json:"created_at"`
	UpdatedAt string            `json:"updated_at"`
}

type GetThemesRequest struct{}

type GetThemesResponse struct {
	Status
	Themes        []Theme `json:"themes"`
	ActiveThemeID *string `json:"activeThemeId,omitempty"`
}

type GetThemeRequest struct {
	ThemeID string `json:"theme_id"`
}

type GetThemeResponse struct {
	Status
	Theme Theme `json:"theme"`
}

type CreateThemeRequest struct {
	Name      string            `json:"name"`
	NameKR    string            `json:"name_kr"`
	Mode      string            `json:"mode"`
	Colors    map[string]string `json:"colors"`
	Variables map[string]any    `json:"variables"`
	IsDefault bool              `json:"is_default"`
}

type CreateThemeResponse struct {
	Status
	Created
	Theme Theme `json:"theme"`
}

type UpdateThemeRequest struct {
	ThemeID   string            `json:"theme_id"`
	Name      *string           `json:"name"`
	NameKR    *string           `json:"name_kr"`
	Mode      *string           `json:"mode"`
	Colors    map[string]string `json:"colors"`
	Variables map[string]any    `json:"variables"`
	IsDefault *bool             `json:"is_default"`
}

type UpdateThemeResponse struct {
	Status
	Theme Theme `json:"theme"`
}

type DeleteThemeRequest struct {
	ThemeID string `json:"theme_id"`
}

type DeleteThemeResponse struct {
	Status
}
