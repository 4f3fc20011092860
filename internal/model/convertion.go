package model

import (
	"time"

	"github.com/nums-lab/backend/internal/entity"
)

func formatTime(t time.Time) string {
	if t.IsZero() {
		return ""
	}

	return t.Format(DefaultTimeLayout)
}

// ConvertUser never exposes the password hash.
func ConvertUser(user *entity.User) User {
	if user == nil {
		return User{}
	}

	return User{
		ID:        user.ID,
		Username:  user.Username,
		IsActive:  user.IsActive,
		CreatedAt: formatTime(user.CreatedAt),
		UpdatedAt: formatTime(user.UpdatedAt),
	}
}

func ConvertUsers(users []entity.User) []User {
	result := []User{}
	for i := range users {
		result = append(result, ConvertUser(&users[i]))
	}

	return result
}

func ConvertUserProfile(profile *entity.UserProfile) UserProfile {
	if profile == nil {
		return UserProfile{}
	}

	return UserProfile{
		UserID:     profile.UserID,
		Nickname:   profile.Nickname,
		Level:      profile.Level,
		Experience: profile.Experience,
		CreatedAt:  formatTime(profile.CreatedAt),
		UpdatedAt:  formatTime(profile.UpdatedAt),
	}
}

func ConvertUserConfig(cfg *entity.UserConfig, theme *entity.Theme) UserConfig {
	if cfg == nil {
		return UserConfig{}
	}

	result := UserConfig{
		UserID:        cfg.UserID,
		ActiveThemeID: cfg.ActiveThemeID,
		CreatedAt:     formatTime(cfg.CreatedAt),
		UpdatedAt:     formatTime(cfg.UpdatedAt),
	}

	if theme != nil {
		t := ConvertTheme(theme)
		result.Theme = &t
	}

	return result
}

func ConvertTheme(theme *entity.Theme) Theme {
	if theme == nil {
		return Theme{}
	}

	return Theme{
		ID:        theme.ID,
		Name:      theme.Name,
		NameKR:    theme.NameKR,
		Mode:      string(theme.Mode),
		Colors:    theme.Colors.ToMap(),
		Variables: theme.Variables,
		IsDefault: theme.IsDefault,
		CreatedAt: formatTime(theme.CreatedAt),
		UpdatedAt: formatTime(theme.UpdatedAt),
	}
}

func ConvertThemes(themes []entity.Theme) []Theme {
	result := []Theme{}
	for i := range themes {
		result = append(result, ConvertTheme(&themes[i]))
	}

	return result
}

func ConvertGame(game *entity.Game) Game {
	if game == nil {
		return Game{}
	}

	return Game{
		ID:                 game.ID,
		Round:              game.Round,
		DrawDate:           game.DrawDate.Format(DefaultDateLayout),
		FirstPrizeWinners:  game.FirstPrizeWinners,
		FirstPrizeAmount:   game.FirstPrizeAmount,
		SecondPrizeWinners: game.SecondPrizeWinners,
		SecondPrizeAmount:  game.SecondPrizeAmount,
		ThirdPrizeWinners:  game.ThirdPrizeWinners,
		ThirdPrizeAmount:   game.ThirdPrizeAmount,
		FourthPrizeWinners: game.FourthPrizeWinners,
		FourthPrizeAmount:  game.FourthPrizeAmount,
		FifthPrizeWinners:  game.FifthPrizeWinners,
		FifthPrizeAmount:   game.FifthPrizeAmount,
		Number1:            game.Number1,
		Number2:            game.Number2,
		Number3:            game.Number3,
		Number4:            game.Number4,
		Number5:            game.Number5,
		Number6:            game.Number6,
		BonusNumber:        game.BonusNumber,
		CreatedAt:          formatTime(game.CreatedAt),
		UpdatedAt:          formatTime(game.UpdatedAt),
	}
}

func ConvertGames(games []entity.Game) []Game {
	result := []Game{}
	for i := range games {
		result = append(result, ConvertGame(&games[i]))
	}

	return result
}

func ConvertAdmin(admin *entity.Admin) Admin {
	if admin == nil {
		return Admin{}
	}

	permissions := []string{}
	for _, p := range admin.Permissions {
		permissions = append(permissions, string(p))
	}

	return Admin{
		ID:          admin.ID,
		UserID:      admin.UserID,
		Role:        string(admin.Role),
		Permissions: permissions,
		IsActive:    admin.IsActive,
		CreatedAt:   formatTime(admin.CreatedAt),
		UpdatedAt:   formatTime(admin.UpdatedAt),
	}
}
