package migration

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"github.com/nums-lab/backend/internal/entity"
	"github.com/nums-lab/backend/pkg/xcontext"
	"gorm.io/gorm"
)

var DefaultThemes = []entity.Theme{
	{
		Name:   "light",
		NameKR: "라이트",
		Mode:   entity.ThemeModeLight,
		Colors: entity.ThemeColors{
			Primary:      "#1976D2",
			Secondary:    "#424242",
			Accent:       "#82B1FF",
			Error:        "#FF5252",
			Info:         "#2196F3",
			Success:      "#4CAF50",
			Warning:      "#FB8C00",
			Background:   "#FFFFFF",
			Surface:      "#FFFFFF",
			OnPrimary:    "#FFFFFF",
			OnSecondary:  "#FFFFFF",
			OnBackground: "#000000",
			OnSurface:    "#000000",
		},
		IsDefault: true,
	},
	{
		Name:   "dark",
		NameKR: "다크",
		Mode:   entity.ThemeModeDark,
		Colors: entity.ThemeColors{
			Primary:      "#2196F3",
			Secondary:    "#424242",
			Accent:       "#FF4081",
			Error:        "#FF5252",
			Info:         "#2196F3",
			Success:      "#4CAF50",
			Warning:      "#FB8C00",
			Background:   "#121212",
			Surface:      "#1E1E1E",
			OnPrimary:    "#FFFFFF",
			OnSecondary:  "#FFFFFF",
			OnBackground: "#FFFFFF",
			OnSurface:    "#FFFFFF",
		},
		IsDefault: true,
	},
}

// migrate0001 seeds the default themes. Themes that already exist by name
// are left untouched.
func migrate0001(ctx context.Context) error {
	for _, theme := range DefaultThemes {
		var existing entity.Theme
		err := xcontext.DB(ctx).Where("name=?", theme.Name).Take(&existing).Error
		if err == nil {
			continue
		}

		if !errors.Is(err, gorm.ErrRecordNotFound) {
			return err
		}

		theme.ID = uuid.NewString()
		if err := xcontext.DB(ctx).Create(&theme).Error; err != nil {
			return err
		}
	}

	return nil
}
