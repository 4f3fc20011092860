package testutil

import (
	"context"
	"reflect"
	"time"

	"github.com/google/uuid"
	"github.com/nums-lab/backend/internal/entity"
	"github.com/nums-lab/backend/internal/repository"
	"github.com/nums-lab/backend/pkg/crypto"
	"golang.org/x/crypto/bcrypt"
)

const SamplePassword = "password1"

var samplePasswordHash string

func passwordHash() string {
	if samplePasswordHash == "" {
		hash, err := crypto.HashPassword(SamplePassword, bcrypt.MinCost)
		if err != nil {
			panic(err)
		}
		samplePasswordHash = hash
	}

	return samplePasswordHash
}

// SampleUser creates a new active user whose password is SamplePassword. The
// sample user can be overwritten by non-zero fields of init.
func SampleUser(ctx context.Context, init *entity.User) (entity.User, error) {
	id := uuid.NewString()
	sample := &entity.User{
		Base:     entity.Base{ID: id},
		Username: "user_" + id[:8],
		Password: passwordHash(),
		IsActive: true,
	}

	if init != nil {
		overwriteFields(sample, *init)
	}

	err := repository.NewUserRepository().Create(ctx, sample)
	return *sample, err
}

func SampleUserProfile(ctx context.Context, init *entity.UserProfile) (entity.UserProfile, error) {
	sample := &entity.UserProfile{
		Nickname: "nick_" + uuid.NewString()[:8],
	}

	if init != nil {
		overwriteFields(sample, *init)
	}

	err := repository.NewUserProfileRepository().Create(ctx, sample)
	return *sample, err
}

func SampleTheme(ctx context.Context, init *entity.Theme) (entity.Theme, error) {
	id := uuid.NewString()
	sample := &entity.Theme{
		Base:   entity.Base{ID: id},
		Name:   "theme_" + id[:8],
		Mode:   entity.ThemeModeLight,
		Colors: SampleColors(),
	}

	if init != nil {
		overwriteFields(sample, *init)
	}

	err := repository.NewThemeRepository().Create(ctx, sample)
	return *sample, err
}

func SampleColors() entity.ThemeColors {
	return entity.ThemeColors{
		Primary:      "#1976D2",
		Secondary:    "#424242",
		Accent:       "#82B1FF",
		Error:        "#FF5252",
		Info:         "#2196F3",
		Success:      "#4CAF50",
		Warning:      "#FFC107",
		Background:   "#FFFFFF",
		Surface:      "#FFFFFF",
		OnPrimary:    "#FFFFFF",
		OnSecondary:  "#FFFFFF",
		OnBackground: "#000000",
		OnSurface:    "#000000",
	}
}

// SampleColorMap returns SampleColors keyed by colour name, as clients send it.
func SampleColorMap() map[string]string {
	return SampleColors().ToMap()
}

func SampleAdmin(ctx context.Context, init *entity.Admin) (entity.Admin, error) {
	sample := &entity.Admin{
		Base:        entity.Base{ID: uuid.NewString()},
		Role:        entity.AdminRoleAdmin,
		Permissions: entity.Array[entity.Permission]{},
		IsActive:    true,
	}

	if init != nil {
		overwriteFields(sample, *init)
	}

	err := repository.NewAdminRepository().Create(ctx, sample)
	return *sample, err
}

// SampleGame creates the game of the given round drawn on drawDate.
func SampleGame(ctx context.Context, round int, drawDate time.Time) (entity.Game, error) {
	sample := &entity.Game{
		Base:               entity.Base{ID: uuid.NewString()},
		Round:              round,
		DrawDate:           drawDate,
		FirstPrizeWinners:  12,
		FirstPrizeAmount:   2_100_000_000,
		SecondPrizeWinners: 70,
		SecondPrizeAmount:  60_000_000,
		ThirdPrizeWinners:  3000,
		ThirdPrizeAmount:   1_500_000,
		FourthPrizeWinners: 150_000,
		FourthPrizeAmount:  50_000,
		FifthPrizeWinners:  2_500_000,
		FifthPrizeAmount:   5000,
		Number1:            3,
		Number2:            11,
		Number3:            19,
		Number4:            25,
		Number5:            33,
		Number6:            42,
		BonusNumber:        7,
	}

	err := repository.NewGameRepository().Create(ctx, sample)
	return *sample, err
}

func overwriteFields[T any](origin *T, overwrite T) {
	originValue := reflect.ValueOf(origin).Elem()
	overwriteValue := reflect.ValueOf(overwrite)

	for i := 0; i < overwriteValue.NumField(); i++ {
		overwriteField := overwriteValue.Field(i)
		if !overwriteField.IsZero() {
			originValue.Field(i).Set(overwriteField)
		}
	}
}
