package domain

import (
	"context"
	"errors"
	"regexp"
	"unicode/utf8"

	"github.com/nums-lab/backend/pkg/crypto"
	"github.com/nums-lab/backend/pkg/errorx"
	"github.com/nums-lab/backend/pkg/xcontext"
	"gorm.io/gorm"
)

const (
	minUsernameLength = 3
	maxUsernameLength = 50
	maxNicknameLength = 50
	maxLevel          = 999
)

var usernameRegex = regexp.MustCompile(`^[A-Za-z0-9_]+$`)

func checkUsername(username string) error {
	if len(username) < minUsernameLength {
		return errorx.New(errorx.BadRequest, errorx.ReasonInvalidUsername,
			"Username too short (at least %d characters)", minUsernameLength)
	}

	if len(username) > maxUsernameLength {
		return errorx.New(errorx.BadRequest, errorx.ReasonInvalidUsername,
			"Username too long (at most %d characters)", maxUsernameLength)
	}

	if !usernameRegex.MatchString(username) {
		return errorx.New(errorx.BadRequest, errorx.ReasonInvalidUsername,
			"Username contains invalid characters")
	}

	return nil
}

func checkNickname(nickname string) error {
	if nickname == "" || utf8.RuneCountInString(nickname) > maxNicknameLength {
		return errorx.New(errorx.BadRequest, errorx.ReasonInvalidProfile,
			"Nickname must have 1 to %d characters", maxNicknameLength)
	}

	return nil
}

func checkLevel(level int) error {
	if level < 0 || level > maxLevel {
		return errorx.New(errorx.BadRequest, errorx.ReasonInvalidProfile,
			"Level must be between 0 and %d", maxLevel)
	}

	return nil
}

func checkExperience(experience int) error {
	if experience < 0 {
		return errorx.New(errorx.BadRequest, errorx.ReasonInvalidProfile,
			"Experience must not be negative")
	}

	return nil
}

// hashPassword applies the password policy and the configured bcrypt cost.
func hashPassword(ctx context.Context, password string) (string, error) {
	hash, err := crypto.HashPassword(password, xcontext.Configs(ctx).Auth.BcryptCost)
	if err != nil {
		if errors.Is(err, crypto.ErrPasswordTooShort) {
			return "", errorx.New(errorx.BadRequest, errorx.ReasonPasswordPolicyViolation,
				"Password must be at least %d characters", crypto.MinPasswordLength)
		}

		xcontext.Logger(ctx).Errorf("Cannot hash password: %v", err)
		return "", errorx.Unknown
	}

	return hash, nil
}

func isNotFound(err error) bool {
	return errors.Is(err, gorm.ErrRecordNotFound)
}

// storeError logs err and converts it to the error sent to the client.
func storeError(ctx context.Context, err error, format string, args ...any) error {
	errx := errorx.FromDB(err)
	if errx.Code == errorx.Internal {
		xcontext.Logger(ctx).Errorf(format+": %v", append(args, err)...)
	} else {
		xcontext.Logger(ctx).Warnf(format+": %v", append(args, err)...)
	}

	return errx
}

func requireOwner(ctx context.Context, userID string) error {
	if userID == "" || xcontext.RequestUserID(ctx) != userID {
		return errorx.New(errorx.PermissionDenied, errorx.ReasonOwnershipRequired,
			"You can only access your own resources")
	}

	return nil
}
