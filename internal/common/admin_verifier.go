package common

import (
	"context"
	"errors"

	"github.com/nums-lab/backend/internal/entity"
	"github.com/nums-lab/backend/internal/repository"
	"github.com/nums-lab/backend/pkg/xcontext"
	"gorm.io/gorm"
)

var (
	ErrNotAdmin          = errors.New("user has no active admin grant")
	ErrPermissionMissing = errors.New("admin grant does not hold the required permissions")
)

type AdminVerifier struct {
	adminRepo repository.AdminRepository
}

func NewAdminVerifier(adminRepo repository.AdminRepository) *AdminVerifier {
	return &AdminVerifier{adminRepo: adminRepo}
}

// Verify returns the active grant of the request user. It returns ErrNotAdmin
// when the grant is missing or inactive and ErrPermissionMissing when an
// admin lacks one of the required permissions. Other errors come from the
// store.
func (v *AdminVerifier) Verify(
	ctx context.Context, required ...entity.Permission,
) (*entity.Admin, error) {
	admin, err := v.adminRepo.GetByUserID(ctx, xcontext.RequestUserID(ctx))
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotAdmin
		}

		return nil, err
	}

	if !admin.IsActive {
		return nil, ErrNotAdmin
	}

	if !admin.HasPermissions(required...) {
		return admin, ErrPermissionMissing
	}

	return admin, nil
}
