package bonus

import (
	"errors"
	"strings"

	bonuserrors "github.com/Tanvir-Hossain-Khondaker-Nabil/global-pos-sub000/internal/bonus/errors"

	"github.com/jackc/pgx/v5/pgconn"
	"gorm.io/gorm"
)

func mapRepositoryError(err error) error {
	if err == nil {
		return nil
	}

	if errors.Is(err, gorm.ErrRecordNotFound) {
		return bonuserrors.ErrSettingNotFound
	}

	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		if pgErr.Code == "23505" && pgErr.ConstraintName == "idx_bonus_applications_key" {
			return bonuserrors.ErrDuplicateApplication
		}
	}

	errMsg := strings.ToLower(err.Error())
	if strings.Contains(errMsg, "duplicate key value") && strings.Contains(errMsg, "idx_bonus_applications_key") {
		return bonuserrors.ErrDuplicateApplication
	}

	return err
}
