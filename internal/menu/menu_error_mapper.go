package menu

import (
	"errors"
	"strings"

	menuerrors "github.com/hoanvukhai/cafe-shop-management/internal/menu/errors"

	"github.com/jackc/pgx/v5/pgconn"
	"gorm.io/gorm"
)

func mapRepositoryError(err error) error {
	if err == nil {
		return nil
	}

	if errors.Is(err, gorm.ErrRecordNotFound) {
		return menuerrors.ErrMenuItemNotFound
	}

	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		if pgErr.Code == "23505" {
			return menuerrors.ErrMenuItemAlreadyExists
		}
	}

	if strings.Contains(strings.ToLower(err.Error()), "duplicate key value") {
		return menuerrors.ErrMenuItemAlreadyExists
	}

	return err
}
