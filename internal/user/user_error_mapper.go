package user

import (
	"errors"
	"strings"

	usererrors "github.com/pittisunilkumar3/talent-spark-sub001/internal/user/errors"

	"github.com/jackc/pgx/v5/pgconn"
	"go.mongodb.org/mongo-driver/mongo"
	"gorm.io/gorm"
)

func mapRepositoryError(err error) error {
	if err == nil {
		return nil
	}

	if errors.Is(err, gorm.ErrRecordNotFound) || errors.Is(err, mongo.ErrNoDocuments) {
		return usererrors.ErrUserNotFound
	}

	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) && pgErr.Code == "23505" {
		if strings.Contains(pgErr.ConstraintName, "username") {
			return usererrors.ErrUsernameAlreadyExists
		}
		return usererrors.ErrEmailAlreadyExists
	}

	if mongo.IsDuplicateKeyError(err) {
		if strings.Contains(err.Error(), "username") {
			return usererrors.ErrUsernameAlreadyExists
		}
		return usererrors.ErrEmailAlreadyExists
	}

	errMsg := strings.ToLower(err.Error())
	if strings.Contains(errMsg, "duplicate key value") {
		if strings.Contains(errMsg, "username") {
			return usererrors.ErrUsernameAlreadyExists
		}
		return usererrors.ErrEmailAlreadyExists
	}

	return err
}
