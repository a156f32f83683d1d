package employee

import (
	"errors"

	"github.com/jackc/pgx/v5/pgconn"
	"go.mongodb.org/mongo-driver/mongo"
	"gorm.io/gorm"

	employeeerrors "github.com/pittisunilkumar3/talent-spark-sub001/internal/employee/errors"
)

// mapRepositoryError folds both backends' storage errors into the
// package's sentinel errors.
func mapRepositoryError(err error) error {
	if err == nil {
		return nil
	}

	if errors.Is(err, gorm.ErrRecordNotFound) || errors.Is(err, mongo.ErrNoDocuments) {
		return employeeerrors.ErrEmployeeNotFound
	}

	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) && pgErr.Code == "23505" {
		return employeeerrors.ErrEmailAlreadyExists
	}
	if mongo.IsDuplicateKeyError(err) {
		return employeeerrors.ErrEmailAlreadyExists
	}

	return err
}
