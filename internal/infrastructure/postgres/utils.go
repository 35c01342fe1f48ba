package postgres

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jhoicas/maestros-api/internal/domain"
)

// Querier es la superficie común de *pgxpool.Pool y pgx.Tx; los repositorios aceptan cualquiera.
type Querier interface {
	Exec(ctx context.Context, sql string, args ...any) (pgconn.CommandTag, error)
	Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error)
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
}

// isUniqueViolation verifica si un error es una violación de constraint único (23505).
func isUniqueViolation(err error) bool {
	var pgErr *pgconn.PgError
	return errors.As(err, &pgErr) && pgErr.Code == "23505"
}

// writeErr traduce 23505 a ErrDuplicate; el resto se reporta como fallo de acceso a datos.
func writeErr(op string, err error, duplicateMsg string) error {
	if isUniqueViolation(err) {
		return domain.Duplicate("%s", duplicateMsg)
	}
	return domain.DataAccess(op, err)
}
