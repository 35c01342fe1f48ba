// Package sqlite implementa los repositorios sobre SQLite (modernc.org/sqlite, sin cgo).
// Se usa en desarrollo, en despliegues livianos y en los tests.
package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"

	moderncsqlite "modernc.org/sqlite"
	sqlite3 "modernc.org/sqlite/lib"

	"github.com/jhoicas/maestros-api/internal/domain"
)

const schema = `
CREATE TABLE IF NOT EXISTS tb_tipo_documento (
    id_tipo_documento INTEGER PRIMARY KEY AUTOINCREMENT,
    codigo            TEXT    NOT NULL UNIQUE,
    nombre            TEXT    NOT NULL UNIQUE,
    descripcion       TEXT    NOT NULL DEFAULT '',
    estado            BOOLEAN NOT NULL DEFAULT 1
);

CREATE TABLE IF NOT EXISTS tb_tipo_contribuyente (
    id_tipo_contribuyente INTEGER PRIMARY KEY AUTOINCREMENT,
    nombre                TEXT    NOT NULL UNIQUE,
    estado                BOOLEAN NOT NULL DEFAULT 1
);

CREATE TABLE IF NOT EXISTS tb_entidad (
    id_entidad            INTEGER PRIMARY KEY AUTOINCREMENT,
    id_tipo_documento     INTEGER NOT NULL REFERENCES tb_tipo_documento (id_tipo_documento),
    nro_documento         TEXT    NOT NULL UNIQUE,
    razon_social          TEXT    NOT NULL,
    nombre_comercial      TEXT    NOT NULL DEFAULT '',
    id_tipo_contribuyente INTEGER NOT NULL REFERENCES tb_tipo_contribuyente (id_tipo_contribuyente),
    direccion             TEXT    NOT NULL DEFAULT '',
    telefono              TEXT    NOT NULL DEFAULT '',
    estado                BOOLEAN NOT NULL DEFAULT 1
);

CREATE INDEX IF NOT EXISTS idx_entidad_estado ON tb_entidad (estado);

CREATE TABLE IF NOT EXISTS tb_usuario (
    id_usuario     INTEGER PRIMARY KEY AUTOINCREMENT,
    nombre_usuario TEXT    NOT NULL UNIQUE,
    contrasena     TEXT    NOT NULL,
    rol            TEXT    NOT NULL,
    estado         BOOLEAN NOT NULL DEFAULT 1
);
`

// Open abre la base (ruta de archivo o ":memory:"), activa claves foráneas y aplica el esquema.
// Se limita a una conexión: SQLite serializa escrituras y ":memory:" es por conexión.
func Open(ctx context.Context, path string) (*sql.DB, error) {
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("abrir sqlite: %w", err)
	}
	db.SetMaxOpenConns(1)

	for _, stmt := range []string{"PRAGMA foreign_keys = ON", "PRAGMA busy_timeout = 5000", schema} {
		if _, err := db.ExecContext(ctx, stmt); err != nil {
			db.Close()
			return nil, fmt.Errorf("inicializar sqlite: %w", err)
		}
	}
	return db, nil
}

// Querier es la superficie común de *sql.DB y *sql.Tx.
type Querier interface {
	ExecContext(ctx context.Context, query string, args ...any) (sql.Result, error)
	QueryContext(ctx context.Context, query string, args ...any) (*sql.Rows, error)
	QueryRowContext(ctx context.Context, query string, args ...any) *sql.Row
}

type rowScanner interface {
	Scan(dest ...any) error
}

func isUniqueViolation(err error) bool {
	var se *moderncsqlite.Error
	if errors.As(err, &se) && se.Code() == sqlite3.SQLITE_CONSTRAINT_UNIQUE {
		return true
	}
	return strings.Contains(err.Error(), "UNIQUE constraint failed")
}

func writeErr(op string, err error, duplicateMsg string) error {
	if isUniqueViolation(err) {
		return domain.Duplicate("%s", duplicateMsg)
	}
	return domain.DataAccess(op, err)
}
