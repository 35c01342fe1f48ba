package sqlite

import (
	"context"
	"database/sql"

	"github.com/jhoicas/maestros-api/internal/domain"
	"github.com/jhoicas/maestros-api/internal/domain/repository"
)

var _ repository.TxRunner = (*TxRunner)(nil)

// TxRunner ejecuta callbacks dentro de una transacción SQLite.
type TxRunner struct {
	db *sql.DB
}

func NewTxRunner(db *sql.DB) *TxRunner {
	return &TxRunner{db: db}
}

// Run inicia una transacción, ejecuta fn con repos atados a la tx y hace Commit o Rollback.
func (r *TxRunner) Run(ctx context.Context, fn func(repos repository.EntidadRepos) error) error {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return domain.DataAccess("begin transaction", err)
	}
	defer func() { _ = tx.Rollback() }()

	repos := repository.EntidadRepos{
		Entidades:          NewEntidadRepository(tx),
		TiposDocumento:     NewTipoDocumentoRepository(tx),
		TiposContribuyente: NewTipoContribuyenteRepository(tx),
	}
	if err := fn(repos); err != nil {
		return err
	}
	if err := tx.Commit(); err != nil {
		return domain.DataAccess("commit transaction", err)
	}
	return nil
}
