package postgres

import (
	"context"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/jhoicas/maestros-api/internal/domain"
	"github.com/jhoicas/maestros-api/internal/domain/repository"
)

var _ repository.TxRunner = (*TxRunner)(nil)

// TxRunner ejecuta callbacks dentro de una transacción PostgreSQL.
type TxRunner struct {
	pool *pgxpool.Pool
}

// NewTxRunner construye el runner con el pool.
func NewTxRunner(pool *pgxpool.Pool) *TxRunner {
	return &TxRunner{pool: pool}
}

// Run inicia una transacción, ejecuta fn con repos atados a la tx y hace Commit o Rollback.
func (r *TxRunner) Run(ctx context.Context, fn func(repos repository.EntidadRepos) error) error {
	tx, err := r.pool.Begin(ctx)
	if err != nil {
		return domain.DataAccess("begin transaction", err)
	}
	defer func() { _ = tx.Rollback(ctx) }()

	repos := repository.EntidadRepos{
		Entidades:          NewEntidadRepository(tx),
		TiposDocumento:     NewTipoDocumentoRepository(tx),
		TiposContribuyente: NewTipoContribuyenteRepository(tx),
	}
	if err := fn(repos); err != nil {
		return err
	}
	if err := tx.Commit(ctx); err != nil {
		return domain.DataAccess("commit transaction", err)
	}
	return nil
}
