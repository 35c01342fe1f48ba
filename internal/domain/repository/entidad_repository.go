package repository

import (
	"context"

	"github.com/jhoicas/maestros-api/internal/domain/entity"
)

// EntidadRepository define el puerto de persistencia para Entidad.
// Las lecturas devuelven la entidad con TipoDocumento y TipoContribuyente cargados.
type EntidadRepository interface {
	List(ctx context.Context) ([]*entity.Entidad, error)
	ListByEstado(ctx context.Context, estado bool) ([]*entity.Entidad, error)
	GetByID(ctx context.Context, id int64) (*entity.Entidad, error)
	GetByNroDocumento(ctx context.Context, nroDocumento string) (*entity.Entidad, error)
	Create(ctx context.Context, e *entity.Entidad) error
	Update(ctx context.Context, e *entity.Entidad) error
	Delete(ctx context.Context, id int64) error
}

// EntidadRepos agrupa los repositorios atados a una misma transacción.
type EntidadRepos struct {
	Entidades          EntidadRepository
	TiposDocumento     TipoDocumentoRepository
	TiposContribuyente TipoContribuyenteRepository
}

// TxRunner ejecuta fn dentro de una transacción; Commit si fn devuelve nil, Rollback si no.
type TxRunner interface {
	Run(ctx context.Context, fn func(repos EntidadRepos) error) error
}
