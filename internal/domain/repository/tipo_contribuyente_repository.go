package repository

import (
	"context"

	"github.com/jhoicas/maestros-api/internal/domain/entity"
)

// TipoContribuyenteRepository define el puerto de persistencia para TipoContribuyente.
type TipoContribuyenteRepository interface {
	List(ctx context.Context) ([]*entity.TipoContribuyente, error)
	ListByEstado(ctx context.Context, estado bool) ([]*entity.TipoContribuyente, error)
	GetByID(ctx context.Context, id int64) (*entity.TipoContribuyente, error)
	GetByNombre(ctx context.Context, nombre string) (*entity.TipoContribuyente, error)
	Create(ctx context.Context, t *entity.TipoContribuyente) error
	Update(ctx context.Context, t *entity.TipoContribuyente) error
	Delete(ctx context.Context, id int64) error
}
