package repository

import (
	"context"

	"github.com/jhoicas/maestros-api/internal/domain/entity"
)

// TipoDocumentoRepository define el puerto de persistencia para TipoDocumento.
// Las búsquedas devuelven (nil, nil) cuando no hay registro.
type TipoDocumentoRepository interface {
	List(ctx context.Context) ([]*entity.TipoDocumento, error)
	ListByEstado(ctx context.Context, estado bool) ([]*entity.TipoDocumento, error)
	GetByID(ctx context.Context, id int64) (*entity.TipoDocumento, error)
	GetByCodigo(ctx context.Context, codigo string) (*entity.TipoDocumento, error)
	GetByNombre(ctx context.Context, nombre string) (*entity.TipoDocumento, error)
	Create(ctx context.Context, t *entity.TipoDocumento) error
	Update(ctx context.Context, t *entity.TipoDocumento) error
	Delete(ctx context.Context, id int64) error
}
