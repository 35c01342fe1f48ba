package usecase

import (
	"context"

	"github.com/jhoicas/maestros-api/internal/application/dto"
	"github.com/jhoicas/maestros-api/internal/domain"
	"github.com/jhoicas/maestros-api/internal/domain/entity"
	"github.com/jhoicas/maestros-api/internal/domain/repository"
)

// TipoDocumentoUseCase casos de uso CRUD para tipos de documento.
type TipoDocumentoUseCase struct {
	repo repository.TipoDocumentoRepository
}

// NewTipoDocumentoUseCase construye el caso de uso.
func NewTipoDocumentoUseCase(repo repository.TipoDocumentoRepository) *TipoDocumentoUseCase {
	return &TipoDocumentoUseCase{repo: repo}
}

// List devuelve todos los tipos de documento.
func (uc *TipoDocumentoUseCase) List(ctx context.Context) ([]dto.TipoDocumentoResponse, error) {
	list, err := uc.repo.List(ctx)
	if err != nil {
		return nil, err
	}
	return toTipoDocumentoResponses(list), nil
}

// ListByEstado devuelve los tipos de documento activos o inactivos.
func (uc *TipoDocumentoUseCase) ListByEstado(ctx context.Context, estado bool) ([]dto.TipoDocumentoResponse, error) {
	list, err := uc.repo.ListByEstado(ctx, estado)
	if err != nil {
		return nil, err
	}
	return toTipoDocumentoResponses(list), nil
}

// GetByID obtiene un tipo de documento o ErrNotFound.
func (uc *TipoDocumentoUseCase) GetByID(ctx context.Context, id int64) (*dto.TipoDocumentoResponse, error) {
	t, err := uc.find(ctx, id)
	if err != nil {
		return nil, err
	}
	return toTipoDocumentoResponse(t), nil
}

// Create valida, verifica que código y nombre no existan y persiste con estado=true por defecto.
func (uc *TipoDocumentoUseCase) Create(ctx context.Context, in dto.CreateTipoDocumentoRequest) (*dto.TipoDocumentoResponse, error) {
	if err := dto.Validate(in); err != nil {
		return nil, err
	}
	if err := uc.checkCodigo(ctx, in.Codigo, 0); err != nil {
		return nil, err
	}
	if err := uc.checkNombre(ctx, in.Nombre, 0); err != nil {
		return nil, err
	}
	t := &entity.TipoDocumento{
		Codigo:      in.Codigo,
		Nombre:      in.Nombre,
		Descripcion: in.Descripcion,
		Estado:      boolOr(in.Estado, true),
	}
	if err := uc.repo.Create(ctx, t); err != nil {
		return nil, err
	}
	return toTipoDocumentoResponse(t), nil
}

// Update aplica solo los campos presentes. Un registro puede conservar su propio código y nombre.
func (uc *TipoDocumentoUseCase) Update(ctx context.Context, id int64, in dto.UpdateTipoDocumentoRequest) (*dto.TipoDocumentoResponse, error) {
	if err := dto.Validate(in); err != nil {
		return nil, err
	}
	t, err := uc.find(ctx, id)
	if err != nil {
		return nil, err
	}
	if in.Codigo != nil {
		if err := uc.checkCodigo(ctx, *in.Codigo, t.ID); err != nil {
			return nil, err
		}
		t.Codigo = *in.Codigo
	}
	if in.Nombre != nil {
		if err := uc.checkNombre(ctx, *in.Nombre, t.ID); err != nil {
			return nil, err
		}
		t.Nombre = *in.Nombre
	}
	if in.Descripcion != nil {
		t.Descripcion = *in.Descripcion
	}
	t.Estado = boolOr(in.Estado, t.Estado)
	if err := uc.repo.Update(ctx, t); err != nil {
		return nil, err
	}
	return toTipoDocumentoResponse(t), nil
}

// Delete elimina un tipo de documento existente. No verifica entidades que lo referencian.
func (uc *TipoDocumentoUseCase) Delete(ctx context.Context, id int64) error {
	if _, err := uc.find(ctx, id); err != nil {
		return err
	}
	return uc.repo.Delete(ctx, id)
}

func (uc *TipoDocumentoUseCase) find(ctx context.Context, id int64) (*entity.TipoDocumento, error) {
	t, err := uc.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if t == nil {
		return nil, domain.NotFound("El tipo de documento con el ID (%d) no existe.", id)
	}
	return t, nil
}

// checkCodigo falla con ErrDuplicate si otro registro (distinto de selfID) ya usa el código.
func (uc *TipoDocumentoUseCase) checkCodigo(ctx context.Context, codigo string, selfID int64) error {
	existing, err := uc.repo.GetByCodigo(ctx, codigo)
	if err != nil {
		return err
	}
	if existing != nil && existing.ID != selfID {
		return domain.Duplicate("El tipo de documento con el código (%s) ya existe.", codigo)
	}
	return nil
}

func (uc *TipoDocumentoUseCase) checkNombre(ctx context.Context, nombre string, selfID int64) error {
	existing, err := uc.repo.GetByNombre(ctx, nombre)
	if err != nil {
		return err
	}
	if existing != nil && existing.ID != selfID {
		return domain.Duplicate("El tipo de documento con el nombre (%s) ya existe.", nombre)
	}
	return nil
}

func toTipoDocumentoResponse(t *entity.TipoDocumento) *dto.TipoDocumentoResponse {
	if t == nil {
		return nil
	}
	return &dto.TipoDocumentoResponse{
		ID:          t.ID,
		Codigo:      t.Codigo,
		Nombre:      t.Nombre,
		Descripcion: t.Descripcion,
		Estado:      t.Estado,
	}
}

func toTipoDocumentoResponses(list []*entity.TipoDocumento) []dto.TipoDocumentoResponse {
	out := make([]dto.TipoDocumentoResponse, 0, len(list))
	for _, t := range list {
		out = append(out, *toTipoDocumentoResponse(t))
	}
	return out
}

func boolOr(v *bool, def bool) bool {
	if v == nil {
		return def
	}
	return *v
}
