package usecase

import (
	"context"

	"github.com/jhoicas/maestros-api/internal/application/dto"
	"github.com/jhoicas/maestros-api/internal/domain"
	"github.com/jhoicas/maestros-api/internal/domain/entity"
	"github.com/jhoicas/maestros-api/internal/domain/repository"
)

// TipoContribuyenteUseCase casos de uso CRUD para tipos de contribuyente.
type TipoContribuyenteUseCase struct {
	repo repository.TipoContribuyenteRepository
}

// NewTipoContribuyenteUseCase construye el caso de uso.
func NewTipoContribuyenteUseCase(repo repository.TipoContribuyenteRepository) *TipoContribuyenteUseCase {
	return &TipoContribuyenteUseCase{repo: repo}
}

func (uc *TipoContribuyenteUseCase) List(ctx context.Context) ([]dto.TipoContribuyenteResponse, error) {
	list, err := uc.repo.List(ctx)
	if err != nil {
		return nil, err
	}
	return toTipoContribuyenteResponses(list), nil
}

func (uc *TipoContribuyenteUseCase) ListByEstado(ctx context.Context, estado bool) ([]dto.TipoContribuyenteResponse, error) {
	list, err := uc.repo.ListByEstado(ctx, estado)
	if err != nil {
		return nil, err
	}
	return toTipoContribuyenteResponses(list), nil
}

func (uc *TipoContribuyenteUseCase) GetByID(ctx context.Context, id int64) (*dto.TipoContribuyenteResponse, error) {
	t, err := uc.find(ctx, id)
	if err != nil {
		return nil, err
	}
	return toTipoContribuyenteResponse(t), nil
}

// Create valida, verifica nombre único y persiste con estado=true por defecto.
func (uc *TipoContribuyenteUseCase) Create(ctx context.Context, in dto.CreateTipoContribuyenteRequest) (*dto.TipoContribuyenteResponse, error) {
	if err := dto.Validate(in); err != nil {
		return nil, err
	}
	if err := uc.checkNombre(ctx, in.Nombre, 0); err != nil {
		return nil, err
	}
	t := &entity.TipoContribuyente{
		Nombre: in.Nombre,
		Estado: boolOr(in.Estado, true),
	}
	if err := uc.repo.Create(ctx, t); err != nil {
		return nil, err
	}
	return toTipoContribuyenteResponse(t), nil
}

// Update aplica solo los campos presentes.
func (uc *TipoContribuyenteUseCase) Update(ctx context.Context, id int64, in dto.UpdateTipoContribuyenteRequest) (*dto.TipoContribuyenteResponse, error) {
	if err := dto.Validate(in); err != nil {
		return nil, err
	}
	t, err := uc.find(ctx, id)
	if err != nil {
		return nil, err
	}
	if in.Nombre != nil {
		if err := uc.checkNombre(ctx, *in.Nombre, t.ID); err != nil {
			return nil, err
		}
		t.Nombre = *in.Nombre
	}
	t.Estado = boolOr(in.Estado, t.Estado)
	if err := uc.repo.Update(ctx, t); err != nil {
		return nil, err
	}
	return toTipoContribuyenteResponse(t), nil
}

func (uc *TipoContribuyenteUseCase) Delete(ctx context.Context, id int64) error {
	if _, err := uc.find(ctx, id); err != nil {
		return err
	}
	return uc.repo.Delete(ctx, id)
}

func (uc *TipoContribuyenteUseCase) find(ctx context.Context, id int64) (*entity.TipoContribuyente, error) {
	t, err := uc.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if t == nil {
		return nil, domain.NotFound("El tipo de contribuyente con el ID (%d) no existe.", id)
	}
	return t, nil
}

func (uc *TipoContribuyenteUseCase) checkNombre(ctx context.Context, nombre string, selfID int64) error {
	existing, err := uc.repo.GetByNombre(ctx, nombre)
	if err != nil {
		return err
	}
	if existing != nil && existing.ID != selfID {
		return domain.Duplicate("El tipo de contribuyente con el nombre (%s) ya existe.", nombre)
	}
	return nil
}

func toTipoContribuyenteResponse(t *entity.TipoContribuyente) *dto.TipoContribuyenteResponse {
	if t == nil {
		return nil
	}
	return &dto.TipoContribuyenteResponse{ID: t.ID, Nombre: t.Nombre, Estado: t.Estado}
}

func toTipoContribuyenteResponses(list []*entity.TipoContribuyente) []dto.TipoContribuyenteResponse {
	out := make([]dto.TipoContribuyenteResponse, 0, len(list))
	for _, t := range list {
		out = append(out, *toTipoContribuyenteResponse(t))
	}
	return out
}
