package usecase

import (
	"context"

	"github.com/jhoicas/maestros-api/internal/application/dto"
	"github.com/jhoicas/maestros-api/internal/domain"
	"github.com/jhoicas/maestros-api/internal/domain/entity"
	"github.com/jhoicas/maestros-api/internal/domain/repository"
)

// EntidadUseCase casos de uso CRUD para entidades. Las escrituras resuelven
// tipo de documento y tipo de contribuyente dentro de la misma transacción.
type EntidadUseCase struct {
	tx   repository.TxRunner
	repo repository.EntidadRepository
}

// NewEntidadUseCase construye el caso de uso. repo se usa para lecturas fuera de transacción.
func NewEntidadUseCase(tx repository.TxRunner, repo repository.EntidadRepository) *EntidadUseCase {
	return &EntidadUseCase{tx: tx, repo: repo}
}

func (uc *EntidadUseCase) List(ctx context.Context) ([]dto.EntidadResponse, error) {
	list, err := uc.repo.List(ctx)
	if err != nil {
		return nil, err
	}
	return toEntidadResponses(list), nil
}

func (uc *EntidadUseCase) ListByEstado(ctx context.Context, estado bool) ([]dto.EntidadResponse, error) {
	list, err := uc.repo.ListByEstado(ctx, estado)
	if err != nil {
		return nil, err
	}
	return toEntidadResponses(list), nil
}

func (uc *EntidadUseCase) GetByID(ctx context.Context, id int64) (*dto.EntidadResponse, error) {
	e, err := findEntidad(ctx, uc.repo, id)
	if err != nil {
		return nil, err
	}
	return toEntidadResponse(e), nil
}

// Create valida, rechaza nroDocumento duplicado, resuelve ambos tipos y persiste.
func (uc *EntidadUseCase) Create(ctx context.Context, in dto.CreateEntidadRequest) (*dto.EntidadResponse, error) {
	if err := dto.Validate(in); err != nil {
		return nil, err
	}
	e := &entity.Entidad{
		NroDocumento:    in.NroDocumento,
		RazonSocial:     in.RazonSocial,
		NombreComercial: in.NombreComercial,
		Direccion:       in.Direccion,
		Telefono:        in.Telefono,
		Estado:          boolOr(in.Estado, true),
	}
	err := uc.tx.Run(ctx, func(repos repository.EntidadRepos) error {
		if err := checkNroDocumento(ctx, repos.Entidades, in.NroDocumento, 0); err != nil {
			return err
		}
		if err := resolveTipos(ctx, repos, e, in.TipoDocumentoID, in.TipoContribuyenteID); err != nil {
			return err
		}
		return repos.Entidades.Create(ctx, e)
	})
	if err != nil {
		return nil, err
	}
	return toEntidadResponse(e), nil
}

// Update aplica solo los campos presentes; estado se conserva si no viene.
func (uc *EntidadUseCase) Update(ctx context.Context, id int64, in dto.UpdateEntidadRequest) (*dto.EntidadResponse, error) {
	if err := dto.Validate(in); err != nil {
		return nil, err
	}
	var updated *entity.Entidad
	err := uc.tx.Run(ctx, func(repos repository.EntidadRepos) error {
		e, err := findEntidad(ctx, repos.Entidades, id)
		if err != nil {
			return err
		}
		if in.NroDocumento != nil {
			if err := checkNroDocumento(ctx, repos.Entidades, *in.NroDocumento, e.ID); err != nil {
				return err
			}
			e.NroDocumento = *in.NroDocumento
		}
		if in.RazonSocial != nil {
			e.RazonSocial = *in.RazonSocial
		}
		if in.NombreComercial != nil {
			e.NombreComercial = *in.NombreComercial
		}
		if in.Direccion != nil {
			e.Direccion = *in.Direccion
		}
		if in.Telefono != nil {
			e.Telefono = *in.Telefono
		}
		e.Estado = boolOr(in.Estado, e.Estado)
		if err := resolveTipos(ctx, repos, e, in.TipoDocumentoID, in.TipoContribuyenteID); err != nil {
			return err
		}
		if err := repos.Entidades.Update(ctx, e); err != nil {
			return err
		}
		updated = e
		return nil
	})
	if err != nil {
		return nil, err
	}
	return toEntidadResponse(updated), nil
}

func (uc *EntidadUseCase) Delete(ctx context.Context, id int64) error {
	if _, err := findEntidad(ctx, uc.repo, id); err != nil {
		return err
	}
	return uc.repo.Delete(ctx, id)
}

func findEntidad(ctx context.Context, repo repository.EntidadRepository, id int64) (*entity.Entidad, error) {
	e, err := repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if e == nil {
		return nil, domain.NotFound("La entidad con el ID (%d) no existe.", id)
	}
	return e, nil
}

func checkNroDocumento(ctx context.Context, repo repository.EntidadRepository, nro string, selfID int64) error {
	existing, err := repo.GetByNroDocumento(ctx, nro)
	if err != nil {
		return err
	}
	if existing != nil && existing.ID != selfID {
		return domain.Duplicate("La entidad con el nro. de documento (%s) ya existe.", nro)
	}
	return nil
}

// resolveTipos carga los tipos indicados (los nil se dejan como están) o falla con ErrNotFound.
func resolveTipos(ctx context.Context, repos repository.EntidadRepos, e *entity.Entidad, tipoDocumentoID, tipoContribuyenteID *int64) error {
	if tipoDocumentoID != nil {
		td, err := repos.TiposDocumento.GetByID(ctx, *tipoDocumentoID)
		if err != nil {
			return err
		}
		if td == nil {
			return domain.NotFound("El tipo de documento con el ID (%d) no existe.", *tipoDocumentoID)
		}
		e.TipoDocumentoID = td.ID
		e.TipoDocumento = td
	}
	if tipoContribuyenteID != nil {
		tc, err := repos.TiposContribuyente.GetByID(ctx, *tipoContribuyenteID)
		if err != nil {
			return err
		}
		if tc == nil {
			return domain.NotFound("El tipo de contribuyente con el ID (%d) no existe.", *tipoContribuyenteID)
		}
		e.TipoContribuyenteID = tc.ID
		e.TipoContribuyente = tc
	}
	return nil
}

func toEntidadResponse(e *entity.Entidad) *dto.EntidadResponse {
	if e == nil {
		return nil
	}
	return &dto.EntidadResponse{
		ID:                e.ID,
		NroDocumento:      e.NroDocumento,
		RazonSocial:       e.RazonSocial,
		NombreComercial:   e.NombreComercial,
		Direccion:         e.Direccion,
		Telefono:          e.Telefono,
		Estado:            e.Estado,
		TipoDocumento:     toTipoDocumentoResponse(e.TipoDocumento),
		TipoContribuyente: toTipoContribuyenteResponse(e.TipoContribuyente),
	}
}

func toEntidadResponses(list []*entity.Entidad) []dto.EntidadResponse {
	out := make([]dto.EntidadResponse, 0, len(list))
	for _, e := range list {
		out = append(out, *toEntidadResponse(e))
	}
	return out
}
