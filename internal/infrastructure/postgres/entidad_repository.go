package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jhoicas/maestros-api/internal/domain"
	"github.com/jhoicas/maestros-api/internal/domain/entity"
	"github.com/jhoicas/maestros-api/internal/domain/repository"
)

var _ repository.EntidadRepository = (*EntidadRepo)(nil)

const entidadSelect = `
	SELECT e.id_entidad, e.nro_documento, e.razon_social, e.nombre_comercial, e.direccion, e.telefono, e.estado,
	       td.id_tipo_documento, td.codigo, td.nombre, td.descripcion, td.estado,
	       tc.id_tipo_contribuyente, tc.nombre, tc.estado
	FROM tb_entidad e
	JOIN tb_tipo_documento td ON td.id_tipo_documento = e.id_tipo_documento
	JOIN tb_tipo_contribuyente tc ON tc.id_tipo_contribuyente = e.id_tipo_contribuyente`

type rowScanner interface {
	Scan(dest ...any) error
}

// EntidadRepo implementación de EntidadRepository (usable con pool o tx).
type EntidadRepo struct {
	q Querier
}

// NewEntidadRepository construye el adaptador. Pasar pool o tx (Querier).
func NewEntidadRepository(q Querier) *EntidadRepo {
	return &EntidadRepo{q: q}
}

func (r *EntidadRepo) List(ctx context.Context) ([]*entity.Entidad, error) {
	return r.list(ctx, entidadSelect+` ORDER BY e.id_entidad`)
}

func (r *EntidadRepo) ListByEstado(ctx context.Context, estado bool) ([]*entity.Entidad, error) {
	return r.list(ctx, entidadSelect+` WHERE e.estado = $1 ORDER BY e.id_entidad`, estado)
}

func (r *EntidadRepo) GetByID(ctx context.Context, id int64) (*entity.Entidad, error) {
	return r.get(ctx, "get entidad", entidadSelect+` WHERE e.id_entidad = $1`, id)
}

func (r *EntidadRepo) GetByNroDocumento(ctx context.Context, nroDocumento string) (*entity.Entidad, error) {
	return r.get(ctx, "get entidad by nro_documento", entidadSelect+` WHERE e.nro_documento = $1`, nroDocumento)
}

// Create persiste la entidad y asigna el ID generado.
func (r *EntidadRepo) Create(ctx context.Context, e *entity.Entidad) error {
	query := `
		INSERT INTO tb_entidad (id_tipo_documento, nro_documento, razon_social, nombre_comercial,
		                        id_tipo_contribuyente, direccion, telefono, estado)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
		RETURNING id_entidad`
	err := r.q.QueryRow(ctx, query,
		e.TipoDocumentoID, e.NroDocumento, e.RazonSocial, e.NombreComercial,
		e.TipoContribuyenteID, e.Direccion, e.Telefono, e.Estado,
	).Scan(&e.ID)
	if err != nil {
		return writeErr("insert entidad", err, fmt.Sprintf("La entidad con el nro. de documento (%s) ya existe.", e.NroDocumento))
	}
	return nil
}

func (r *EntidadRepo) Update(ctx context.Context, e *entity.Entidad) error {
	query := `
		UPDATE tb_entidad SET id_tipo_documento = $2, nro_documento = $3, razon_social = $4, nombre_comercial = $5,
		       id_tipo_contribuyente = $6, direccion = $7, telefono = $8, estado = $9
		WHERE id_entidad = $1`
	_, err := r.q.Exec(ctx, query,
		e.ID, e.TipoDocumentoID, e.NroDocumento, e.RazonSocial, e.NombreComercial,
		e.TipoContribuyenteID, e.Direccion, e.Telefono, e.Estado,
	)
	if err != nil {
		return writeErr("update entidad", err, fmt.Sprintf("La entidad con el nro. de documento (%s) ya existe.", e.NroDocumento))
	}
	return nil
}

func (r *EntidadRepo) Delete(ctx context.Context, id int64) error {
	_, err := r.q.Exec(ctx, `DELETE FROM tb_entidad WHERE id_entidad = $1`, id)
	if err != nil {
		return domain.DataAccess("delete entidad", err)
	}
	return nil
}

func (r *EntidadRepo) get(ctx context.Context, op, query string, arg any) (*entity.Entidad, error) {
	e, err := scanEntidad(r.q.QueryRow(ctx, query, arg))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, domain.DataAccess(op, err)
	}
	return e, nil
}

func (r *EntidadRepo) list(ctx context.Context, query string, args ...any) ([]*entity.Entidad, error) {
	rows, err := r.q.Query(ctx, query, args...)
	if err != nil {
		return nil, domain.DataAccess("list entidad", err)
	}
	defer rows.Close()
	var list []*entity.Entidad
	for rows.Next() {
		e, err := scanEntidad(rows)
		if err != nil {
			return nil, domain.DataAccess("scan entidad", err)
		}
		list = append(list, e)
	}
	if err := rows.Err(); err != nil {
		return nil, domain.DataAccess("list entidad", err)
	}
	return list, nil
}

func scanEntidad(row rowScanner) (*entity.Entidad, error) {
	var (
		e  entity.Entidad
		td entity.TipoDocumento
		tc entity.TipoContribuyente
	)
	err := row.Scan(
		&e.ID, &e.NroDocumento, &e.RazonSocial, &e.NombreComercial, &e.Direccion, &e.Telefono, &e.Estado,
		&td.ID, &td.Codigo, &td.Nombre, &td.Descripcion, &td.Estado,
		&tc.ID, &tc.Nombre, &tc.Estado,
	)
	if err != nil {
		return nil, err
	}
	e.TipoDocumentoID, e.TipoDocumento = td.ID, &td
	e.TipoContribuyenteID, e.TipoContribuyente = tc.ID, &tc
	return &e, nil
}
