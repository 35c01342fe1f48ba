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

var _ repository.TipoDocumentoRepository = (*TipoDocumentoRepo)(nil)

const tipoDocumentoColumns = `id_tipo_documento, codigo, nombre, descripcion, estado`

// TipoDocumentoRepo implementación de TipoDocumentoRepository (usable con pool o tx).
type TipoDocumentoRepo struct {
	q Querier
}

// NewTipoDocumentoRepository construye el adaptador. Pasar pool o tx (Querier).
func NewTipoDocumentoRepository(q Querier) *TipoDocumentoRepo {
	return &TipoDocumentoRepo{q: q}
}

func (r *TipoDocumentoRepo) List(ctx context.Context) ([]*entity.TipoDocumento, error) {
	return r.list(ctx, `SELECT `+tipoDocumentoColumns+` FROM tb_tipo_documento ORDER BY id_tipo_documento`)
}

func (r *TipoDocumentoRepo) ListByEstado(ctx context.Context, estado bool) ([]*entity.TipoDocumento, error) {
	return r.list(ctx, `SELECT `+tipoDocumentoColumns+` FROM tb_tipo_documento WHERE estado = $1 ORDER BY id_tipo_documento`, estado)
}

func (r *TipoDocumentoRepo) GetByID(ctx context.Context, id int64) (*entity.TipoDocumento, error) {
	return r.get(ctx, "get tipo_documento", `SELECT `+tipoDocumentoColumns+` FROM tb_tipo_documento WHERE id_tipo_documento = $1`, id)
}

func (r *TipoDocumentoRepo) GetByCodigo(ctx context.Context, codigo string) (*entity.TipoDocumento, error) {
	return r.get(ctx, "get tipo_documento by codigo", `SELECT `+tipoDocumentoColumns+` FROM tb_tipo_documento WHERE codigo = $1`, codigo)
}

func (r *TipoDocumentoRepo) GetByNombre(ctx context.Context, nombre string) (*entity.TipoDocumento, error) {
	return r.get(ctx, "get tipo_documento by nombre", `SELECT `+tipoDocumentoColumns+` FROM tb_tipo_documento WHERE nombre = $1`, nombre)
}

// Create persiste el registro y asigna el ID generado.
func (r *TipoDocumentoRepo) Create(ctx context.Context, t *entity.TipoDocumento) error {
	query := `
		INSERT INTO tb_tipo_documento (codigo, nombre, descripcion, estado)
		VALUES ($1, $2, $3, $4)
		RETURNING id_tipo_documento`
	err := r.q.QueryRow(ctx, query, t.Codigo, t.Nombre, t.Descripcion, t.Estado).Scan(&t.ID)
	if err != nil {
		return writeErr("insert tipo_documento", err, fmt.Sprintf("El tipo de documento con el código (%s) o nombre (%s) ya existe.", t.Codigo, t.Nombre))
	}
	return nil
}

func (r *TipoDocumentoRepo) Update(ctx context.Context, t *entity.TipoDocumento) error {
	query := `
		UPDATE tb_tipo_documento SET codigo = $2, nombre = $3, descripcion = $4, estado = $5
		WHERE id_tipo_documento = $1`
	_, err := r.q.Exec(ctx, query, t.ID, t.Codigo, t.Nombre, t.Descripcion, t.Estado)
	if err != nil {
		return writeErr("update tipo_documento", err, fmt.Sprintf("El tipo de documento con el código (%s) o nombre (%s) ya existe.", t.Codigo, t.Nombre))
	}
	return nil
}

func (r *TipoDocumentoRepo) Delete(ctx context.Context, id int64) error {
	_, err := r.q.Exec(ctx, `DELETE FROM tb_tipo_documento WHERE id_tipo_documento = $1`, id)
	if err != nil {
		return domain.DataAccess("delete tipo_documento", err)
	}
	return nil
}

func (r *TipoDocumentoRepo) get(ctx context.Context, op, query string, arg any) (*entity.TipoDocumento, error) {
	var t entity.TipoDocumento
	err := r.q.QueryRow(ctx, query, arg).Scan(&t.ID, &t.Codigo, &t.Nombre, &t.Descripcion, &t.Estado)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, domain.DataAccess(op, err)
	}
	return &t, nil
}

func (r *TipoDocumentoRepo) list(ctx context.Context, query string, args ...any) ([]*entity.TipoDocumento, error) {
	rows, err := r.q.Query(ctx, query, args...)
	if err != nil {
		return nil, domain.DataAccess("list tipo_documento", err)
	}
	defer rows.Close()
	var list []*entity.TipoDocumento
	for rows.Next() {
		var t entity.TipoDocumento
		if err := rows.Scan(&t.ID, &t.Codigo, &t.Nombre, &t.Descripcion, &t.Estado); err != nil {
			return nil, domain.DataAccess("scan tipo_documento", err)
		}
		list = append(list, &t)
	}
	if err := rows.Err(); err != nil {
		return nil, domain.DataAccess("list tipo_documento", err)
	}
	return list, nil
}
