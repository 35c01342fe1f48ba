package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/jhoicas/maestros-api/internal/domain"
	"github.com/jhoicas/maestros-api/internal/domain/entity"
	"github.com/jhoicas/maestros-api/internal/domain/repository"
)

var _ repository.TipoDocumentoRepository = (*TipoDocumentoRepo)(nil)

const tipoDocumentoColumns = `id_tipo_documento, codigo, nombre, descripcion, estado`

// TipoDocumentoRepo implementación de TipoDocumentoRepository sobre SQLite.
type TipoDocumentoRepo struct {
	q Querier
}

// NewTipoDocumentoRepository construye el adaptador. Pasar db o tx.
func NewTipoDocumentoRepository(q Querier) *TipoDocumentoRepo {
	return &TipoDocumentoRepo{q: q}
}

func (r *TipoDocumentoRepo) List(ctx context.Context) ([]*entity.TipoDocumento, error) {
	return r.list(ctx, `SELECT `+tipoDocumentoColumns+` FROM tb_tipo_documento ORDER BY id_tipo_documento`)
}

func (r *TipoDocumentoRepo) ListByEstado(ctx context.Context, estado bool) ([]*entity.TipoDocumento, error) {
	return r.list(ctx, `SELECT `+tipoDocumentoColumns+` FROM tb_tipo_documento WHERE estado = ? ORDER BY id_tipo_documento`, estado)
}

func (r *TipoDocumentoRepo) GetByID(ctx context.Context, id int64) (*entity.TipoDocumento, error) {
	return r.get(ctx, "get tipo_documento", `SELECT `+tipoDocumentoColumns+` FROM tb_tipo_documento WHERE id_tipo_documento = ?`, id)
}

func (r *TipoDocumentoRepo) GetByCodigo(ctx context.Context, codigo string) (*entity.TipoDocumento, error) {
	return r.get(ctx, "get tipo_documento by codigo", `SELECT `+tipoDocumentoColumns+` FROM tb_tipo_documento WHERE codigo = ?`, codigo)
}

func (r *TipoDocumentoRepo) GetByNombre(ctx context.Context, nombre string) (*entity.TipoDocumento, error) {
	return r.get(ctx, "get tipo_documento by nombre", `SELECT `+tipoDocumentoColumns+` FROM tb_tipo_documento WHERE nombre = ?`, nombre)
}

func (r *TipoDocumentoRepo) Create(ctx context.Context, t *entity.TipoDocumento) error {
	res, err := r.q.ExecContext(ctx,
		`INSERT INTO tb_tipo_documento (codigo, nombre, descripcion, estado) VALUES (?, ?, ?, ?)`,
		t.Codigo, t.Nombre, t.Descripcion, t.Estado,
	)
	if err != nil {
		return writeErr("insert tipo_documento", err, fmt.Sprintf("El tipo de documento con el código (%s) o nombre (%s) ya existe.", t.Codigo, t.Nombre))
	}
	id, err := res.LastInsertId()
	if err != nil {
		return domain.DataAccess("insert tipo_documento", err)
	}
	t.ID = id
	return nil
}

func (r *TipoDocumentoRepo) Update(ctx context.Context, t *entity.TipoDocumento) error {
	_, err := r.q.ExecContext(ctx,
		`UPDATE tb_tipo_documento SET codigo = ?, nombre = ?, descripcion = ?, estado = ? WHERE id_tipo_documento = ?`,
		t.Codigo, t.Nombre, t.Descripcion, t.Estado, t.ID,
	)
	if err != nil {
		return writeErr("update tipo_documento", err, fmt.Sprintf("El tipo de documento con el código (%s) o nombre (%s) ya existe.", t.Codigo, t.Nombre))
	}
	return nil
}

func (r *TipoDocumentoRepo) Delete(ctx context.Context, id int64) error {
	if _, err := r.q.ExecContext(ctx, `DELETE FROM tb_tipo_documento WHERE id_tipo_documento = ?`, id); err != nil {
		return domain.DataAccess("delete tipo_documento", err)
	}
	return nil
}

func (r *TipoDocumentoRepo) get(ctx context.Context, op, query string, arg any) (*entity.TipoDocumento, error) {
	var t entity.TipoDocumento
	err := r.q.QueryRowContext(ctx, query, arg).Scan(&t.ID, &t.Codigo, &t.Nombre, &t.Descripcion, &t.Estado)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, domain.DataAccess(op, err)
	}
	return &t, nil
}

func (r *TipoDocumentoRepo) list(ctx context.Context, query string, args ...any) ([]*entity.TipoDocumento, error) {
	rows, err := r.q.QueryContext(ctx, query, args...)
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
