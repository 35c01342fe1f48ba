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

var _ repository.TipoContribuyenteRepository = (*TipoContribuyenteRepo)(nil)

// TipoContribuyenteRepo implementación de TipoContribuyenteRepository (usable con pool o tx).
type TipoContribuyenteRepo struct {
	q Querier
}

// NewTipoContribuyenteRepository construye el adaptador. Pasar pool o tx (Querier).
func NewTipoContribuyenteRepository(q Querier) *TipoContribuyenteRepo {
	return &TipoContribuyenteRepo{q: q}
}

func (r *TipoContribuyenteRepo) List(ctx context.Context) ([]*entity.TipoContribuyente, error) {
	return r.list(ctx, `SELECT id_tipo_contribuyente, nombre, estado FROM tb_tipo_contribuyente ORDER BY id_tipo_contribuyente`)
}

func (r *TipoContribuyenteRepo) ListByEstado(ctx context.Context, estado bool) ([]*entity.TipoContribuyente, error) {
	return r.list(ctx, `SELECT id_tipo_contribuyente, nombre, estado FROM tb_tipo_contribuyente WHERE estado = $1 ORDER BY id_tipo_contribuyente`, estado)
}

func (r *TipoContribuyenteRepo) GetByID(ctx context.Context, id int64) (*entity.TipoContribuyente, error) {
	return r.get(ctx, "get tipo_contribuyente", `SELECT id_tipo_contribuyente, nombre, estado FROM tb_tipo_contribuyente WHERE id_tipo_contribuyente = $1`, id)
}

func (r *TipoContribuyenteRepo) GetByNombre(ctx context.Context, nombre string) (*entity.TipoContribuyente, error) {
	return r.get(ctx, "get tipo_contribuyente by nombre", `SELECT id_tipo_contribuyente, nombre, estado FROM tb_tipo_contribuyente WHERE nombre = $1`, nombre)
}

func (r *TipoContribuyenteRepo) Create(ctx context.Context, t *entity.TipoContribuyente) error {
	err := r.q.QueryRow(ctx,
		`INSERT INTO tb_tipo_contribuyente (nombre, estado) VALUES ($1, $2) RETURNING id_tipo_contribuyente`,
		t.Nombre, t.Estado,
	).Scan(&t.ID)
	if err != nil {
		return writeErr("insert tipo_contribuyente", err, fmt.Sprintf("El tipo de contribuyente con el nombre (%s) ya existe.", t.Nombre))
	}
	return nil
}

func (r *TipoContribuyenteRepo) Update(ctx context.Context, t *entity.TipoContribuyente) error {
	_, err := r.q.Exec(ctx,
		`UPDATE tb_tipo_contribuyente SET nombre = $2, estado = $3 WHERE id_tipo_contribuyente = $1`,
		t.ID, t.Nombre, t.Estado,
	)
	if err != nil {
		return writeErr("update tipo_contribuyente", err, fmt.Sprintf("El tipo de contribuyente con el nombre (%s) ya existe.", t.Nombre))
	}
	return nil
}

func (r *TipoContribuyenteRepo) Delete(ctx context.Context, id int64) error {
	_, err := r.q.Exec(ctx, `DELETE FROM tb_tipo_contribuyente WHERE id_tipo_contribuyente = $1`, id)
	if err != nil {
		return domain.DataAccess("delete tipo_contribuyente", err)
	}
	return nil
}

func (r *TipoContribuyenteRepo) get(ctx context.Context, op, query string, arg any) (*entity.TipoContribuyente, error) {
	var t entity.TipoContribuyente
	if err := r.q.QueryRow(ctx, query, arg).Scan(&t.ID, &t.Nombre, &t.Estado); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, domain.DataAccess(op, err)
	}
	return &t, nil
}

func (r *TipoContribuyenteRepo) list(ctx context.Context, query string, args ...any) ([]*entity.TipoContribuyente, error) {
	rows, err := r.q.Query(ctx, query, args...)
	if err != nil {
		return nil, domain.DataAccess("list tipo_contribuyente", err)
	}
	defer rows.Close()
	var list []*entity.TipoContribuyente
	for rows.Next() {
		var t entity.TipoContribuyente
		if err := rows.Scan(&t.ID, &t.Nombre, &t.Estado); err != nil {
			return nil, domain.DataAccess("scan tipo_contribuyente", err)
		}
		list = append(list, &t)
	}
	if err := rows.Err(); err != nil {
		return nil, domain.DataAccess("list tipo_contribuyente", err)
	}
	return list, nil
}
