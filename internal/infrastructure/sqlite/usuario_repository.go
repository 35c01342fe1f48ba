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

var _ repository.UsuarioRepository = (*UsuarioRepo)(nil)

// UsuarioRepo implementación de UsuarioRepository sobre SQLite.
type UsuarioRepo struct {
	q Querier
}

func NewUsuarioRepository(q Querier) *UsuarioRepo {
	return &UsuarioRepo{q: q}
}

func (r *UsuarioRepo) List(ctx context.Context) ([]*entity.Usuario, error) {
	rows, err := r.q.QueryContext(ctx, `SELECT id_usuario, nombre_usuario, contrasena, rol, estado FROM tb_usuario ORDER BY id_usuario`)
	if err != nil {
		return nil, domain.DataAccess("list usuario", err)
	}
	defer rows.Close()
	var list []*entity.Usuario
	for rows.Next() {
		var u entity.Usuario
		if err := rows.Scan(&u.ID, &u.NombreUsuario, &u.Contrasena, &u.Rol, &u.Estado); err != nil {
			return nil, domain.DataAccess("scan usuario", err)
		}
		list = append(list, &u)
	}
	if err := rows.Err(); err != nil {
		return nil, domain.DataAccess("list usuario", err)
	}
	return list, nil
}

func (r *UsuarioRepo) GetByNombreUsuario(ctx context.Context, nombreUsuario string) (*entity.Usuario, error) {
	var u entity.Usuario
	err := r.q.QueryRowContext(ctx,
		`SELECT id_usuario, nombre_usuario, contrasena, rol, estado FROM tb_usuario WHERE nombre_usuario = ?`,
		nombreUsuario,
	).Scan(&u.ID, &u.NombreUsuario, &u.Contrasena, &u.Rol, &u.Estado)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, domain.DataAccess("get usuario", err)
	}
	return &u, nil
}

func (r *UsuarioRepo) Create(ctx context.Context, u *entity.Usuario) error {
	res, err := r.q.ExecContext(ctx,
		`INSERT INTO tb_usuario (nombre_usuario, contrasena, rol, estado) VALUES (?, ?, ?, ?)`,
		u.NombreUsuario, u.Contrasena, u.Rol, u.Estado,
	)
	if err != nil {
		return writeErr("insert usuario", err, fmt.Sprintf("El usuario con el nombre de usuario (%s) ya existe.", u.NombreUsuario))
	}
	id, err := res.LastInsertId()
	if err != nil {
		return domain.DataAccess("insert usuario", err)
	}
	u.ID = id
	return nil
}
