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

var _ repository.UsuarioRepository = (*UsuarioRepo)(nil)

// UsuarioRepo implementación de UsuarioRepository.
type UsuarioRepo struct {
	q Querier
}

// NewUsuarioRepository construye el adaptador.
func NewUsuarioRepository(q Querier) *UsuarioRepo {
	return &UsuarioRepo{q: q}
}

func (r *UsuarioRepo) List(ctx context.Context) ([]*entity.Usuario, error) {
	rows, err := r.q.Query(ctx, `SELECT id_usuario, nombre_usuario, contrasena, rol, estado FROM tb_usuario ORDER BY id_usuario`)
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

// GetByNombreUsuario busca por nombre de usuario; (nil, nil) si no existe.
func (r *UsuarioRepo) GetByNombreUsuario(ctx context.Context, nombreUsuario string) (*entity.Usuario, error) {
	var u entity.Usuario
	err := r.q.QueryRow(ctx,
		`SELECT id_usuario, nombre_usuario, contrasena, rol, estado FROM tb_usuario WHERE nombre_usuario = $1`,
		nombreUsuario,
	).Scan(&u.ID, &u.NombreUsuario, &u.Contrasena, &u.Rol, &u.Estado)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, domain.DataAccess("get usuario", err)
	}
	return &u, nil
}

func (r *UsuarioRepo) Create(ctx context.Context, u *entity.Usuario) error {
	err := r.q.QueryRow(ctx,
		`INSERT INTO tb_usuario (nombre_usuario, contrasena, rol, estado) VALUES ($1, $2, $3, $4) RETURNING id_usuario`,
		u.NombreUsuario, u.Contrasena, u.Rol, u.Estado,
	).Scan(&u.ID)
	if err != nil {
		return writeErr("insert usuario", err, fmt.Sprintf("El usuario con el nombre de usuario (%s) ya existe.", u.NombreUsuario))
	}
	return nil
}
