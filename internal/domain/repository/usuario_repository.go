package repository

import (
	"context"

	"github.com/jhoicas/maestros-api/internal/domain/entity"
)

// UsuarioRepository define el puerto de persistencia para Usuario (credenciales).
type UsuarioRepository interface {
	List(ctx context.Context) ([]*entity.Usuario, error)
	GetByNombreUsuario(ctx context.Context, nombreUsuario string) (*entity.Usuario, error)
	Create(ctx context.Context, u *entity.Usuario) error
}
