package usecase

import (
	"context"
	"fmt"

	"github.com/jhoicas/maestros-api/internal/application/dto"
	"github.com/jhoicas/maestros-api/internal/domain"
	"github.com/jhoicas/maestros-api/internal/domain/entity"
	"github.com/jhoicas/maestros-api/internal/domain/repository"
	"golang.org/x/crypto/bcrypt"
)

// UsuarioUseCase aplica reglas de negocio para usuarios.
type UsuarioUseCase struct {
	repo repository.UsuarioRepository
	cost int
}

// NewUsuarioUseCase construye el caso de uso con el puerto de persistencia.
// cost es el costo bcrypt; 0 usa bcrypt.DefaultCost.
func NewUsuarioUseCase(repo repository.UsuarioRepository, cost int) *UsuarioUseCase {
	if cost == 0 {
		cost = bcrypt.DefaultCost
	}
	return &UsuarioUseCase{repo: repo, cost: cost}
}

// List devuelve todos los usuarios (sin contraseña).
func (uc *UsuarioUseCase) List(ctx context.Context) ([]dto.UsuarioResponse, error) {
	list, err := uc.repo.List(ctx)
	if err != nil {
		return nil, err
	}
	out := make([]dto.UsuarioResponse, 0, len(list))
	for _, u := range list {
		out = append(out, entityToUsuarioResponse(u))
	}
	return out, nil
}

// Create valida, rechaza nombre de usuario duplicado, hashea la contraseña con bcrypt y persiste.
func (uc *UsuarioUseCase) Create(ctx context.Context, in dto.CreateUsuarioRequest) (*dto.UsuarioResponse, error) {
	if err := dto.Validate(in); err != nil {
		return nil, err
	}
	existing, err := uc.repo.GetByNombreUsuario(ctx, in.NombreUsuario)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, domain.Duplicate("El usuario con el nombre de usuario (%s) ya existe.", in.NombreUsuario)
	}
	hash, err := bcrypt.GenerateFromPassword([]byte(in.Contrasena), uc.cost)
	if err != nil {
		return nil, fmt.Errorf("hash contraseña: %w", err)
	}
	u := &entity.Usuario{
		NombreUsuario: in.NombreUsuario,
		Contrasena:    string(hash),
		Rol:           in.Rol,
		Estado:        boolOr(in.Estado, true),
	}
	if err := uc.repo.Create(ctx, u); err != nil {
		return nil, err
	}
	out := entityToUsuarioResponse(u)
	return &out, nil
}

func entityToUsuarioResponse(u *entity.Usuario) dto.UsuarioResponse {
	return dto.UsuarioResponse{
		ID:            u.ID,
		NombreUsuario: u.NombreUsuario,
		Rol:           u.Rol,
		Estado:        u.Estado,
	}
}
