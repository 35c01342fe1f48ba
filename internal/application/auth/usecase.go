package auth

import (
	"context"
	"fmt"

	"github.com/jhoicas/maestros-api/internal/application/dto"
	"github.com/jhoicas/maestros-api/internal/domain"
	"github.com/jhoicas/maestros-api/internal/domain/entity"
	"github.com/jhoicas/maestros-api/internal/domain/repository"
	"golang.org/x/crypto/bcrypt"
)

// TokenIssuer emite el token de acceso para un usuario autenticado.
type TokenIssuer interface {
	Generate(username string) (string, error)
}

// AuthUseCase caso de uso de autenticación: login.
type AuthUseCase struct {
	userRepo repository.UsuarioRepository
	tokens   TokenIssuer
}

// NewAuthUseCase construye el caso de uso de auth.
func NewAuthUseCase(userRepo repository.UsuarioRepository, tokens TokenIssuer) *AuthUseCase {
	return &AuthUseCase{userRepo: userRepo, tokens: tokens}
}

// Login verifica usuario/contraseña, genera JWT y retorna token + usuario.
// Usuario inexistente y contraseña incorrecta producen el mismo error.
func (uc *AuthUseCase) Login(ctx context.Context, in dto.LoginRequest) (*dto.LoginResponse, error) {
	if err := dto.Validate(in); err != nil {
		return nil, err
	}
	user, err := uc.userRepo.GetByNombreUsuario(ctx, in.Username)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, domain.InvalidCredentials()
	}
	if err := bcrypt.CompareHashAndPassword([]byte(user.Contrasena), []byte(in.Password)); err != nil {
		return nil, domain.InvalidCredentials()
	}
	token, err := uc.tokens.Generate(user.NombreUsuario)
	if err != nil {
		return nil, fmt.Errorf("generar token: %w", err)
	}
	return &dto.LoginResponse{
		Token: token,
		Data:  toUsuarioResponse(user),
	}, nil
}

func toUsuarioResponse(u *entity.Usuario) dto.UsuarioResponse {
	return dto.UsuarioResponse{
		ID:            u.ID,
		NombreUsuario: u.NombreUsuario,
		Rol:           u.Rol,
		Estado:        u.Estado,
	}
}
