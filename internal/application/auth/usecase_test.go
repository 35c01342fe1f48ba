package auth

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"github.com/jhoicas/maestros-api/internal/application/dto"
	"github.com/jhoicas/maestros-api/internal/domain"
	"github.com/jhoicas/maestros-api/internal/domain/entity"
)

type fakeUsuarios struct {
	users map[string]*entity.Usuario
	err   error
}

func (f *fakeUsuarios) List(context.Context) ([]*entity.Usuario, error) { return nil, nil }
func (f *fakeUsuarios) Create(context.Context, *entity.Usuario) error  { return nil }
func (f *fakeUsuarios) GetByNombreUsuario(_ context.Context, name string) (*entity.Usuario, error) {
	if f.err != nil {
		return nil, f.err
	}
	return f.users[name], nil
}

type fakeTokens struct{ issued string }

func (f *fakeTokens) Generate(username string) (string, error) {
	f.issued = username
	return "token-" + username, nil
}

func newUseCase(t *testing.T) (*AuthUseCase, *fakeTokens) {
	t.Helper()
	hash, err := bcrypt.GenerateFromPassword([]byte("secreto1"), bcrypt.MinCost)
	require.NoError(t, err)
	repo := &fakeUsuarios{users: map[string]*entity.Usuario{
		"admin": {ID: 1, NombreUsuario: "admin", Contrasena: string(hash), Rol: "ROL_ADMIN", Estado: true},
	}}
	tokens := &fakeTokens{}
	return NewAuthUseCase(repo, tokens), tokens
}

func TestLogin_OK(t *testing.T) {
	uc, tokens := newUseCase(t)
	out, err := uc.Login(context.Background(), dto.LoginRequest{Username: "admin", Password: "secreto1"})
	require.NoError(t, err)

	assert.Equal(t, "token-admin", out.Token)
	assert.Equal(t, "admin", tokens.issued)
	assert.Equal(t, "ROL_ADMIN", out.Data.Rol)
}

func TestLogin_MismoErrorParaUsuarioYContrasena(t *testing.T) {
	uc, _ := newUseCase(t)

	_, errUser := uc.Login(context.Background(), dto.LoginRequest{Username: "nadie", Password: "secreto1"})
	_, errPass := uc.Login(context.Background(), dto.LoginRequest{Username: "admin", Password: "incorrecta"})

	require.ErrorIs(t, errUser, domain.ErrInvalidCredentials)
	require.ErrorIs(t, errPass, domain.ErrInvalidCredentials)
	assert.Equal(t, errUser.Error(), errPass.Error())
}

func TestLogin_Validacion(t *testing.T) {
	uc, tokens := newUseCase(t)
	_, err := uc.Login(context.Background(), dto.LoginRequest{Username: "ad"})
	assert.ErrorIs(t, err, domain.ErrValidation)
	assert.Empty(t, tokens.issued)
}

func TestLogin_ErrorDeRepositorio(t *testing.T) {
	boom := domain.DataAccess("select usuario", errors.New("conexión cerrada"))
	uc := NewAuthUseCase(&fakeUsuarios{err: boom}, &fakeTokens{})
	_, err := uc.Login(context.Background(), dto.LoginRequest{Username: "admin", Password: "secreto1"})
	assert.ErrorIs(t, err, domain.ErrDataAccess)
}
