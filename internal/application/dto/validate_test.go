package dto

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/maestros-api/internal/domain"
)

func fieldErrors(t *testing.T, err error) []string {
	t.Helper()
	require.ErrorIs(t, err, domain.ErrValidation)
	var de *domain.Error
	require.True(t, errors.As(err, &de))
	return de.Fields
}

func TestValidate_Valido(t *testing.T) {
	assert.NoError(t, Validate(CreateTipoDocumentoRequest{Codigo: "DNI", Nombre: "Documento Nacional"}))
}

func TestValidate_CamposVaciosYLongitud(t *testing.T) {
	err := Validate(CreateTipoDocumentoRequest{Codigo: "", Nombre: "X"})
	assert.Equal(t, []string{
		"El campo 'codigo' no debe estar vacío",
		"El campo 'nombre' debe tener al menos 2 caracteres",
	}, fieldErrors(t, err))
}

func TestValidate_ReferenciasNulas(t *testing.T) {
	err := Validate(CreateEntidadRequest{NroDocumento: "12345678", RazonSocial: "ACME SAC"})
	assert.Equal(t, []string{
		"El campo 'tipoDocumentoId' no debe ser nulo",
		"El campo 'tipoContribuyenteId' no debe ser nulo",
	}, fieldErrors(t, err))
}

func TestValidate_UpdateSoloCamposPresentes(t *testing.T) {
	assert.NoError(t, Validate(UpdateEntidadRequest{}), "sin campos no hay nada que validar")

	corto := "123"
	err := Validate(UpdateEntidadRequest{NroDocumento: &corto})
	assert.Equal(t, []string{"El campo 'nroDocumento' debe tener al menos 8 caracteres"}, fieldErrors(t, err))
}

func TestValidate_Login(t *testing.T) {
	err := Validate(LoginRequest{Username: "adm", Password: "una-contrasena-demasiado-larga"})
	assert.Equal(t, []string{
		"El campo 'username' debe tener al menos 4 caracteres",
		"El campo 'password' debe tener como máximo 20 caracteres",
	}, fieldErrors(t, err))
}
