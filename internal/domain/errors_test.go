package domain

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestErrorKinds(t *testing.T) {
	nf := NotFound("La entidad con el ID (%d) no existe.", 7)
	assert.ErrorIs(t, nf, ErrNotFound)
	assert.Equal(t, "La entidad con el ID (7) no existe.", nf.Error())

	assert.ErrorIs(t, Duplicate("dup"), ErrDuplicate)
	assert.ErrorIs(t, InvalidCredentials(), ErrInvalidCredentials)

	v := Validation("El campo 'codigo' no debe estar vacío")
	var de *Error
	assert.True(t, errors.As(v, &de))
	assert.Equal(t, []string{"El campo 'codigo' no debe estar vacío"}, de.Fields)
}

func TestDataAccessConservaCausa(t *testing.T) {
	cause := errors.New("connection refused")
	err := DataAccess("insert entidad", cause)

	assert.ErrorIs(t, err, ErrDataAccess)
	assert.ErrorIs(t, err, cause)
	assert.Contains(t, err.Error(), "connection refused")
}
