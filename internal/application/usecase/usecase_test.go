package usecase_test

import (
	"context"
	"database/sql"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"github.com/jhoicas/maestros-api/internal/application/dto"
	"github.com/jhoicas/maestros-api/internal/application/usecase"
	"github.com/jhoicas/maestros-api/internal/domain"
	"github.com/jhoicas/maestros-api/internal/infrastructure/sqlite"
)

func openDB(t *testing.T) *sql.DB {
	t.Helper()
	db, err := sqlite.Open(context.Background(), ":memory:")
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })
	return db
}

func ptr[T any](v T) *T { return &v }

type fixture struct {
	tipoDoc      *usecase.TipoDocumentoUseCase
	tipoContrib  *usecase.TipoContribuyenteUseCase
	entidades    *usecase.EntidadUseCase
	usuarios     *usecase.UsuarioUseCase
	tipoDocID    int64
	tipoContriID int64
}

func newFixture(t *testing.T) *fixture {
	t.Helper()
	db := openDB(t)
	f := &fixture{
		tipoDoc:     usecase.NewTipoDocumentoUseCase(sqlite.NewTipoDocumentoRepository(db)),
		tipoContrib: usecase.NewTipoContribuyenteUseCase(sqlite.NewTipoContribuyenteRepository(db)),
		entidades:   usecase.NewEntidadUseCase(sqlite.NewTxRunner(db), sqlite.NewEntidadRepository(db)),
		usuarios:    usecase.NewUsuarioUseCase(sqlite.NewUsuarioRepository(db), bcrypt.MinCost),
	}
	ctx := context.Background()
	td, err := f.tipoDoc.Create(ctx, dto.CreateTipoDocumentoRequest{Codigo: "RUC", Nombre: "Registro Único de Contribuyentes"})
	require.NoError(t, err)
	tc, err := f.tipoContrib.Create(ctx, dto.CreateTipoContribuyenteRequest{Nombre: "Persona Jurídica"})
	require.NoError(t, err)
	f.tipoDocID, f.tipoContriID = td.ID, tc.ID
	return f
}

func (f *fixture) entidadRequest(nro string) dto.CreateEntidadRequest {
	return dto.CreateEntidadRequest{
		NroDocumento:        nro,
		RazonSocial:         "ACME SAC",
		TipoDocumentoID:     ptr(f.tipoDocID),
		TipoContribuyenteID: ptr(f.tipoContriID),
	}
}

// ──────────────────────────────────────────────────────────────────────────────
// Tipo de documento
// ──────────────────────────────────────────────────────────────────────────────

func TestTipoDocumento_CreateEstadoPorDefecto(t *testing.T) {
	f := newFixture(t)
	out, err := f.tipoDoc.Create(context.Background(), dto.CreateTipoDocumentoRequest{Codigo: "DNI", Nombre: "Documento Nacional"})
	require.NoError(t, err)
	assert.True(t, out.Estado, "estado omitido debe quedar activo")
	assert.NotZero(t, out.ID)
}

func TestTipoDocumento_CodigoYNombreUnicos(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t)

	_, err := f.tipoDoc.Create(ctx, dto.CreateTipoDocumentoRequest{Codigo: "RUC", Nombre: "Otro nombre"})
	require.ErrorIs(t, err, domain.ErrDuplicate)
	assert.Equal(t, "El tipo de documento con el código (RUC) ya existe.", err.Error())

	_, err = f.tipoDoc.Create(ctx, dto.CreateTipoDocumentoRequest{Codigo: "R2", Nombre: "Registro Único de Contribuyentes"})
	assert.ErrorIs(t, err, domain.ErrDuplicate)
}

func TestTipoDocumento_UpdateParcial(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t)

	out, err := f.tipoDoc.Update(ctx, f.tipoDocID, dto.UpdateTipoDocumentoRequest{Descripcion: ptr("Empresas")})
	require.NoError(t, err)
	assert.Equal(t, "RUC", out.Codigo, "campos omitidos se conservan")
	assert.Equal(t, "Empresas", out.Descripcion)
	assert.True(t, out.Estado)

	// el mismo código en el propio registro no es duplicado
	_, err = f.tipoDoc.Update(ctx, f.tipoDocID, dto.UpdateTipoDocumentoRequest{Codigo: ptr("RUC"), Estado: ptr(false)})
	require.NoError(t, err)

	inactivos, err := f.tipoDoc.ListByEstado(ctx, false)
	require.NoError(t, err)
	assert.Len(t, inactivos, 1)
}

func TestTipoDocumento_NoExiste(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t)

	_, err := f.tipoDoc.GetByID(ctx, 999)
	require.ErrorIs(t, err, domain.ErrNotFound)
	assert.Equal(t, "El tipo de documento con el ID (999) no existe.", err.Error())

	_, err = f.tipoDoc.Update(ctx, 999, dto.UpdateTipoDocumentoRequest{Nombre: ptr("Nuevo")})
	assert.ErrorIs(t, err, domain.ErrNotFound)
	assert.ErrorIs(t, f.tipoDoc.Delete(ctx, 999), domain.ErrNotFound)
}

func TestTipoDocumento_Validacion(t *testing.T) {
	_, err := newFixture(t).tipoDoc.Create(context.Background(), dto.CreateTipoDocumentoRequest{})
	assert.ErrorIs(t, err, domain.ErrValidation)
}

// ──────────────────────────────────────────────────────────────────────────────
// Tipo de contribuyente
// ──────────────────────────────────────────────────────────────────────────────

func TestTipoContribuyente_CRUD(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t)

	_, err := f.tipoContrib.Create(ctx, dto.CreateTipoContribuyenteRequest{Nombre: "Persona Jurídica"})
	require.ErrorIs(t, err, domain.ErrDuplicate)

	natural, err := f.tipoContrib.Create(ctx, dto.CreateTipoContribuyenteRequest{Nombre: "Persona Natural", Estado: ptr(false)})
	require.NoError(t, err)
	assert.False(t, natural.Estado)

	_, err = f.tipoContrib.Update(ctx, natural.ID, dto.UpdateTipoContribuyenteRequest{Nombre: ptr("Persona Jurídica")})
	assert.ErrorIs(t, err, domain.ErrDuplicate, "no puede tomar el nombre de otro registro")

	out, err := f.tipoContrib.Update(ctx, natural.ID, dto.UpdateTipoContribuyenteRequest{Estado: ptr(true)})
	require.NoError(t, err)
	assert.Equal(t, "Persona Natural", out.Nombre)

	require.NoError(t, f.tipoContrib.Delete(ctx, natural.ID))
	all, err := f.tipoContrib.List(ctx)
	require.NoError(t, err)
	assert.Len(t, all, 1)
}

// ──────────────────────────────────────────────────────────────────────────────
// Entidad
// ──────────────────────────────────────────────────────────────────────────────

func TestEntidad_CreateCargaTipos(t *testing.T) {
	f := newFixture(t)
	out, err := f.entidades.Create(context.Background(), f.entidadRequest("20123456789"))
	require.NoError(t, err)

	assert.True(t, out.Estado)
	require.NotNil(t, out.TipoDocumento)
	assert.Equal(t, "RUC", out.TipoDocumento.Codigo)
	require.NotNil(t, out.TipoContribuyente)
	assert.Equal(t, "Persona Jurídica", out.TipoContribuyente.Nombre)
}

func TestEntidad_NroDocumentoDuplicado(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t)
	_, err := f.entidades.Create(ctx, f.entidadRequest("20123456789"))
	require.NoError(t, err)

	_, err = f.entidades.Create(ctx, f.entidadRequest("20123456789"))
	require.ErrorIs(t, err, domain.ErrDuplicate)
	assert.Equal(t, "La entidad con el nro. de documento (20123456789) ya existe.", err.Error())
}

func TestEntidad_ReferenciasInexistentes(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t)

	in := f.entidadRequest("20123456789")
	in.TipoDocumentoID = ptr(int64(77))
	_, err := f.entidades.Create(ctx, in)
	require.ErrorIs(t, err, domain.ErrNotFound)
	assert.Equal(t, "El tipo de documento con el ID (77) no existe.", err.Error())

	in = f.entidadRequest("20123456789")
	in.TipoContribuyenteID = ptr(int64(88))
	_, err = f.entidades.Create(ctx, in)
	assert.ErrorIs(t, err, domain.ErrNotFound)

	list, err := f.entidades.List(ctx)
	require.NoError(t, err)
	assert.Empty(t, list, "ninguna entidad debe quedar creada")
}

func TestEntidad_UpdateConservaCamposOmitidos(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t)
	in := f.entidadRequest("20123456789")
	in.Telefono = "555-1234"
	in.Estado = ptr(false)
	created, err := f.entidades.Create(ctx, in)
	require.NoError(t, err)

	out, err := f.entidades.Update(ctx, created.ID, dto.UpdateEntidadRequest{RazonSocial: ptr("ACME Perú SAC")})
	require.NoError(t, err)
	assert.Equal(t, "ACME Perú SAC", out.RazonSocial)
	assert.Equal(t, "555-1234", out.Telefono)
	assert.False(t, out.Estado, "estado omitido no cambia")
	require.NotNil(t, out.TipoDocumento)
	assert.Equal(t, f.tipoDocID, out.TipoDocumento.ID)
}

func TestEntidad_UpdateNroDocumentoDeOtra(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t)
	_, err := f.entidades.Create(ctx, f.entidadRequest("20123456789"))
	require.NoError(t, err)
	second, err := f.entidades.Create(ctx, f.entidadRequest("10456789012"))
	require.NoError(t, err)

	_, err = f.entidades.Update(ctx, second.ID, dto.UpdateEntidadRequest{NroDocumento: ptr("20123456789")})
	assert.ErrorIs(t, err, domain.ErrDuplicate)

	_, err = f.entidades.Update(ctx, second.ID, dto.UpdateEntidadRequest{NroDocumento: ptr("10456789012")})
	assert.NoError(t, err, "su propio nro. de documento no es duplicado")
}

func TestEntidad_DeleteYListByEstado(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t)
	a, err := f.entidades.Create(ctx, f.entidadRequest("20123456789"))
	require.NoError(t, err)
	in := f.entidadRequest("10456789012")
	in.Estado = ptr(false)
	_, err = f.entidades.Create(ctx, in)
	require.NoError(t, err)

	activas, err := f.entidades.ListByEstado(ctx, true)
	require.NoError(t, err)
	require.Len(t, activas, 1)
	assert.Equal(t, a.ID, activas[0].ID)

	require.NoError(t, f.entidades.Delete(ctx, a.ID))
	_, err = f.entidades.GetByID(ctx, a.ID)
	assert.ErrorIs(t, err, domain.ErrNotFound)
	assert.ErrorIs(t, f.entidades.Delete(ctx, a.ID), domain.ErrNotFound)
}

// ──────────────────────────────────────────────────────────────────────────────
// Usuario
// ──────────────────────────────────────────────────────────────────────────────

func TestUsuario_CreateHasheaContrasena(t *testing.T) {
	ctx := context.Background()
	db := openDB(t)
	repo := sqlite.NewUsuarioRepository(db)
	uc := usecase.NewUsuarioUseCase(repo, bcrypt.MinCost)

	out, err := uc.Create(ctx, dto.CreateUsuarioRequest{NombreUsuario: "admin", Contrasena: "secreto1", Rol: "ROL_ADMIN"})
	require.NoError(t, err)
	assert.True(t, out.Estado)

	stored, err := repo.GetByNombreUsuario(ctx, "admin")
	require.NoError(t, err)
	require.NotNil(t, stored)
	assert.NotEqual(t, "secreto1", stored.Contrasena)
	assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(stored.Contrasena), []byte("secreto1")))

	_, err = uc.Create(ctx, dto.CreateUsuarioRequest{NombreUsuario: "admin", Contrasena: "otra1234", Rol: "ROL_USER"})
	assert.ErrorIs(t, err, domain.ErrDuplicate)

	list, err := uc.List(ctx)
	require.NoError(t, err)
	assert.Len(t, list, 1)
}
