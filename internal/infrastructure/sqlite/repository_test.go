package sqlite_test

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/maestros-api/internal/domain"
	"github.com/jhoicas/maestros-api/internal/domain/entity"
	"github.com/jhoicas/maestros-api/internal/domain/repository"
	"github.com/jhoicas/maestros-api/internal/infrastructure/sqlite"
)

func openTestDB(t *testing.T) sqlite.Querier {
	t.Helper()
	db, err := sqlite.Open(context.Background(), ":memory:")
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })
	return db
}

func TestTipoDocumentoRepo_CRUD(t *testing.T) {
	ctx := context.Background()
	repo := sqlite.NewTipoDocumentoRepository(openTestDB(t))

	dni := &entity.TipoDocumento{Codigo: "DNI", Nombre: "Documento Nacional", Estado: true}
	require.NoError(t, repo.Create(ctx, dni))
	assert.NotZero(t, dni.ID)

	ruc := &entity.TipoDocumento{Codigo: "RUC", Nombre: "Registro Único", Descripcion: "Contribuyentes", Estado: false}
	require.NoError(t, repo.Create(ctx, ruc))

	got, err := repo.GetByCodigo(ctx, "DNI")
	require.NoError(t, err)
	require.NotNil(t, got)
	assert.Equal(t, dni.ID, got.ID)
	assert.True(t, got.Estado)

	got, err = repo.GetByNombre(ctx, "Registro Único")
	require.NoError(t, err)
	assert.Equal(t, "Contribuyentes", got.Descripcion)

	missing, err := repo.GetByID(ctx, 9999)
	require.NoError(t, err)
	assert.Nil(t, missing, "registro inexistente devuelve nil sin error")

	activos, err := repo.ListByEstado(ctx, true)
	require.NoError(t, err)
	require.Len(t, activos, 1)
	assert.Equal(t, "DNI", activos[0].Codigo)

	ruc.Estado = true
	require.NoError(t, repo.Update(ctx, ruc))
	all, err := repo.List(ctx)
	require.NoError(t, err)
	assert.Len(t, all, 2)
	activos, err = repo.ListByEstado(ctx, true)
	require.NoError(t, err)
	assert.Len(t, activos, 2)

	require.NoError(t, repo.Delete(ctx, dni.ID))
	missing, err = repo.GetByID(ctx, dni.ID)
	require.NoError(t, err)
	assert.Nil(t, missing)
}

func TestTipoDocumentoRepo_UniqueViolation(t *testing.T) {
	ctx := context.Background()
	repo := sqlite.NewTipoDocumentoRepository(openTestDB(t))

	require.NoError(t, repo.Create(ctx, &entity.TipoDocumento{Codigo: "DNI", Nombre: "A", Estado: true}))
	err := repo.Create(ctx, &entity.TipoDocumento{Codigo: "DNI", Nombre: "B", Estado: true})
	assert.ErrorIs(t, err, domain.ErrDuplicate)
}

func TestEntidadRepo_CargaTipos(t *testing.T) {
	ctx := context.Background()
	db := openTestDB(t)
	tdRepo := sqlite.NewTipoDocumentoRepository(db)
	tcRepo := sqlite.NewTipoContribuyenteRepository(db)
	repo := sqlite.NewEntidadRepository(db)

	td := &entity.TipoDocumento{Codigo: "RUC", Nombre: "Registro Único", Estado: true}
	require.NoError(t, tdRepo.Create(ctx, td))
	tc := &entity.TipoContribuyente{Nombre: "Persona Jurídica", Estado: true}
	require.NoError(t, tcRepo.Create(ctx, tc))

	e := &entity.Entidad{
		NroDocumento:        "20123456789",
		RazonSocial:         "ACME SAC",
		Telefono:            "555-1234",
		Estado:              true,
		TipoDocumentoID:     td.ID,
		TipoContribuyenteID: tc.ID,
	}
	require.NoError(t, repo.Create(ctx, e))

	got, err := repo.GetByNroDocumento(ctx, "20123456789")
	require.NoError(t, err)
	require.NotNil(t, got)
	assert.Equal(t, "ACME SAC", got.RazonSocial)
	require.NotNil(t, got.TipoDocumento)
	assert.Equal(t, "RUC", got.TipoDocumento.Codigo)
	require.NotNil(t, got.TipoContribuyente)
	assert.Equal(t, "Persona Jurídica", got.TipoContribuyente.Nombre)

	inactivas, err := repo.ListByEstado(ctx, false)
	require.NoError(t, err)
	assert.Empty(t, inactivas)
}

func TestEntidadRepo_ReferenciaInexistenteEsErrorDeDatos(t *testing.T) {
	ctx := context.Background()
	repo := sqlite.NewEntidadRepository(openTestDB(t))

	err := repo.Create(ctx, &entity.Entidad{
		NroDocumento: "12345678", RazonSocial: "X", Estado: true,
		TipoDocumentoID: 1, TipoContribuyenteID: 1,
	})
	assert.ErrorIs(t, err, domain.ErrDataAccess, "las claves foráneas están activas")
}

func TestUsuarioRepo(t *testing.T) {
	ctx := context.Background()
	repo := sqlite.NewUsuarioRepository(openTestDB(t))

	u := &entity.Usuario{NombreUsuario: "admin1", Contrasena: "$2a$hash", Rol: "ROL_ADMIN", Estado: true}
	require.NoError(t, repo.Create(ctx, u))
	assert.NotZero(t, u.ID)

	got, err := repo.GetByNombreUsuario(ctx, "admin1")
	require.NoError(t, err)
	require.NotNil(t, got)
	assert.Equal(t, "$2a$hash", got.Contrasena)

	err = repo.Create(ctx, &entity.Usuario{NombreUsuario: "admin1", Contrasena: "x", Rol: "r", Estado: true})
	assert.ErrorIs(t, err, domain.ErrDuplicate)

	list, err := repo.List(ctx)
	require.NoError(t, err)
	assert.Len(t, list, 1)
}

func TestTxRunner_RollbackEnError(t *testing.T) {
	ctx := context.Background()
	db, err := sqlite.Open(ctx, ":memory:")
	require.NoError(t, err)
	defer db.Close()

	runner := sqlite.NewTxRunner(db)
	boom := errors.New("boom")
	err = runner.Run(ctx, func(repos repository.EntidadRepos) error {
		if err := repos.TiposDocumento.Create(ctx, &entity.TipoDocumento{Codigo: "DNI", Nombre: "DNI", Estado: true}); err != nil {
			return err
		}
		return boom
	})
	assert.ErrorIs(t, err, boom)

	list, err := sqlite.NewTipoDocumentoRepository(db).List(ctx)
	require.NoError(t, err)
	assert.Empty(t, list, "la inserción debe revertirse")
}
