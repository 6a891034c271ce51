package tests

import (
	"context"
	"testing"

	"github.com/msambrenil/OjitosSinUsuarios/internal/apierror"
	"github.com/msambrenil/OjitosSinUsuarios/internal/dto"
	"github.com/msambrenil/OjitosSinUsuarios/internal/model"
	"github.com/msambrenil/OjitosSinUsuarios/internal/service"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCrearCategoria_NombreDuplicado(t *testing.T) {
	repo := newStubCategoriaRepo()
	svc := service.NewCategoriaService(repo)

	_, err := svc.Crear(context.Background(), dto.CrearCategoriaRequest{Nombre: "Perfumería"})
	require.NoError(t, err)

	_, err = svc.Crear(context.Background(), dto.CrearCategoriaRequest{Nombre: "Perfumería"})
	var ce *apierror.ConflictError
	require.ErrorAs(t, err, &ce)
}

func TestActualizarCategoria_RenombrarAMismoNombre(t *testing.T) {
	repo := newStubCategoriaRepo()
	svc := service.NewCategoriaService(repo)

	resp, err := svc.Crear(context.Background(), dto.CrearCategoriaRequest{Nombre: "Maquillaje"})
	require.NoError(t, err)

	// Renaming to its own current name is not a conflict
	updated, err := svc.Actualizar(context.Background(), uuid.MustParse(resp.ID),
		dto.ActualizarCategoriaRequest{Nombre: "Maquillaje"})
	require.NoError(t, err)
	assert.Equal(t, "Maquillaje", updated.Nombre)
}

func TestEliminarCategoria_EnUsoBloqueada(t *testing.T) {
	repo := newStubCategoriaRepo()
	svc := service.NewCategoriaService(repo)

	cat := &model.Categoria{ID: uuid.New(), Nombre: "Cuidado de la piel"}
	repo.categorias[cat.ID] = cat
	repo.asignadas[cat.ID] = true

	err := svc.Eliminar(context.Background(), cat.ID)
	var ce *apierror.ConflictError
	require.ErrorAs(t, err, &ce)

	// Unassigned category deletes fine
	libre := &model.Categoria{ID: uuid.New(), Nombre: "Hogar"}
	repo.categorias[libre.ID] = libre
	require.NoError(t, svc.Eliminar(context.Background(), libre.ID))
}

func TestCrearEtiqueta_NombreDuplicado(t *testing.T) {
	repo := newStubEtiquetaRepo()
	svc := service.NewEtiquetaService(repo)

	_, err := svc.Crear(context.Background(), dto.CrearEtiquetaRequest{Nombre: "Oferta"})
	require.NoError(t, err)

	_, err = svc.Crear(context.Background(), dto.CrearEtiquetaRequest{Nombre: "Oferta"})
	var ce *apierror.ConflictError
	require.ErrorAs(t, err, &ce)
}

func TestEliminarEtiqueta_EnUsoBloqueada(t *testing.T) {
	repo := newStubEtiquetaRepo()
	svc := service.NewEtiquetaService(repo)

	tag := &model.Etiqueta{ID: uuid.New(), Nombre: "Novedad"}
	repo.etiquetas[tag.ID] = tag
	repo.asignadas[tag.ID] = true

	err := svc.Eliminar(context.Background(), tag.ID)
	var ce *apierror.ConflictError
	require.ErrorAs(t, err, &ce)
}

func TestConfig_ActualizacionParcial(t *testing.T) {
	repo := newStubConfigRepo()
	svc := service.NewConfigService(repo)

	feria := true
	nombre := "OjitOs Showroom"
	resp, err := svc.Actualizar(context.Background(), dto.ActualizarConfigRequest{
		SiteName:          &nombre,
		IsFeriaModeActive: &feria,
	})
	require.NoError(t, err)
	assert.Equal(t, "OjitOs Showroom", resp.SiteName)
	assert.True(t, resp.IsFeriaModeActive)
	// Fields not in the request keep their defaults
	assert.Equal(t, "#6750A4", resp.BrandColorPrimary)

	// Persisted for subsequent reads
	again, err := svc.Obtener(context.Background())
	require.NoError(t, err)
	assert.True(t, again.IsFeriaModeActive)
}
