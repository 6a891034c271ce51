package tests

import (
	"context"
	"testing"
	"time"

	"github.com/msambrenil/OjitosSinUsuarios/internal/apierror"
	"github.com/msambrenil/OjitosSinUsuarios/internal/dto"
	"github.com/msambrenil/OjitosSinUsuarios/internal/model"
	"github.com/msambrenil/OjitosSinUsuarios/internal/service"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func buildClienteSvc() (service.ClienteService, *stubClienteRepo, *stubVentaRepo) {
	clienteRepo := newStubClienteRepo()
	ventaRepo := newStubVentaRepo()
	return service.NewClienteService(clienteRepo, ventaRepo), clienteRepo, ventaRepo
}

func TestCrearCliente_NivelPorDefecto(t *testing.T) {
	svc, _, _ := buildClienteSvc()

	resp, err := svc.Crear(context.Background(), dto.CrearClienteRequest{Nombre: "María López"})
	require.NoError(t, err)
	assert.Equal(t, "Nuevo", resp.Nivel)
	assert.Equal(t, "María López", resp.Nombre)
}

func TestActualizarCliente_CambioDeNivel(t *testing.T) {
	svc, clienteRepo, _ := buildClienteSvc()
	cli := seedCliente(clienteRepo, "Carla Gómez")

	vip := "VIP"
	resp, err := svc.Actualizar(context.Background(), cli.ID, dto.ActualizarClienteRequest{
		Nombre: "Carla Gómez",
		Nivel:  &vip,
	})
	require.NoError(t, err)
	assert.Equal(t, "VIP", resp.Nivel)
}

func TestEliminarCliente_SinVentas(t *testing.T) {
	svc, clienteRepo, _ := buildClienteSvc()
	cli := seedCliente(clienteRepo, "Sin Historia")

	require.NoError(t, svc.Eliminar(context.Background(), cli.ID))
	assert.Empty(t, clienteRepo.clientes)
}

func TestEliminarCliente_ConVentasBloqueado(t *testing.T) {
	svc, clienteRepo, ventaRepo := buildClienteSvc()
	cli := seedCliente(clienteRepo, "Con Historia")

	ventaRepo.ventas[uuid.New()] = &model.Venta{
		ID:        uuid.New(),
		ClienteID: cli.ID,
		FechaAlta: time.Now(),
		Estado:    model.EstadoCobrado,
	}

	err := svc.Eliminar(context.Background(), cli.ID)
	var ce *apierror.ConflictError
	require.ErrorAs(t, err, &ce)

	// Cliente still there
	_, err = svc.Obtener(context.Background(), cli.ID)
	require.NoError(t, err)
}

func TestObtenerCliente_Inexistente(t *testing.T) {
	svc, _, _ := buildClienteSvc()

	_, err := svc.Obtener(context.Background(), uuid.New())
	var nf *apierror.NotFoundError
	require.ErrorAs(t, err, &nf)
}
