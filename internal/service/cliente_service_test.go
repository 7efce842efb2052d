package service

import (
	"context"
	"testing"

	"kiosco/internal/dto"
	"kiosco/internal/model"
	"kiosco/internal/repository"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestClientes_CRUD(t *testing.T) {
	db := newTestDB(t)
	svc := NewClienteService(repository.NewClienteRepository(db))
	ctx := context.Background()

	creado, err := svc.Crear(ctx, dto.ClienteRequest{
		Nombre: "Ana Pérez", Email: "ana@mail.com", Telefono: "351-555", Direccion: "Calle 1",
	})
	require.NoError(t, err)
	assert.NotZero(t, creado.IDCliente)

	// Full overwrite: omitted fields become empty
	actualizado, err := svc.Actualizar(ctx, creado.IDCliente, dto.ClienteRequest{Nombre: "Ana P."})
	require.NoError(t, err)
	assert.Equal(t, "Ana P.", actualizado.Nombre)

	got, err := svc.Obtener(ctx, creado.IDCliente)
	require.NoError(t, err)
	assert.Equal(t, "Ana P.", got.Nombre)
	assert.Empty(t, got.Email)
	assert.Empty(t, got.Telefono)

	require.NoError(t, svc.Eliminar(ctx, creado.IDCliente))
	_, err = svc.Obtener(ctx, creado.IDCliente)
	assert.ErrorIs(t, err, ErrClienteNoEncontrado)
}

func TestClientes_Inexistente(t *testing.T) {
	db := newTestDB(t)
	svc := NewClienteService(repository.NewClienteRepository(db))

	_, err := svc.Actualizar(context.Background(), 9, dto.ClienteRequest{Nombre: "x"})
	assert.ErrorIs(t, err, ErrClienteNoEncontrado)
	assert.ErrorIs(t, svc.Eliminar(context.Background(), 9), ErrNoEncontrado)
}

func TestClientes_ListarPorID(t *testing.T) {
	db := newTestDB(t)
	svc := NewClienteService(repository.NewClienteRepository(db))
	seedCliente(t, db, "Zoe")
	seedCliente(t, db, "Abel")

	list, err := svc.Listar(context.Background())
	require.NoError(t, err)
	require.Len(t, list, 2)
	assert.Equal(t, "Zoe", list[0].Nombre)
	assert.Equal(t, "Abel", list[1].Nombre)
}

func TestEliminarCliente_FacturasConservanReferencia(t *testing.T) {
	db := newTestDB(t)
	clientes := NewClienteService(repository.NewClienteRepository(db))
	ventas := newVentaSvc(t, db)
	facturas := NewFacturaService(repository.NewFacturaRepository(db))
	c := seedCliente(t, db, "Ana")
	p := seedProducto(t, db, "Alfajor", decPtr("2"), 3)

	venta, err := ventas.RegistrarVenta(context.Background(), dto.RegistrarVentaRequest{
		IDCliente: uintPtr(c.IDCliente), Productos: []uint{p.IDProducto}, Cantidades: []int{1},
	})
	require.NoError(t, err)
	require.NoError(t, clientes.Eliminar(context.Background(), c.IDCliente))

	var f model.Factura
	require.NoError(t, db.First(&f, venta.IDFactura).Error)
	require.NotNil(t, f.IDCliente)
	assert.Equal(t, c.IDCliente, *f.IDCliente)

	list, err := facturas.Listar(context.Background())
	require.NoError(t, err)
	require.Len(t, list, 1)
	assert.Nil(t, list[0].Cliente)
}
