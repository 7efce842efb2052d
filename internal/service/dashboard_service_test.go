package service

import (
	"context"
	"errors"
	"fmt"
	"testing"
	"time"

	"kiosco/internal/model"
	"kiosco/internal/repository"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

var hoy = time.Date(2026, 7, 9, 15, 0, 0, 0, time.Local)

func newDashboardSvc(repo repository.DashboardRepository) *dashboardService {
	svc := NewDashboardService(repo).(*dashboardService)
	svc.now = fixedClock(hoy)
	return svc
}

func seedFactura(t *testing.T, db *gorm.DB, fecha time.Time, total string) {
	t.Helper()
	require.NoError(t, db.Create(&model.Factura{Fecha: fecha, Total: dec(total)}).Error)
}

func TestResumen_Metricas(t *testing.T) {
	db := newTestDB(t)
	seedCliente(t, db, "Ana")
	seedCliente(t, db, "Beto")
	for i, stock := range []int{0, 1, 2, 3, 5, 6, 20} {
		seedProducto(t, db, fmt.Sprintf("P%d", i), decPtr("1"), stock)
	}
	inicioDelDia := time.Date(2026, 7, 9, 0, 0, 0, 0, time.Local)
	seedFactura(t, db, inicioDelDia, "10.10")
	seedFactura(t, db, hoy.Add(-time.Hour), "5.25")
	seedFactura(t, db, inicioDelDia.Add(-time.Second), "99") // yesterday
	seedFactura(t, db, inicioDelDia.AddDate(0, 0, 1), "99")  // tomorrow
	svc := newDashboardSvc(repository.NewDashboardRepository(db))

	resp := svc.Resumen(context.Background(), "Laura")

	assert.Equal(t, "Laura", resp.Nombre)
	assert.Equal(t, int64(2), resp.Stats.TotalClientes)
	assert.Equal(t, int64(6), resp.Stats.ProductosStock)
	assert.Equal(t, int64(4), resp.Stats.StockBajo)
	assert.Equal(t, int64(2), resp.Stats.VentasHoy)
	assert.True(t, resp.Stats.TotalDia.Equal(dec("15.35")), "got %s", resp.Stats.TotalDia)

	require.Len(t, resp.ProductosStockBajo, 5)
	stocks := make([]int, 0, 5)
	for _, p := range resp.ProductosStockBajo {
		stocks = append(stocks, p.Stock)
		assert.Equal(t, UmbralStockBajo, p.StockMinimo)
	}
	assert.Equal(t, []int{0, 1, 2, 3, 5}, stocks)
	assert.Equal(t, EstadoStockCritico, resp.ProductosStockBajo[2].Estado)
	assert.Equal(t, EstadoStockBajo, resp.ProductosStockBajo[3].Estado)
}

func TestResumen_SinVentasTotalCero(t *testing.T) {
	db := newTestDB(t)
	svc := newDashboardSvc(repository.NewDashboardRepository(db))

	resp := svc.Resumen(context.Background(), "Laura")
	assert.True(t, resp.Stats.TotalDia.IsZero())
	assert.Zero(t, resp.Stats.VentasHoy)
	assert.NotNil(t, resp.ProductosStockBajo)
	assert.Empty(t, resp.ProductosStockBajo)
}

func TestResumen_ListaLimitadaADiez(t *testing.T) {
	db := newTestDB(t)
	for i := 0; i < 12; i++ {
		seedProducto(t, db, fmt.Sprintf("P%02d", i), nil, i%6)
	}
	svc := newDashboardSvc(repository.NewDashboardRepository(db))

	resp := svc.Resumen(context.Background(), "Laura")
	require.Len(t, resp.ProductosStockBajo, 10)
	for i := 1; i < len(resp.ProductosStockBajo); i++ {
		assert.LessOrEqual(t, resp.ProductosStockBajo[i-1].Stock, resp.ProductosStockBajo[i].Stock)
	}
}

// failingDashboardRepo breaks one metric and delegates the rest.
type failingDashboardRepo struct {
	repository.DashboardRepository
}

func (failingDashboardRepo) ContarClientes(context.Context) (int64, error) {
	return 0, errors.New("no such table: clientes")
}

func TestResumen_MetricaFallidaQuedaEnCero(t *testing.T) {
	db := newTestDB(t)
	seedCliente(t, db, "Ana")
	seedProducto(t, db, "Yerba", decPtr("3"), 2)
	seedFactura(t, db, hoy, "3")
	svc := newDashboardSvc(failingDashboardRepo{repository.NewDashboardRepository(db)})

	resp := svc.Resumen(context.Background(), "Laura")

	assert.Zero(t, resp.Stats.TotalClientes)
	assert.Equal(t, int64(1), resp.Stats.ProductosStock)
	assert.Equal(t, int64(1), resp.Stats.VentasHoy)
	assert.True(t, resp.Stats.TotalDia.Equal(dec("3")))
	assert.Len(t, resp.ProductosStockBajo, 1)
}

func TestDiaLocal(t *testing.T) {
	desde, hasta := diaLocal(hoy)
	assert.Equal(t, time.Date(2026, 7, 9, 0, 0, 0, 0, time.Local), desde)
	assert.Equal(t, time.Date(2026, 7, 10, 0, 0, 0, 0, time.Local), hasta)
}
