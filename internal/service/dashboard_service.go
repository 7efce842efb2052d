package service

import (
	"context"
	"time"

	"kiosco/internal/dto"
	"kiosco/internal/repository"

	"github.com/rs/zerolog/log"
	"github.com/shopspring/decimal"
)

const (
	UmbralStockBajo   = 5
	UmbralStockCritico = 2
	limiteStockBajo   = 10

	EstadoStockCritico = "Crítico"
	EstadoStockBajo    = "Bajo"
)

type DashboardService interface {
	// Resumen never fails: a metric whose query errors is logged and left at
	// its zero value.
	Resumen(ctx context.Context, nombre string) dto.DashboardResponse
}

type dashboardService struct {
	repo repository.DashboardRepository
	now  func() time.Time
}

func NewDashboardService(repo repository.DashboardRepository) DashboardService {
	return &dashboardService{repo: repo, now: time.Now}
}

func (s *dashboardService) Resumen(ctx context.Context, nombre string) dto.DashboardResponse {
	resp := dto.DashboardResponse{
		Nombre:             nombre,
		Stats:              dto.EstadisticasDashboard{TotalDia: decimal.Zero},
		ProductosStockBajo: []dto.ProductoStockBajo{},
	}
	desde, hasta := diaLocal(s.now())

	if n, err := s.repo.ContarClientes(ctx); err != nil {
		logMetrica(err, "total_clientes")
	} else {
		resp.Stats.TotalClientes = n
	}
	if n, err := s.repo.ContarProductosConStock(ctx); err != nil {
		logMetrica(err, "productos_stock")
	} else {
		resp.Stats.ProductosStock = n
	}
	if n, err := s.repo.ContarStockBajo(ctx, UmbralStockBajo); err != nil {
		logMetrica(err, "stock_bajo")
	} else {
		resp.Stats.StockBajo = n
	}
	if n, err := s.repo.ContarVentas(ctx, desde, hasta); err != nil {
		logMetrica(err, "ventas_hoy")
	} else {
		resp.Stats.VentasHoy = n
	}
	if total, err := s.repo.SumarVentas(ctx, desde, hasta); err != nil {
		logMetrica(err, "total_dia")
	} else if total.Valid {
		resp.Stats.TotalDia = total.Decimal.Round(2)
	}

	productos, err := s.repo.ListarStockBajo(ctx, UmbralStockBajo, limiteStockBajo)
	if err != nil {
		logMetrica(err, "productos_stock_bajo")
		return resp
	}
	for _, p := range productos {
		estado := EstadoStockBajo
		if p.Stock <= UmbralStockCritico {
			estado = EstadoStockCritico
		}
		resp.ProductosStockBajo = append(resp.ProductosStockBajo, dto.ProductoStockBajo{
			Descripcion: p.Descripcion,
			Stock:       p.Stock,
			StockMinimo: UmbralStockBajo,
			Estado:      estado,
		})
	}
	return resp
}

// diaLocal returns [00:00 today, 00:00 tomorrow) in t's location.
func diaLocal(t time.Time) (time.Time, time.Time) {
	y, m, d := t.Date()
	inicio := time.Date(y, m, d, 0, 0, 0, 0, t.Location())
	return inicio, inicio.AddDate(0, 0, 1)
}

func logMetrica(err error, metrica string) {
	log.Error().Err(err).Str("metrica", metrica).Msg("dashboard: metric query failed")
}
