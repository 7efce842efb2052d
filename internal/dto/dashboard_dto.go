package dto

import "github.com/shopspring/decimal"

type EstadisticasDashboard struct {
	VentasHoy      int64           `json:"ventas_hoy"`
	TotalDia       decimal.Decimal `json:"total_dia"`
	ProductosStock int64           `json:"productos_stock"`
	StockBajo      int64           `json:"stock_bajo"`
	TotalClientes  int64           `json:"total_clientes"`
}

type ProductoStockBajo struct {
	Descripcion string `json:"descripcion"`
	Stock       int    `json:"stock"`
	StockMinimo int    `json:"stock_minimo"`
	Estado      string `json:"estado"` // Crítico | Bajo
}

type DashboardResponse struct {
	Nombre             string                `json:"nombre"`
	Stats              EstadisticasDashboard `json:"stats"`
	ProductosStockBajo []ProductoStockBajo   `json:"productos_stock_bajo"`
}
