package dto

import "github.com/shopspring/decimal"

// ─── Request DTOs ────────────────────────────────────────────────────────────

// ProductoRequest is used for both create and update. Empty or non-numeric
// price fields count as absent.
type ProductoRequest struct {
	Descripcion    string        `json:"descripcion"     form:"descripcion"     validate:"required,min=1"`
	Stock          *int          `json:"stock"           form:"stock"           validate:"required"`
	Precio         CampoNumerico `json:"precio"          form:"precio"`
	PrecioCosto    CampoNumerico `json:"precio_costo"    form:"precio_costo"`
	MargenGanancia CampoNumerico `json:"margen_ganancia" form:"margen_ganancia"`
}

// ─── Response DTOs ───────────────────────────────────────────────────────────

type ProductoResponse struct {
	IDProducto     uint             `json:"id_producto"`
	Descripcion    string           `json:"descripcion"`
	Precio         *decimal.Decimal `json:"precio"`
	Stock          int              `json:"stock"`
	PrecioCosto    *decimal.Decimal `json:"precio_costo"`
	MargenGanancia *decimal.Decimal `json:"margen_ganancia"`
}
