package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// ─── Request DTOs ────────────────────────────────────────────────────────────

// RegistrarVentaRequest carries parallel product/quantity lists, as posted by
// the sale form (producto[] / cantidad[]). IDCliente 0 or absent means a sale
// without client. List consistency is checked by the sales service so that
// every malformed sale is answered the same way.
type RegistrarVentaRequest struct {
	IDCliente  *uint  `json:"id_cliente" form:"id_cliente"`
	Productos  []uint `json:"productos"  form:"producto[]"`
	Cantidades []int  `json:"cantidades" form:"cantidad[]"`
}

// ─── Response DTOs ───────────────────────────────────────────────────────────

type DetalleFacturaResponse struct {
	IDProducto     uint            `json:"id_producto"`
	Descripcion    *string         `json:"descripcion"`
	Cantidad       int             `json:"cantidad"`
	PrecioUnitario decimal.Decimal `json:"precio_unitario"`
	Subtotal       decimal.Decimal `json:"subtotal"`
}

type FacturaResponse struct {
	IDFactura uint                     `json:"id_factura"`
	IDCliente *uint                    `json:"id_cliente"`
	Cliente   *string                  `json:"cliente"`
	Fecha     time.Time                `json:"fecha"`
	Total     decimal.Decimal          `json:"total"`
	Detalles  []DetalleFacturaResponse `json:"detalles"`
}

// FacturaListItem is one row of the invoice listing, with the profit earned
// on it: SUM(cantidad × (precio_unitario − precio_costo)).
type FacturaListItem struct {
	IDFactura uint            `json:"id_factura"`
	Fecha     time.Time       `json:"fecha"`
	Total     decimal.Decimal `json:"total"`
	Cliente   *string         `json:"cliente"`
	Ganancia  decimal.Decimal `json:"ganancia"`
}

// CatalogoVentaResponse is the data needed to fill the sale form.
type CatalogoVentaResponse struct {
	Clientes  []ClienteResponse  `json:"clientes"`
	Productos []ProductoResponse `json:"productos"`
}
