package model

import (
	"time"

	"github.com/shopspring/decimal"
)

// Factura is a sale header. IDCliente is nullable and not enforced as a
// foreign key: deleting a client leaves historical invoices untouched.
type Factura struct {
	IDFactura uint            `gorm:"column:id_factura;primaryKey;autoIncrement"`
	IDCliente *uint           `gorm:"column:id_cliente;index"`
	Fecha     time.Time       `gorm:"not null;index"`
	Total     decimal.Decimal `gorm:"type:decimal(12,2);not null;default:0"`
}

func (Factura) TableName() string { return "facturas" }

// DetalleFactura is an immutable invoice line. PrecioUnitario is the product
// price in effect at sale time.
type DetalleFactura struct {
	IDDetalle      uint            `gorm:"column:id_detalle;primaryKey;autoIncrement"`
	IDFactura      uint            `gorm:"column:id_factura;index;not null"`
	IDProducto     uint            `gorm:"column:id_producto;index;not null"`
	Cantidad       int             `gorm:"not null"`
	PrecioUnitario decimal.Decimal `gorm:"type:decimal(12,2);not null"`
	Subtotal       decimal.Decimal `gorm:"type:decimal(12,2);not null"`
}

func (DetalleFactura) TableName() string { return "detalle_factura" }
