package model

import (
	"github.com/shopspring/decimal"
)

// Producto is a sellable item.
// When PrecioCosto and MargenGanancia are both set, Precio is derived from
// them; otherwise Precio is whatever the operator typed, possibly nothing.
type Producto struct {
	IDProducto     uint             `gorm:"column:id_producto;primaryKey;autoIncrement"`
	Descripcion    string           `gorm:"index;not null"`
	Precio         *decimal.Decimal `gorm:"type:decimal(12,2)"`
	Stock          int              `gorm:"not null;default:0"`
	PrecioCosto    *decimal.Decimal `gorm:"type:decimal(12,2)"`
	MargenGanancia *decimal.Decimal `gorm:"type:decimal(7,2)"`
}

func (Producto) TableName() string { return "productos" }
