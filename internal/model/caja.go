package model

import (
	"time"

	"github.com/shopspring/decimal"
)

const (
	CajaAbierta = "abierta"
	CajaCerrada = "cerrada"
)

// Caja represents one till session.
// Lifecycle: created abierta with closing fields NULL, then closed once
// (estado cerrada, MontoCierre/FechaCierre set).
type Caja struct {
	IDCaja        uint             `gorm:"column:id_caja;primaryKey;autoIncrement"`
	FechaApertura time.Time        `gorm:"not null;index"`
	Usuario       string           `gorm:"column:usuario"`
	MontoApertura decimal.Decimal  `gorm:"type:decimal(12,2);not null"`
	MontoCierre   *decimal.Decimal `gorm:"type:decimal(12,2)"`
	FechaCierre   *time.Time
	Estado        string `gorm:"type:varchar(20);not null"`
}

func (Caja) TableName() string { return "cajas" }
