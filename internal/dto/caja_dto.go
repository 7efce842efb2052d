package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// ─── Request DTOs ────────────────────────────────────────────────────────────

// AbrirCajaRequest: an empty or invalid amount opens the till with 0.00.
type AbrirCajaRequest struct {
	MontoApertura CampoNumerico `json:"monto_apertura" form:"monto_apertura"`
}

// CerrarCajaRequest: an empty or invalid amount stores a NULL closing amount.
type CerrarCajaRequest struct {
	MontoCierre CampoNumerico `json:"monto_cierre" form:"monto_cierre"`
}

// ─── Response DTOs ───────────────────────────────────────────────────────────

type CajaResponse struct {
	IDCaja        uint             `json:"id_caja"`
	FechaApertura time.Time        `json:"fecha_apertura"`
	Usuario       string           `json:"usuario"`
	MontoApertura decimal.Decimal  `json:"monto_apertura"`
	MontoCierre   *decimal.Decimal `json:"monto_cierre"`
	FechaCierre   *time.Time       `json:"fecha_cierre"`
	Estado        string           `json:"estado"`
}
