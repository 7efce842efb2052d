package dto

import "time"

// ─── Request DTOs ────────────────────────────────────────────────────────────

// ProveedorRequest mirrors the supplier form. ID is only set when the form is
// re-submitted for an existing supplier.
type ProveedorRequest struct {
	ID              *uint  `json:"id"               form:"id"`
	RazonSocial     string `json:"razon_social"     form:"razon_social"`
	NombreComercial string `json:"nombre_comercial" form:"nombre_comercial"`
	CUIT            string `json:"cuit"             form:"cuit"`
	Telefono        string `json:"telefono"         form:"telefono"`
	Email           string `json:"email"            form:"email"`
	DireccionFiscal string `json:"direccion_fiscal" form:"direccion_fiscal"`
	CalleNumero     string `json:"calle_numero"     form:"calle_numero"`
	Ciudad          string `json:"ciudad"           form:"ciudad"`
	Provincia       string `json:"provincia"        form:"provincia"`
	CodigoPostal    string `json:"codigo_postal"    form:"codigo_postal"`
	Pais            string `json:"pais"             form:"pais"`
	Contacto        string `json:"contacto"         form:"contacto"`
	CondicionPago   string `json:"condicion_pago"   form:"condicion_pago"`
	Estado          string `json:"estado"           form:"estado" validate:"omitempty,oneof=activo inactivo"`
}

// ─── Response DTOs ───────────────────────────────────────────────────────────

type ProveedorResponse struct {
	ID              uint      `json:"id"`
	RazonSocial     string    `json:"razon_social"`
	NombreComercial string    `json:"nombre_comercial"`
	CUIT            string    `json:"cuit"`
	Telefono        string    `json:"telefono"`
	Email           string    `json:"email"`
	DireccionFiscal string    `json:"direccion_fiscal"`
	CalleNumero     string    `json:"calle_numero"`
	Ciudad          string    `json:"ciudad"`
	Provincia       string    `json:"provincia"`
	CodigoPostal    string    `json:"codigo_postal"`
	Pais            string    `json:"pais"`
	Contacto        string    `json:"contacto"`
	CondicionPago   string    `json:"condicion_pago"`
	Estado          string    `json:"estado"`
	CreatedAt       time.Time `json:"created_at"`
	UpdatedAt       time.Time `json:"updated_at"`
}
