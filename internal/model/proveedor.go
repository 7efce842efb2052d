package model

import "time"

// Proveedor represents a supplier with commercial and address data.
// Estado: "activo" | "inactivo"
type Proveedor struct {
	ID              uint   `gorm:"column:id;primaryKey;autoIncrement"`
	RazonSocial     string `gorm:"index;not null"`
	NombreComercial string
	CUIT            string `gorm:"column:cuit"`
	Telefono        string
	Email           string
	DireccionFiscal string
	CalleNumero     string
	Ciudad          string
	Provincia       string
	CodigoPostal    string
	Pais            string
	Contacto        string
	CondicionPago   string
	Estado          string `gorm:"type:varchar(20);not null;default:'activo'"`

	// Stamped by the service, not by GORM, so the clock can be injected.
	CreatedAt time.Time `gorm:"autoCreateTime:false"`
	UpdatedAt time.Time `gorm:"autoUpdateTime:false"`
}

func (Proveedor) TableName() string { return "proveedores" }
