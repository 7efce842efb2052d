package model

// Cliente is an independent customer record, optionally referenced by Factura.
type Cliente struct {
	IDCliente uint   `gorm:"column:id_cliente;primaryKey;autoIncrement"`
	Nombre    string `gorm:"not null"`
	Email     string
	Telefono  string
	Direccion string
}

func (Cliente) TableName() string { return "clientes" }
