package model

// Usuario is an operator account.
// Rol: "usuario" (self-registered) | "administrador"
type Usuario struct {
	ID     uint   `gorm:"column:id;primaryKey;autoIncrement"`
	Nombre string `gorm:"not null"`
	Email  string `gorm:"uniqueIndex;not null"`
	// Password holds a bcrypt hash, never the plain text.
	Password string `gorm:"not null"`
	Rol      string `gorm:"type:varchar(20);not null;default:'usuario'"`
}

func (Usuario) TableName() string { return "usuarios" }
