package model

import "time"

// User roles. Admins manage everything; vendedores operate sales and the
// catalog; clientes only exist so the e-commerce front can authenticate.
const (
	TipoAdmin    = "admin"
	TipoVendedor = "vendedor"
	TipoCliente  = "cliente"
)

// Usuario stores system users with role-based access.
type Usuario struct {
	ID        uint   `gorm:"primaryKey"`
	Nome      string `gorm:"size:100;not null"`
	Email     string `gorm:"size:120;uniqueIndex;not null"`
	SenhaHash string `gorm:"size:255;not null"`
	Tipo      string `gorm:"size:20;not null;default:'cliente'"`
	Ativo     bool   `gorm:"not null;default:true"`
	CreatedAt time.Time
	UpdatedAt time.Time
}

func (Usuario) TableName() string { return "usuarios" }
