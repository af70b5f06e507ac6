package entity

import "time"

// Roles válidos para User.
const (
	RoleAdmin    = "admin"    // back-office del marketplace
	RoleCompany  = "company"  // gestiona su empresa y sus descuentos
	RoleCustomer = "customer" // comprador
)

// User representa un usuario del sistema. Los usuarios de rol company
// pertenecen a una Company; admin y customer no.
type User struct {
	ID           string
	CompanyID    string // vacío para admin y customer
	Email        string
	PasswordHash string // bcrypt hash, nunca plano en dominio después de persistir
	Name         string
	Role         string // admin, company, customer
	Status       string // active, inactive, suspended
	CreatedAt    time.Time
	UpdatedAt    time.Time
}
