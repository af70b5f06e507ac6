package entity

import "time"

// Company representa una empresa aliada del marketplace (laboratorio,
// distribuidor o clínica veterinaria) que publica productos y puede definir
// descuentos a nivel de toda su vitrina.
type Company struct {
	ID        string
	Name      string
	Slug      string // único, usado en URLs públicas
	Address   string
	Phone     string
	Email     string
	Status    string // active, suspended, inactive
	CreatedAt time.Time
	UpdatedAt time.Time
}
