package entity

import "time"

// Client cliente de la cartera, siempre con un comercial como contacto.
type Client struct {
	ID          string
	FullName    string
	Email       string
	Phone       string
	CompanyName string // opcional
	// CommercialContactID referencia al User propietario. Debería ser un
	// COMMERCIAL, pero no se valida en la creación: el único flujo que crea
	// clientes ya exige rol COMMERCIAL al caller.
	CommercialContactID string
	CreatedAt           time.Time
	UpdatedAt           time.Time
}
