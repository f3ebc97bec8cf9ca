package entity

import "time"

// Event evento asociado 1:1 a un contrato firmado.
// ClientID se desnormaliza del contrato al crear el evento.
type Event struct {
	ID         string
	ContractID string // único: un contrato tiene como mucho un evento
	ClientID   string
	// SupportContactID queda nil hasta que GESTION asigna un usuario SUPPORT.
	SupportContactID *string
	EventDateStart   time.Time
	EventDateEnd     time.Time
	Location         string
	Attendees        int
	Notes            string // opcional
	CreatedAt        time.Time
	UpdatedAt        time.Time
}
