package dto

import "time"

// CreateEventRequest entrada para crear un evento sobre un contrato firmado.
type CreateEventRequest struct {
	ContractID     string    `json:"contract_id" validate:"required,uuid"`
	EventDateStart time.Time `json:"event_date_start" validate:"required"`
	EventDateEnd   time.Time `json:"event_date_end" validate:"required"`
	Location       string    `json:"location" validate:"required"`
	Attendees      int       `json:"attendees" validate:"required,min=1"`
	Notes          string    `json:"notes"`
}

// UpdateEventRequest actualización parcial. Punteros nil => campo sin tocar.
type UpdateEventRequest struct {
	EventDateStart *time.Time `json:"event_date_start"`
	EventDateEnd   *time.Time `json:"event_date_end"`
	Location       string     `json:"location"`
	Attendees      *int       `json:"attendees"`
	Notes          *string    `json:"notes"`
}

// AssignEventRequest asignación de un usuario SUPPORT al evento.
type AssignEventRequest struct {
	SupportContactID string `json:"support_contact_id" validate:"required,uuid"`
}

// EventResponse salida de un evento.
type EventResponse struct {
	ID               string    `json:"id"`
	ContractID       string    `json:"contract_id"`
	ClientID         string    `json:"client_id"`
	SupportContactID *string   `json:"support_contact_id"`
	EventDateStart   time.Time `json:"event_date_start"`
	EventDateEnd     time.Time `json:"event_date_end"`
	Location         string    `json:"location"`
	Attendees        int       `json:"attendees"`
	Notes            string    `json:"notes,omitempty"`
	CreatedAt        time.Time `json:"created_at"`
	UpdatedAt        time.Time `json:"updated_at"`
}
