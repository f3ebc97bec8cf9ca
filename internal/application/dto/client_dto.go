package dto

import "time"

// CreateClientRequest entrada para crear un cliente. El comercial propietario
// es siempre el caller; no se acepta en el body.
type CreateClientRequest struct {
	FullName    string `json:"full_name" validate:"required,min=1,max=200"`
	Email       string `json:"email" validate:"required,email"`
	Phone       string `json:"phone" validate:"required"`
	CompanyName string `json:"company_name" validate:"omitempty,max=200"`
}

// UpdateClientRequest actualización parcial: solo los campos no vacíos sobreescriben.
type UpdateClientRequest struct {
	FullName    string `json:"full_name"`
	Email       string `json:"email"`
	Phone       string `json:"phone"`
	CompanyName string `json:"company_name"`
}

// ClientResponse salida de un cliente.
type ClientResponse struct {
	ID                  string    `json:"id"`
	FullName            string    `json:"full_name"`
	Email               string    `json:"email"`
	Phone               string    `json:"phone"`
	CompanyName         string    `json:"company_name,omitempty"`
	CommercialContactID string    `json:"commercial_contact_id"`
	CreatedAt           time.Time `json:"created_at"`
	UpdatedAt           time.Time `json:"updated_at"`
}
