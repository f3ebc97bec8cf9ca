package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// CreateContractRequest entrada para crear un contrato.
// RemainingAmount nil => se toma TotalAmount como pendiente.
type CreateContractRequest struct {
	ClientID        string           `json:"client_id" validate:"required,uuid"`
	TotalAmount     decimal.Decimal  `json:"total_amount" validate:"required"`
	RemainingAmount *decimal.Decimal `json:"remaining_amount"`
}

// ContractResponse salida de un contrato.
type ContractResponse struct {
	ID                  string          `json:"id"`
	ClientID            string          `json:"client_id"`
	CommercialContactID string          `json:"commercial_contact_id"`
	TotalAmount         decimal.Decimal `json:"total_amount"`
	RemainingAmount     decimal.Decimal `json:"remaining_amount"`
	IsSigned            bool            `json:"is_signed"`
	CreatedAt           time.Time       `json:"created_at"`
	UpdatedAt           time.Time       `json:"updated_at"`
}
