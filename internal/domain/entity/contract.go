package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Contract contrato de un cliente.
type Contract struct {
	ID       string
	ClientID string
	// CommercialContactID es un snapshot del comercial del cliente en el
	// momento de crear el contrato; no se re-sincroniza nunca. La propiedad
	// del contrato sigue a este campo, no al comercial actual del cliente.
	CommercialContactID string
	TotalAmount         decimal.Decimal
	RemainingAmount     decimal.Decimal
	// IsSigned es monótono: solo transiciona false -> true, nunca se revierte.
	IsSigned  bool
	CreatedAt time.Time
	UpdatedAt time.Time
}
