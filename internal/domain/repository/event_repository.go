package repository

import "github.com/tu-usuario/crm-eventos/internal/domain/entity"

// EventRepository define el puerto de persistencia para Event.
// Create debe devolver domain.ErrEventAlreadyExists si el contrato ya tiene
// evento: la unicidad por contract_id se garantiza en el storage, no solo
// con el look-then-create del use case.
type EventRepository interface {
	Create(event *entity.Event) error
	GetByID(id string) (*entity.Event, error)
	GetByContractID(contractID string) (*entity.Event, error)
	Update(event *entity.Event) error
	List() ([]*entity.Event, error)
	ListBySupport(supportID string) ([]*entity.Event, error)
	// ListUnassigned devuelve eventos con support_contact_id IS NULL.
	ListUnassigned() ([]*entity.Event, error)
}
