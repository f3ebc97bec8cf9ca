package usecase

import (
	"context"

	"github.com/tu-usuario/crm-eventos/internal/domain/repository"
)

// EventTxRunner ejecuta fn dentro de una transacción con repos atados a ella.
// La creación de eventos valida contrato y unicidad y escribe en un único
// commit; el constraint UNIQUE de events.contract_id cierra en el storage la
// carrera que el look-then-create no puede cerrar solo.
type EventTxRunner interface {
	Run(ctx context.Context, fn func(
		contractRepo repository.ContractRepository,
		eventRepo repository.EventRepository,
	) error) error
}
