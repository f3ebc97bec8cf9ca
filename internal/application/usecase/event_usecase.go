package usecase

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/tu-usuario/crm-eventos/internal/application/audit"
	"github.com/tu-usuario/crm-eventos/internal/application/dto"
	"github.com/tu-usuario/crm-eventos/internal/domain"
	"github.com/tu-usuario/crm-eventos/internal/domain/entity"
	"github.com/tu-usuario/crm-eventos/internal/domain/permission"
	"github.com/tu-usuario/crm-eventos/internal/domain/repository"
)

// EventUseCase operaciones sobre eventos.
type EventUseCase struct {
	repo     repository.EventRepository
	userRepo repository.UserRepository
	txRunner EventTxRunner
	recorder audit.Recorder
}

// NewEventUseCase construye el caso de uso con los puertos de persistencia.
func NewEventUseCase(repo repository.EventRepository, userRepo repository.UserRepository, txRunner EventTxRunner, recorder audit.Recorder) *EventUseCase {
	if recorder == nil {
		recorder = audit.NopRecorder{}
	}
	return &EventUseCase{repo: repo, userRepo: userRepo, txRunner: txRunner, recorder: recorder}
}

// List devuelve todos los eventos (cualquier usuario autenticado).
func (uc *EventUseCase) List(caller *entity.User) ([]*dto.EventResponse, error) {
	if err := permission.RequireAuthenticated(caller); err != nil {
		return nil, err
	}
	events, err := uc.repo.List()
	if err != nil {
		return nil, err
	}
	return toEventResponses(events), nil
}

// ListMine devuelve los eventos asignados al caller (SUPPORT únicamente).
func (uc *EventUseCase) ListMine(caller *entity.User) ([]*dto.EventResponse, error) {
	if err := permission.RequireRole(caller, entity.RoleSupport); err != nil {
		return nil, err
	}
	events, err := uc.repo.ListBySupport(caller.ID)
	if err != nil {
		return nil, err
	}
	return toEventResponses(events), nil
}

// ListUnassigned devuelve los eventos sin SUPPORT asignado.
func (uc *EventUseCase) ListUnassigned(caller *entity.User) ([]*dto.EventResponse, error) {
	if err := permission.RequireAuthenticated(caller); err != nil {
		return nil, err
	}
	events, err := uc.repo.ListUnassigned()
	if err != nil {
		return nil, err
	}
	return toEventResponses(events), nil
}

// Create crea un evento para un contrato firmado (COMMERCIAL propietario del
// contrato únicamente). Validación y escritura ocurren dentro de una misma
// transacción; el estado del contrato se relee ahí para que ningún observador
// vea una mutación a medias.
func (uc *EventUseCase) Create(ctx context.Context, caller *entity.User, in dto.CreateEventRequest) (*dto.EventResponse, error) {
	if err := permission.RequireRole(caller, entity.RoleCommercial); err != nil {
		return nil, err
	}
	if in.Location == "" || in.Attendees <= 0 {
		return nil, domain.ErrValidation
	}
	if in.EventDateEnd.Before(in.EventDateStart) {
		return nil, domain.ErrValidation
	}
	now := time.Now()
	event := &entity.Event{
		ID:             uuid.New().String(),
		ContractID:     in.ContractID,
		EventDateStart: in.EventDateStart,
		EventDateEnd:   in.EventDateEnd,
		Location:       in.Location,
		Attendees:      in.Attendees,
		Notes:          in.Notes,
		CreatedAt:      now,
		UpdatedAt:      now,
	}
	err := uc.txRunner.Run(ctx, func(contractRepo repository.ContractRepository, eventRepo repository.EventRepository) error {
		contract, err := contractRepo.GetByID(in.ContractID)
		if err != nil {
			return err
		}
		if contract == nil {
			return domain.ErrNotFound
		}
		if contract.CommercialContactID != caller.ID {
			return domain.ErrForbidden
		}
		if !contract.IsSigned {
			return domain.ErrContractNotSigned
		}
		existing, err := eventRepo.GetByContractID(in.ContractID)
		if err != nil {
			return err
		}
		if existing != nil {
			return domain.ErrEventAlreadyExists
		}
		event.ClientID = contract.ClientID
		// El UNIQUE sobre contract_id devuelve ErrEventAlreadyExists si otra
		// transacción ganó la carrera entre el chequeo y este insert.
		return eventRepo.Create(event)
	})
	if err != nil {
		uc.recorder.RecordError(err, map[string]interface{}{"action": "create_event", "contract_id": in.ContractID})
		return nil, err
	}
	uc.recorder.RecordEvent("event_created", map[string]interface{}{
		"event_id":    event.ID,
		"contract_id": event.ContractID,
		"created_by":  caller.ID,
	})
	return toEventResponse(event), nil
}

// Assign asigna un usuario SUPPORT al evento (GESTION únicamente).
// El usuario destino debe existir y tener rol SUPPORT; si no, ErrValidation.
func (uc *EventUseCase) Assign(caller *entity.User, eventID string, in dto.AssignEventRequest) (*dto.EventResponse, error) {
	if err := permission.RequireRole(caller, entity.RoleGestion); err != nil {
		return nil, err
	}
	event, err := uc.repo.GetByID(eventID)
	if err != nil {
		return nil, err
	}
	if event == nil {
		return nil, domain.ErrNotFound
	}
	support, err := uc.userRepo.GetByID(in.SupportContactID)
	if err != nil {
		return nil, err
	}
	if support == nil || support.Role != entity.RoleSupport {
		return nil, domain.ErrValidation
	}
	event.SupportContactID = &support.ID
	event.UpdatedAt = time.Now()
	if err := uc.repo.Update(event); err != nil {
		uc.recorder.RecordError(err, map[string]interface{}{"action": "assign_event", "event_id": eventID})
		return nil, err
	}
	uc.recorder.RecordEvent("event_assigned", map[string]interface{}{
		"event_id":           event.ID,
		"support_contact_id": support.ID,
		"assigned_by":        caller.ID,
	})
	return toEventResponse(event), nil
}

// Update actualiza parcialmente un evento. COMMERCIAL está bloqueado
// explícitamente (nunca modifica eventos tras crearlos); SUPPORT solo si el
// evento ya le está asignado; GESTION siempre.
func (uc *EventUseCase) Update(caller *entity.User, eventID string, in dto.UpdateEventRequest) (*dto.EventResponse, error) {
	if err := permission.RequireAuthenticated(caller); err != nil {
		return nil, err
	}
	event, err := uc.repo.GetByID(eventID)
	if err != nil {
		return nil, err
	}
	if event == nil {
		return nil, domain.ErrNotFound
	}
	// Guard explícito: COMMERCIAL no toca eventos después de la creación.
	if caller.Role == entity.RoleCommercial {
		return nil, domain.ErrForbidden
	}
	if caller.Role == entity.RoleSupport {
		if event.SupportContactID == nil {
			return nil, domain.ErrForbidden
		}
		if err := permission.RequireOwnerOrGestion(caller, *event.SupportContactID); err != nil {
			return nil, err
		}
	}
	if in.Attendees != nil && *in.Attendees <= 0 {
		return nil, domain.ErrValidation
	}
	if in.EventDateStart != nil {
		event.EventDateStart = *in.EventDateStart
	}
	if in.EventDateEnd != nil {
		event.EventDateEnd = *in.EventDateEnd
	}
	if event.EventDateEnd.Before(event.EventDateStart) {
		return nil, domain.ErrValidation
	}
	if in.Location != "" {
		event.Location = in.Location
	}
	if in.Attendees != nil {
		event.Attendees = *in.Attendees
	}
	if in.Notes != nil {
		event.Notes = *in.Notes
	}
	event.UpdatedAt = time.Now()
	if err := uc.repo.Update(event); err != nil {
		uc.recorder.RecordError(err, map[string]interface{}{"action": "update_event", "event_id": eventID})
		return nil, err
	}
	uc.recorder.RecordEvent("event_updated", map[string]interface{}{
		"event_id":   event.ID,
		"updated_by": caller.ID,
	})
	return toEventResponse(event), nil
}

// GetByID obtiene un evento por id (cualquier usuario autenticado).
func (uc *EventUseCase) GetByID(caller *entity.User, id string) (*dto.EventResponse, error) {
	if err := permission.RequireAuthenticated(caller); err != nil {
		return nil, err
	}
	event, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if event == nil {
		return nil, domain.ErrNotFound
	}
	return toEventResponse(event), nil
}

func toEventResponse(e *entity.Event) *dto.EventResponse {
	if e == nil {
		return nil
	}
	return &dto.EventResponse{
		ID:               e.ID,
		ContractID:       e.ContractID,
		ClientID:         e.ClientID,
		SupportContactID: e.SupportContactID,
		EventDateStart:   e.EventDateStart,
		EventDateEnd:     e.EventDateEnd,
		Location:         e.Location,
		Attendees:        e.Attendees,
		Notes:            e.Notes,
		CreatedAt:        e.CreatedAt,
		UpdatedAt:        e.UpdatedAt,
	}
}

func toEventResponses(events []*entity.Event) []*dto.EventResponse {
	out := make([]*dto.EventResponse, 0, len(events))
	for _, e := range events {
		out = append(out, toEventResponse(e))
	}
	return out
}
