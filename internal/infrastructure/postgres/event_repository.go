package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/tu-usuario/crm-eventos/internal/domain"
	"github.com/tu-usuario/crm-eventos/internal/domain/entity"
	"github.com/tu-usuario/crm-eventos/internal/domain/repository"
)

var _ repository.EventRepository = (*EventRepo)(nil)

// EventRepo implementación del puerto EventRepository sobre PostgreSQL.
type EventRepo struct {
	db DB
}

// NewEventRepository construye el adaptador de persistencia para eventos.
func NewEventRepository(db DB) *EventRepo {
	return &EventRepo{db: db}
}

const eventColumns = `id, contract_id, client_id, support_contact_id, event_date_start, event_date_end, location, attendees, notes, created_at, updated_at`

// Create persiste un nuevo evento. El UNIQUE sobre contract_id cierra la
// carrera de doble creación en el storage y mapea a ErrEventAlreadyExists.
func (r *EventRepo) Create(event *entity.Event) error {
	query := `
		INSERT INTO events (id, contract_id, client_id, support_contact_id, event_date_start, event_date_end, location, attendees, notes, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)`
	_, err := r.db.Exec(context.Background(), query,
		event.ID, event.ContractID, event.ClientID, event.SupportContactID,
		event.EventDateStart, event.EventDateEnd, event.Location, event.Attendees,
		nullable(event.Notes), event.CreatedAt, event.UpdatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrEventAlreadyExists
		}
		return fmt.Errorf("insert event: %w", err)
	}
	return nil
}

// GetByID obtiene un evento por ID. Devuelve (nil, nil) si no existe.
func (r *EventRepo) GetByID(id string) (*entity.Event, error) {
	query := `SELECT ` + eventColumns + ` FROM events WHERE id = $1`
	return scanEvent(r.db.QueryRow(context.Background(), query, id))
}

// GetByContractID obtiene el evento de un contrato (relación 1:1).
func (r *EventRepo) GetByContractID(contractID string) (*entity.Event, error) {
	query := `SELECT ` + eventColumns + ` FROM events WHERE contract_id = $1`
	return scanEvent(r.db.QueryRow(context.Background(), query, contractID))
}

// Update sobreescribe los campos mutables en una sola sentencia.
func (r *EventRepo) Update(event *entity.Event) error {
	query := `
		UPDATE events
		SET support_contact_id = $2, event_date_start = $3, event_date_end = $4,
		    location = $5, attendees = $6, notes = $7, updated_at = $8
		WHERE id = $1`
	_, err := r.db.Exec(context.Background(), query,
		event.ID, event.SupportContactID, event.EventDateStart, event.EventDateEnd,
		event.Location, event.Attendees, nullable(event.Notes), event.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("update event: %w", err)
	}
	return nil
}

// List devuelve todos los eventos.
func (r *EventRepo) List() ([]*entity.Event, error) {
	return r.queryMany(`SELECT ` + eventColumns + ` FROM events ORDER BY event_date_start`)
}

// ListBySupport devuelve los eventos asignados a un usuario SUPPORT.
func (r *EventRepo) ListBySupport(supportID string) ([]*entity.Event, error) {
	return r.queryMany(`SELECT `+eventColumns+` FROM events WHERE support_contact_id = $1 ORDER BY event_date_start`, supportID)
}

// ListUnassigned devuelve los eventos sin SUPPORT asignado.
func (r *EventRepo) ListUnassigned() ([]*entity.Event, error) {
	return r.queryMany(`SELECT ` + eventColumns + ` FROM events WHERE support_contact_id IS NULL ORDER BY event_date_start`)
}

func (r *EventRepo) queryMany(query string, args ...any) ([]*entity.Event, error) {
	rows, err := r.db.Query(context.Background(), query, args...)
	if err != nil {
		return nil, fmt.Errorf("list events: %w", err)
	}
	defer rows.Close()
	var list []*entity.Event
	for rows.Next() {
		e, err := scanEventRow(rows)
		if err != nil {
			return nil, err
		}
		list = append(list, e)
	}
	return list, rows.Err()
}

func scanEvent(row pgx.Row) (*entity.Event, error) {
	e, err := scanEventRow(row)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, err
	}
	return e, nil
}

func scanEventRow(row pgx.Row) (*entity.Event, error) {
	var e entity.Event
	var notes *string
	err := row.Scan(&e.ID, &e.ContractID, &e.ClientID, &e.SupportContactID,
		&e.EventDateStart, &e.EventDateEnd, &e.Location, &e.Attendees, &notes,
		&e.CreatedAt, &e.UpdatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, err
		}
		return nil, fmt.Errorf("scan event: %w", err)
	}
	if notes != nil {
		e.Notes = *notes
	}
	return &e, nil
}
