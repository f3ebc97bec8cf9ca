package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/tu-usuario/crm-eventos/internal/domain/entity"
	"github.com/tu-usuario/crm-eventos/internal/domain/repository"
)

var _ repository.ClientRepository = (*ClientRepo)(nil)

// ClientRepo implementación del puerto ClientRepository sobre PostgreSQL.
type ClientRepo struct {
	db DB
}

// NewClientRepository construye el adaptador de persistencia para clientes.
func NewClientRepository(db DB) *ClientRepo {
	return &ClientRepo{db: db}
}

const clientColumns = `id, full_name, email, phone, company_name, commercial_contact_id, created_at, updated_at`

// Create persiste un nuevo cliente.
func (r *ClientRepo) Create(client *entity.Client) error {
	query := `
		INSERT INTO clients (id, full_name, email, phone, company_name, commercial_contact_id, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)`
	_, err := r.db.Exec(context.Background(), query,
		client.ID, client.FullName, client.Email, client.Phone, nullable(client.CompanyName),
		client.CommercialContactID, client.CreatedAt, client.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("insert client: %w", err)
	}
	return nil
}

// GetByID obtiene un cliente por ID. Devuelve (nil, nil) si no existe.
func (r *ClientRepo) GetByID(id string) (*entity.Client, error) {
	query := `SELECT ` + clientColumns + ` FROM clients WHERE id = $1`
	return scanClient(r.db.QueryRow(context.Background(), query, id))
}

// Update sobreescribe todos los campos mutables en una sola sentencia.
func (r *ClientRepo) Update(client *entity.Client) error {
	query := `
		UPDATE clients
		SET full_name = $2, email = $3, phone = $4, company_name = $5, updated_at = $6
		WHERE id = $1`
	_, err := r.db.Exec(context.Background(), query,
		client.ID, client.FullName, client.Email, client.Phone, nullable(client.CompanyName),
		client.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("update client: %w", err)
	}
	return nil
}

// List devuelve todos los clientes.
func (r *ClientRepo) List() ([]*entity.Client, error) {
	query := `SELECT ` + clientColumns + ` FROM clients ORDER BY created_at DESC`
	return r.queryMany(query)
}

// ListByCommercial devuelve los clientes de un comercial.
func (r *ClientRepo) ListByCommercial(commercialID string) ([]*entity.Client, error) {
	query := `SELECT ` + clientColumns + ` FROM clients WHERE commercial_contact_id = $1 ORDER BY created_at DESC`
	return r.queryMany(query, commercialID)
}

func (r *ClientRepo) queryMany(query string, args ...any) ([]*entity.Client, error) {
	rows, err := r.db.Query(context.Background(), query, args...)
	if err != nil {
		return nil, fmt.Errorf("list clients: %w", err)
	}
	defer rows.Close()
	var list []*entity.Client
	for rows.Next() {
		c, err := scanClientRow(rows)
		if err != nil {
			return nil, err
		}
		list = append(list, c)
	}
	return list, rows.Err()
}

func scanClient(row pgx.Row) (*entity.Client, error) {
	c, err := scanClientRow(row)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, err
	}
	return c, nil
}

func scanClientRow(row pgx.Row) (*entity.Client, error) {
	var c entity.Client
	var companyName *string
	err := row.Scan(&c.ID, &c.FullName, &c.Email, &c.Phone, &companyName,
		&c.CommercialContactID, &c.CreatedAt, &c.UpdatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, err
		}
		return nil, fmt.Errorf("scan client: %w", err)
	}
	if companyName != nil {
		c.CompanyName = *companyName
	}
	return &c, nil
}

// nullable convierte "" en NULL para columnas opcionales.
func nullable(s string) *string {
	if s == "" {
		return nil
	}
	return &s
}
