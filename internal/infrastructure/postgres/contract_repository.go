package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/tu-usuario/crm-eventos/internal/domain/entity"
	"github.com/tu-usuario/crm-eventos/internal/domain/repository"
)

var _ repository.ContractRepository = (*ContractRepo)(nil)

// ContractRepo implementación del puerto ContractRepository sobre PostgreSQL.
type ContractRepo struct {
	db DB
}

// NewContractRepository construye el adaptador de persistencia para contratos.
func NewContractRepository(db DB) *ContractRepo {
	return &ContractRepo{db: db}
}

const contractColumns = `id, client_id, commercial_contact_id, total_amount, remaining_amount, is_signed, created_at, updated_at`

// Create persiste un nuevo contrato.
func (r *ContractRepo) Create(contract *entity.Contract) error {
	query := `
		INSERT INTO contracts (id, client_id, commercial_contact_id, total_amount, remaining_amount, is_signed, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)`
	_, err := r.db.Exec(context.Background(), query,
		contract.ID, contract.ClientID, contract.CommercialContactID,
		contract.TotalAmount, contract.RemainingAmount, contract.IsSigned,
		contract.CreatedAt, contract.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("insert contract: %w", err)
	}
	return nil
}

// GetByID obtiene un contrato por ID. Devuelve (nil, nil) si no existe.
func (r *ContractRepo) GetByID(id string) (*entity.Contract, error) {
	query := `SELECT ` + contractColumns + ` FROM contracts WHERE id = $1`
	var c entity.Contract
	err := r.db.QueryRow(context.Background(), query, id).Scan(
		&c.ID, &c.ClientID, &c.CommercialContactID, &c.TotalAmount, &c.RemainingAmount,
		&c.IsSigned, &c.CreatedAt, &c.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get contract by id: %w", err)
	}
	return &c, nil
}

// Update sobreescribe los campos mutables en una sola sentencia (commit atómico).
func (r *ContractRepo) Update(contract *entity.Contract) error {
	query := `
		UPDATE contracts
		SET total_amount = $2, remaining_amount = $3, is_signed = $4, updated_at = $5
		WHERE id = $1`
	_, err := r.db.Exec(context.Background(), query,
		contract.ID, contract.TotalAmount, contract.RemainingAmount, contract.IsSigned,
		contract.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("update contract: %w", err)
	}
	return nil
}

// List devuelve todos los contratos.
func (r *ContractRepo) List() ([]*entity.Contract, error) {
	return r.queryMany(`SELECT ` + contractColumns + ` FROM contracts ORDER BY created_at DESC`)
}

// ListUnsigned devuelve los contratos sin firmar.
func (r *ContractRepo) ListUnsigned() ([]*entity.Contract, error) {
	return r.queryMany(`SELECT ` + contractColumns + ` FROM contracts WHERE is_signed = false ORDER BY created_at DESC`)
}

// ListUnpaid devuelve los contratos con importe pendiente.
func (r *ContractRepo) ListUnpaid() ([]*entity.Contract, error) {
	return r.queryMany(`SELECT ` + contractColumns + ` FROM contracts WHERE remaining_amount > 0 ORDER BY created_at DESC`)
}

func (r *ContractRepo) queryMany(query string, args ...any) ([]*entity.Contract, error) {
	rows, err := r.db.Query(context.Background(), query, args...)
	if err != nil {
		return nil, fmt.Errorf("list contracts: %w", err)
	}
	defer rows.Close()
	var list []*entity.Contract
	for rows.Next() {
		var c entity.Contract
		if err := rows.Scan(&c.ID, &c.ClientID, &c.CommercialContactID, &c.TotalAmount,
			&c.RemainingAmount, &c.IsSigned, &c.CreatedAt, &c.UpdatedAt); err != nil {
			return nil, fmt.Errorf("scan contract: %w", err)
		}
		list = append(list, &c)
	}
	return list, rows.Err()
}
