package repository

import "github.com/tu-usuario/crm-eventos/internal/domain/entity"

// ContractRepository define el puerto de persistencia para Contract.
type ContractRepository interface {
	Create(contract *entity.Contract) error
	GetByID(id string) (*entity.Contract, error)
	Update(contract *entity.Contract) error
	List() ([]*entity.Contract, error)
	ListUnsigned() ([]*entity.Contract, error)
	// ListUnpaid devuelve los contratos con remaining_amount > 0.
	ListUnpaid() ([]*entity.Contract, error)
}
