package repository

import "github.com/tu-usuario/crm-eventos/internal/domain/entity"

// ClientRepository define el puerto de persistencia para Client.
type ClientRepository interface {
	Create(client *entity.Client) error
	GetByID(id string) (*entity.Client, error)
	Update(client *entity.Client) error
	List() ([]*entity.Client, error)
	ListByCommercial(commercialID string) ([]*entity.Client, error)
}
