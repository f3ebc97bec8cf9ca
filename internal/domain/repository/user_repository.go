package repository

import "github.com/tu-usuario/crm-eventos/internal/domain/entity"

// UserRepository define el puerto de persistencia para User.
// Los Get* devuelven (nil, nil) cuando no existe el registro.
type UserRepository interface {
	Create(user *entity.User) error
	GetByID(id string) (*entity.User, error)
	GetByEmail(email string) (*entity.User, error)
	List() ([]*entity.User, error)
}
