package usecase

import (
	"time"

	"github.com/google/uuid"
	"github.com/tu-usuario/crm-eventos/internal/application/audit"
	"github.com/tu-usuario/crm-eventos/internal/application/dto"
	"github.com/tu-usuario/crm-eventos/internal/domain"
	"github.com/tu-usuario/crm-eventos/internal/domain/entity"
	"github.com/tu-usuario/crm-eventos/internal/domain/permission"
	"github.com/tu-usuario/crm-eventos/internal/domain/repository"
	"github.com/tu-usuario/crm-eventos/pkg/password"
)

// UserUseCase operaciones sobre usuarios. Todas reservadas a GESTION.
type UserUseCase struct {
	repo     repository.UserRepository
	recorder audit.Recorder
}

// NewUserUseCase construye el caso de uso con el puerto de persistencia.
func NewUserUseCase(repo repository.UserRepository, recorder audit.Recorder) *UserUseCase {
	if recorder == nil {
		recorder = audit.NopRecorder{}
	}
	return &UserUseCase{repo: repo, recorder: recorder}
}

// List devuelve todos los usuarios (GESTION únicamente).
func (uc *UserUseCase) List(caller *entity.User) ([]*dto.UserResponse, error) {
	if err := permission.RequireRole(caller, entity.RoleGestion); err != nil {
		return nil, err
	}
	users, err := uc.repo.List()
	if err != nil {
		return nil, err
	}
	out := make([]*dto.UserResponse, 0, len(users))
	for _, u := range users {
		out = append(out, toUserResponse(u))
	}
	return out, nil
}

// Create crea un usuario nuevo (GESTION únicamente). Hashea el password y
// falla con ErrEmailAlreadyExists si el email ya está en uso.
func (uc *UserUseCase) Create(caller *entity.User, in dto.CreateUserRequest) (*dto.UserResponse, error) {
	if err := permission.RequireRole(caller, entity.RoleGestion); err != nil {
		return nil, err
	}
	role, ok := entity.ParseRole(in.Role)
	if !ok {
		return nil, domain.ErrValidation
	}
	if in.Email == "" || in.Password == "" || in.FullName == "" {
		return nil, domain.ErrValidation
	}
	existing, err := uc.repo.GetByEmail(in.Email)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, domain.ErrEmailAlreadyExists
	}
	hash, err := password.Hash(in.Password)
	if err != nil {
		return nil, err
	}
	now := time.Now()
	user := &entity.User{
		ID:           uuid.New().String(),
		Email:        in.Email,
		PasswordHash: hash,
		FullName:     in.FullName,
		Role:         role,
		CreatedAt:    now,
		UpdatedAt:    now,
	}
	if err := uc.repo.Create(user); err != nil {
		uc.recorder.RecordError(err, map[string]interface{}{"action": "create_user", "email": in.Email})
		return nil, err
	}
	uc.recorder.RecordEvent("user_created", map[string]interface{}{
		"user_id":    user.ID,
		"role":       string(user.Role),
		"created_by": caller.ID,
	})
	return toUserResponse(user), nil
}

// GetByID obtiene un usuario por id (GESTION únicamente, como el listado).
func (uc *UserUseCase) GetByID(caller *entity.User, id string) (*dto.UserResponse, error) {
	if err := permission.RequireRole(caller, entity.RoleGestion); err != nil {
		return nil, err
	}
	user, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, domain.ErrNotFound
	}
	return toUserResponse(user), nil
}

func toUserResponse(u *entity.User) *dto.UserResponse {
	if u == nil {
		return nil
	}
	return &dto.UserResponse{
		ID:        u.ID,
		Email:     u.Email,
		FullName:  u.FullName,
		Role:      string(u.Role),
		CreatedAt: u.CreatedAt,
		UpdatedAt: u.UpdatedAt,
	}
}
