package auth

import (
	"time"

	"github.com/tu-usuario/crm-eventos/internal/application/audit"
	"github.com/tu-usuario/crm-eventos/internal/application/dto"
	"github.com/tu-usuario/crm-eventos/internal/domain"
	"github.com/tu-usuario/crm-eventos/internal/domain/entity"
	"github.com/tu-usuario/crm-eventos/internal/domain/repository"
	"github.com/tu-usuario/crm-eventos/pkg/jwt"
	"github.com/tu-usuario/crm-eventos/pkg/password"
)

// UseCase autentica email+password en un par token+identidad y resuelve
// tokens de vuelta a identidades. No persiste estado de sesión: la sesión
// vive entera en el token firmado.
type UseCase struct {
	userRepo repository.UserRepository
	secret   string
	recorder audit.Recorder
}

// NewUseCase construye el caso de uso de auth.
func NewUseCase(userRepo repository.UserRepository, secret string, recorder audit.Recorder) *UseCase {
	if recorder == nil {
		recorder = audit.NopRecorder{}
	}
	return &UseCase{userRepo: userRepo, secret: secret, recorder: recorder}
}

// Login verifica email/password, emite el JWT y retorna token + usuario.
// Email desconocido y password incorrecto devuelven el mismo
// ErrInvalidCredentials para no revelar qué cuentas existen.
func (uc *UseCase) Login(in dto.LoginRequest) (*dto.LoginResponse, error) {
	user, err := uc.userRepo.GetByEmail(in.Email)
	if err != nil {
		return nil, err
	}
	if user == nil {
		uc.recorder.RecordEvent("login_failed", map[string]interface{}{
			"email":  in.Email,
			"reason": "unknown_email",
		})
		return nil, domain.ErrInvalidCredentials
	}
	if !password.Verify(in.Password, user.PasswordHash) {
		uc.recorder.RecordEvent("login_failed", map[string]interface{}{
			"email":  in.Email,
			"reason": "wrong_password",
		})
		return nil, domain.ErrInvalidCredentials
	}
	token, err := jwt.Generate(uc.secret, user.ID, string(user.Role), time.Now())
	if err != nil {
		return nil, err
	}
	uc.recorder.RecordEvent("login_success", map[string]interface{}{
		"user_id": user.ID,
		"email":   user.Email,
		"role":    string(user.Role),
	})
	return &dto.LoginResponse{
		Token: token,
		User:  *ToUserResponse(user),
	}, nil
}

// Resolve valida un token y devuelve la identidad que referencia.
// Un token estructuralmente válido cuyo usuario ya no existe (ej. borrado
// fuera de este sistema) resuelve en ErrNotFound, nunca en un payload a medias.
func (uc *UseCase) Resolve(token string) (*entity.User, error) {
	claims, err := jwt.Parse(uc.secret, token)
	if err != nil {
		return nil, err
	}
	user, err := uc.userRepo.GetByID(claims.UserID)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, domain.ErrNotFound
	}
	return user, nil
}

// ToUserResponse convierte la entidad a DTO de salida (sin password_hash).
func ToUserResponse(u *entity.User) *dto.UserResponse {
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
