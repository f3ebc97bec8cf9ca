package entity

import "time"

// Role rol de un usuario del CRM. Conjunto cerrado: todo el motor de permisos
// se apoya en comparaciones exactas sobre estos tres valores.
type Role string

const (
	RoleGestion    Role = "GESTION"
	RoleCommercial Role = "COMMERCIAL"
	RoleSupport    Role = "SUPPORT"
)

// ParseRole valida un rol recibido como texto (entrada de API).
func ParseRole(s string) (Role, bool) {
	switch Role(s) {
	case RoleGestion, RoleCommercial, RoleSupport:
		return Role(s), true
	}
	return "", false
}

// User representa un colaborador del CRM. Es también la identidad que se
// pasa explícitamente a cada operación de negocio; nunca hay sesión global.
type User struct {
	ID           string
	Email        string // único, comparación exacta (case-sensitive)
	PasswordHash string // bcrypt, nunca se loguea ni se devuelve en respuestas
	FullName     string
	Role         Role // inmutable tras la creación: no existe operación de cambio de rol
	CreatedAt    time.Time
	UpdatedAt    time.Time
}
