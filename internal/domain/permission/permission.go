// Package permission contiene los predicados de autorización del CRM.
//
// Son funciones puras sobre (caller, [ownerID]) que se componen explícitamente
// en cada operación de negocio; no hay herencia ni un chequeo genérico único.
// Las exclusiones por rol (ej. "SUPPORT nunca firma contratos") se escriben
// como guard clauses en el use case, además del chequeo de propiedad.
package permission

import (
	"github.com/tu-usuario/crm-eventos/internal/domain"
	"github.com/tu-usuario/crm-eventos/internal/domain/entity"
)

// RequireAuthenticated falla con ErrUnauthenticated si no hay caller.
func RequireAuthenticated(caller *entity.User) error {
	if caller == nil {
		return domain.ErrUnauthenticated
	}
	return nil
}

// RequireRole exige que el caller esté autenticado y tenga exactamente el rol dado.
func RequireRole(caller *entity.User, role entity.Role) error {
	if err := RequireAuthenticated(caller); err != nil {
		return err
	}
	if caller.Role != role {
		return domain.ErrForbidden
	}
	return nil
}

// RequireOwnerOrGestion exige que el caller sea el propietario de la entidad
// (su id coincide con el campo de propiedad que el caller pasa explícitamente)
// o tenga rol GESTION, que pasa siempre sin mirar la propiedad.
func RequireOwnerOrGestion(caller *entity.User, ownerID string) error {
	if err := RequireAuthenticated(caller); err != nil {
		return err
	}
	if caller.Role == entity.RoleGestion {
		return nil
	}
	if ownerID == "" || ownerID != caller.ID {
		return domain.ErrForbidden
	}
	return nil
}
