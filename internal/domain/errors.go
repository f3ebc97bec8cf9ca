package domain

import "errors"

// Errores de dominio (sin dependencias externas). Cada operación de negocio
// devuelve el primero que aplique; la capa HTTP los mapea a status codes.
var (
	ErrUnauthenticated    = errors.New("debe estar autenticado")
	ErrForbidden          = errors.New("acceso denegado")
	ErrNotFound           = errors.New("recurso no encontrado")
	ErrValidation         = errors.New("entrada inválida")
	ErrEmailAlreadyExists = errors.New("el email ya está registrado")
	ErrAlreadySigned      = errors.New("el contrato ya está firmado")
	ErrContractNotSigned  = errors.New("el contrato debe estar firmado")
	ErrEventAlreadyExists = errors.New("el contrato ya tiene un evento")
	// Login colapsa email desconocido y password incorrecto en un solo error
	// para no filtrar qué cuentas existen.
	ErrInvalidCredentials = errors.New("email o password incorrectos")
)
