package http

import (
	"strings"

	"github.com/gofiber/fiber/v2"
	"github.com/tu-usuario/crm-eventos/internal/application/dto"
	"github.com/tu-usuario/crm-eventos/internal/domain/entity"
)

// LocalIdentity clave de Locals para la identidad resuelta en Fiber.
const LocalIdentity = "identity"

// identityResolver es el contrato mínimo que necesita el middleware para
// resolver un token en una identidad. Lo implementa *auth.UseCase; la
// interfaz evita el import circular con la capa de aplicación.
type identityResolver interface {
	Resolve(token string) (*entity.User, error)
}

// AuthMiddleware valida el Bearer Token JWT, lo resuelve a la identidad que
// referencia y la guarda en c.Locals. Toda ruta protegida recibe así la
// identidad como valor explícito, nunca como estado global.
func AuthMiddleware(resolver identityResolver) fiber.Handler {
	return func(c *fiber.Ctx) error {
		authHeader := c.Get("Authorization")
		if authHeader == "" {
			return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{Code: "MISSING_TOKEN", Message: "Authorization header requerido"})
		}
		parts := strings.SplitN(authHeader, " ", 2)
		if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") {
			return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{Code: "INVALID_TOKEN", Message: "formato: Bearer <token>"})
		}
		tokenString := strings.TrimSpace(parts[1])
		if tokenString == "" {
			return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{Code: "MISSING_TOKEN", Message: "token vacío"})
		}
		identity, err := resolver.Resolve(tokenString)
		if err != nil {
			return errorResponse(c, err)
		}
		c.Locals(LocalIdentity, identity)
		return c.Next()
	}
}

// RequireRole devuelve un middleware que solo deja pasar los roles indicados.
// Es defensa en profundidad a nivel de ruta: los use cases repiten sus propios
// chequeos con la identidad explícita.
func RequireRole(roles ...entity.Role) fiber.Handler {
	return func(c *fiber.Ctx) error {
		identity := GetIdentity(c)
		if identity == nil {
			return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{Code: "UNAUTHORIZED", Message: "identidad no resuelta"})
		}
		for _, role := range roles {
			if identity.Role == role {
				return c.Next()
			}
		}
		return c.Status(fiber.StatusForbidden).JSON(dto.ErrorResponse{Code: "FORBIDDEN", Message: "rol sin acceso a esta ruta"})
	}
}

// GetIdentity devuelve la identidad del contexto (después del middleware de auth).
func GetIdentity(c *fiber.Ctx) *entity.User {
	v := c.Locals(LocalIdentity)
	if v == nil {
		return nil
	}
	u, _ := v.(*entity.User)
	return u
}
