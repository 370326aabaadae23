package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/portaria-app/gatekeeper-api/internal/application/dto"
)

// RequireRole devolve um middleware que autoriza apenas os papéis indicados.
// Deve ser usado DEPOIS de AuthMiddleware (lê o papel de c.Locals).
//
// Comportamento:
//   - 401 → token sem claim de papel (token legado ou malformado).
//   - 403 → papel presente mas não permitido na rota.
func RequireRole(allowedRoles ...string) fiber.Handler {
	return func(c *fiber.Ctx) error {
		role := GetRole(c)
		if role == "" {
			return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{
				Code:    "MISSING_ROLE",
				Message: "token sem papel de acesso",
			})
		}
		for _, allowed := range allowedRoles {
			if role == allowed {
				return c.Next()
			}
		}
		return c.Status(fiber.StatusForbidden).JSON(dto.ErrorResponse{
			Code:    "FORBIDDEN",
			Message: "Acesso negado",
		})
	}
}
