package http

import (
	"errors"

	"github.com/gofiber/fiber/v2"

	"github.com/portaria-app/gatekeeper-api/internal/application/auth"
	"github.com/portaria-app/gatekeeper-api/internal/application/dto"
	"github.com/portaria-app/gatekeeper-api/internal/domain"
	"github.com/portaria-app/gatekeeper-api/pkg/validation"
)

// AuthHandler trata login e verificação de sessão.
type AuthHandler struct {
	uc *auth.AuthUseCase
}

// NewAuthHandler constrói o handler de auth.
func NewAuthHandler(uc *auth.AuthUseCase) *AuthHandler {
	return &AuthHandler{uc: uc}
}

// Login godoc
// @Summary      Autenticar usuário
// @Tags         auth
// @Accept       json
// @Produce      json
// @Param        body  body  dto.LoginRequest  true  "username, password"
// @Success      200   {object}  dto.LoginResponse
// @Failure      401   {object}  dto.ErrorResponse
// @Router       /api/auth/login [post]
func (h *AuthHandler) Login(c *fiber.Ctx) error {
	var in dto.LoginRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "corpo inválido"})
	}
	if err := validation.Struct(in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: err.Error()})
	}
	out, err := h.uc.Login(c.Context(), in)
	if err != nil {
		if errors.Is(err, domain.ErrInvalidCredentials) {
			return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{Code: "UNAUTHORIZED", Message: "Credenciais inválidas"})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.JSON(out)
}

// Verify godoc
// @Summary      Verificar token da sessão
// @Tags         auth
// @Produce      json
// @Security     BearerAuth
// @Success      200   {object}  dto.VerifyResponse
// @Failure      401   {object}  dto.ErrorResponse
// @Router       /api/auth/verify [get]
//
// Os claims já foram validados pelo AuthMiddleware; aqui apenas os devolvemos.
func (h *AuthHandler) Verify(c *fiber.Ctx) error {
	return c.JSON(dto.VerifyResponse{User: dto.UserResponse{
		ID:       GetUserID(c),
		Username: GetUsername(c),
		Name:     GetName(c),
		Role:     GetRole(c),
	}})
}
