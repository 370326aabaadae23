package http

import (
	"errors"

	"github.com/gofiber/fiber/v2"

	"github.com/portaria-app/gatekeeper-api/internal/application/dto"
	"github.com/portaria-app/gatekeeper-api/internal/application/usecase"
	"github.com/portaria-app/gatekeeper-api/internal/domain"
	"github.com/portaria-app/gatekeeper-api/pkg/validation"
)

// VisitorHandler livro de visitantes: check-in, listagem e checkout.
type VisitorHandler struct {
	uc *usecase.VisitorUseCase
}

// NewVisitorHandler constrói o handler de visitantes.
func NewVisitorHandler(uc *usecase.VisitorUseCase) *VisitorHandler {
	return &VisitorHandler{uc: uc}
}

// CheckIn godoc
// @Summary      Registrar entrada de visitante
// @Tags         visitors
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body  body  dto.CheckInRequest  true  "dados da entrada"
// @Success      201   {object}  dto.VisitorResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Router       /api/visitors [post]
func (h *VisitorHandler) CheckIn(c *fiber.Ctx) error {
	var in dto.CheckInRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "corpo inválido"})
	}
	if err := validation.Struct(in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: err.Error()})
	}
	visitor, err := h.uc.CheckIn(c.Context(), in)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.Status(fiber.StatusCreated).JSON(visitor)
}

// List godoc
// @Summary      Listar registros de visitantes
// @Tags         visitors
// @Produce      json
// @Security     BearerAuth
// @Param        date    query  string  false  "filtro por dia de entrada (YYYY-MM-DD)"
// @Param        active  query  bool    false  "apenas visitantes ainda presentes"
// @Success      200     {array}  dto.VisitorResponse
// @Router       /api/visitors [get]
func (h *VisitorHandler) List(c *fiber.Ctx) error {
	visitors, err := h.uc.List(c.Context(), c.Query("date"), c.QueryBool("active"))
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.JSON(visitors)
}

// CheckOut godoc
// @Summary      Registrar saída de visitante
// @Tags         visitors
// @Produce      json
// @Security     BearerAuth
// @Param        id  path  string  true  "id do registro"
// @Success      200  {object}  dto.CheckOutResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/visitors/{id}/checkout [put]
//
// Um segundo checkout do mesmo registro devolve 404: a condição de saída já
// não se verifica e o id é tratado como inexistente.
func (h *VisitorHandler) CheckOut(c *fiber.Ctx) error {
	exitTime, err := h.uc.CheckOut(c.Context(), c.Params("id"))
	if err != nil {
		if errors.Is(err, domain.ErrAlreadyCheckedOut) {
			return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: "Visitante não encontrado ou já deu saída"})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.JSON(dto.CheckOutResponse{Message: "Saída registrada", ExitTime: exitTime})
}
