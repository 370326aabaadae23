package http

import (
	"errors"

	"github.com/gofiber/fiber/v2"

	"github.com/portaria-app/gatekeeper-api/internal/application/dto"
	"github.com/portaria-app/gatekeeper-api/internal/application/usecase"
	"github.com/portaria-app/gatekeeper-api/internal/domain"
	"github.com/portaria-app/gatekeeper-api/pkg/validation"
)

// ScheduleHandler agenda de visitas.
type ScheduleHandler struct {
	uc *usecase.ScheduleUseCase
}

// NewScheduleHandler constrói o handler de agendamentos.
func NewScheduleHandler(uc *usecase.ScheduleUseCase) *ScheduleHandler {
	return &ScheduleHandler{uc: uc}
}

// Create godoc
// @Summary      Agendar visita
// @Tags         schedules
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body  body  dto.CreateScheduleRequest  true  "dados do agendamento"
// @Success      201   {object}  dto.ScheduleResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Router       /api/schedules [post]
func (h *ScheduleHandler) Create(c *fiber.Ctx) error {
	var in dto.CreateScheduleRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "corpo inválido"})
	}
	if err := validation.Struct(in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: err.Error()})
	}
	schedule, err := h.uc.Create(c.Context(), in)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.Status(fiber.StatusCreated).JSON(schedule)
}

// List godoc
// @Summary      Listar agendamentos
// @Tags         schedules
// @Produce      json
// @Security     BearerAuth
// @Param        date  query  string  false  "filtro por visit_date (match exato, YYYY-MM-DD)"
// @Success      200   {array}  dto.ScheduleResponse
// @Router       /api/schedules [get]
func (h *ScheduleHandler) List(c *fiber.Ctx) error {
	schedules, err := h.uc.List(c.Context(), c.Query("date"))
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.JSON(schedules)
}

// Today godoc
// @Summary      Agendamentos pendentes de hoje
// @Tags         schedules
// @Produce      json
// @Security     BearerAuth
// @Success      200  {array}  dto.ScheduleResponse
// @Router       /api/schedules/today [get]
func (h *ScheduleHandler) Today(c *fiber.Ctx) error {
	schedules, err := h.uc.Today(c.Context())
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.JSON(schedules)
}

// Complete godoc
// @Summary      Concluir agendamento
// @Tags         schedules
// @Produce      json
// @Security     BearerAuth
// @Param        id  path  string  true  "id do agendamento"
// @Success      200  {object}  dto.MessageResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/schedules/{id}/complete [put]
func (h *ScheduleHandler) Complete(c *fiber.Ctx) error {
	if err := h.uc.Complete(c.Context(), c.Params("id")); err != nil {
		if errors.Is(err, domain.ErrScheduleNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: "Agendamento não encontrado"})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.JSON(dto.MessageResponse{Message: "Agendamento concluído"})
}

// Delete godoc
// @Summary      Deletar agendamento
// @Tags         schedules
// @Produce      json
// @Security     BearerAuth
// @Param        id  path  string  true  "id do agendamento"
// @Success      200  {object}  dto.MessageResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/schedules/{id} [delete]
func (h *ScheduleHandler) Delete(c *fiber.Ctx) error {
	if err := h.uc.Delete(c.Context(), c.Params("id")); err != nil {
		if errors.Is(err, domain.ErrScheduleNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: "Agendamento não encontrado"})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.JSON(dto.MessageResponse{Message: "Agendamento deletado"})
}
