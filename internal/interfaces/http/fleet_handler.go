package http

import (
	"errors"

	"github.com/gofiber/fiber/v2"

	"github.com/portaria-app/gatekeeper-api/internal/application/dto"
	"github.com/portaria-app/gatekeeper-api/internal/application/usecase"
	"github.com/portaria-app/gatekeeper-api/internal/domain"
	"github.com/portaria-app/gatekeeper-api/pkg/validation"
)

// FleetHandler diário de frota: saída, listagem e retorno de veículos.
type FleetHandler struct {
	uc *usecase.FleetUseCase
}

// NewFleetHandler constrói o handler de frota.
func NewFleetHandler(uc *usecase.FleetUseCase) *FleetHandler {
	return &FleetHandler{uc: uc}
}

// Depart godoc
// @Summary      Registrar saída de veículo
// @Tags         fleet
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body  body  dto.CreateTripRequest  true  "dados da saída"
// @Success      201   {object}  dto.TripResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Router       /api/fleet [post]
func (h *FleetHandler) Depart(c *fiber.Ctx) error {
	var in dto.CreateTripRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "corpo inválido"})
	}
	if err := validation.Struct(in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: err.Error()})
	}
	trip, err := h.uc.Depart(c.Context(), in)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.Status(fiber.StatusCreated).JSON(trip)
}

// List godoc
// @Summary      Listar viagens
// @Tags         fleet
// @Produce      json
// @Security     BearerAuth
// @Param        date    query  string  false  "filtro por dia de criação (YYYY-MM-DD)"
// @Param        active  query  bool    false  "apenas viagens em andamento"
// @Success      200     {array}  dto.TripResponse
// @Router       /api/fleet [get]
func (h *FleetHandler) List(c *fiber.Ctx) error {
	trips, err := h.uc.List(c.Context(), c.Query("date"), c.QueryBool("active"))
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.JSON(trips)
}

// Return godoc
// @Summary      Registrar retorno de veículo
// @Tags         fleet
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        id    path  string  true  "id da viagem"
// @Param        body  body  dto.ReturnTripRequest  true  "km de chegada"
// @Success      200   {object}  dto.ReturnTripResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Router       /api/fleet/{id}/return [put]
//
// Retornar duas vezes devolve 400; id inexistente devolve 404. O km de
// chegada é confiado numericamente: distância negativa é gravada como
// calculada.
func (h *FleetHandler) Return(c *fiber.Ctx) error {
	var in dto.ReturnTripRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "corpo inválido"})
	}
	distance, err := h.uc.Return(c.Context(), c.Params("id"), in.ArrivalKM)
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrTripNotFound):
			return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: "Viagem não encontrada"})
		case errors.Is(err, domain.ErrAlreadyReturned):
			return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "ALREADY_RETURNED", Message: "Veículo já retornou"})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.JSON(dto.ReturnTripResponse{Message: "Retorno registrado", Distance: distance})
}
