package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/portaria-app/gatekeeper-api/internal/application/dto"
	"github.com/portaria-app/gatekeeper-api/internal/application/reports"
	"github.com/portaria-app/gatekeeper-api/pkg/validation"
)

const (
	contentTypeXLSX = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"
	contentTypePDF  = "application/pdf"
)

// ReportHandler relatório diário, observação do dia e exportações.
type ReportHandler struct {
	uc *reports.ReportUseCase
}

// NewReportHandler constrói o handler de relatórios.
func NewReportHandler(uc *reports.ReportUseCase) *ReportHandler {
	return &ReportHandler{uc: uc}
}

// Daily godoc
// @Summary      Relatório diário agregado
// @Tags         reports
// @Produce      json
// @Security     BearerAuth
// @Param        date  query  string  false  "data do relatório (YYYY-MM-DD, default hoje)"
// @Success      200   {object}  dto.DailyReportResponse
// @Router       /api/reports/daily [get]
func (h *ReportHandler) Daily(c *fiber.Ctx) error {
	report, err := h.uc.Daily(c.Context(), c.Query("date"))
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.JSON(report)
}

// SaveObservation godoc
// @Summary      Gravar observação do dia
// @Tags         reports
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        date  query  string  false  "data da observação (YYYY-MM-DD, default hoje)"
// @Param        body  body  dto.SaveObservationRequest  true  "observação e porteiro"
// @Success      200   {object}  dto.MessageResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Router       /api/reports/observation [post]
func (h *ReportHandler) SaveObservation(c *fiber.Ctx) error {
	var in dto.SaveObservationRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "corpo inválido"})
	}
	if err := validation.Struct(in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: err.Error()})
	}
	if err := h.uc.SaveObservation(c.Context(), c.Query("date"), in); err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.JSON(dto.MessageResponse{Message: "Observação salva"})
}

// ExportExcel godoc
// @Summary      Exportar relatório diário em Excel
// @Tags         reports
// @Produce      application/vnd.openxmlformats-officedocument.spreadsheetml.sheet
// @Security     BearerAuth
// @Param        date  query  string  false  "data do relatório (YYYY-MM-DD, default hoje)"
// @Success      200   {file}  binary
// @Router       /api/reports/export/excel [get]
func (h *ReportHandler) ExportExcel(c *fiber.Ctx) error {
	doc, filename, err := h.uc.ExportExcel(c.Context(), c.Query("date"))
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return sendAttachment(c, doc, filename, contentTypeXLSX)
}

// ExportPDF godoc
// @Summary      Exportar relatório diário em PDF
// @Tags         reports
// @Produce      application/pdf
// @Security     BearerAuth
// @Param        date  query  string  false  "data do relatório (YYYY-MM-DD, default hoje)"
// @Success      200   {file}  binary
// @Router       /api/reports/export/pdf [get]
func (h *ReportHandler) ExportPDF(c *fiber.Ctx) error {
	doc, filename, err := h.uc.ExportPDF(c.Context(), c.Query("date"))
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return sendAttachment(c, doc, filename, contentTypePDF)
}

func sendAttachment(c *fiber.Ctx, doc []byte, filename, contentType string) error {
	c.Set(fiber.HeaderContentType, contentType)
	c.Set(fiber.HeaderContentDisposition, `attachment; filename=`+filename)
	return c.Send(doc)
}
