// Package reports contém os agregadores read-only: relatório diário,
// observação do dia e contadores do dashboard. Nenhum dado é possuído aqui;
// os três livros são consultados por data no momento da leitura.
package reports

import (
	"context"
	"fmt"
	"time"

	"github.com/portaria-app/gatekeeper-api/internal/application/dto"
	"github.com/portaria-app/gatekeeper-api/internal/domain/entity"
	"github.com/portaria-app/gatekeeper-api/internal/domain/repository"
)

// ReportUseCase monta o relatório diário e gerencia a observação do dia.
type ReportUseCase struct {
	visitorRepo  repository.VisitorRepository
	fleetRepo    repository.FleetRepository
	scheduleRepo repository.ScheduleRepository
	reportRepo   repository.ReportRepository
	excel        Renderer
	pdf          Renderer
}

// NewReportUseCase constrói o agregador com os quatro portos e os renderers.
func NewReportUseCase(
	visitorRepo repository.VisitorRepository,
	fleetRepo repository.FleetRepository,
	scheduleRepo repository.ScheduleRepository,
	reportRepo repository.ReportRepository,
	excel Renderer,
	pdf Renderer,
) *ReportUseCase {
	return &ReportUseCase{
		visitorRepo:  visitorRepo,
		fleetRepo:    fleetRepo,
		scheduleRepo: scheduleRepo,
		reportRepo:   reportRepo,
		excel:        excel,
		pdf:          pdf,
	}
}

// Daily monta o agregado do dia. date vazio usa a data calendário atual (UTC).
//
// Cada livro é consultado com sua própria semântica de match: visitantes por
// prefixo de entry_time, frota por prefixo de created_at, agendamentos por
// igualdade de visit_date. As leituras são independentes, sem snapshot
// transacional entre coleções — relaxamento aceito para relatório.
func (uc *ReportUseCase) Daily(ctx context.Context, date string) (*dto.DailyReportResponse, error) {
	if date == "" {
		date = time.Now().UTC().Format("2006-01-02")
	}

	visitors, err := uc.visitorRepo.List(ctx, repository.VisitorFilter{Date: date})
	if err != nil {
		return nil, fmt.Errorf("relatório: visitantes: %w", err)
	}
	fleet, err := uc.fleetRepo.List(ctx, repository.FleetFilter{Date: date})
	if err != nil {
		return nil, fmt.Errorf("relatório: frota: %w", err)
	}
	schedules, err := uc.scheduleRepo.List(ctx, date)
	if err != nil {
		return nil, fmt.Errorf("relatório: agendamentos: %w", err)
	}
	obs, err := uc.reportRepo.GetObservation(ctx, date)
	if err != nil {
		return nil, fmt.Errorf("relatório: observação: %w", err)
	}

	report := &dto.DailyReportResponse{
		Date:      date,
		Visitors:  dto.NewVisitorResponses(visitors),
		Fleet:     dto.NewTripResponses(fleet),
		Schedules: dto.NewScheduleResponses(schedules),
	}
	if obs != nil {
		report.Observation = obs.Observation
		report.PorterName = obs.PorterName
	}
	return report, nil
}

// SaveObservation grava a observação do dia (upsert por data, sobrescrita
// completa a cada chamada). date vazio usa a data atual.
func (uc *ReportUseCase) SaveObservation(ctx context.Context, date string, in dto.SaveObservationRequest) error {
	if date == "" {
		date = time.Now().UTC().Format("2006-01-02")
	}
	return uc.reportRepo.UpsertObservation(ctx, &entity.ReportObservation{
		Date:        date,
		Observation: in.Observation,
		PorterName:  in.PorterName,
		UpdatedAt:   time.Now().UTC().Format(time.RFC3339),
	})
}

// ExportExcel gera a planilha do dia e o nome do arquivo para download.
func (uc *ReportUseCase) ExportExcel(ctx context.Context, date string) ([]byte, string, error) {
	return uc.export(ctx, date, uc.excel, "xlsx")
}

// ExportPDF gera o PDF do dia e o nome do arquivo para download.
func (uc *ReportUseCase) ExportPDF(ctx context.Context, date string) ([]byte, string, error) {
	return uc.export(ctx, date, uc.pdf, "pdf")
}

func (uc *ReportUseCase) export(ctx context.Context, date string, r Renderer, ext string) ([]byte, string, error) {
	report, err := uc.Daily(ctx, date)
	if err != nil {
		return nil, "", err
	}
	doc, err := r.Render(report)
	if err != nil {
		return nil, "", fmt.Errorf("renderizar relatório: %w", err)
	}
	return doc, fmt.Sprintf("relatorio_%s.%s", report.Date, ext), nil
}
