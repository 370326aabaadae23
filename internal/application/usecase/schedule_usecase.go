package usecase

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/portaria-app/gatekeeper-api/internal/application/dto"
	"github.com/portaria-app/gatekeeper-api/internal/domain/entity"
	"github.com/portaria-app/gatekeeper-api/internal/domain/repository"
)

// ScheduleUseCase agenda de visitas: criação, listagem, conclusão e remoção.
type ScheduleUseCase struct {
	repo repository.ScheduleRepository
}

// NewScheduleUseCase constrói o caso de uso com o porto de persistência.
func NewScheduleUseCase(repo repository.ScheduleRepository) *ScheduleUseCase {
	return &ScheduleUseCase{repo: repo}
}

// Create agenda uma visita com status pending.
func (uc *ScheduleUseCase) Create(ctx context.Context, in dto.CreateScheduleRequest) (*dto.ScheduleResponse, error) {
	s := &entity.ScheduledVisit{
		ID:          uuid.New().String(),
		VisitorName: in.VisitorName,
		Company:     in.Company,
		VisitDate:   in.VisitDate,
		VisitTime:   in.VisitTime,
		Notes:       in.Notes,
		Status:      entity.ScheduleStatusPending,
		CreatedAt:   time.Now().UTC().Format(time.RFC3339),
	}
	if err := uc.repo.Create(ctx, s); err != nil {
		return nil, err
	}
	resp := dto.NewScheduleResponse(s)
	return &resp, nil
}

// List devolve agendamentos (visit_date ascendente); date aplica match exato.
func (uc *ScheduleUseCase) List(ctx context.Context, date string) ([]dto.ScheduleResponse, error) {
	schedules, err := uc.repo.List(ctx, date)
	if err != nil {
		return nil, err
	}
	return dto.NewScheduleResponses(schedules), nil
}

// Today devolve os agendamentos pendentes da data calendário atual (UTC).
// Agendamentos concluídos não aparecem.
func (uc *ScheduleUseCase) Today(ctx context.Context) ([]dto.ScheduleResponse, error) {
	today := time.Now().UTC().Format("2006-01-02")
	schedules, err := uc.repo.ListPendingByDate(ctx, today)
	if err != nil {
		return nil, err
	}
	return dto.NewScheduleResponses(schedules), nil
}

// Complete marca o agendamento como concluído (pending -> completed, uma via).
// Completar duas vezes é aceito silenciosamente: a segunda chamada não tem
// efeito adicional.
func (uc *ScheduleUseCase) Complete(ctx context.Context, id string) error {
	return uc.repo.Complete(ctx, id)
}

// Delete remove o agendamento.
func (uc *ScheduleUseCase) Delete(ctx context.Context, id string) error {
	return uc.repo.Delete(ctx, id)
}
