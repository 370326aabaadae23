package repository

import (
	"context"

	"github.com/portaria-app/gatekeeper-api/internal/domain/entity"
)

// ScheduleRepository porto de persistência dos agendamentos.
type ScheduleRepository interface {
	Create(ctx context.Context, s *entity.ScheduledVisit) error
	// List devolve agendamentos ordenados por visit_date ascendente.
	// date vazio lista todos; não vazio aplica match exato.
	List(ctx context.Context, date string) ([]*entity.ScheduledVisit, error)
	// ListPendingByDate devolve os agendamentos pendentes da data.
	ListPendingByDate(ctx context.Context, date string) ([]*entity.ScheduledVisit, error)
	// Complete marca como completed. Devolve domain.ErrScheduleNotFound se o
	// id não existir; completar duas vezes é um no-op silencioso.
	Complete(ctx context.Context, id string) error
	// Delete remove o agendamento. Devolve domain.ErrScheduleNotFound se ausente.
	Delete(ctx context.Context, id string) error
	// CountPendingByDate conta pendentes da data.
	CountPendingByDate(ctx context.Context, date string) (int64, error)
}
