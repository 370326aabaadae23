package postgres

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/portaria-app/gatekeeper-api/internal/domain"
	"github.com/portaria-app/gatekeeper-api/internal/domain/entity"
	"github.com/portaria-app/gatekeeper-api/internal/domain/repository"
)

var _ repository.ScheduleRepository = (*ScheduleRepo)(nil)

// ScheduleRepo implementação do porto ScheduleRepository sobre PostgreSQL.
// visit_date é uma string "YYYY-MM-DD" com match exato (sem prefixo).
type ScheduleRepo struct {
	pool *pgxpool.Pool
}

// NewScheduleRepository constrói o adaptador de persistência de agendamentos.
func NewScheduleRepository(pool *pgxpool.Pool) *ScheduleRepo {
	return &ScheduleRepo{pool: pool}
}

const scheduleColumns = `id, visitor_name, company, visit_date, visit_time, notes, status, created_at`

// Create persiste um novo agendamento.
func (r *ScheduleRepo) Create(ctx context.Context, s *entity.ScheduledVisit) error {
	query := `
		INSERT INTO schedules (` + scheduleColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)`
	_, err := r.pool.Exec(ctx, query,
		s.ID, s.VisitorName, s.Company, s.VisitDate, s.VisitTime, s.Notes, s.Status, s.CreatedAt,
	)
	if err != nil {
		return fmt.Errorf("insert schedule: %w", err)
	}
	return nil
}

// List devolve agendamentos ordenados por visit_date ascendente.
func (r *ScheduleRepo) List(ctx context.Context, date string) ([]*entity.ScheduledVisit, error) {
	query := `SELECT ` + scheduleColumns + ` FROM schedules`
	var args []any
	if date != "" {
		query += ` WHERE visit_date = $1`
		args = append(args, date)
	}
	query += ` ORDER BY visit_date`
	return r.queryList(ctx, query, args...)
}

// ListPendingByDate devolve os agendamentos pendentes da data.
func (r *ScheduleRepo) ListPendingByDate(ctx context.Context, date string) ([]*entity.ScheduledVisit, error) {
	query := `SELECT ` + scheduleColumns + ` FROM schedules WHERE visit_date = $1 AND status = $2`
	return r.queryList(ctx, query, date, entity.ScheduleStatusPending)
}

func (r *ScheduleRepo) queryList(ctx context.Context, query string, args ...any) ([]*entity.ScheduledVisit, error) {
	rows, err := r.pool.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("list schedules: %w", err)
	}
	defer rows.Close()
	var list []*entity.ScheduledVisit
	for rows.Next() {
		var s entity.ScheduledVisit
		if err := rows.Scan(&s.ID, &s.VisitorName, &s.Company, &s.VisitDate, &s.VisitTime, &s.Notes, &s.Status, &s.CreatedAt); err != nil {
			return nil, fmt.Errorf("scan schedule: %w", err)
		}
		list = append(list, &s)
	}
	return list, rows.Err()
}

// Complete marca como completed. O statement não condiciona o status atual:
// completar um agendamento já completo casa com a linha e é um no-op.
func (r *ScheduleRepo) Complete(ctx context.Context, id string) error {
	tag, err := r.pool.Exec(ctx,
		`UPDATE schedules SET status = $2 WHERE id = $1`,
		id, entity.ScheduleStatusCompleted,
	)
	if err != nil {
		return fmt.Errorf("complete schedule: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrScheduleNotFound
	}
	return nil
}

// Delete remove um agendamento por ID.
func (r *ScheduleRepo) Delete(ctx context.Context, id string) error {
	tag, err := r.pool.Exec(ctx, `DELETE FROM schedules WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete schedule: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrScheduleNotFound
	}
	return nil
}

// CountPendingByDate conta pendentes da data.
func (r *ScheduleRepo) CountPendingByDate(ctx context.Context, date string) (int64, error) {
	var n int64
	err := r.pool.QueryRow(ctx,
		`SELECT COUNT(*) FROM schedules WHERE visit_date = $1 AND status = $2`,
		date, entity.ScheduleStatusPending,
	).Scan(&n)
	if err != nil {
		return 0, fmt.Errorf("count pending schedules: %w", err)
	}
	return n, nil
}
