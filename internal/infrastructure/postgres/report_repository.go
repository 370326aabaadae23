package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/portaria-app/gatekeeper-api/internal/domain/entity"
	"github.com/portaria-app/gatekeeper-api/internal/domain/repository"
)

var _ repository.ReportRepository = (*ReportRepo)(nil)

// ReportRepo implementação do porto ReportRepository sobre PostgreSQL.
type ReportRepo struct {
	pool *pgxpool.Pool
}

// NewReportRepository constrói o adaptador de persistência das observações diárias.
func NewReportRepository(pool *pgxpool.Pool) *ReportRepo {
	return &ReportRepo{pool: pool}
}

// UpsertObservation grava a observação da data. ON CONFLICT garante no máximo
// uma linha por data, com sobrescrita completa (last-write-wins).
func (r *ReportRepo) UpsertObservation(ctx context.Context, obs *entity.ReportObservation) error {
	query := `
		INSERT INTO report_observations (date, observation, porter_name, updated_at)
		VALUES ($1, $2, $3, $4)
		ON CONFLICT (date) DO UPDATE
		SET observation = EXCLUDED.observation,
		    porter_name = EXCLUDED.porter_name,
		    updated_at  = EXCLUDED.updated_at`
	_, err := r.pool.Exec(ctx, query, obs.Date, obs.Observation, obs.PorterName, obs.UpdatedAt)
	if err != nil {
		return fmt.Errorf("upsert observation: %w", err)
	}
	return nil
}

// GetObservation obtém a observação da data; (nil, nil) quando não existe.
func (r *ReportRepo) GetObservation(ctx context.Context, date string) (*entity.ReportObservation, error) {
	query := `
		SELECT date, observation, porter_name, updated_at
		FROM report_observations WHERE date = $1`
	var o entity.ReportObservation
	err := r.pool.QueryRow(ctx, query, date).Scan(&o.Date, &o.Observation, &o.PorterName, &o.UpdatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get observation: %w", err)
	}
	return &o, nil
}
