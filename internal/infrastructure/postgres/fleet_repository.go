package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/shopspring/decimal"

	"github.com/portaria-app/gatekeeper-api/internal/domain"
	"github.com/portaria-app/gatekeeper-api/internal/domain/entity"
	"github.com/portaria-app/gatekeeper-api/internal/domain/repository"
)

var _ repository.FleetRepository = (*FleetRepo)(nil)

// FleetRepo implementação do porto FleetRepository sobre PostgreSQL.
// Odômetros em NUMERIC (codec shopspring/decimal registrado no pool);
// created_at TEXT RFC3339 com filtro de prefixo como nos visitantes.
type FleetRepo struct {
	pool *pgxpool.Pool
}

// NewFleetRepository constrói o adaptador de persistência da frota.
func NewFleetRepository(pool *pgxpool.Pool) *FleetRepo {
	return &FleetRepo{pool: pool}
}

// Create persiste uma nova viagem (status in_progress, chegada/distância nulas).
func (r *FleetRepo) Create(ctx context.Context, t *entity.FleetTrip) error {
	query := `
		INSERT INTO fleet_trips (id, driver_name, vehicle, departure_km, arrival_km, distance, status, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)`
	_, err := r.pool.Exec(ctx, query,
		t.ID, t.DriverName, t.Vehicle, t.DepartureKM, t.ArrivalKM, t.Distance, t.Status, t.CreatedAt,
	)
	if err != nil {
		return fmt.Errorf("insert fleet trip: %w", err)
	}
	return nil
}

// List devolve viagens ordenadas por created_at descendente, com filtros
// opcionais de data (prefixo) e de ativas (status in_progress).
func (r *FleetRepo) List(ctx context.Context, filter repository.FleetFilter) ([]*entity.FleetTrip, error) {
	query := `
		SELECT id, driver_name, vehicle, departure_km, arrival_km, distance, status, created_at
		FROM fleet_trips WHERE 1=1`
	var args []any
	if filter.ActiveOnly {
		args = append(args, entity.TripStatusInProgress)
		query += fmt.Sprintf(` AND status = $%d`, len(args))
	}
	if filter.Date != "" {
		args = append(args, filter.Date+"%")
		query += fmt.Sprintf(` AND created_at LIKE $%d`, len(args))
	}
	query += ` ORDER BY created_at DESC`

	rows, err := r.pool.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("list fleet trips: %w", err)
	}
	defer rows.Close()
	var list []*entity.FleetTrip
	for rows.Next() {
		var t entity.FleetTrip
		if err := rows.Scan(&t.ID, &t.DriverName, &t.Vehicle, &t.DepartureKM, &t.ArrivalKM, &t.Distance, &t.Status, &t.CreatedAt); err != nil {
			return nil, fmt.Errorf("scan fleet trip: %w", err)
		}
		list = append(list, &t)
	}
	return list, rows.Err()
}

// Return registra o retorno em um único statement condicional: arrival_km,
// distance (calculada no próprio UPDATE) e status mudam juntos, apenas se a
// viagem ainda estiver in_progress. A distância pode ser negativa; o valor é
// gravado tal como calculado.
//
// Quando nenhuma linha casa, uma leitura posterior distingue viagem ausente de
// viagem já retornada — a mutação em si continua sendo uma única operação
// condicional.
func (r *FleetRepo) Return(ctx context.Context, id string, arrivalKM decimal.Decimal) (decimal.Decimal, error) {
	query := `
		UPDATE fleet_trips
		SET arrival_km = $2, distance = $2 - departure_km, status = $3
		WHERE id = $1 AND status = $4
		RETURNING distance`
	var distance decimal.Decimal
	err := r.pool.QueryRow(ctx, query, id, arrivalKM,
		entity.TripStatusReturned, entity.TripStatusInProgress,
	).Scan(&distance)
	if err == nil {
		return distance, nil
	}
	if !errors.Is(err, pgx.ErrNoRows) {
		return decimal.Zero, fmt.Errorf("return fleet trip: %w", err)
	}

	var status string
	err = r.pool.QueryRow(ctx, `SELECT status FROM fleet_trips WHERE id = $1`, id).Scan(&status)
	if errors.Is(err, pgx.ErrNoRows) {
		return decimal.Zero, domain.ErrTripNotFound
	}
	if err != nil {
		return decimal.Zero, fmt.Errorf("get fleet trip status: %w", err)
	}
	return decimal.Zero, domain.ErrAlreadyReturned
}

// CountActive conta viagens em andamento.
func (r *FleetRepo) CountActive(ctx context.Context) (int64, error) {
	var n int64
	err := r.pool.QueryRow(ctx,
		`SELECT COUNT(*) FROM fleet_trips WHERE status = $1`, entity.TripStatusInProgress,
	).Scan(&n)
	if err != nil {
		return 0, fmt.Errorf("count active trips: %w", err)
	}
	return n, nil
}

// CountByCreatedDate conta viagens do dia (prefixo sobre created_at).
func (r *FleetRepo) CountByCreatedDate(ctx context.Context, date string) (int64, error) {
	var n int64
	err := r.pool.QueryRow(ctx, `SELECT COUNT(*) FROM fleet_trips WHERE created_at LIKE $1`, date+"%").Scan(&n)
	if err != nil {
		return 0, fmt.Errorf("count trips by date: %w", err)
	}
	return n, nil
}
