package postgres

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/portaria-app/gatekeeper-api/internal/domain"
	"github.com/portaria-app/gatekeeper-api/internal/domain/entity"
	"github.com/portaria-app/gatekeeper-api/internal/domain/repository"
)

var _ repository.VisitorRepository = (*VisitorRepo)(nil)

// VisitorRepo implementação do porto VisitorRepository sobre PostgreSQL.
//
// entry_time/exit_time/created_at são colunas TEXT com strings RFC3339 UTC;
// o filtro por data usa LIKE 'YYYY-MM-DD%', o mesmo match de prefixo literal
// do sistema de origem.
type VisitorRepo struct {
	pool *pgxpool.Pool
}

// NewVisitorRepository constrói o adaptador de persistência de visitantes.
func NewVisitorRepository(pool *pgxpool.Pool) *VisitorRepo {
	return &VisitorRepo{pool: pool}
}

// Create persiste um novo registro de entrada.
func (r *VisitorRepo) Create(ctx context.Context, v *entity.VisitorEntry) error {
	query := `
		INSERT INTO visitors (id, name, document, entry_time, exit_time, vehicle_plate, company, observation, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)`
	_, err := r.pool.Exec(ctx, query,
		v.ID, v.Name, v.Document, v.EntryTime, v.ExitTime, v.VehiclePlate, v.Company, v.Observation, v.CreatedAt,
	)
	if err != nil {
		return fmt.Errorf("insert visitor: %w", err)
	}
	return nil
}

// List devolve registros ordenados por entry_time descendente, com filtros
// opcionais de data (prefixo) e de ativos (exit_time nulo).
func (r *VisitorRepo) List(ctx context.Context, filter repository.VisitorFilter) ([]*entity.VisitorEntry, error) {
	query := `
		SELECT id, name, document, entry_time, exit_time, vehicle_plate, company, observation, created_at
		FROM visitors WHERE 1=1`
	var args []any
	if filter.ActiveOnly {
		query += ` AND exit_time IS NULL`
	}
	if filter.Date != "" {
		args = append(args, filter.Date+"%")
		query += fmt.Sprintf(` AND entry_time LIKE $%d`, len(args))
	}
	query += ` ORDER BY entry_time DESC`

	rows, err := r.pool.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("list visitors: %w", err)
	}
	defer rows.Close()
	var list []*entity.VisitorEntry
	for rows.Next() {
		var v entity.VisitorEntry
		if err := rows.Scan(&v.ID, &v.Name, &v.Document, &v.EntryTime, &v.ExitTime, &v.VehiclePlate, &v.Company, &v.Observation, &v.CreatedAt); err != nil {
			return nil, fmt.Errorf("scan visitor: %w", err)
		}
		list = append(list, &v)
	}
	return list, rows.Err()
}

// CheckOut grava a saída em um único statement condicional: só casa se o
// registro existir e ainda estiver sem exit_time. Não há janela
// read-then-write; de dois checkouts concorrentes apenas um casa.
func (r *VisitorRepo) CheckOut(ctx context.Context, id, exitTime string) error {
	query := `UPDATE visitors SET exit_time = $2 WHERE id = $1 AND exit_time IS NULL`
	tag, err := r.pool.Exec(ctx, query, id, exitTime)
	if err != nil {
		return fmt.Errorf("checkout visitor: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrAlreadyCheckedOut
	}
	return nil
}

// CountActive conta visitantes ainda no local.
func (r *VisitorRepo) CountActive(ctx context.Context) (int64, error) {
	var n int64
	err := r.pool.QueryRow(ctx, `SELECT COUNT(*) FROM visitors WHERE exit_time IS NULL`).Scan(&n)
	if err != nil {
		return 0, fmt.Errorf("count active visitors: %w", err)
	}
	return n, nil
}

// CountByEntryDate conta entradas do dia (prefixo sobre entry_time).
func (r *VisitorRepo) CountByEntryDate(ctx context.Context, date string) (int64, error) {
	var n int64
	err := r.pool.QueryRow(ctx, `SELECT COUNT(*) FROM visitors WHERE entry_time LIKE $1`, date+"%").Scan(&n)
	if err != nil {
		return 0, fmt.Errorf("count visitors by date: %w", err)
	}
	return n, nil
}
