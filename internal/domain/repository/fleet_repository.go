package repository

import (
	"context"

	"github.com/shopspring/decimal"

	"github.com/portaria-app/gatekeeper-api/internal/domain/entity"
)

// FleetFilter filtros do listado de viagens.
// Date filtra por prefixo literal "YYYY-MM-DD" sobre created_at;
// ActiveOnly restringe a status in_progress.
type FleetFilter struct {
	Date       string
	ActiveOnly bool
}

// FleetRepository porto de persistência do diário de frota.
type FleetRepository interface {
	Create(ctx context.Context, t *entity.FleetTrip) error
	// List devolve as viagens ordenadas por created_at descendente.
	List(ctx context.Context, filter FleetFilter) ([]*entity.FleetTrip, error)
	// Return grava arrival_km, distance (= arrival - departure, calculada no
	// próprio statement) e status returned em uma única operação condicional
	// (status = in_progress). Devolve a distância gravada.
	// Erros: domain.ErrTripNotFound se o id não existe,
	// domain.ErrAlreadyReturned se a viagem já retornou. De dois retornos
	// concorrentes, exatamente um casa com a condição.
	Return(ctx context.Context, id string, arrivalKM decimal.Decimal) (decimal.Decimal, error)
	// CountActive conta viagens com status in_progress.
	CountActive(ctx context.Context) (int64, error)
	// CountByCreatedDate conta viagens cujo created_at começa pela data.
	CountByCreatedDate(ctx context.Context, date string) (int64, error)
}
