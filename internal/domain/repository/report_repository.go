package repository

import (
	"context"

	"github.com/portaria-app/gatekeeper-api/internal/domain/entity"
)

// ReportRepository porto de persistência das observações diárias.
type ReportRepository interface {
	// UpsertObservation grava a observação da data, sobrescrevendo a existente
	// (no máximo uma linha por data, last-write-wins).
	UpsertObservation(ctx context.Context, obs *entity.ReportObservation) error
	// GetObservation devolve (nil, nil) quando não há observação para a data.
	GetObservation(ctx context.Context, date string) (*entity.ReportObservation, error)
}
