package usecase

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/portaria-app/gatekeeper-api/internal/application/dto"
	"github.com/portaria-app/gatekeeper-api/internal/domain/entity"
	"github.com/portaria-app/gatekeeper-api/internal/domain/repository"
)

// FleetUseCase diário de frota: saída, retorno e listagem de viagens.
type FleetUseCase struct {
	repo repository.FleetRepository
}

// NewFleetUseCase constrói o caso de uso com o porto de persistência.
func NewFleetUseCase(repo repository.FleetRepository) *FleetUseCase {
	return &FleetUseCase{repo: repo}
}

// Depart registra a saída de um veículo: status in_progress, chegada e
// distância nulas até o retorno.
func (uc *FleetUseCase) Depart(ctx context.Context, in dto.CreateTripRequest) (*dto.TripResponse, error) {
	t := &entity.FleetTrip{
		ID:          uuid.New().String(),
		DriverName:  in.DriverName,
		Vehicle:     in.Vehicle,
		DepartureKM: in.DepartureKM,
		ArrivalKM:   nil,
		Distance:    nil,
		Status:      entity.TripStatusInProgress,
		CreatedAt:   time.Now().UTC().Format(time.RFC3339),
	}
	if err := uc.repo.Create(ctx, t); err != nil {
		return nil, err
	}
	resp := dto.NewTripResponse(t)
	return &resp, nil
}

// List devolve as viagens (created_at descendente). date filtra por prefixo
// de dia sobre created_at; activeOnly restringe às em andamento.
func (uc *FleetUseCase) List(ctx context.Context, date string, activeOnly bool) ([]dto.TripResponse, error) {
	trips, err := uc.repo.List(ctx, repository.FleetFilter{Date: date, ActiveOnly: activeOnly})
	if err != nil {
		return nil, err
	}
	return dto.NewTripResponses(trips), nil
}

// Return registra o retorno e devolve a distância (arrival - departure).
// O valor informado é confiado numericamente: distância negativa é gravada
// como calculada. Um segundo retorno devolve domain.ErrAlreadyReturned.
func (uc *FleetUseCase) Return(ctx context.Context, id string, arrivalKM decimal.Decimal) (decimal.Decimal, error) {
	return uc.repo.Return(ctx, id, arrivalKM)
}
