package usecase

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/portaria-app/gatekeeper-api/internal/application/dto"
	"github.com/portaria-app/gatekeeper-api/internal/domain/entity"
	"github.com/portaria-app/gatekeeper-api/internal/domain/repository"
)

// VisitorUseCase livro de visitantes: check-in, checkout e listagem.
type VisitorUseCase struct {
	repo repository.VisitorRepository
}

// NewVisitorUseCase constrói o caso de uso com o porto de persistência.
func NewVisitorUseCase(repo repository.VisitorRepository) *VisitorUseCase {
	return &VisitorUseCase{repo: repo}
}

// CheckIn registra a entrada de um visitante. entry_time vazio usa o instante
// atual; exit_time inicia nulo. O registro é append-only: nunca é removido.
func (uc *VisitorUseCase) CheckIn(ctx context.Context, in dto.CheckInRequest) (*dto.VisitorResponse, error) {
	now := time.Now().UTC().Format(time.RFC3339)
	entryTime := in.EntryTime
	if entryTime == "" {
		entryTime = now
	}
	v := &entity.VisitorEntry{
		ID:           uuid.New().String(),
		Name:         in.Name,
		Document:     in.Document,
		EntryTime:    entryTime,
		ExitTime:     nil,
		VehiclePlate: in.VehiclePlate,
		Company:      in.Company,
		Observation:  in.Observation,
		CreatedAt:    now,
	}
	if err := uc.repo.Create(ctx, v); err != nil {
		return nil, err
	}
	resp := dto.NewVisitorResponse(v)
	return &resp, nil
}

// List devolve os registros (entry_time descendente). date filtra por prefixo
// de dia sobre entry_time; activeOnly restringe aos ainda presentes.
func (uc *VisitorUseCase) List(ctx context.Context, date string, activeOnly bool) ([]dto.VisitorResponse, error) {
	visitors, err := uc.repo.List(ctx, repository.VisitorFilter{Date: date, ActiveOnly: activeOnly})
	if err != nil {
		return nil, err
	}
	return dto.NewVisitorResponses(visitors), nil
}

// CheckOut grava a saída e devolve o exit_time. A mutação é condicional no
// repositório; domain.ErrAlreadyCheckedOut cobre tanto id inexistente quanto
// visitante que já saiu.
func (uc *VisitorUseCase) CheckOut(ctx context.Context, id string) (string, error) {
	exitTime := time.Now().UTC().Format(time.RFC3339)
	if err := uc.repo.CheckOut(ctx, id, exitTime); err != nil {
		return "", err
	}
	return exitTime, nil
}
