package repository

import (
	"context"

	"github.com/portaria-app/gatekeeper-api/internal/domain/entity"
)

// VisitorFilter filtros do listado de visitantes.
// Date filtra por prefixo literal "YYYY-MM-DD" sobre entry_time;
// ActiveOnly restringe a exit_time nulo.
type VisitorFilter struct {
	Date       string
	ActiveOnly bool
}

// VisitorRepository porto de persistência do livro de visitantes.
type VisitorRepository interface {
	Create(ctx context.Context, v *entity.VisitorEntry) error
	// List devolve os registros ordenados por entry_time descendente.
	List(ctx context.Context, filter VisitorFilter) ([]*entity.VisitorEntry, error)
	// CheckOut grava exit_time em um único statement condicional
	// (id = $1 AND exit_time IS NULL). Devolve domain.ErrAlreadyCheckedOut
	// quando nenhuma linha casa — registro ausente ou já com saída; dois
	// checkouts concorrentes nunca têm ambos sucesso.
	CheckOut(ctx context.Context, id, exitTime string) error
	// CountActive conta visitantes com exit_time nulo.
	CountActive(ctx context.Context) (int64, error)
	// CountByEntryDate conta registros cujo entry_time começa pela data.
	CountByEntryDate(ctx context.Context, date string) (int64, error)
}
