package repository

import (
	"context"

	"github.com/portaria-app/gatekeeper-api/internal/domain/entity"
)

// UserPatch campos opcionais para atualização parcial: apenas os ponteiros
// não-nil sobrescrevem o valor persistido.
type UserPatch struct {
	Username     *string
	PasswordHash *string
	Name         *string
	Role         *string
}

// Empty informa se nenhum campo foi fornecido.
func (p UserPatch) Empty() bool {
	return p.Username == nil && p.PasswordHash == nil && p.Name == nil && p.Role == nil
}

// UserRepository porto de persistência de usuários.
type UserRepository interface {
	// Create persiste um novo usuário. Devolve domain.ErrUsernameExists se o
	// username já estiver em uso.
	Create(ctx context.Context, user *entity.User) error
	// GetByID devolve (nil, nil) quando o usuário não existe.
	GetByID(ctx context.Context, id string) (*entity.User, error)
	// GetByUsername procura por username com match exato (case-sensitive).
	// Devolve (nil, nil) quando não existe.
	GetByUsername(ctx context.Context, username string) (*entity.User, error)
	// List devolve todos os usuários ordenados por created_at.
	List(ctx context.Context) ([]*entity.User, error)
	// Update aplica um merge parcial em um único statement condicional.
	// Devolve domain.ErrUserNotFound se o id não existir e
	// domain.ErrUsernameExists em caso de colisão de username.
	Update(ctx context.Context, id string, patch UserPatch) error
	// Delete remove o usuário. Devolve domain.ErrUserNotFound se ausente.
	Delete(ctx context.Context, id string) error
}
