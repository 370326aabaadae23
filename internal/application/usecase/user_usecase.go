package usecase

import (
	"context"
	"time"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"

	"github.com/portaria-app/gatekeeper-api/internal/application/dto"
	"github.com/portaria-app/gatekeeper-api/internal/domain"
	"github.com/portaria-app/gatekeeper-api/internal/domain/entity"
	"github.com/portaria-app/gatekeeper-api/internal/domain/repository"
)

// UserUseCase gestão de usuários (operações restritas a admin; a autorização
// é aplicada pelo middleware antes de chegar aqui).
type UserUseCase struct {
	repo repository.UserRepository
}

// NewUserUseCase constrói o caso de uso com o porto de persistência.
func NewUserUseCase(repo repository.UserRepository) *UserUseCase {
	return &UserUseCase{repo: repo}
}

// List devolve todos os usuários, sem hashes.
func (uc *UserUseCase) List(ctx context.Context) ([]dto.UserResponse, error) {
	users, err := uc.repo.List(ctx)
	if err != nil {
		return nil, err
	}
	out := make([]dto.UserResponse, 0, len(users))
	for _, u := range users {
		out = append(out, dto.NewUserResponse(u))
	}
	return out, nil
}

// Create cria um usuário com a senha hasheada via bcrypt.
// Devolve domain.ErrUsernameExists se o username já estiver em uso.
func (uc *UserUseCase) Create(ctx context.Context, in dto.CreateUserRequest) (*dto.UserResponse, error) {
	existing, err := uc.repo.GetByUsername(ctx, in.Username)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, domain.ErrUsernameExists
	}
	hash, err := bcrypt.GenerateFromPassword([]byte(in.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}
	role := in.Role
	if role == "" {
		role = entity.RolePorteiro
	}
	user := &entity.User{
		ID:           uuid.New().String(),
		Username:     in.Username,
		PasswordHash: string(hash),
		Name:         in.Name,
		Role:         role,
		CreatedAt:    time.Now().UTC().Format(time.RFC3339),
	}
	if err := uc.repo.Create(ctx, user); err != nil {
		return nil, err
	}
	resp := dto.NewUserResponse(user)
	return &resp, nil
}

// Update aplica um merge parcial: apenas os campos fornecidos sobrescrevem.
// Senha fornecida é hasheada antes de persistir.
func (uc *UserUseCase) Update(ctx context.Context, id string, in dto.UpdateUserRequest) error {
	var patch repository.UserPatch
	if in.Username != "" {
		patch.Username = &in.Username
	}
	if in.Password != "" {
		hash, err := bcrypt.GenerateFromPassword([]byte(in.Password), bcrypt.DefaultCost)
		if err != nil {
			return err
		}
		h := string(hash)
		patch.PasswordHash = &h
	}
	if in.Name != "" {
		patch.Name = &in.Name
	}
	if in.Role != "" {
		patch.Role = &in.Role
	}
	if patch.Empty() {
		return domain.ErrNothingToUpdate
	}
	return uc.repo.Update(ctx, id, patch)
}

// Delete remove um usuário. Um usuário não pode remover a si mesmo.
func (uc *UserUseCase) Delete(ctx context.Context, callerID, id string) error {
	if callerID == id {
		return domain.ErrSelfDeletion
	}
	return uc.repo.Delete(ctx, id)
}
