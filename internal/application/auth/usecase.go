// Package auth contém o caso de uso de autenticação: login com bcrypt,
// emissão de JWT e o bootstrap do admin padrão no primeiro arranque.
package auth

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"

	"github.com/portaria-app/gatekeeper-api/internal/application/dto"
	"github.com/portaria-app/gatekeeper-api/internal/domain"
	"github.com/portaria-app/gatekeeper-api/internal/domain/entity"
	"github.com/portaria-app/gatekeeper-api/internal/domain/repository"
	"github.com/portaria-app/gatekeeper-api/pkg/jwt"
)

// JWTConfig configuração para geração de tokens.
type JWTConfig struct {
	Secret   string
	ExpHours int
	Issuer   string
}

// AuthUseCase caso de uso de autenticação.
type AuthUseCase struct {
	userRepo repository.UserRepository
	jwtCfg   JWTConfig
}

// NewAuthUseCase constrói o caso de uso de auth.
func NewAuthUseCase(userRepo repository.UserRepository, jwtCfg JWTConfig) *AuthUseCase {
	return &AuthUseCase{userRepo: userRepo, jwtCfg: jwtCfg}
}

// Login verifica username/senha e emite um JWT com validade de 24h.
// Username ausente e senha incorreta devolvem o mesmo ErrInvalidCredentials;
// a comparação bcrypt é constant-time contra o hash persistido.
func (uc *AuthUseCase) Login(ctx context.Context, in dto.LoginRequest) (*dto.LoginResponse, error) {
	user, err := uc.userRepo.GetByUsername(ctx, in.Username)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, domain.ErrInvalidCredentials
	}
	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(in.Password)); err != nil {
		return nil, domain.ErrInvalidCredentials
	}
	token, err := jwt.Generate(uc.jwtCfg.Secret, user.ID, user.Username, user.Role, user.Name, uc.jwtCfg.Issuer, uc.jwtCfg.ExpHours)
	if err != nil {
		return nil, fmt.Errorf("gerar token: %w", err)
	}
	return &dto.LoginResponse{
		Token: token,
		User:  dto.NewUserResponse(user),
	}, nil
}

// EnsureDefaultAdmin cria o admin padrão se nenhum usuário existir com esse
// username. Devolve true quando o usuário foi criado neste arranque.
// A senha padrão é um contrato operacional conhecido; deve ser rotacionada.
func (uc *AuthUseCase) EnsureDefaultAdmin(ctx context.Context, username, password, name string) (bool, error) {
	existing, err := uc.userRepo.GetByUsername(ctx, username)
	if err != nil {
		return false, err
	}
	if existing != nil {
		return false, nil
	}
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return false, err
	}
	admin := &entity.User{
		ID:           uuid.New().String(),
		Username:     username,
		PasswordHash: string(hash),
		Name:         name,
		Role:         entity.RoleAdmin,
		CreatedAt:    time.Now().UTC().Format(time.RFC3339),
	}
	if err := uc.userRepo.Create(ctx, admin); err != nil {
		return false, err
	}
	return true, nil
}
