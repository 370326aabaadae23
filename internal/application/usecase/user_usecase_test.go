package usecase_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"github.com/portaria-app/gatekeeper-api/internal/application/dto"
	"github.com/portaria-app/gatekeeper-api/internal/application/usecase"
	"github.com/portaria-app/gatekeeper-api/internal/domain"
	"github.com/portaria-app/gatekeeper-api/internal/domain/entity"
)

func TestUserCreate_HasheiaSenhaEDefaultPorteiro(t *testing.T) {
	repo := newFakeUserRepo()
	uc := usecase.NewUserUseCase(repo)

	user, err := uc.Create(context.Background(), dto.CreateUserRequest{
		Username: "joao",
		Password: "senha123",
		Name:     "João Silva",
	})
	require.NoError(t, err)

	assert.Equal(t, entity.RolePorteiro, user.Role, "papel omitido usa porteiro")

	stored, err := repo.GetByUsername(context.Background(), "joao")
	require.NoError(t, err)
	require.NotNil(t, stored)
	assert.NotEqual(t, "senha123", stored.PasswordHash, "a senha nunca é persistida em texto")
	assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(stored.PasswordHash), []byte("senha123")))
}

func TestUserCreate_UsernameDuplicado(t *testing.T) {
	uc := usecase.NewUserUseCase(newFakeUserRepo())
	ctx := context.Background()

	_, err := uc.Create(ctx, dto.CreateUserRequest{Username: "joao", Password: "senha123", Name: "João"})
	require.NoError(t, err)

	_, err = uc.Create(ctx, dto.CreateUserRequest{Username: "joao", Password: "outra456", Name: "Outro João"})
	assert.ErrorIs(t, err, domain.ErrUsernameExists)
}

func TestUserUpdate_MergeParcial(t *testing.T) {
	repo := newFakeUserRepo()
	uc := usecase.NewUserUseCase(repo)
	ctx := context.Background()

	user, err := uc.Create(ctx, dto.CreateUserRequest{Username: "joao", Password: "senha123", Name: "João", Role: "porteiro"})
	require.NoError(t, err)

	// Apenas o nome: username, senha e papel ficam intactos.
	require.NoError(t, uc.Update(ctx, user.ID, dto.UpdateUserRequest{Name: "João Pedro"}))

	stored, err := repo.GetByID(ctx, user.ID)
	require.NoError(t, err)
	assert.Equal(t, "João Pedro", stored.Name)
	assert.Equal(t, "joao", stored.Username)
	assert.Equal(t, "porteiro", stored.Role)
	assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(stored.PasswordHash), []byte("senha123")))
}

func TestUserUpdate_SenhaNovaEhHasheada(t *testing.T) {
	repo := newFakeUserRepo()
	uc := usecase.NewUserUseCase(repo)
	ctx := context.Background()

	user, err := uc.Create(ctx, dto.CreateUserRequest{Username: "joao", Password: "senha123", Name: "João"})
	require.NoError(t, err)

	require.NoError(t, uc.Update(ctx, user.ID, dto.UpdateUserRequest{Password: "novasenha"}))

	stored, err := repo.GetByID(ctx, user.ID)
	require.NoError(t, err)
	assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(stored.PasswordHash), []byte("novasenha")))
	assert.Error(t, bcrypt.CompareHashAndPassword([]byte(stored.PasswordHash), []byte("senha123")))
}

func TestUserUpdate_SemCampos(t *testing.T) {
	uc := usecase.NewUserUseCase(newFakeUserRepo())
	err := uc.Update(context.Background(), "qualquer", dto.UpdateUserRequest{})
	assert.ErrorIs(t, err, domain.ErrNothingToUpdate)
}

func TestUserUpdate_IDInexistente(t *testing.T) {
	uc := usecase.NewUserUseCase(newFakeUserRepo())
	err := uc.Update(context.Background(), "nao-existe", dto.UpdateUserRequest{Name: "X"})
	assert.ErrorIs(t, err, domain.ErrUserNotFound)
}

func TestUserDelete_AutoRemocaoProibida(t *testing.T) {
	uc := usecase.NewUserUseCase(newFakeUserRepo())
	err := uc.Delete(context.Background(), "mesmo-id", "mesmo-id")
	assert.ErrorIs(t, err, domain.ErrSelfDeletion)
}

func TestUserDelete_OutroUsuario(t *testing.T) {
	repo := newFakeUserRepo()
	uc := usecase.NewUserUseCase(repo)
	ctx := context.Background()

	alvo, err := uc.Create(ctx, dto.CreateUserRequest{Username: "alvo", Password: "senha123", Name: "Alvo"})
	require.NoError(t, err)

	require.NoError(t, uc.Delete(ctx, "id-do-admin", alvo.ID))
	assert.ErrorIs(t, uc.Delete(ctx, "id-do-admin", alvo.ID), domain.ErrUserNotFound)
}

func TestUserList_NuncaExpoeHash(t *testing.T) {
	uc := usecase.NewUserUseCase(newFakeUserRepo())
	ctx := context.Background()

	_, err := uc.Create(ctx, dto.CreateUserRequest{Username: "joao", Password: "senha123", Name: "João"})
	require.NoError(t, err)

	users, err := uc.List(ctx)
	require.NoError(t, err)
	require.Len(t, users, 1)
	assert.Equal(t, "joao", users[0].Username)
	// dto.UserResponse não tem campo de senha; o que se valida aqui é que a
	// listagem devolve os metadados esperados.
	assert.NotEmpty(t, users[0].CreatedAt)
}
