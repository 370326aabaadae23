package auth_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/portaria-app/gatekeeper-api/internal/application/auth"
	"github.com/portaria-app/gatekeeper-api/internal/application/dto"
	"github.com/portaria-app/gatekeeper-api/internal/domain"
	"github.com/portaria-app/gatekeeper-api/internal/domain/entity"
	"github.com/portaria-app/gatekeeper-api/internal/domain/repository"
	pkgjwt "github.com/portaria-app/gatekeeper-api/pkg/jwt"
)

// fakeUserRepo fake em memória do porto de usuários, só com o que o auth usa.
type fakeUserRepo struct {
	users map[string]*entity.User // por username
}

func newFakeUserRepo() *fakeUserRepo {
	return &fakeUserRepo{users: make(map[string]*entity.User)}
}

func (r *fakeUserRepo) Create(_ context.Context, user *entity.User) error {
	if _, ok := r.users[user.Username]; ok {
		return domain.ErrUsernameExists
	}
	cp := *user
	r.users[user.Username] = &cp
	return nil
}

func (r *fakeUserRepo) GetByID(_ context.Context, id string) (*entity.User, error) {
	for _, u := range r.users {
		if u.ID == id {
			cp := *u
			return &cp, nil
		}
	}
	return nil, nil
}

func (r *fakeUserRepo) GetByUsername(_ context.Context, username string) (*entity.User, error) {
	u, ok := r.users[username]
	if !ok {
		return nil, nil
	}
	cp := *u
	return &cp, nil
}

func (r *fakeUserRepo) List(_ context.Context) ([]*entity.User, error) { return nil, nil }

func (r *fakeUserRepo) Update(_ context.Context, _ string, _ repository.UserPatch) error {
	return nil
}

func (r *fakeUserRepo) Delete(_ context.Context, _ string) error { return nil }

const testSecret = "test-secret-key-for-unit-tests"

func buildAuthUC(repo repository.UserRepository) *auth.AuthUseCase {
	return auth.NewAuthUseCase(repo, auth.JWTConfig{
		Secret:   testSecret,
		ExpHours: 24,
		Issuer:   "gatekeeper-test",
	})
}

func TestEnsureDefaultAdmin_CriaNaPrimeiraVez(t *testing.T) {
	repo := newFakeUserRepo()
	uc := buildAuthUC(repo)
	ctx := context.Background()

	created, err := uc.EnsureDefaultAdmin(ctx, "admin", "admin123", "Administrador")
	require.NoError(t, err)
	assert.True(t, created)

	admin, err := repo.GetByUsername(ctx, "admin")
	require.NoError(t, err)
	require.NotNil(t, admin)
	assert.Equal(t, entity.RoleAdmin, admin.Role)
	assert.NotEqual(t, "admin123", admin.PasswordHash)

	// Segundo arranque: idempotente.
	created, err = uc.EnsureDefaultAdmin(ctx, "admin", "admin123", "Administrador")
	require.NoError(t, err)
	assert.False(t, created)
}

func TestLogin_SucessoEmiteTokenValido(t *testing.T) {
	repo := newFakeUserRepo()
	uc := buildAuthUC(repo)
	ctx := context.Background()

	_, err := uc.EnsureDefaultAdmin(ctx, "admin", "admin123", "Administrador")
	require.NoError(t, err)

	out, err := uc.Login(ctx, dto.LoginRequest{Username: "admin", Password: "admin123"})
	require.NoError(t, err)
	require.NotEmpty(t, out.Token)
	assert.Equal(t, "admin", out.User.Username)
	assert.Equal(t, entity.RoleAdmin, out.User.Role)

	// O token emitido carrega os claims do usuário.
	claims, err := pkgjwt.Parse(testSecret, out.Token)
	require.NoError(t, err)
	assert.Equal(t, out.User.ID, claims.UserID)
	assert.Equal(t, "admin", claims.Username)
	assert.Equal(t, entity.RoleAdmin, claims.Role)
	assert.Equal(t, "Administrador", claims.Name)
}

func TestLogin_SenhaIncorreta(t *testing.T) {
	repo := newFakeUserRepo()
	uc := buildAuthUC(repo)
	ctx := context.Background()

	_, err := uc.EnsureDefaultAdmin(ctx, "admin", "admin123", "Administrador")
	require.NoError(t, err)

	_, err = uc.Login(ctx, dto.LoginRequest{Username: "admin", Password: "errada"})
	assert.ErrorIs(t, err, domain.ErrInvalidCredentials)
}

func TestLogin_UsuarioInexistente_MesmoErro(t *testing.T) {
	// Username ausente e senha errada devolvem o mesmo erro: a resposta não
	// revela se o usuário existe.
	uc := buildAuthUC(newFakeUserRepo())

	_, err := uc.Login(context.Background(), dto.LoginRequest{Username: "fantasma", Password: "qualquer"})
	assert.ErrorIs(t, err, domain.ErrInvalidCredentials)
}
