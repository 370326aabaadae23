package usecase_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/portaria-app/gatekeeper-api/internal/application/dto"
	"github.com/portaria-app/gatekeeper-api/internal/application/usecase"
	"github.com/portaria-app/gatekeeper-api/internal/domain"
)

func TestVisitorCheckIn_PreencheDefaults(t *testing.T) {
	repo := newFakeVisitorRepo()
	uc := usecase.NewVisitorUseCase(repo)

	visitor, err := uc.CheckIn(context.Background(), dto.CheckInRequest{
		Name:     "Maria Souza",
		Document: "123.456.789-00",
	})
	require.NoError(t, err)

	assert.NotEmpty(t, visitor.ID)
	assert.NotEmpty(t, visitor.EntryTime, "entry_time vazio deve usar o instante atual")
	assert.Nil(t, visitor.ExitTime, "visitante recém registrado está presente")

	// entry_time default é RFC3339 parseável
	_, err = time.Parse(time.RFC3339, visitor.EntryTime)
	assert.NoError(t, err)
}

func TestVisitorCheckIn_RespeitaEntryTimeInformado(t *testing.T) {
	repo := newFakeVisitorRepo()
	uc := usecase.NewVisitorUseCase(repo)

	visitor, err := uc.CheckIn(context.Background(), dto.CheckInRequest{
		Name:      "Carlos Lima",
		Document:  "987",
		EntryTime: "2026-08-27T08:30:00Z",
	})
	require.NoError(t, err)
	assert.Equal(t, "2026-08-27T08:30:00Z", visitor.EntryTime)
}

func TestVisitorCheckOut_GravaSaida(t *testing.T) {
	repo := newFakeVisitorRepo()
	uc := usecase.NewVisitorUseCase(repo)

	visitor, err := uc.CheckIn(context.Background(), dto.CheckInRequest{Name: "Maria", Document: "1"})
	require.NoError(t, err)

	exitTime, err := uc.CheckOut(context.Background(), visitor.ID)
	require.NoError(t, err)
	assert.NotEmpty(t, exitTime)

	listed, err := uc.List(context.Background(), "", false)
	require.NoError(t, err)
	require.Len(t, listed, 1)
	require.NotNil(t, listed[0].ExitTime)
	assert.Equal(t, exitTime, *listed[0].ExitTime)
}

func TestVisitorCheckOut_SegundaSaidaFalha(t *testing.T) {
	repo := newFakeVisitorRepo()
	uc := usecase.NewVisitorUseCase(repo)

	visitor, err := uc.CheckIn(context.Background(), dto.CheckInRequest{Name: "Maria", Document: "1"})
	require.NoError(t, err)

	_, err = uc.CheckOut(context.Background(), visitor.ID)
	require.NoError(t, err)

	_, err = uc.CheckOut(context.Background(), visitor.ID)
	assert.ErrorIs(t, err, domain.ErrAlreadyCheckedOut,
		"segundo checkout deve falhar como se o registro não existisse")
}

func TestVisitorCheckOut_IDInexistente(t *testing.T) {
	uc := usecase.NewVisitorUseCase(newFakeVisitorRepo())
	_, err := uc.CheckOut(context.Background(), "nao-existe")
	assert.ErrorIs(t, err, domain.ErrAlreadyCheckedOut)
}

func TestVisitorList_FiltraPorDiaEPresenca(t *testing.T) {
	repo := newFakeVisitorRepo()
	uc := usecase.NewVisitorUseCase(repo)
	ctx := context.Background()

	hoje, err := uc.CheckIn(ctx, dto.CheckInRequest{Name: "Hoje", Document: "1", EntryTime: "2026-08-27T09:00:00Z"})
	require.NoError(t, err)
	_, err = uc.CheckIn(ctx, dto.CheckInRequest{Name: "Ontem", Document: "2", EntryTime: "2026-08-26T09:00:00Z"})
	require.NoError(t, err)
	saiu, err := uc.CheckIn(ctx, dto.CheckInRequest{Name: "Saiu", Document: "3", EntryTime: "2026-08-27T07:00:00Z"})
	require.NoError(t, err)
	_, err = uc.CheckOut(ctx, saiu.ID)
	require.NoError(t, err)

	// Filtro por dia: prefixo sobre entry_time
	porDia, err := uc.List(ctx, "2026-08-27", false)
	require.NoError(t, err)
	assert.Len(t, porDia, 2)

	// Apenas presentes
	ativos, err := uc.List(ctx, "2026-08-27", true)
	require.NoError(t, err)
	require.Len(t, ativos, 1)
	assert.Equal(t, hoje.ID, ativos[0].ID)
}

func TestVisitorList_SemResultadosDevolveListaVazia(t *testing.T) {
	uc := usecase.NewVisitorUseCase(newFakeVisitorRepo())
	listed, err := uc.List(context.Background(), "1999-01-01", false)
	require.NoError(t, err)
	assert.NotNil(t, listed, "lista vazia serializa como [], não null")
	assert.Empty(t, listed)
}
