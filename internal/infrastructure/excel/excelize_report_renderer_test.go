package excel_test

import (
	"bytes"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"

	"github.com/portaria-app/gatekeeper-api/internal/application/dto"
	appexcel "github.com/portaria-app/gatekeeper-api/internal/infrastructure/excel"
	"github.com/portaria-app/gatekeeper-api/internal/domain/entity"
)

func sampleReport() *dto.DailyReportResponse {
	exit := "2026-08-27T12:00:00Z"
	arrival := decimal.RequireFromString("1050.5")
	distance := decimal.RequireFromString("50.5")
	return &dto.DailyReportResponse{
		Date: "2026-08-27",
		Visitors: []dto.VisitorResponse{
			{ID: "v1", Name: "Maria", Document: "123", EntryTime: "2026-08-27T09:00:00Z"},
			{ID: "v2", Name: "Carlos", Document: "456", EntryTime: "2026-08-27T10:00:00Z", ExitTime: &exit},
		},
		Fleet: []dto.TripResponse{
			{ID: "t1", DriverName: "José", Vehicle: "Van", DepartureKM: decimal.RequireFromString("1000"),
				ArrivalKM: &arrival, Distance: &distance, Status: entity.TripStatusReturned,
				CreatedAt: "2026-08-27T08:00:00Z"},
		},
		Observation: "Tudo em ordem",
		PorterName:  "João",
	}
}

func TestRender_PlanilhaLegivel(t *testing.T) {
	doc, err := appexcel.NewReportRenderer().Render(sampleReport())
	require.NoError(t, err)
	require.NotEmpty(t, doc)

	// A planilha gerada reabre e contém o título e os dados.
	f, err := excelize.OpenReader(bytes.NewReader(doc))
	require.NoError(t, err)
	defer f.Close()

	title, err := f.GetCellValue("Relatório Diário", "A1")
	require.NoError(t, err)
	assert.Equal(t, "RELATÓRIO DIÁRIO - PORTARIA - 2026-08-27", title)

	rows, err := f.GetRows("Relatório Diário")
	require.NoError(t, err)
	flat := ""
	for _, row := range rows {
		for _, cell := range row {
			flat += cell + "|"
		}
	}
	assert.Contains(t, flat, "Maria")
	assert.Contains(t, flat, "Em andamento", "visitante presente mostra saída em andamento")
	assert.Contains(t, flat, "José")
	assert.Contains(t, flat, "Retornado")
	assert.Contains(t, flat, "Tudo em ordem")
	assert.Contains(t, flat, "João")
}

func TestRender_RelatorioVazio(t *testing.T) {
	doc, err := appexcel.NewReportRenderer().Render(&dto.DailyReportResponse{Date: "2026-08-27"})
	require.NoError(t, err)
	require.NotEmpty(t, doc)

	f, err := excelize.OpenReader(bytes.NewReader(doc))
	require.NoError(t, err)
	defer f.Close()

	rows, err := f.GetRows("Relatório Diário")
	require.NoError(t, err)
	flat := ""
	for _, row := range rows {
		for _, cell := range row {
			flat += cell + "|"
		}
	}
	assert.Contains(t, flat, "Nenhuma observação")
}
