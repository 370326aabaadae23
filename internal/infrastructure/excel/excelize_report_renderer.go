// Package excel gera a planilha do relatório diário da portaria.
//
// Layout da folha única "Relatório Diário":
//
//	A1:G1  RELATÓRIO DIÁRIO - PORTARIA - {data}
//	VISITANTES   (Nome, Documento, Entrada, Saída, Placa, Empresa, Observação)
//	CONTROLE DE FROTA (Motorista, Veículo, KM Saída, KM Entrada, Distância, Status)
//	OBSERVAÇÕES DO DIA + Porteiro responsável
package excel

import (
	"fmt"
	"strings"

	"github.com/shopspring/decimal"
	"github.com/xuri/excelize/v2"

	"github.com/portaria-app/gatekeeper-api/internal/application/dto"
	"github.com/portaria-app/gatekeeper-api/internal/application/reports"
	"github.com/portaria-app/gatekeeper-api/internal/domain/entity"
)

var _ reports.Renderer = (*ReportRenderer)(nil)

const sheetName = "Relatório Diário"

// ReportRenderer implementa reports.Renderer usando excelize.
type ReportRenderer struct{}

// NewReportRenderer constrói o renderer.
func NewReportRenderer() *ReportRenderer { return &ReportRenderer{} }

// Render gera a planilha e devolve os bytes do .xlsx.
func (r *ReportRenderer) Render(report *dto.DailyReportResponse) ([]byte, error) {
	f := excelize.NewFile()
	defer f.Close()

	f.SetSheetName("Sheet1", sheetName)

	titleStyle, err := f.NewStyle(&excelize.Style{
		Font:      &excelize.Font{Bold: true, Size: 14},
		Alignment: &excelize.Alignment{Horizontal: "center"},
	})
	if err != nil {
		return nil, fmt.Errorf("excel: estilo título: %w", err)
	}
	sectionStyle, err := f.NewStyle(&excelize.Style{
		Font: &excelize.Font{Bold: true, Size: 11},
		Fill: excelize.Fill{Type: "pattern", Pattern: 1, Color: []string{"E2E8F0"}},
	})
	if err != nil {
		return nil, fmt.Errorf("excel: estilo seção: %w", err)
	}
	headerStyle, err := f.NewStyle(&excelize.Style{
		Font:   &excelize.Font{Bold: true, Size: 12, Color: "FFFFFF"},
		Fill:   excelize.Fill{Type: "pattern", Pattern: 1, Color: []string{"1E293B"}},
		Border: thinBorder(),
	})
	if err != nil {
		return nil, fmt.Errorf("excel: estilo cabeçalho: %w", err)
	}
	cellStyle, err := f.NewStyle(&excelize.Style{Border: thinBorder()})
	if err != nil {
		return nil, fmt.Errorf("excel: estilo célula: %w", err)
	}
	boldStyle, err := f.NewStyle(&excelize.Style{Font: &excelize.Font{Bold: true}})
	if err != nil {
		return nil, fmt.Errorf("excel: estilo negrito: %w", err)
	}

	row := 1
	mergeAcross(f, row, "RELATÓRIO DIÁRIO - PORTARIA - "+report.Date, titleStyle)
	row += 2

	// Visitantes
	mergeAcross(f, row, "VISITANTES", sectionStyle)
	row++
	writeRow(f, row, headerStyle, "Nome", "Documento", "Entrada", "Saída", "Placa", "Empresa", "Observação")
	row++
	for _, v := range report.Visitors {
		writeRow(f, row, cellStyle,
			v.Name, v.Document, fmtTimestamp(v.EntryTime), exitLabel(v.ExitTime),
			v.VehiclePlate, v.Company, v.Observation,
		)
		row++
	}
	row++

	// Frota
	mergeAcross(f, row, "CONTROLE DE FROTA", sectionStyle)
	row++
	writeRow(f, row, headerStyle, "Motorista", "Veículo", "KM Saída", "KM Entrada", "Distância (KM)", "Status")
	row++
	for _, t := range report.Fleet {
		writeRow(f, row, cellStyle,
			t.DriverName, t.Vehicle, t.DepartureKM.InexactFloat64(),
			kmCell(t.ArrivalKM), kmCell(t.Distance), tripStatusLabel(t.Status),
		)
		row++
	}
	row++

	// Observações
	mergeAcross(f, row, "OBSERVAÇÕES DO DIA", sectionStyle)
	row++
	obs := report.Observation
	if obs == "" {
		obs = "Nenhuma observação"
	}
	mergeAcross(f, row, obs, 0)
	row += 2
	porter := report.PorterName
	if porter == "" {
		porter = "—"
	}
	cell := cellName(1, row)
	f.SetCellValue(sheetName, cell, "Porteiro responsável:")
	f.SetCellStyle(sheetName, cell, cell, boldStyle)
	f.SetCellValue(sheetName, cellName(2, row), porter)

	f.SetColWidth(sheetName, "A", "G", 20)

	buf, err := f.WriteToBuffer()
	if err != nil {
		return nil, fmt.Errorf("excel: gravar planilha: %w", err)
	}
	return buf.Bytes(), nil
}

// ── helpers ───────────────────────────────────────────────────────────────────

func thinBorder() []excelize.Border {
	sides := []string{"left", "right", "top", "bottom"}
	borders := make([]excelize.Border, 0, len(sides))
	for _, s := range sides {
		borders = append(borders, excelize.Border{Type: s, Style: 1, Color: "000000"})
	}
	return borders
}

func cellName(col, row int) string {
	name, _ := excelize.CoordinatesToCellName(col, row)
	return name
}

// mergeAcross escreve um valor mesclado de A até G na linha. style 0 = sem estilo.
func mergeAcross(f *excelize.File, row int, value string, style int) {
	start := cellName(1, row)
	end := cellName(7, row)
	f.MergeCell(sheetName, start, end)
	f.SetCellValue(sheetName, start, value)
	if style != 0 {
		f.SetCellStyle(sheetName, start, end, style)
	}
}

func writeRow(f *excelize.File, row, style int, values ...any) {
	for i, v := range values {
		cell := cellName(i+1, row)
		f.SetCellValue(sheetName, cell, v)
		f.SetCellStyle(sheetName, cell, cell, style)
	}
}

// fmtTimestamp reduz um RFC3339 a "YYYY-MM-DD HH:MM".
func fmtTimestamp(ts string) string {
	if len(ts) > 16 {
		ts = ts[:16]
	}
	return strings.ReplaceAll(ts, "T", " ")
}

func exitLabel(exit *string) string {
	if exit == nil {
		return "Em andamento"
	}
	return fmtTimestamp(*exit)
}

func tripStatusLabel(status string) string {
	if status == entity.TripStatusReturned {
		return "Retornado"
	}
	return "Em viagem"
}

// kmCell devolve o valor numérico do odômetro ou "—" quando ainda nulo.
func kmCell(km *decimal.Decimal) any {
	if km == nil {
		return "—"
	}
	return km.InexactFloat64()
}
