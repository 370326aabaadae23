// Package pdf gera o PDF do relatório diário da portaria.
//
// Layout da página A4 paisagem:
//
//	┌──────────────────────────────────────────────────────────────┐
//	│  RELATÓRIO DIÁRIO - PORTARIA - {data}                        │
//	│  ──────────────────────────────────────────────────────────  │
//	│  VISITANTES: Nome | Doc | Entrada | Saída | Placa | Empresa  │
//	│  CONTROLE DE FROTA: Motorista | Veículo | KMs | Status       │
//	│  OBSERVAÇÕES DO DIA + Porteiro responsável                   │
//	└──────────────────────────────────────────────────────────────┘
package pdf

import (
	"fmt"
	"strings"

	maroto "github.com/johnfercher/maroto/v2"
	"github.com/johnfercher/maroto/v2/pkg/components/col"
	"github.com/johnfercher/maroto/v2/pkg/components/line"
	"github.com/johnfercher/maroto/v2/pkg/components/row"
	"github.com/johnfercher/maroto/v2/pkg/components/text"
	"github.com/johnfercher/maroto/v2/pkg/config"
	"github.com/johnfercher/maroto/v2/pkg/consts/fontstyle"
	"github.com/johnfercher/maroto/v2/pkg/consts/orientation"
	"github.com/johnfercher/maroto/v2/pkg/consts/pagesize"
	"github.com/johnfercher/maroto/v2/pkg/core"
	"github.com/johnfercher/maroto/v2/pkg/props"
	"github.com/shopspring/decimal"

	"github.com/portaria-app/gatekeeper-api/internal/application/dto"
	"github.com/portaria-app/gatekeeper-api/internal/application/reports"
	"github.com/portaria-app/gatekeeper-api/internal/domain/entity"
)

var _ reports.Renderer = (*ReportRenderer)(nil)

// ── Paleta de cores ───────────────────────────────────────────────────────────

var (
	colorHeader = &props.Color{Red: 30, Green: 41, Blue: 59} // #1E293B
	colorGray   = &props.Color{Red: 100, Green: 100, Blue: 100}
)

// ReportRenderer implementa reports.Renderer usando Maroto v2.
type ReportRenderer struct{}

// NewReportRenderer constrói o renderer.
func NewReportRenderer() *ReportRenderer { return &ReportRenderer{} }

// Render gera o PDF e devolve seus bytes.
func (r *ReportRenderer) Render(report *dto.DailyReportResponse) ([]byte, error) {
	cfg := config.NewBuilder().
		WithPageSize(pagesize.A4).
		WithOrientation(orientation.Horizontal).
		WithLeftMargin(10).WithRightMargin(10).
		WithTopMargin(10).WithBottomMargin(10).
		WithDefaultFont(&props.Font{Family: "helvetica", Size: 8}).
		WithTitle("Relatório Diário - Portaria", true).
		Build()

	m := maroto.New(cfg)

	m.AddRows(titleRow(report.Date))
	m.AddRows(line.NewRow(2, props.Line{Color: colorHeader, Thickness: 0.5}))

	m.AddRows(sectionRow("VISITANTES"))
	m.AddRows(visitorHeaderRow())
	for _, rr := range visitorRows(report.Visitors) {
		m.AddRows(rr)
	}
	m.AddRows(row.New(4))

	m.AddRows(sectionRow("CONTROLE DE FROTA"))
	m.AddRows(fleetHeaderRow())
	for _, rr := range fleetRows(report.Fleet) {
		m.AddRows(rr)
	}
	m.AddRows(row.New(4))

	for _, rr := range observationRows(report) {
		m.AddRows(rr)
	}

	doc, err := m.Generate()
	if err != nil {
		return nil, fmt.Errorf("pdf: gerar documento: %w", err)
	}
	return doc.GetBytes(), nil
}

// ── Seções ────────────────────────────────────────────────────────────────────

func titleRow(date string) core.Row {
	return row.New(10).Add(
		col.New(12).Add(
			text.New("RELATÓRIO DIÁRIO - PORTARIA - "+date, props.Text{
				Style: fontstyle.Bold, Size: 14, Color: colorHeader, Top: 1,
			}),
		),
	)
}

func sectionRow(label string) core.Row {
	return row.New(8).Add(
		col.New(12).Add(
			text.New(label, props.Text{
				Style: fontstyle.Bold, Size: 11, Color: colorHeader, Top: 2,
			}),
		),
	)
}

// header constrói uma célula de cabeçalho de tabela.
func header(label string, size int) core.Col {
	return col.New(size).Add(text.New(label, props.Text{
		Style: fontstyle.Bold, Size: 8, Color: colorHeader, Top: 1,
	}))
}

// cell constrói uma célula de dado.
func cell(value string, size int) core.Col {
	return col.New(size).Add(text.New(value, props.Text{Size: 8, Top: 1}))
}

func visitorHeaderRow() core.Row {
	return row.New(6).Add(
		header("Nome", 2), header("Documento", 2), header("Entrada", 2),
		header("Saída", 2), header("Placa", 1), header("Empresa", 2), header("Obs.", 1),
	)
}

func visitorRows(visitors []dto.VisitorResponse) []core.Row {
	if len(visitors) == 0 {
		return []core.Row{emptyRow("Nenhum visitante registrado")}
	}
	rows := make([]core.Row, 0, len(visitors))
	for _, v := range visitors {
		obs := v.Observation
		if len(obs) > 30 {
			obs = obs[:30]
		}
		rows = append(rows, row.New(5).Add(
			cell(v.Name, 2), cell(v.Document, 2), cell(fmtTimestamp(v.EntryTime), 2),
			cell(exitLabel(v.ExitTime), 2), cell(v.VehiclePlate, 1), cell(v.Company, 2), cell(obs, 1),
		))
	}
	return rows
}

func fleetHeaderRow() core.Row {
	return row.New(6).Add(
		header("Motorista", 3), header("Veículo", 2), header("KM Saída", 2),
		header("KM Entrada", 2), header("Distância (KM)", 2), header("Status", 1),
	)
}

func fleetRows(fleet []dto.TripResponse) []core.Row {
	if len(fleet) == 0 {
		return []core.Row{emptyRow("Nenhum registro")}
	}
	rows := make([]core.Row, 0, len(fleet))
	for _, t := range fleet {
		rows = append(rows, row.New(5).Add(
			cell(t.DriverName, 3), cell(t.Vehicle, 2), cell(t.DepartureKM.String(), 2),
			cell(kmLabel(t.ArrivalKM), 2), cell(kmLabel(t.Distance), 2),
			cell(tripStatusLabel(t.Status), 1),
		))
	}
	return rows
}

func emptyRow(label string) core.Row {
	return row.New(5).Add(
		col.New(12).Add(text.New(label, props.Text{Size: 8, Color: colorGray, Top: 1})),
	)
}

func observationRows(report *dto.DailyReportResponse) []core.Row {
	obs := report.Observation
	if obs == "" {
		obs = "Nenhuma observação"
	}
	porter := report.PorterName
	if porter == "" {
		porter = "—"
	}
	return []core.Row{
		sectionRow("OBSERVAÇÕES DO DIA"),
		row.New(8).Add(col.New(12).Add(text.New(obs, props.Text{Size: 9, Top: 1}))),
		row.New(6).Add(
			col.New(3).Add(text.New("Porteiro responsável:", props.Text{
				Style: fontstyle.Bold, Size: 9, Top: 2,
			})),
			col.New(9).Add(text.New(porter, props.Text{Size: 9, Top: 2})),
		),
	}
}

// ── helpers ───────────────────────────────────────────────────────────────────

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

func kmLabel(km *decimal.Decimal) string {
	if km == nil {
		return "—"
	}
	return km.String()
}
