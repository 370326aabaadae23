package reports

import "github.com/portaria-app/gatekeeper-api/internal/application/dto"

// Renderer converte o agregado do relatório diário em um documento binário
// (planilha ou PDF). O agregado é a única entrada; o layout é responsabilidade
// do renderer.
type Renderer interface {
	Render(report *dto.DailyReportResponse) ([]byte, error)
}
