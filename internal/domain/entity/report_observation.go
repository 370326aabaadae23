package entity

// ReportObservation é a observação livre do dia, no máximo uma por data.
// Upsert com last-write-wins: cada gravação sobrescreve texto, porteiro e
// UpdatedAt; não há histórico.
type ReportObservation struct {
	Date        string // chave, "YYYY-MM-DD"
	Observation string
	PorterName  string
	UpdatedAt   string
}
