package entity

// Status de um agendamento. Transição unidirecional pending -> completed.
const (
	ScheduleStatusPending   = "pending"
	ScheduleStatusCompleted = "completed"
)

// ScheduledVisit é uma visita agendada. Ao contrário dos registros de
// visitantes, pode ser removida explicitamente.
type ScheduledVisit struct {
	ID          string
	VisitorName string
	Company     string
	VisitDate   string // data calendário "YYYY-MM-DD", match exato nos filtros
	VisitTime   string
	Notes       string
	Status      string
	CreatedAt   string
}
