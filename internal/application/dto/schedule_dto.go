package dto

// CreateScheduleRequest entrada para agendar uma visita.
type CreateScheduleRequest struct {
	VisitorName string `json:"visitor_name" validate:"required,max=200"`
	Company     string `json:"company" validate:"omitempty,max=200"`
	VisitDate   string `json:"visit_date" validate:"required"`
	VisitTime   string `json:"visit_time" validate:"required"`
	Notes       string `json:"notes" validate:"omitempty,max=1000"`
}

// ScheduleResponse saída de um agendamento.
type ScheduleResponse struct {
	ID          string `json:"id"`
	VisitorName string `json:"visitor_name"`
	Company     string `json:"company"`
	VisitDate   string `json:"visit_date"`
	VisitTime   string `json:"visit_time"`
	Notes       string `json:"notes"`
	Status      string `json:"status"`
	CreatedAt   string `json:"created_at"`
}
