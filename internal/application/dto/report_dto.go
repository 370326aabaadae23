package dto

// DailyReportResponse agregado do relatório diário: as três coleções filtradas
// pela data (cada uma com sua própria semântica de match) mais a observação.
type DailyReportResponse struct {
	Date        string             `json:"date"`
	Visitors    []VisitorResponse  `json:"visitors"`
	Fleet       []TripResponse     `json:"fleet"`
	Schedules   []ScheduleResponse `json:"schedules"`
	Observation string             `json:"observation"`
	PorterName  string             `json:"porter_name"`
}

// SaveObservationRequest entrada para gravar a observação do dia.
type SaveObservationRequest struct {
	Observation string `json:"observation" validate:"required,max=5000"`
	PorterName  string `json:"porter_name" validate:"required,max=200"`
}

// DashboardStatsResponse contadores ao vivo dos três livros.
type DashboardStatsResponse struct {
	ActiveVisitors int64 `json:"active_visitors"`
	TodayVisitors  int64 `json:"today_visitors"`
	TodaySchedules int64 `json:"today_schedules"`
	ActiveTrips    int64 `json:"active_trips"`
	TodayTrips     int64 `json:"today_trips"`
}
