package dto

import "github.com/portaria-app/gatekeeper-api/internal/domain/entity"

// Mapeadores entidade -> DTO, compartilhados pelos use cases e pelo
// agregador de relatórios.

// NewUserResponse converte um User (sem expor o hash da senha).
func NewUserResponse(u *entity.User) UserResponse {
	return UserResponse{
		ID:        u.ID,
		Username:  u.Username,
		Name:      u.Name,
		Role:      u.Role,
		CreatedAt: u.CreatedAt,
	}
}

// NewVisitorResponse converte um VisitorEntry.
func NewVisitorResponse(v *entity.VisitorEntry) VisitorResponse {
	return VisitorResponse{
		ID:           v.ID,
		Name:         v.Name,
		Document:     v.Document,
		EntryTime:    v.EntryTime,
		ExitTime:     v.ExitTime,
		VehiclePlate: v.VehiclePlate,
		Company:      v.Company,
		Observation:  v.Observation,
		CreatedAt:    v.CreatedAt,
	}
}

// NewVisitorResponses converte uma lista, devolvendo slice vazio (não nil)
// para serializar como [] em JSON.
func NewVisitorResponses(vs []*entity.VisitorEntry) []VisitorResponse {
	out := make([]VisitorResponse, 0, len(vs))
	for _, v := range vs {
		out = append(out, NewVisitorResponse(v))
	}
	return out
}

// NewScheduleResponse converte um ScheduledVisit.
func NewScheduleResponse(s *entity.ScheduledVisit) ScheduleResponse {
	return ScheduleResponse{
		ID:          s.ID,
		VisitorName: s.VisitorName,
		Company:     s.Company,
		VisitDate:   s.VisitDate,
		VisitTime:   s.VisitTime,
		Notes:       s.Notes,
		Status:      s.Status,
		CreatedAt:   s.CreatedAt,
	}
}

// NewScheduleResponses converte uma lista.
func NewScheduleResponses(ss []*entity.ScheduledVisit) []ScheduleResponse {
	out := make([]ScheduleResponse, 0, len(ss))
	for _, s := range ss {
		out = append(out, NewScheduleResponse(s))
	}
	return out
}

// NewTripResponse converte um FleetTrip.
func NewTripResponse(t *entity.FleetTrip) TripResponse {
	return TripResponse{
		ID:          t.ID,
		DriverName:  t.DriverName,
		Vehicle:     t.Vehicle,
		DepartureKM: t.DepartureKM,
		ArrivalKM:   t.ArrivalKM,
		Distance:    t.Distance,
		Status:      t.Status,
		CreatedAt:   t.CreatedAt,
	}
}

// NewTripResponses converte uma lista.
func NewTripResponses(ts []*entity.FleetTrip) []TripResponse {
	out := make([]TripResponse, 0, len(ts))
	for _, t := range ts {
		out = append(out, NewTripResponse(t))
	}
	return out
}
