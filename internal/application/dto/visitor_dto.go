package dto

// CheckInRequest entrada para registrar uma entrada de visitante.
// EntryTime é opcional; vazio usa o instante atual (UTC).
type CheckInRequest struct {
	Name         string `json:"name" validate:"required,max=200"`
	Document     string `json:"document" validate:"required,max=50"`
	EntryTime    string `json:"entry_time" validate:"omitempty"`
	VehiclePlate string `json:"vehicle_plate" validate:"omitempty,max=20"`
	Company      string `json:"company" validate:"omitempty,max=200"`
	Observation  string `json:"observation" validate:"omitempty,max=1000"`
}

// VisitorResponse saída de um registro de visitante.
type VisitorResponse struct {
	ID           string  `json:"id"`
	Name         string  `json:"name"`
	Document     string  `json:"document"`
	EntryTime    string  `json:"entry_time"`
	ExitTime     *string `json:"exit_time"`
	VehiclePlate string  `json:"vehicle_plate"`
	Company      string  `json:"company"`
	Observation  string  `json:"observation"`
	CreatedAt    string  `json:"created_at"`
}

// CheckOutResponse saída do checkout com o exit_time gravado.
type CheckOutResponse struct {
	Message  string `json:"message"`
	ExitTime string `json:"exit_time"`
}
