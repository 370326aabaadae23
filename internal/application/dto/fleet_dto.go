package dto

import "github.com/shopspring/decimal"

// CreateTripRequest entrada para registrar a saída de um veículo.
type CreateTripRequest struct {
	DriverName  string          `json:"driver_name" validate:"required,max=200"`
	Vehicle     string          `json:"vehicle" validate:"required,max=100"`
	DepartureKM decimal.Decimal `json:"departure_km"`
}

// ReturnTripRequest entrada para registrar o retorno.
// O valor é confiado numericamente; distâncias negativas são aceitas.
type ReturnTripRequest struct {
	ArrivalKM decimal.Decimal `json:"arrival_km"`
}

// TripResponse saída de uma viagem de frota.
type TripResponse struct {
	ID          string           `json:"id"`
	DriverName  string           `json:"driver_name"`
	Vehicle     string           `json:"vehicle"`
	DepartureKM decimal.Decimal  `json:"departure_km"`
	ArrivalKM   *decimal.Decimal `json:"arrival_km"`
	Distance    *decimal.Decimal `json:"distance"`
	Status      string           `json:"status"`
	CreatedAt   string           `json:"created_at"`
}

// ReturnTripResponse saída do retorno com a distância calculada.
type ReturnTripResponse struct {
	Message  string          `json:"message"`
	Distance decimal.Decimal `json:"distance"`
}
