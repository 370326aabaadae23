package entity

import "github.com/shopspring/decimal"

// Status de uma viagem de frota. Transição única in_progress -> returned.
const (
	TripStatusInProgress = "in_progress"
	TripStatusReturned   = "returned"
)

// FleetTrip é uma viagem de veículo da frota. Criada na saída e mutada uma
// única vez no retorno, quando ArrivalKM e Distance são gravados juntos.
//
// Os odômetros usam decimal para que 1050.5 - 1000 seja exatamente 50.5.
// Distance = ArrivalKM - DepartureKM; valores negativos são aceitos tal como
// informados pelo chamador (ver DESIGN.md).
type FleetTrip struct {
	ID          string
	DriverName  string
	Vehicle     string
	DepartureKM decimal.Decimal
	ArrivalKM   *decimal.Decimal // nil enquanto em viagem
	Distance    *decimal.Decimal // nil enquanto em viagem
	Status      string
	CreatedAt   string
}
