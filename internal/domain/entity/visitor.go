package entity

// VisitorEntry é um registro de presença de visitante. Append-only: criado no
// check-in e mutado uma única vez no checkout (ExitTime preenchido), nunca
// removido.
//
// EntryTime/ExitTime/CreatedAt são strings RFC3339 em UTC. Os filtros por data
// fazem match literal de prefixo "YYYY-MM-DD" sobre essas strings — semântica
// herdada e preservada deliberadamente; ver DESIGN.md.
type VisitorEntry struct {
	ID           string
	Name         string
	Document     string
	EntryTime    string
	ExitTime     *string // nil enquanto o visitante está no local
	VehiclePlate string
	Company      string
	Observation  string
	CreatedAt    string
}

// Active informa se o visitante ainda está no local.
func (v VisitorEntry) Active() bool {
	return v.ExitTime == nil
}
