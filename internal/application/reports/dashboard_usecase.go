package reports

import (
	"context"
	"fmt"
	"time"

	"github.com/portaria-app/gatekeeper-api/internal/application/dto"
	"github.com/portaria-app/gatekeeper-api/internal/domain/repository"
)

// DashboardUseCase produz os contadores ao vivo da portaria.
//
// Fonte de dados: os três livros, somente leitura. "Hoje" é a data calendário
// UTC no momento da avaliação; as cinco contagens são independentes e podem
// refletir instantes ligeiramente distintos.
type DashboardUseCase struct {
	visitorRepo  repository.VisitorRepository
	scheduleRepo repository.ScheduleRepository
	fleetRepo    repository.FleetRepository
}

// NewDashboardUseCase constrói o caso de uso.
func NewDashboardUseCase(
	visitorRepo repository.VisitorRepository,
	scheduleRepo repository.ScheduleRepository,
	fleetRepo repository.FleetRepository,
) *DashboardUseCase {
	return &DashboardUseCase{
		visitorRepo:  visitorRepo,
		scheduleRepo: scheduleRepo,
		fleetRepo:    fleetRepo,
	}
}

// Stats executa as cinco contagens em paralelo, uma goroutine por consulta.
func (uc *DashboardUseCase) Stats(ctx context.Context) (*dto.DashboardStatsResponse, error) {
	today := time.Now().UTC().Format("2006-01-02")

	type countResult struct {
		n   int64
		err error
	}
	run := func(f func() (int64, error)) chan countResult {
		ch := make(chan countResult, 1)
		go func() {
			n, err := f()
			ch <- countResult{n, err}
		}()
		return ch
	}

	activeVisitorsCh := run(func() (int64, error) { return uc.visitorRepo.CountActive(ctx) })
	todayVisitorsCh := run(func() (int64, error) { return uc.visitorRepo.CountByEntryDate(ctx, today) })
	todaySchedulesCh := run(func() (int64, error) { return uc.scheduleRepo.CountPendingByDate(ctx, today) })
	activeTripsCh := run(func() (int64, error) { return uc.fleetRepo.CountActive(ctx) })
	todayTripsCh := run(func() (int64, error) { return uc.fleetRepo.CountByCreatedDate(ctx, today) })

	activeVisitors := <-activeVisitorsCh
	todayVisitors := <-todayVisitorsCh
	todaySchedules := <-todaySchedulesCh
	activeTrips := <-activeTripsCh
	todayTrips := <-todayTripsCh

	for _, r := range []countResult{activeVisitors, todayVisitors, todaySchedules, activeTrips, todayTrips} {
		if r.err != nil {
			return nil, fmt.Errorf("dashboard: %w", r.err)
		}
	}

	return &dto.DashboardStatsResponse{
		ActiveVisitors: activeVisitors.n,
		TodayVisitors:  todayVisitors.n,
		TodaySchedules: todaySchedules.n,
		ActiveTrips:    activeTrips.n,
		TodayTrips:     todayTrips.n,
	}, nil
}
