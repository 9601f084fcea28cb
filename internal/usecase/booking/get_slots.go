package booking

import (
	"context"
	"time"

	"github.com/navalhaapp/barber-booking/internal/dateutil"
	domain "github.com/navalhaapp/barber-booking/internal/domain/schedule"
	"github.com/navalhaapp/barber-booking/internal/httperr"
)

type GetAvailableSlots struct {
	repo            domain.Repository
	resolver        *domain.Resolver
	slotIntervalMin int
}

func NewGetAvailableSlots(
	repo domain.Repository,
	resolver *domain.Resolver,
	slotIntervalMin int,
) *GetAvailableSlots {
	return &GetAvailableSlots{
		repo:            repo,
		resolver:        resolver,
		slotIntervalMin: slotIntervalMin,
	}
}

// Execute devolve os horários de início ("HH:MM") livres para o serviço
// na data. Leitura pura: duas chamadas sem bookings no meio devolvem o
// mesmo resultado.
func (uc *GetAvailableSlots) Execute(
	ctx context.Context,
	date time.Time,
	serviceID uint,
) ([]string, error) {

	svc, err := uc.repo.GetService(ctx, serviceID)
	if err != nil {
		return nil, httperr.ErrBusiness("service_not_found")
	}

	day := dateutil.Midnight(date)

	rule, err := uc.repo.GetAvailabilityRule(ctx, day)
	if err != nil {
		return nil, err
	}

	eff := uc.resolver.Resolve(day, rule)

	candidates := domain.Candidates(eff, svc.DurationMin, uc.slotIntervalMin)
	if len(candidates) == 0 {
		return []string{}, nil
	}

	booked, err := uc.repo.ListBookedIntervals(ctx, day, day.AddDate(0, 0, 1))
	if err != nil {
		return nil, err
	}

	free := domain.FilterFree(candidates, svc.DurationMin, booked)

	out := make([]string, 0, len(free))
	for _, slot := range free {
		out = append(out, dateutil.FormatHM(slot))
	}

	return out, nil
}
