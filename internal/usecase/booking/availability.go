package booking

import (
	"context"
	"time"

	"github.com/navalhaapp/barber-booking/internal/dateutil"
	domain "github.com/navalhaapp/barber-booking/internal/domain/schedule"
	"github.com/navalhaapp/barber-booking/internal/httperr"
	"github.com/navalhaapp/barber-booking/internal/models"
	"github.com/navalhaapp/barber-booking/internal/validators"
)

// ======================================================
// GET (dia e mês)
// ======================================================

type GetAvailability struct {
	repo     domain.Repository
	resolver *domain.Resolver
}

func NewGetAvailability(
	repo domain.Repository,
	resolver *domain.Resolver,
) *GetAvailability {
	return &GetAvailability{
		repo:     repo,
		resolver: resolver,
	}
}

func (uc *GetAvailability) ForDate(
	ctx context.Context,
	date time.Time,
) (domain.EffectiveAvailability, error) {

	day := dateutil.Midnight(date)

	rule, err := uc.repo.GetAvailabilityRule(ctx, day)
	if err != nil {
		return domain.EffectiveAvailability{}, err
	}

	return uc.resolver.Resolve(day, rule), nil
}

// ForMonth devolve exatamente uma entrada por dia do mês, em ordem.
func (uc *GetAvailability) ForMonth(
	ctx context.Context,
	year int,
	month time.Month,
) ([]domain.EffectiveAvailability, error) {

	first := time.Date(year, month, 1, 0, 0, 0, 0, time.UTC)
	next := first.AddDate(0, 1, 0)

	rules, err := uc.repo.ListAvailabilityRules(ctx, first, next)
	if err != nil {
		return nil, err
	}

	byDate := make(map[time.Time]*models.AvailabilityRule, len(rules))
	for i := range rules {
		byDate[dateutil.Midnight(rules[i].Date)] = &rules[i]
	}

	return uc.resolver.ResolveMonth(year, month, byDate), nil
}

// ======================================================
// SET (upsert do admin)
// ======================================================

type SetAvailabilityInput struct {
	Date      time.Time
	Status    string
	Intervals []domain.WorkInterval
}

type SetAvailability struct {
	repo domain.Repository
}

func NewSetAvailability(repo domain.Repository) *SetAvailability {
	return &SetAvailability{repo: repo}
}

func (uc *SetAvailability) Execute(
	ctx context.Context,
	in SetAvailabilityInput,
) (*models.AvailabilityRule, error) {

	if in.Status != models.AvailabilityAvailable && in.Status != models.AvailabilityUnavailable {
		return nil, httperr.ErrBusiness("invalid_status")
	}

	if err := validators.ValidateWorkIntervals(in.Intervals); err != nil {
		return nil, err
	}

	rule := &models.AvailabilityRule{
		Date:   dateutil.Midnight(in.Date),
		Status: in.Status,
	}
	for _, iv := range in.Intervals {
		rule.Intervals = append(rule.Intervals, models.AvailabilityInterval{
			StartTime: iv.Start,
			EndTime:   iv.End,
		})
	}

	return uc.repo.UpsertAvailabilityRule(ctx, rule)
}
