package booking

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/navalhaapp/barber-booking/internal/dateutil"
	domain "github.com/navalhaapp/barber-booking/internal/domain/schedule"
	"github.com/navalhaapp/barber-booking/internal/httperr"
	"github.com/navalhaapp/barber-booking/internal/models"
)

// ======================================================
// INPUT
// ======================================================

type BookInput struct {
	ClientID  uint
	ServiceID uint
	Start     time.Time
	Notes     string
}

// ======================================================
// USE CASE
// ======================================================

type BookAppointment struct {
	repo     domain.Repository
	resolver *domain.Resolver
	pricing  *domain.PricingEngine
	notifier Notifier
}

func NewBookAppointment(
	repo domain.Repository,
	resolver *domain.Resolver,
	pricing *domain.PricingEngine,
	notifier Notifier,
) *BookAppointment {
	return &BookAppointment{
		repo:     repo,
		resolver: resolver,
		pricing:  pricing,
		notifier: notifier,
	}
}

// ======================================================
// EXECUTE
// ======================================================

func (uc *BookAppointment) Execute(
	ctx context.Context,
	in BookInput,
) (*models.Appointment, error) {

	svc, err := uc.repo.GetService(ctx, in.ServiceID)
	if err != nil {
		return nil, httperr.ErrBusiness("service_not_found")
	}

	client, err := uc.repo.GetUser(ctx, in.ClientID)
	if err != nil {
		return nil, httperr.ErrBusiness("client_not_found")
	}

	// endTime é sempre derivado da duração viva do serviço, nunca
	// armazenado de forma independente.
	start := in.Start.UTC()
	end := start.Add(time.Duration(svc.DurationMin) * time.Minute)

	day := dateutil.Midnight(start)
	rule, err := uc.repo.GetAvailabilityRule(ctx, day)
	if err != nil {
		return nil, err
	}

	eff := uc.resolver.Resolve(day, rule)
	if !domain.FitsInside(eff, start, svc.DurationMin) {
		return nil, httperr.ErrBusiness("outside_working_hours")
	}

	detail := uc.pricing.DetailedPriceFor(svc, start, client)

	ap := &models.Appointment{
		Reference:      uuid.NewString(),
		ClientID:       in.ClientID,
		ServiceID:      in.ServiceID,
		StartTime:      start,
		EndTime:        end,
		Status:         string(domain.InitialStatus()),
		DiscountAmount: detail.DiscountAmount,
		DiscountReason: detail.DiscountReason,
		Notes:          in.Notes,
	}

	// check-and-insert atômico: concorrentes pelo mesmo horário nunca
	// passam os dois
	if err := uc.repo.CreateAppointmentIfFree(ctx, ap); err != nil {
		return nil, err
	}

	uc.notifier.NotifyAdmins("Novo agendamento recebido.", map[string]any{
		"appointment_id": ap.ID,
		"reference":      ap.Reference,
		"start_time":     ap.StartTime,
	})

	return ap, nil
}
