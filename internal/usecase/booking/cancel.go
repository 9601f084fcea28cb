package booking

import (
	"context"
	"time"

	domain "github.com/navalhaapp/barber-booking/internal/domain/schedule"
	"github.com/navalhaapp/barber-booking/internal/httperr"
	"github.com/navalhaapp/barber-booking/internal/models"
)

type CancelByClient struct {
	repo     domain.Repository
	notifier Notifier
}

func NewCancelByClient(
	repo domain.Repository,
	notifier Notifier,
) *CancelByClient {
	return &CancelByClient{
		repo:     repo,
		notifier: notifier,
	}
}

// Execute cancela um agendamento a pedido do próprio cliente. Só o dono
// pode cancelar, e apenas enquanto pendente ou confirmado.
func (uc *CancelByClient) Execute(
	ctx context.Context,
	appointmentID uint,
	clientID uint,
) (*models.Appointment, error) {

	var updated *models.Appointment

	err := uc.repo.Transact(ctx, func(r domain.Repository) error {

		ap, err := r.LockAppointment(ctx, appointmentID)
		if err != nil {
			return httperr.ErrBusiness("appointment_not_found")
		}

		if ap.ClientID != clientID {
			return httperr.ErrBusiness("permission_denied")
		}

		if err := domain.CanCancelByClient(domain.Status(ap.Status)); err != nil {
			return err
		}

		now := time.Now().UTC()
		ap.Status = string(domain.StatusCancelled)
		ap.CancelledAt = &now

		if err := r.SaveAppointment(ctx, ap); err != nil {
			return err
		}

		updated = ap
		return nil
	})
	if err != nil {
		return nil, err
	}

	uc.notifier.NotifyAdmins("Agendamento cancelado pelo cliente.", map[string]any{
		"appointment_id": updated.ID,
		"client_id":      clientID,
	})

	return updated, nil
}
