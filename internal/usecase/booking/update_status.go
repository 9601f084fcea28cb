package booking

import (
	"context"
	"fmt"
	"time"

	domain "github.com/navalhaapp/barber-booking/internal/domain/schedule"
	"github.com/navalhaapp/barber-booking/internal/httperr"
	"github.com/navalhaapp/barber-booking/internal/models"
)

type UpdateAppointmentStatus struct {
	repo     domain.Repository
	pricing  *domain.PricingEngine
	notifier Notifier
}

func NewUpdateAppointmentStatus(
	repo domain.Repository,
	pricing *domain.PricingEngine,
	notifier Notifier,
) *UpdateAppointmentStatus {
	return &UpdateAppointmentStatus{
		repo:     repo,
		pricing:  pricing,
		notifier: notifier,
	}
}

// Execute aplica a transição de status do admin. A decisão parte sempre
// do status persistido (linha travada na transação), nunca de uma cópia
// em memória. newStatus igual ao atual é no-op: nada muda, nenhuma
// transação financeira duplicada.
func (uc *UpdateAppointmentStatus) Execute(
	ctx context.Context,
	appointmentID uint,
	newStatus domain.Status,
) (*models.Appointment, error) {

	if !newStatus.Valid() {
		return nil, httperr.ErrBusiness("invalid_status")
	}

	var updated *models.Appointment
	var changed bool

	err := uc.repo.Transact(ctx, func(r domain.Repository) error {

		ap, err := r.LockAppointment(ctx, appointmentID)
		if err != nil {
			return httperr.ErrBusiness("appointment_not_found")
		}

		current := domain.Status(ap.Status)
		if current == newStatus {
			updated = ap
			return nil
		}

		if err := domain.CanTransition(current, newStatus); err != nil {
			return err
		}

		// Reativar (cancelado/concluído -> ativo) volta a ocupar horário,
		// e o slot pode ter sido reocupado desde então.
		if newStatus.Active() && !current.Active() {
			busy, err := r.HasActiveOverlap(ctx, ap.StartTime, ap.EndTime, ap.ID)
			if err != nil {
				return err
			}
			if busy {
				return httperr.ErrBusiness("slot_taken")
			}
		}

		now := time.Now().UTC()
		ap.Status = string(newStatus)

		switch newStatus {
		case domain.StatusCancelled:
			ap.CancelledAt = &now
		case domain.StatusCompleted:
			ap.CompletedAt = &now
		}
		if current == domain.StatusCompleted {
			ap.CompletedAt = nil
		}
		if current == domain.StatusCancelled {
			ap.CancelledAt = nil
		}

		// Efeitos financeiros: entrar em concluído credita o preço final;
		// sair de concluído gera o estorno exato da mesma conta.
		if newStatus == domain.StatusCompleted || current == domain.StatusCompleted {
			svc, err := r.GetService(ctx, ap.ServiceID)
			if err != nil {
				return httperr.ErrBusiness("service_not_found")
			}

			final := uc.finalPrice(svc, ap)

			tr := &models.Transaction{
				Type:          models.TransactionInPerson,
				AppointmentID: &ap.ID,
				ClientID:      &ap.ClientID,
			}

			if newStatus == domain.StatusCompleted {
				tr.Amount = final
				tr.Description = fmt.Sprintf("Serviço %q concluído", svc.Name)
			} else {
				tr.Amount = -final
				tr.Description = fmt.Sprintf("Estorno do serviço %q", svc.Name)
			}

			if err := r.CreateTransaction(ctx, tr); err != nil {
				return err
			}
		}

		if err := r.SaveAppointment(ctx, ap); err != nil {
			return err
		}

		updated = ap
		changed = true
		return nil
	})
	if err != nil {
		return nil, err
	}

	if changed {
		uc.notifier.NotifyUser(updated.ClientID,
			fmt.Sprintf("Seu agendamento agora está %q.", updated.Status),
			map[string]any{"appointment_id": updated.ID, "status": updated.Status},
		)
	}

	return updated, nil
}

// finalPrice recalcula com a data ORIGINAL do agendamento e o desconto
// congelado na criação; crédito e estorno usam exatamente a mesma conta.
func (uc *UpdateAppointmentStatus) finalPrice(svc *models.Service, ap *models.Appointment) float64 {
	return uc.pricing.PriceFor(svc, ap.StartTime) - ap.DiscountAmount
}
