package booking

import (
	"context"

	domain "github.com/navalhaapp/barber-booking/internal/domain/schedule"
	"github.com/navalhaapp/barber-booking/internal/dto"
	"github.com/navalhaapp/barber-booking/internal/models"
)

type ListAppointments struct {
	repo domain.Repository
}

func NewListAppointments(repo domain.Repository) *ListAppointments {
	return &ListAppointments{repo: repo}
}

func (uc *ListAppointments) ForClient(
	ctx context.Context,
	clientID uint,
) ([]dto.AppointmentListDTO, error) {

	apps, err := uc.repo.ListAppointmentsForClient(ctx, clientID)
	if err != nil {
		return nil, err
	}

	return toDTOs(apps), nil
}

func (uc *ListAppointments) All(
	ctx context.Context,
) ([]dto.AppointmentListDTO, error) {

	apps, err := uc.repo.ListAppointments(ctx)
	if err != nil {
		return nil, err
	}

	return toDTOs(apps), nil
}

func toDTOs(apps []models.Appointment) []dto.AppointmentListDTO {
	out := make([]dto.AppointmentListDTO, 0, len(apps))
	for _, ap := range apps {
		out = append(out, dto.AppointmentListDTO{
			ID:             ap.ID,
			Reference:      ap.Reference,
			StartTime:      ap.StartTime,
			EndTime:        ap.EndTime,
			Status:         ap.Status,
			ClientName:     ap.Client.Name,
			ServiceName:    ap.Service.Name,
			DiscountAmount: ap.DiscountAmount,
		})
	}
	return out
}
