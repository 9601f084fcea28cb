package schedule

import (
	"context"
	"time"

	"github.com/navalhaapp/barber-booking/internal/models"
)

type Repository interface {
	// -------- Users / Services --------
	GetUser(
		ctx context.Context,
		id uint,
	) (*models.User, error)

	GetService(
		ctx context.Context,
		id uint,
	) (*models.Service, error)

	// -------- Availability --------

	// GetAvailabilityRule devolve (nil, nil) quando não há override
	// salvo para a data.
	GetAvailabilityRule(
		ctx context.Context,
		date time.Time,
	) (*models.AvailabilityRule, error)

	ListAvailabilityRules(
		ctx context.Context,
		from time.Time,
		to time.Time,
	) ([]models.AvailabilityRule, error)

	UpsertAvailabilityRule(
		ctx context.Context,
		rule *models.AvailabilityRule,
	) (*models.AvailabilityRule, error)

	// -------- Appointments --------

	// ListBookedIntervals devolve os períodos ocupados por agendamentos
	// pendentes/confirmados com início em [from, to), em ordem.
	ListBookedIntervals(
		ctx context.Context,
		from time.Time,
		to time.Time,
	) ([]Interval, error)

	// CreateAppointmentIfFree é o check-and-insert atômico: falha com
	// slot_taken se qualquer agendamento ativo cruzar o período, sem
	// escrita parcial, mesmo sob chamadas concorrentes.
	CreateAppointmentIfFree(
		ctx context.Context,
		ap *models.Appointment,
	) error

	// HasActiveOverlap diz se algum agendamento ativo, exceto excludeID,
	// cruza [start, end). Disputa a mesma serialização por dia do
	// check-and-insert.
	HasActiveOverlap(
		ctx context.Context,
		start time.Time,
		end time.Time,
		excludeID uint,
	) (bool, error)

	GetAppointment(
		ctx context.Context,
		id uint,
	) (*models.Appointment, error)

	// LockAppointment carrega o registro serializado contra escritores
	// concorrentes; dentro de Transact equivale a SELECT ... FOR UPDATE.
	LockAppointment(
		ctx context.Context,
		id uint,
	) (*models.Appointment, error)

	SaveAppointment(
		ctx context.Context,
		ap *models.Appointment,
	) error

	ListAppointmentsForClient(
		ctx context.Context,
		clientID uint,
	) ([]models.Appointment, error)

	ListAppointments(
		ctx context.Context,
	) ([]models.Appointment, error)

	// -------- Ledger --------
	CreateTransaction(
		ctx context.Context,
		tr *models.Transaction,
	) error

	// Transact executa fn com um repositório amarrado a uma única
	// transação; qualquer erro desfaz tudo.
	Transact(
		ctx context.Context,
		fn func(Repository) error,
	) error
}
