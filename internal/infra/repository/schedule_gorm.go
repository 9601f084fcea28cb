package repository

import (
	"context"
	"errors"
	"time"

	"github.com/jackc/pgx/v5/pgconn"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/navalhaapp/barber-booking/internal/dateutil"
	domain "github.com/navalhaapp/barber-booking/internal/domain/schedule"
	"github.com/navalhaapp/barber-booking/internal/httperr"
	"github.com/navalhaapp/barber-booking/internal/models"
)

type ScheduleGormRepository struct {
	db *gorm.DB
}

func NewScheduleGormRepository(db *gorm.DB) *ScheduleGormRepository {
	return &ScheduleGormRepository{db: db}
}

// IsUniqueViolation detecta violação de índice único no Postgres (23505).
func IsUniqueViolation(err error) bool {
	var pgErr *pgconn.PgError
	return errors.As(err, &pgErr) && pgErr.Code == "23505"
}

// --------------------------------------------------
// Users / Services
// --------------------------------------------------

func (r *ScheduleGormRepository) GetUser(
	ctx context.Context,
	id uint,
) (*models.User, error) {

	var user models.User
	if err := r.db.WithContext(ctx).First(&user, id).Error; err != nil {
		return nil, err
	}
	return &user, nil
}

func (r *ScheduleGormRepository) GetService(
	ctx context.Context,
	id uint,
) (*models.Service, error) {

	var svc models.Service
	if err := r.db.WithContext(ctx).
		Preload("PriceRules").
		First(&svc, id).Error; err != nil {
		return nil, err
	}
	return &svc, nil
}

// --------------------------------------------------
// Availability
// --------------------------------------------------

func (r *ScheduleGormRepository) GetAvailabilityRule(
	ctx context.Context,
	date time.Time,
) (*models.AvailabilityRule, error) {

	var rule models.AvailabilityRule
	err := r.db.WithContext(ctx).
		Preload("Intervals", func(db *gorm.DB) *gorm.DB {
			return db.Order("position ASC")
		}).
		Where("date = ?", dateutil.Midnight(date)).
		First(&rule).Error

	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}

	return &rule, nil
}

func (r *ScheduleGormRepository) ListAvailabilityRules(
	ctx context.Context,
	from time.Time,
	to time.Time,
) ([]models.AvailabilityRule, error) {

	var rules []models.AvailabilityRule
	if err := r.db.WithContext(ctx).
		Preload("Intervals", func(db *gorm.DB) *gorm.DB {
			return db.Order("position ASC")
		}).
		Where("date >= ? AND date < ?", from, to).
		Order("date ASC").
		Find(&rules).Error; err != nil {
		return nil, err
	}

	return rules, nil
}

func (r *ScheduleGormRepository) UpsertAvailabilityRule(
	ctx context.Context,
	rule *models.AvailabilityRule,
) (*models.AvailabilityRule, error) {

	rule.Date = dateutil.Midnight(rule.Date)

	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {

		var existing models.AvailabilityRule
		err := tx.Where("date = ?", rule.Date).First(&existing).Error

		switch {
		case err == nil:
			if err := tx.Where("availability_rule_id = ?", existing.ID).
				Delete(&models.AvailabilityInterval{}).Error; err != nil {
				return err
			}

			existing.Status = rule.Status
			if err := tx.Save(&existing).Error; err != nil {
				return err
			}

			for i := range rule.Intervals {
				rule.Intervals[i].ID = 0
				rule.Intervals[i].AvailabilityRuleID = existing.ID
				rule.Intervals[i].Position = i
			}
			if len(rule.Intervals) > 0 {
				if err := tx.Create(&rule.Intervals).Error; err != nil {
					return err
				}
			}

			rule.ID = existing.ID
			return nil

		case errors.Is(err, gorm.ErrRecordNotFound):
			for i := range rule.Intervals {
				rule.Intervals[i].Position = i
			}
			return tx.Create(rule).Error

		default:
			return err
		}
	})
	if err != nil {
		return nil, err
	}

	return r.GetAvailabilityRule(ctx, rule.Date)
}

// --------------------------------------------------
// Appointments
// --------------------------------------------------

func (r *ScheduleGormRepository) ListBookedIntervals(
	ctx context.Context,
	from time.Time,
	to time.Time,
) ([]domain.Interval, error) {

	var apps []models.Appointment
	if err := r.db.WithContext(ctx).
		Select("start_time", "end_time").
		Where(
			"status IN ? AND start_time >= ? AND start_time < ?",
			[]string{string(domain.StatusPending), string(domain.StatusConfirmed)},
			from, to,
		).
		Order("start_time ASC").
		Find(&apps).Error; err != nil {
		return nil, err
	}

	out := make([]domain.Interval, 0, len(apps))
	for _, ap := range apps {
		out = append(out, domain.Interval{Start: ap.StartTime, End: ap.EndTime})
	}

	return out, nil
}

// CreateAppointmentIfFree serializa o check-and-insert por dia usando um
// advisory lock transacional do Postgres: dois bookings concorrentes para
// a mesma data nunca enxergam "sem conflito" ao mesmo tempo.
func (r *ScheduleGormRepository) CreateAppointmentIfFree(
	ctx context.Context,
	ap *models.Appointment,
) error {

	dayKey := dateutil.Midnight(ap.StartTime).Unix()

	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {

		if err := tx.Exec("SELECT pg_advisory_xact_lock(?)", dayKey).Error; err != nil {
			return err
		}

		var count int64
		if err := tx.Model(&models.Appointment{}).
			Where(
				"status IN ? AND start_time < ? AND end_time > ?",
				[]string{string(domain.StatusPending), string(domain.StatusConfirmed)},
				ap.EndTime,
				ap.StartTime,
			).
			Count(&count).Error; err != nil {
			return err
		}

		if count > 0 {
			return httperr.ErrBusiness("slot_taken")
		}

		return tx.Create(ap).Error
	})
}

// HasActiveOverlap disputa o mesmo advisory lock por dia do booking:
// reativação e booking concorrentes nunca contam conflitos ao mesmo tempo.
func (r *ScheduleGormRepository) HasActiveOverlap(
	ctx context.Context,
	start time.Time,
	end time.Time,
	excludeID uint,
) (bool, error) {

	dayKey := dateutil.Midnight(start).Unix()

	if err := r.db.WithContext(ctx).
		Exec("SELECT pg_advisory_xact_lock(?)", dayKey).Error; err != nil {
		return false, err
	}

	var count int64
	if err := r.db.WithContext(ctx).Model(&models.Appointment{}).
		Where(
			"id <> ? AND status IN ? AND start_time < ? AND end_time > ?",
			excludeID,
			[]string{string(domain.StatusPending), string(domain.StatusConfirmed)},
			end,
			start,
		).
		Count(&count).Error; err != nil {
		return false, err
	}

	return count > 0, nil
}

func (r *ScheduleGormRepository) GetAppointment(
	ctx context.Context,
	id uint,
) (*models.Appointment, error) {

	var ap models.Appointment
	if err := r.db.WithContext(ctx).
		Preload("Client").
		Preload("Service").
		First(&ap, id).Error; err != nil {
		return nil, err
	}

	return &ap, nil
}

func (r *ScheduleGormRepository) LockAppointment(
	ctx context.Context,
	id uint,
) (*models.Appointment, error) {

	var ap models.Appointment
	if err := r.db.WithContext(ctx).
		Clauses(clause.Locking{Strength: "UPDATE"}).
		First(&ap, id).Error; err != nil {
		return nil, err
	}

	return &ap, nil
}

func (r *ScheduleGormRepository) SaveAppointment(
	ctx context.Context,
	ap *models.Appointment,
) error {
	return r.db.WithContext(ctx).Save(ap).Error
}

func (r *ScheduleGormRepository) ListAppointmentsForClient(
	ctx context.Context,
	clientID uint,
) ([]models.Appointment, error) {

	var apps []models.Appointment
	if err := r.db.WithContext(ctx).
		Preload("Service").
		Where("client_id = ?", clientID).
		Order("start_time DESC").
		Find(&apps).Error; err != nil {
		return nil, err
	}

	return apps, nil
}

func (r *ScheduleGormRepository) ListAppointments(
	ctx context.Context,
) ([]models.Appointment, error) {

	var apps []models.Appointment
	if err := r.db.WithContext(ctx).
		Preload("Client").
		Preload("Service").
		Order("start_time DESC").
		Find(&apps).Error; err != nil {
		return nil, err
	}

	return apps, nil
}

// --------------------------------------------------
// Ledger
// --------------------------------------------------

func (r *ScheduleGormRepository) CreateTransaction(
	ctx context.Context,
	tr *models.Transaction,
) error {
	return r.db.WithContext(ctx).Create(tr).Error
}

// --------------------------------------------------
// Transact
// --------------------------------------------------

func (r *ScheduleGormRepository) Transact(
	ctx context.Context,
	fn func(domain.Repository) error,
) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		return fn(&ScheduleGormRepository{db: tx})
	})
}

// Compile-time check
var _ domain.Repository = (*ScheduleGormRepository)(nil)
