package booking

import (
	"context"
	"errors"
	"sync"
	"time"

	"github.com/navalhaapp/barber-booking/internal/dateutil"
	domain "github.com/navalhaapp/barber-booking/internal/domain/schedule"
	"github.com/navalhaapp/barber-booking/internal/httperr"
	"github.com/navalhaapp/barber-booking/internal/models"
)

// fakeRepo é um repositório em memória para os testes dos casos de uso.
// Os métodos públicos serializam no mutex; Transact segura o mutex pelo
// fn inteiro e entrega uma visão sem lock, espelhando a serialização que
// o Postgres dá via transação + FOR UPDATE.
type fakeRepo struct {
	mu sync.Mutex

	users    map[uint]*models.User
	services map[uint]*models.Service
	rules    map[time.Time]*models.AvailabilityRule

	appointments map[uint]*models.Appointment
	transactions []*models.Transaction

	nextAppointmentID uint
	nextTransactionID uint
}

func newFakeRepo() *fakeRepo {
	return &fakeRepo{
		users:        map[uint]*models.User{},
		services:     map[uint]*models.Service{},
		rules:        map[time.Time]*models.AvailabilityRule{},
		appointments: map[uint]*models.Appointment{},
	}
}

// fakeRepoTx é a visão dentro de Transact: mesmos dados, sem re-lock.
type fakeRepoTx struct{ f *fakeRepo }

var _ domain.Repository = (*fakeRepo)(nil)
var _ domain.Repository = (*fakeRepoTx)(nil)

// -------- impl sem lock --------

func (f *fakeRepo) getUser(id uint) (*models.User, error) {
	u, ok := f.users[id]
	if !ok {
		return nil, errors.New("record not found")
	}
	return u, nil
}

func (f *fakeRepo) getService(id uint) (*models.Service, error) {
	s, ok := f.services[id]
	if !ok {
		return nil, errors.New("record not found")
	}
	return s, nil
}

func (f *fakeRepo) getAvailabilityRule(date time.Time) (*models.AvailabilityRule, error) {
	return f.rules[dateutil.Midnight(date)], nil
}

func (f *fakeRepo) listAvailabilityRules(from, to time.Time) ([]models.AvailabilityRule, error) {
	var out []models.AvailabilityRule
	for _, r := range f.rules {
		if !r.Date.Before(from) && r.Date.Before(to) {
			out = append(out, *r)
		}
	}
	return out, nil
}

func (f *fakeRepo) upsertAvailabilityRule(rule *models.AvailabilityRule) (*models.AvailabilityRule, error) {
	cp := *rule
	f.rules[dateutil.Midnight(rule.Date)] = &cp
	return &cp, nil
}

func (f *fakeRepo) listBookedIntervals(from, to time.Time) ([]domain.Interval, error) {
	var out []domain.Interval
	for _, ap := range f.appointments {
		if !domain.Status(ap.Status).Active() {
			continue
		}
		if !ap.StartTime.Before(from) && ap.StartTime.Before(to) {
			out = append(out, domain.Interval{Start: ap.StartTime, End: ap.EndTime})
		}
	}
	return out, nil
}

func (f *fakeRepo) createAppointmentIfFree(ap *models.Appointment) error {
	for _, other := range f.appointments {
		if !domain.Status(other.Status).Active() {
			continue
		}
		if domain.Overlaps(ap.StartTime, ap.EndTime, other.StartTime, other.EndTime) {
			return httperr.ErrBusiness("slot_taken")
		}
	}

	f.nextAppointmentID++
	ap.ID = f.nextAppointmentID

	cp := *ap
	f.appointments[ap.ID] = &cp
	return nil
}

func (f *fakeRepo) hasActiveOverlap(start, end time.Time, excludeID uint) (bool, error) {
	for _, other := range f.appointments {
		if other.ID == excludeID || !domain.Status(other.Status).Active() {
			continue
		}
		if domain.Overlaps(start, end, other.StartTime, other.EndTime) {
			return true, nil
		}
	}
	return false, nil
}

func (f *fakeRepo) getAppointment(id uint) (*models.Appointment, error) {
	ap, ok := f.appointments[id]
	if !ok {
		return nil, errors.New("record not found")
	}
	cp := *ap
	return &cp, nil
}

func (f *fakeRepo) saveAppointment(ap *models.Appointment) error {
	if _, ok := f.appointments[ap.ID]; !ok {
		return errors.New("record not found")
	}
	cp := *ap
	f.appointments[ap.ID] = &cp
	return nil
}

func (f *fakeRepo) listAppointmentsForClient(clientID uint) ([]models.Appointment, error) {
	var out []models.Appointment
	for _, ap := range f.appointments {
		if ap.ClientID == clientID {
			out = append(out, *ap)
		}
	}
	return out, nil
}

func (f *fakeRepo) listAppointments() ([]models.Appointment, error) {
	var out []models.Appointment
	for _, ap := range f.appointments {
		out = append(out, *ap)
	}
	return out, nil
}

func (f *fakeRepo) createTransaction(tr *models.Transaction) error {
	f.nextTransactionID++
	tr.ID = f.nextTransactionID

	cp := *tr
	f.transactions = append(f.transactions, &cp)
	return nil
}

// -------- Repository com lock --------

func (f *fakeRepo) GetUser(_ context.Context, id uint) (*models.User, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.getUser(id)
}

func (f *fakeRepo) GetService(_ context.Context, id uint) (*models.Service, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.getService(id)
}

func (f *fakeRepo) GetAvailabilityRule(_ context.Context, date time.Time) (*models.AvailabilityRule, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.getAvailabilityRule(date)
}

func (f *fakeRepo) ListAvailabilityRules(_ context.Context, from, to time.Time) ([]models.AvailabilityRule, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.listAvailabilityRules(from, to)
}

func (f *fakeRepo) UpsertAvailabilityRule(_ context.Context, rule *models.AvailabilityRule) (*models.AvailabilityRule, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.upsertAvailabilityRule(rule)
}

func (f *fakeRepo) ListBookedIntervals(_ context.Context, from, to time.Time) ([]domain.Interval, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.listBookedIntervals(from, to)
}

func (f *fakeRepo) CreateAppointmentIfFree(_ context.Context, ap *models.Appointment) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.createAppointmentIfFree(ap)
}

func (f *fakeRepo) HasActiveOverlap(_ context.Context, start, end time.Time, excludeID uint) (bool, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.hasActiveOverlap(start, end, excludeID)
}

func (f *fakeRepo) GetAppointment(_ context.Context, id uint) (*models.Appointment, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.getAppointment(id)
}

func (f *fakeRepo) LockAppointment(_ context.Context, id uint) (*models.Appointment, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.getAppointment(id)
}

func (f *fakeRepo) SaveAppointment(_ context.Context, ap *models.Appointment) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.saveAppointment(ap)
}

func (f *fakeRepo) ListAppointmentsForClient(_ context.Context, clientID uint) ([]models.Appointment, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.listAppointmentsForClient(clientID)
}

func (f *fakeRepo) ListAppointments(_ context.Context) ([]models.Appointment, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.listAppointments()
}

func (f *fakeRepo) CreateTransaction(_ context.Context, tr *models.Transaction) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.createTransaction(tr)
}

func (f *fakeRepo) Transact(_ context.Context, fn func(domain.Repository) error) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	return fn(&fakeRepoTx{f: f})
}

// -------- visão transacional --------

func (t *fakeRepoTx) GetUser(_ context.Context, id uint) (*models.User, error) {
	return t.f.getUser(id)
}

func (t *fakeRepoTx) GetService(_ context.Context, id uint) (*models.Service, error) {
	return t.f.getService(id)
}

func (t *fakeRepoTx) GetAvailabilityRule(_ context.Context, date time.Time) (*models.AvailabilityRule, error) {
	return t.f.getAvailabilityRule(date)
}

func (t *fakeRepoTx) ListAvailabilityRules(_ context.Context, from, to time.Time) ([]models.AvailabilityRule, error) {
	return t.f.listAvailabilityRules(from, to)
}

func (t *fakeRepoTx) UpsertAvailabilityRule(_ context.Context, rule *models.AvailabilityRule) (*models.AvailabilityRule, error) {
	return t.f.upsertAvailabilityRule(rule)
}

func (t *fakeRepoTx) ListBookedIntervals(_ context.Context, from, to time.Time) ([]domain.Interval, error) {
	return t.f.listBookedIntervals(from, to)
}

func (t *fakeRepoTx) CreateAppointmentIfFree(_ context.Context, ap *models.Appointment) error {
	return t.f.createAppointmentIfFree(ap)
}

func (t *fakeRepoTx) HasActiveOverlap(_ context.Context, start, end time.Time, excludeID uint) (bool, error) {
	return t.f.hasActiveOverlap(start, end, excludeID)
}

func (t *fakeRepoTx) GetAppointment(_ context.Context, id uint) (*models.Appointment, error) {
	return t.f.getAppointment(id)
}

func (t *fakeRepoTx) LockAppointment(_ context.Context, id uint) (*models.Appointment, error) {
	return t.f.getAppointment(id)
}

func (t *fakeRepoTx) SaveAppointment(_ context.Context, ap *models.Appointment) error {
	return t.f.saveAppointment(ap)
}

func (t *fakeRepoTx) ListAppointmentsForClient(_ context.Context, clientID uint) ([]models.Appointment, error) {
	return t.f.listAppointmentsForClient(clientID)
}

func (t *fakeRepoTx) ListAppointments(_ context.Context) ([]models.Appointment, error) {
	return t.f.listAppointments()
}

func (t *fakeRepoTx) CreateTransaction(_ context.Context, tr *models.Transaction) error {
	return t.f.createTransaction(tr)
}

func (t *fakeRepoTx) Transact(_ context.Context, fn func(domain.Repository) error) error {
	return fn(t)
}

// -------- notifier --------

type fakeNotifier struct {
	mu         sync.Mutex
	adminMsgs  []string
	userMsgs   []string
	userTarget []uint
}

func (n *fakeNotifier) NotifyAdmins(message string, _ any) {
	n.mu.Lock()
	defer n.mu.Unlock()
	n.adminMsgs = append(n.adminMsgs, message)
}

func (n *fakeNotifier) NotifyUser(userID uint, message string, _ any) {
	n.mu.Lock()
	defer n.mu.Unlock()
	n.userMsgs = append(n.userMsgs, message)
	n.userTarget = append(n.userTarget, userID)
}
