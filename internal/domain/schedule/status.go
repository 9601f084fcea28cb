package schedule

import "github.com/navalhaapp/barber-booking/internal/httperr"

// ===============================
// Appointment Status
// ===============================

type Status string

const (
	StatusPending   Status = "pending"
	StatusConfirmed Status = "confirmed"
	StatusCancelled Status = "cancelled"
	StatusCompleted Status = "completed"
)

func (s Status) Valid() bool {
	switch s {
	case StatusPending, StatusConfirmed, StatusCancelled, StatusCompleted:
		return true
	}
	return false
}

// Active indica se o agendamento ocupa horário na agenda.
func (s Status) Active() bool {
	return s == StatusPending || s == StatusConfirmed
}

// ===============================
// Transições
// ===============================

var allowedTransitions = map[Status][]Status{
	StatusPending:   {StatusConfirmed, StatusCancelled, StatusCompleted},
	StatusConfirmed: {StatusCancelled, StatusCompleted},
	StatusCancelled: {StatusPending, StatusConfirmed, StatusCompleted},
	// concluído pode voltar para qualquer estado (correções; gera estorno)
	StatusCompleted: {StatusPending, StatusConfirmed, StatusCancelled},
}

// CanTransition valida a mudança de status feita pelo admin.
// Transição para o mesmo status é tratada como no-op pelo chamador.
func CanTransition(from, to Status) error {
	if !to.Valid() {
		return httperr.ErrBusiness("invalid_status")
	}
	for _, s := range allowedTransitions[from] {
		if s == to {
			return nil
		}
	}
	return httperr.ErrBusiness("invalid_state")
}

// CanCancelByClient define se o próprio cliente pode cancelar.
func CanCancelByClient(current Status) error {
	if !current.Active() {
		return httperr.ErrBusiness("invalid_state")
	}
	return nil
}

func InitialStatus() Status {
	return StatusPending
}
