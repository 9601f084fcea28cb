package handlers

import (
	"errors"

	"github.com/gin-gonic/gin"

	"github.com/navalhaapp/barber-booking/internal/httperr"
)

var businessMessages = map[string]string{
	"slot_taken":            "Este horário já está ocupado. Por favor, escolha outro.",
	"service_not_found":     "Serviço não encontrado.",
	"client_not_found":      "Cliente não encontrado.",
	"appointment_not_found": "Agendamento não encontrado.",
	"permission_denied":     "Você não tem permissão para esta operação.",
	"invalid_state":         "Este agendamento não permite a operação.",
	"invalid_status":        "Status inválido.",
	"invalid_interval":      "Intervalo de horário inválido.",
	"outside_working_hours": "Fora do horário de atendimento.",
	"duplicate_price_rule":  "Já existe uma regra de preço para este dia da semana.",
}

// writeBusinessError converte o código de negócio no status HTTP correto.
func writeBusinessError(c *gin.Context, err error) {
	var be httperr.BusinessError
	if !errors.As(err, &be) {
		httperr.Internal(c, "internal_error", "Erro interno.")
		return
	}

	msg := businessMessages[be.Code]
	if msg == "" {
		msg = be.Code
	}

	switch be.Code {
	case "slot_taken":
		httperr.Conflict(c, be.Code, msg)
	case "service_not_found", "client_not_found", "appointment_not_found":
		httperr.NotFound(c, be.Code, msg)
	case "permission_denied":
		httperr.Forbidden(c, be.Code, msg)
	default:
		httperr.BadRequest(c, be.Code, msg)
	}
}
