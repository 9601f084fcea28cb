package handlers

import (
	"strconv"

	"github.com/gin-gonic/gin"

	domain "github.com/navalhaapp/barber-booking/internal/domain/schedule"
	"github.com/navalhaapp/barber-booking/internal/httperr"
	"github.com/navalhaapp/barber-booking/internal/httpresp"
	"github.com/navalhaapp/barber-booking/internal/middleware"
	"github.com/navalhaapp/barber-booking/internal/usecase/booking"
)

// ======================================================
// HANDLER
// ======================================================

type AppointmentHandler struct {
	bookUC   *booking.BookAppointment
	statusUC *booking.UpdateAppointmentStatus
	cancelUC *booking.CancelByClient
	listUC   *booking.ListAppointments
}

func NewAppointmentHandler(
	bookUC *booking.BookAppointment,
	statusUC *booking.UpdateAppointmentStatus,
	cancelUC *booking.CancelByClient,
	listUC *booking.ListAppointments,
) *AppointmentHandler {
	return &AppointmentHandler{
		bookUC:   bookUC,
		statusUC: statusUC,
		cancelUC: cancelUC,
		listUC:   listUC,
	}
}

// ======================================================
// REQUESTS
// ======================================================

type CreateAppointmentRequest struct {
	ServiceID uint   `json:"service_id" binding:"required"`
	Date      string `json:"date" binding:"required"`
	Time      string `json:"time" binding:"required"`
	Notes     string `json:"notes"`
}

type AdminCreateAppointmentRequest struct {
	ClientID  uint   `json:"client_id" binding:"required"`
	ServiceID uint   `json:"service_id" binding:"required"`
	Date      string `json:"date" binding:"required"`
	Time      string `json:"time" binding:"required"`
	Notes     string `json:"notes"`
}

type UpdateStatusRequest struct {
	Status string `json:"status" binding:"required"`
}

// ======================================================
// CREATE
// ======================================================

// Create agenda para o próprio cliente logado.
func (h *AppointmentHandler) Create(c *gin.Context) {
	clientID := c.MustGet(middleware.ContextUserID).(uint)

	var req CreateAppointmentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", "Dados inválidos.")
		return
	}

	h.book(c, clientID, req.ServiceID, req.Date, req.Time, req.Notes)
}

// AdminCreate agenda em nome de um cliente.
func (h *AppointmentHandler) AdminCreate(c *gin.Context) {
	var req AdminCreateAppointmentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", "Dados inválidos.")
		return
	}

	h.book(c, req.ClientID, req.ServiceID, req.Date, req.Time, req.Notes)
}

func (h *AppointmentHandler) book(
	c *gin.Context,
	clientID uint,
	serviceID uint,
	date string,
	hm string,
	notes string,
) {
	start, err := parseDateTimeParam(date, hm)
	if err != nil {
		httperr.BadRequest(c, "invalid_date_or_time", "Data ou hora inválida.")
		return
	}

	ap, err := h.bookUC.Execute(c.Request.Context(), booking.BookInput{
		ClientID:  clientID,
		ServiceID: serviceID,
		Start:     start,
		Notes:     notes,
	})
	if err != nil {
		writeBusinessError(c, err)
		return
	}

	c.JSON(201, ap)
}

// ======================================================
// LIST
// ======================================================

func (h *AppointmentHandler) ListMine(c *gin.Context) {
	clientID := c.MustGet(middleware.ContextUserID).(uint)

	out, err := h.listUC.ForClient(c.Request.Context(), clientID)
	if err != nil {
		httperr.Internal(c, "list_failed", "Erro ao buscar agendamentos.")
		return
	}

	httpresp.List(c, out)
}

func (h *AppointmentHandler) ListAll(c *gin.Context) {
	out, err := h.listUC.All(c.Request.Context())
	if err != nil {
		httperr.Internal(c, "list_failed", "Erro ao buscar agendamentos.")
		return
	}

	httpresp.List(c, out)
}

// ======================================================
// STATUS (admin)
// ======================================================

func (h *AppointmentHandler) UpdateStatus(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		httperr.BadRequest(c, "invalid_id", "ID inválido.")
		return
	}

	var req UpdateStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", "Dados inválidos.")
		return
	}

	ap, err := h.statusUC.Execute(
		c.Request.Context(),
		uint(id),
		domain.Status(req.Status),
	)
	if err != nil {
		writeBusinessError(c, err)
		return
	}

	httpresp.OK(c, ap)
}

// ======================================================
// CANCEL (cliente)
// ======================================================

func (h *AppointmentHandler) CancelMine(c *gin.Context) {
	clientID := c.MustGet(middleware.ContextUserID).(uint)

	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		httperr.BadRequest(c, "invalid_id", "ID inválido.")
		return
	}

	ap, err := h.cancelUC.Execute(c.Request.Context(), uint(id), clientID)
	if err != nil {
		writeBusinessError(c, err)
		return
	}

	httpresp.OK(c, ap)
}
