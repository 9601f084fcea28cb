package handlers

import (
	"strconv"
	"time"

	"github.com/gin-gonic/gin"

	domain "github.com/navalhaapp/barber-booking/internal/domain/schedule"
	"github.com/navalhaapp/barber-booking/internal/httperr"
	"github.com/navalhaapp/barber-booking/internal/httpresp"
	"github.com/navalhaapp/barber-booking/internal/usecase/booking"
)

type AvailabilityHandler struct {
	getUC   *booking.GetAvailability
	setUC   *booking.SetAvailability
	slotsUC *booking.GetAvailableSlots
}

func NewAvailabilityHandler(
	getUC *booking.GetAvailability,
	setUC *booking.SetAvailability,
	slotsUC *booking.GetAvailableSlots,
) *AvailabilityHandler {
	return &AvailabilityHandler{
		getUC:   getUC,
		setUC:   setUC,
		slotsUC: slotsUC,
	}
}

// ======================================================
// GET ?date=2025-08-05
// ======================================================

func (h *AvailabilityHandler) GetByDate(c *gin.Context) {
	date, err := parseDateParam(c.Query("date"))
	if err != nil {
		httperr.BadRequest(c, "invalid_date", "Data inválida, use YYYY-MM-DD.")
		return
	}

	eff, err := h.getUC.ForDate(c.Request.Context(), date)
	if err != nil {
		httperr.Internal(c, "availability_failed", "Erro ao buscar disponibilidade.")
		return
	}

	httpresp.OK(c, eff)
}

// ======================================================
// GET /month?year=2025&month=8
// ======================================================

func (h *AvailabilityHandler) GetMonth(c *gin.Context) {
	year, err := strconv.Atoi(c.Query("year"))
	if err != nil {
		httperr.BadRequest(c, "invalid_year", "Ano inválido.")
		return
	}

	month, err := strconv.Atoi(c.Query("month"))
	if err != nil || month < 1 || month > 12 {
		httperr.BadRequest(c, "invalid_month", "Mês inválido.")
		return
	}

	out, err := h.getUC.ForMonth(c.Request.Context(), year, time.Month(month))
	if err != nil {
		httperr.Internal(c, "availability_failed", "Erro ao buscar disponibilidade.")
		return
	}

	httpresp.List(c, out)
}

// ======================================================
// PUT (admin upsert)
// ======================================================

type SetAvailabilityRequest struct {
	Date      string                `json:"date" binding:"required"`
	Status    string                `json:"status" binding:"required"`
	Intervals []domain.WorkInterval `json:"intervals"`
}

func (h *AvailabilityHandler) Set(c *gin.Context) {
	var req SetAvailabilityRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", "Dados inválidos.")
		return
	}

	date, err := parseDateParam(req.Date)
	if err != nil {
		httperr.BadRequest(c, "invalid_date", "Data inválida, use YYYY-MM-DD.")
		return
	}

	rule, err := h.setUC.Execute(c.Request.Context(), booking.SetAvailabilityInput{
		Date:      date,
		Status:    req.Status,
		Intervals: req.Intervals,
	})
	if err != nil {
		writeBusinessError(c, err)
		return
	}

	httpresp.OK(c, rule)
}

// ======================================================
// GET /slots?date=2025-08-05&service_id=1
// ======================================================

func (h *AvailabilityHandler) GetSlots(c *gin.Context) {
	date, err := parseDateParam(c.Query("date"))
	if err != nil {
		httperr.BadRequest(c, "invalid_date", "Data inválida, use YYYY-MM-DD.")
		return
	}

	serviceID, err := strconv.ParseUint(c.Query("service_id"), 10, 64)
	if err != nil {
		httperr.BadRequest(c, "invalid_service_id", "ID de serviço inválido.")
		return
	}

	slots, err := h.slotsUC.Execute(c.Request.Context(), date, uint(serviceID))
	if err != nil {
		writeBusinessError(c, err)
		return
	}

	httpresp.List(c, slots)
}
