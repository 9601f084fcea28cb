package handlers

import (
	"math"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/navalhaapp/barber-booking/internal/httperr"
	"github.com/navalhaapp/barber-booking/internal/httpresp"
	"github.com/navalhaapp/barber-booking/internal/models"
)

type DashboardHandler struct {
	db *gorm.DB
}

func NewDashboardHandler(db *gorm.DB) *DashboardHandler {
	return &DashboardHandler{db: db}
}

type revenueBreakdown struct {
	Revenue    float64 `json:"revenue"`
	Count      int64   `json:"count"`
	Percentage float64 `json:"percentage"`
}

type dashboardSummary struct {
	TotalRevenue  float64 `json:"total_revenue"`  // líquido
	GrossRevenue  float64 `json:"gross_revenue"`  // líquido + |estornos|
	TotalEstornos float64 `json:"total_estornos"` // valor absoluto

	Breakdown map[string]*revenueBreakdown `json:"revenue_breakdown"`

	AppointmentCounts map[string]int64 `json:"appointment_counts"`
}

// Summary GET /admin/dashboard?start=2025-08-01&end=2025-08-31
func (h *DashboardHandler) Summary(c *gin.Context) {
	start, err := parseDateParam(c.Query("start"))
	if err != nil {
		httperr.BadRequest(c, "invalid_date", "Data inicial inválida, use YYYY-MM-DD.")
		return
	}

	end, err := parseDateParam(c.Query("end"))
	if err != nil {
		httperr.BadRequest(c, "invalid_date", "Data final inválida, use YYYY-MM-DD.")
		return
	}
	end = end.AddDate(0, 0, 1)

	type typeAgg struct {
		Type    string
		Revenue float64
		Count   int64
	}

	var aggs []typeAgg
	if err := h.db.Model(&models.Transaction{}).
		Select("type, COALESCE(SUM(amount), 0) AS revenue, COUNT(*) AS count").
		Where("created_at >= ? AND created_at < ?", start, end).
		Group("type").
		Scan(&aggs).Error; err != nil {
		httperr.Internal(c, "dashboard_failed", "Erro ao montar o resumo.")
		return
	}

	var estornos float64
	if err := h.db.Model(&models.Transaction{}).
		Select("COALESCE(SUM(amount), 0)").
		Where("amount < 0 AND created_at >= ? AND created_at < ?", start, end).
		Scan(&estornos).Error; err != nil {
		httperr.Internal(c, "dashboard_failed", "Erro ao montar o resumo.")
		return
	}

	summary := dashboardSummary{
		TotalEstornos: math.Abs(estornos),
		Breakdown: map[string]*revenueBreakdown{
			models.TransactionOnline:   {},
			models.TransactionInPerson: {},
		},
		AppointmentCounts: map[string]int64{},
	}

	for _, a := range aggs {
		if b, ok := summary.Breakdown[a.Type]; ok {
			b.Revenue = a.Revenue
			b.Count = a.Count
		}
		summary.TotalRevenue += a.Revenue
	}

	// a porcentagem é calculada sobre a receita bruta (líquido + estornos)
	summary.GrossRevenue = summary.TotalRevenue + summary.TotalEstornos
	if summary.GrossRevenue > 0 {
		for _, b := range summary.Breakdown {
			b.Percentage = math.Round(b.Revenue/summary.GrossRevenue*1000) / 10
		}
	}

	type statusAgg struct {
		Status string
		Count  int64
	}

	var statuses []statusAgg
	if err := h.db.Model(&models.Appointment{}).
		Select("status, COUNT(*) AS count").
		Where("created_at >= ? AND created_at < ?", start, end).
		Group("status").
		Scan(&statuses).Error; err != nil {
		httperr.Internal(c, "dashboard_failed", "Erro ao montar o resumo.")
		return
	}

	var total int64
	for _, s := range statuses {
		summary.AppointmentCounts[s.Status] = s.Count
		total += s.Count
	}
	summary.AppointmentCounts["total"] = total

	httpresp.OK(c, summary)
}
