package handlers

import (
	"strconv"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/navalhaapp/barber-booking/internal/httperr"
	"github.com/navalhaapp/barber-booking/internal/httpresp"
	infraRepo "github.com/navalhaapp/barber-booking/internal/infra/repository"
	"github.com/navalhaapp/barber-booking/internal/middleware"
	"github.com/navalhaapp/barber-booking/internal/models"
	"github.com/navalhaapp/barber-booking/internal/usecase/booking"
)

type ServiceHandler struct {
	db      *gorm.DB
	priceUC *booking.GetPriceDetail
}

func NewServiceHandler(db *gorm.DB, priceUC *booking.GetPriceDetail) *ServiceHandler {
	return &ServiceHandler{db: db, priceUC: priceUC}
}

// --------- Requests ---------

type PriceRuleRequest struct {
	Weekday      int     `json:"weekday" binding:"min=0,max=6"`
	SpecialPrice float64 `json:"special_price" binding:"required"`
}

type ServiceRequest struct {
	Name        string             `json:"name" binding:"required"`
	Description string             `json:"description"`
	BasePrice   float64            `json:"base_price" binding:"required"`
	DurationMin int                `json:"duration_min" binding:"required,gt=0"`
	ImageURL    string             `json:"image_url"`
	PriceRules  []PriceRuleRequest `json:"price_rules"`
}

// duplicidade por dia da semana é barrada na escrita (e pelo índice único)
func validatePriceRules(rules []PriceRuleRequest) error {
	seen := make(map[int]bool, len(rules))
	for _, r := range rules {
		if seen[r.Weekday] {
			return httperr.ErrBusiness("duplicate_price_rule")
		}
		seen[r.Weekday] = true
	}
	return nil
}

// --------- CRUD ---------

func (h *ServiceHandler) List(c *gin.Context) {
	var services []models.Service
	if err := h.db.Preload("PriceRules").Order("name ASC").Find(&services).Error; err != nil {
		httperr.Internal(c, "list_failed", "Erro ao buscar serviços.")
		return
	}

	httpresp.List(c, services)
}

func (h *ServiceHandler) Get(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		httperr.BadRequest(c, "invalid_id", "ID inválido.")
		return
	}

	var svc models.Service
	if err := h.db.Preload("PriceRules").First(&svc, id).Error; err != nil {
		httperr.NotFound(c, "service_not_found", "Serviço não encontrado.")
		return
	}

	httpresp.OK(c, svc)
}

func (h *ServiceHandler) Create(c *gin.Context) {
	var req ServiceRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", "Dados inválidos.")
		return
	}

	if err := validatePriceRules(req.PriceRules); err != nil {
		writeBusinessError(c, err)
		return
	}

	svc := models.Service{
		Name:        req.Name,
		Description: req.Description,
		BasePrice:   req.BasePrice,
		DurationMin: req.DurationMin,
		ImageURL:    req.ImageURL,
	}
	for _, r := range req.PriceRules {
		svc.PriceRules = append(svc.PriceRules, models.PriceRule{
			Weekday:      r.Weekday,
			SpecialPrice: r.SpecialPrice,
		})
	}

	if err := h.db.Create(&svc).Error; err != nil {
		if infraRepo.IsUniqueViolation(err) {
			httperr.BadRequest(c, "service_already_exists", "Já existe um serviço com este nome.")
			return
		}
		httperr.Internal(c, "create_failed", "Erro ao criar serviço.")
		return
	}

	c.JSON(201, svc)
}

func (h *ServiceHandler) Update(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		httperr.BadRequest(c, "invalid_id", "ID inválido.")
		return
	}

	var svc models.Service
	if err := h.db.First(&svc, id).Error; err != nil {
		httperr.NotFound(c, "service_not_found", "Serviço não encontrado.")
		return
	}

	var req ServiceRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", "Dados inválidos.")
		return
	}

	if err := validatePriceRules(req.PriceRules); err != nil {
		writeBusinessError(c, err)
		return
	}

	err = h.db.Transaction(func(tx *gorm.DB) error {
		svc.Name = req.Name
		svc.Description = req.Description
		svc.BasePrice = req.BasePrice
		svc.DurationMin = req.DurationMin
		svc.ImageURL = req.ImageURL

		if err := tx.Save(&svc).Error; err != nil {
			return err
		}

		if err := tx.Where("service_id = ?", svc.ID).
			Delete(&models.PriceRule{}).Error; err != nil {
			return err
		}

		for _, r := range req.PriceRules {
			rule := models.PriceRule{
				ServiceID:    svc.ID,
				Weekday:      r.Weekday,
				SpecialPrice: r.SpecialPrice,
			}
			if err := tx.Create(&rule).Error; err != nil {
				return err
			}
			svc.PriceRules = append(svc.PriceRules, rule)
		}

		return nil
	})
	if err != nil {
		httperr.Internal(c, "update_failed", "Erro ao atualizar serviço.")
		return
	}

	httpresp.OK(c, svc)
}

func (h *ServiceHandler) Delete(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		httperr.BadRequest(c, "invalid_id", "ID inválido.")
		return
	}

	res := h.db.Delete(&models.Service{}, id)
	if res.Error != nil {
		httperr.Internal(c, "delete_failed", "Erro ao remover serviço.")
		return
	}
	if res.RowsAffected == 0 {
		httperr.NotFound(c, "service_not_found", "Serviço não encontrado.")
		return
	}

	c.Status(204)
}

// --------- Preço ---------

// PriceDetail GET /services/:id/price?date=2025-08-05
func (h *ServiceHandler) PriceDetail(c *gin.Context) {
	clientID := c.MustGet(middleware.ContextUserID).(uint)

	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		httperr.BadRequest(c, "invalid_id", "ID inválido.")
		return
	}

	date, err := parseDateParam(c.Query("date"))
	if err != nil {
		httperr.BadRequest(c, "invalid_date", "Data inválida, use YYYY-MM-DD.")
		return
	}

	detail, err := h.priceUC.Execute(c.Request.Context(), uint(id), date, clientID)
	if err != nil {
		writeBusinessError(c, err)
		return
	}

	httpresp.OK(c, detail)
}
