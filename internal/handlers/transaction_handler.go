package handlers

import (
	"strconv"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/navalhaapp/barber-booking/internal/httperr"
	"github.com/navalhaapp/barber-booking/internal/httpresp"
	"github.com/navalhaapp/barber-booking/internal/models"
)

type TransactionHandler struct {
	db *gorm.DB
}

func NewTransactionHandler(db *gorm.DB) *TransactionHandler {
	return &TransactionHandler{db: db}
}

func (h *TransactionHandler) List(c *gin.Context) {
	var transactions []models.Transaction
	if err := h.db.
		Preload("Client").
		Preload("Appointment").
		Order("created_at DESC").
		Find(&transactions).Error; err != nil {
		httperr.Internal(c, "list_failed", "Erro ao buscar as transações.")
		return
	}

	httpresp.List(c, transactions)
}

func (h *TransactionHandler) Get(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		httperr.BadRequest(c, "invalid_id", "ID inválido.")
		return
	}

	var tr models.Transaction
	if err := h.db.
		Preload("Client").
		Preload("Appointment").
		First(&tr, id).Error; err != nil {
		httperr.NotFound(c, "transaction_not_found", "Nenhuma transação encontrada com este ID.")
		return
	}

	httpresp.OK(c, tr)
}
