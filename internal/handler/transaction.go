package handler

import (
	"net/http"

	"kas-taruna/internal/logger"
	"kas-taruna/internal/middleware"
	"kas-taruna/internal/model"
	"kas-taruna/internal/service"

	"github.com/gin-gonic/gin"
)

type TransactionHandler struct{ txs *service.TransactionService }

func NewTransactionHandler(txs *service.TransactionService) *TransactionHandler {
	return &TransactionHandler{txs: txs}
}

// List handles GET /api/transactions
func (h *TransactionHandler) List(c *gin.Context) {
	txs, err := h.txs.List(c.Request.Context())
	if err != nil {
		fail(c, err)
		return
	}
	if txs == nil {
		txs = []model.Transaction{}
	}
	c.JSON(http.StatusOK, txs)
}

// Add handles POST /api/transactions
func (h *TransactionHandler) Add(c *gin.Context) {
	var req model.AddTransactionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request"})
		return
	}
	tx, err := h.txs.Add(c.Request.Context(), middleware.Role(c), c.GetString("user_id"), req)
	if err != nil {
		logger.Warn("transaction.add failed", "type", req.Type, "amount", req.Amount, "err", err)
		fail(c, err)
		return
	}
	logger.Info("transaction.add", "id", tx.ID, "type", tx.Type, "amount", tx.Amount, "method", tx.PaymentMethod)
	c.JSON(http.StatusOK, tx)
}

// Delete handles DELETE /api/transactions/:id
func (h *TransactionHandler) Delete(c *gin.Context) {
	id := c.Param("id")
	if err := h.txs.Delete(c.Request.Context(), middleware.Role(c), id); err != nil {
		logger.Warn("transaction.delete failed", "id", id, "err", err)
		fail(c, err)
		return
	}
	logger.Info("transaction.delete", "id", id)
	c.JSON(http.StatusOK, gin.H{"ok": true})
}
