package handler

import (
	"net/http"

	"kas-taruna/internal/logger"
	"kas-taruna/internal/middleware"
	"kas-taruna/internal/model"
	"kas-taruna/internal/service"

	"github.com/gin-gonic/gin"
)

type PaymentHandler struct{ payments *service.PaymentService }

func NewPaymentHandler(payments *service.PaymentService) *PaymentHandler {
	return &PaymentHandler{payments: payments}
}

// Pay handles POST /api/payments
func (h *PaymentHandler) Pay(c *gin.Context) {
	var req model.PayRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request"})
		return
	}
	p, err := h.payments.Pay(c.Request.Context(), middleware.Role(c), req.MemberID, req.Month, req.Year, req.Method)
	if err != nil {
		logger.Warn("payment.pay failed", "member", req.MemberID, "month", req.Month, "year", req.Year, "err", err)
		fail(c, err)
		return
	}
	logger.Info("payment.pay", "member", req.MemberID, "month", req.Month, "year", req.Year, "method", req.Method)
	c.JSON(http.StatusOK, p)
}

// Unpay handles DELETE /api/payments
func (h *PaymentHandler) Unpay(c *gin.Context) {
	var req model.UnpayRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request"})
		return
	}
	if err := h.payments.Unpay(c.Request.Context(), middleware.Role(c), req); err != nil {
		logger.Warn("payment.unpay failed", "member", req.MemberID, "month", req.Month, "year", req.Year, "err", err)
		fail(c, err)
		return
	}
	logger.Info("payment.unpay", "member", req.MemberID, "month", req.Month, "year", req.Year)
	c.JSON(http.StatusOK, gin.H{"ok": true})
}
