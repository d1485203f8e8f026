package handler

import (
	"net/http"

	"kas-taruna/internal/ledger"
	"kas-taruna/internal/middleware"
	"kas-taruna/internal/model"
	"kas-taruna/internal/service"

	"github.com/gin-gonic/gin"
)

type MemberHandler struct {
	members  *service.MemberService
	payments *service.PaymentService
	org      *service.OrgService
}

func NewMemberHandler(members *service.MemberService, payments *service.PaymentService, org *service.OrgService) *MemberHandler {
	return &MemberHandler{members: members, payments: payments, org: org}
}

// List handles GET /api/members — the dashboard grid: roster, months in
// the selected range, per-cell payment state, and the organization
// balances, all in one response so a refetch restores a consistent view.
func (h *MemberHandler) List(c *gin.Context) {
	ctx := c.Request.Context()
	start, end := monthRange(c)
	months := ledger.MonthsInRange(start, end)

	members, err := h.members.ListActive(ctx)
	if err != nil {
		fail(c, err)
		return
	}
	grid, err := h.payments.Grid(ctx, members, months)
	if err != nil {
		fail(c, err)
		return
	}
	bal, err := h.org.Balance(ctx)
	if err != nil {
		fail(c, err)
		return
	}

	if members == nil {
		members = []model.Member{}
	}
	monthViews := make([]gin.H, 0, len(months))
	for _, m := range months {
		monthViews = append(monthViews, gin.H{"month": m.Month, "year": m.Year, "label": m.Label()})
	}

	c.JSON(http.StatusOK, gin.H{
		"members":      members,
		"months":       monthViews,
		"payments":     grid,
		"balance_cash": bal.Cash,
		"balance_bank": bal.Bank,
	})
}

// Add handles POST /api/members
func (h *MemberHandler) Add(c *gin.Context) {
	var req model.AddMemberRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request"})
		return
	}
	m, err := h.members.Add(c.Request.Context(), middleware.Role(c), req.Name)
	if err != nil {
		fail(c, err)
		return
	}
	c.JSON(http.StatusOK, m)
}

// Delete handles DELETE /api/members/:id
func (h *MemberHandler) Delete(c *gin.Context) {
	if err := h.members.Delete(c.Request.Context(), middleware.Role(c), c.Param("id")); err != nil {
		fail(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"ok": true})
}

// SetCashBalance handles PUT /api/balance/cash
func (h *MemberHandler) SetCashBalance(c *gin.Context) {
	var req model.SetBalanceRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request"})
		return
	}
	if err := h.org.OverrideCash(c.Request.Context(), middleware.Role(c), req.Value); err != nil {
		fail(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"ok": true})
}

// SetBankBalance handles PUT /api/balance/bank
func (h *MemberHandler) SetBankBalance(c *gin.Context) {
	var req model.SetBalanceRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request"})
		return
	}
	if err := h.org.OverrideBank(c.Request.Context(), middleware.Role(c), req.Value); err != nil {
		fail(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"ok": true})
}
