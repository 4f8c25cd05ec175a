package handlers

import (
	"fmt"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"ricemill/internal/domain/reconcile"
	"ricemill/internal/infrastructure/http/v1/dto"
)

// BalanceHandler serves delivery order balance views.
type BalanceHandler struct {
	*BaseHandler
	service *reconcile.Service
}

// NewBalanceHandler creates the balance handler.
func NewBalanceHandler(base *BaseHandler, svc *reconcile.Service) *BalanceHandler {
	return &BalanceHandler{BaseHandler: base, service: svc}
}

type balanceQuery struct {
	Page          int    `form:"page"`
	PageSize      int    `form:"pageSize"`
	Search        string `form:"search"`
	SortByBalance bool   `form:"sortByBalance"`
	Order         string `form:"order"`
}

// List handles GET /delivery-orders/balance.
// order=desc reverses the balance sort; anything else sorts ascending.
func (h *BalanceHandler) List(c *gin.Context) {
	var query balanceQuery
	if !h.BindQuery(c, &query) {
		return
	}
	if query.Page < 1 {
		query.Page = 1
	}
	if query.PageSize < 1 || query.PageSize > 100 {
		query.PageSize = 20
	}

	result, err := h.service.Page(c.Request.Context(), reconcile.PageRequest{
		Page:          query.Page,
		PageSize:      query.PageSize,
		Search:        query.Search,
		SortByBalance: query.SortByBalance,
		Descending:    query.Order == "desc",
	})
	if err != nil {
		h.Error(c, err)
		return
	}

	balances := dto.FromOrderBalances(result.Balances)
	c.JSON(http.StatusOK, dto.ListEnvelope("balances", balances, result.TotalCount, result.Page, result.PageSize))
}

// Export handles GET /delivery-orders/balance/export and streams an xlsx workbook
// covering every active delivery order.
func (h *BalanceHandler) Export(c *gin.Context) {
	balances, err := h.service.All(c.Request.Context())
	if err != nil {
		h.Error(c, err)
		return
	}

	filename := fmt.Sprintf("do-balance-%s.xlsx", time.Now().UTC().Format("2006-01-02"))
	c.Header("Content-Type", "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet")
	c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=%q", filename))
	c.Status(http.StatusOK)

	if err := reconcile.WriteXLSX(balances, c.Writer); err != nil {
		// response is already committed, only log the failure
		_ = c.Error(err)
	}
}
