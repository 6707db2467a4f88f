package handler

import (
	"net/http"
	"strconv"

	"shop_backoffice/internal/domain/dashboard/service"
	"shop_backoffice/pkg/response"

	"github.com/gin-gonic/gin"
)

// DashboardHandler 仪表盘处理器
type DashboardHandler struct {
	service service.DashboardService
}

// NewDashboardHandler 创建仪表盘处理器
func NewDashboardHandler(service service.DashboardService) *DashboardHandler {
	return &DashboardHandler{service: service}
}

// GetOverview 获取总览数据
func (h *DashboardHandler) GetOverview(c *gin.Context) {
	overview, err := h.service.GetOverview(c.Request.Context())
	if err != nil {
		response.Error(c, http.StatusInternalServerError, response.ErrServerInternal, "Failed to fetch dashboard data")
		return
	}
	response.Success(c, overview)
}

// GetDailySales 获取按天销售报表
func (h *DashboardHandler) GetDailySales(c *gin.Context) {
	days, _ := strconv.Atoi(c.DefaultQuery("days", "7"))

	sales, err := h.service.GetDailySales(c.Request.Context(), days)
	if err != nil {
		response.Error(c, http.StatusInternalServerError, response.ErrServerInternal, "Failed to fetch sales report")
		return
	}
	response.Success(c, sales)
}
