package handler

import (
	"errors"
	"net/http"

	"shop_backoffice/internal/domain/settings/service"
	"shop_backoffice/pkg/response"

	"github.com/gin-gonic/gin"
)

// SettingsHandler 配置处理器
type SettingsHandler struct {
	service service.SettingsService
}

// NewSettingsHandler 创建配置处理器
func NewSettingsHandler(service service.SettingsService) *SettingsHandler {
	return &SettingsHandler{service: service}
}

// SetRequest 写入配置请求
type SetRequest struct {
	Value string `json:"value" binding:"required"`
}

// GetAll 获取全部配置
func (h *SettingsHandler) GetAll(c *gin.Context) {
	settings, err := h.service.GetAll()
	if err != nil {
		response.Error(c, http.StatusInternalServerError, response.ErrServerInternal, "Failed to fetch settings")
		return
	}
	response.Success(c, settings)
}

// Get 获取单个配置项
func (h *SettingsHandler) Get(c *gin.Context) {
	setting, err := h.service.Get(c.Param("key"))
	if err != nil {
		if errors.Is(err, service.ErrSettingNotFound) {
			response.Error(c, http.StatusNotFound, response.ErrInvalidParam, "Setting not found")
			return
		}
		response.Error(c, http.StatusInternalServerError, response.ErrServerInternal, "Failed to fetch setting")
		return
	}
	response.Success(c, setting)
}

// Set 写入配置项 (管理员)
func (h *SettingsHandler) Set(c *gin.Context) {
	var req SetRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, response.ErrInvalidParam, err.Error())
		return
	}

	setting, err := h.service.Set(c.Param("key"), req.Value)
	if err != nil {
		response.Error(c, http.StatusInternalServerError, response.ErrServerInternal, "Failed to save setting")
		return
	}
	response.Success(c, setting)
}

// Delete 删除配置项 (管理员)
func (h *SettingsHandler) Delete(c *gin.Context) {
	if err := h.service.Delete(c.Param("key")); err != nil {
		if errors.Is(err, service.ErrSettingNotFound) {
			response.Error(c, http.StatusNotFound, response.ErrInvalidParam, "Setting not found")
			return
		}
		response.Error(c, http.StatusInternalServerError, response.ErrServerInternal, "Failed to delete setting")
		return
	}
	response.Success(c, true)
}
