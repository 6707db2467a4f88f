package handler

import (
	"errors"
	"net/http"
	"strconv"

	"shop_backoffice/internal/domain/contact/service"
	"shop_backoffice/pkg/response"

	"github.com/gin-gonic/gin"
)

// ContactHandler 留言处理器
type ContactHandler struct {
	service service.ContactService
}

// NewContactHandler 创建留言处理器
func NewContactHandler(service service.ContactService) *ContactHandler {
	return &ContactHandler{service: service}
}

// SubmitRequest 提交留言请求
type SubmitRequest struct {
	Name    string `json:"name" binding:"required"`
	Email   string `json:"email" binding:"required,email"`
	Subject string `json:"subject"`
	Content string `json:"content" binding:"required"`
}

// Submit 提交留言 (公开)
func (h *ContactHandler) Submit(c *gin.Context) {
	var req SubmitRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, response.ErrInvalidParam, err.Error())
		return
	}

	message, err := h.service.Submit(req.Name, req.Email, req.Subject, req.Content)
	if err != nil {
		response.Error(c, http.StatusInternalServerError, response.ErrServerInternal, "Failed to submit message")
		return
	}
	response.Success(c, message)
}

// GetMessages 获取留言列表 (管理员)
func (h *ContactHandler) GetMessages(c *gin.Context) {
	page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "10"))
	unreadOnly := c.Query("unread") == "true"

	messages, total, err := h.service.GetMessages(unreadOnly, page, limit)
	if err != nil {
		response.Error(c, http.StatusInternalServerError, response.ErrServerInternal, "Failed to fetch messages")
		return
	}
	response.Success(c, gin.H{
		"list":  messages,
		"total": total,
		"page":  page,
		"limit": limit,
	})
}

// GetMessage 获取单条留言 (管理员)
func (h *ContactHandler) GetMessage(c *gin.Context) {
	message, err := h.service.GetMessage(c.Param("id"))
	if err != nil {
		if errors.Is(err, service.ErrMessageNotFound) {
			response.Error(c, http.StatusNotFound, response.ErrInvalidParam, "Message not found")
			return
		}
		response.Error(c, http.StatusInternalServerError, response.ErrServerInternal, "Failed to fetch message")
		return
	}
	response.Success(c, message)
}

// MarkRead 标记留言已读 (管理员)
func (h *ContactHandler) MarkRead(c *gin.Context) {
	if err := h.service.MarkRead(c.Param("id")); err != nil {
		if errors.Is(err, service.ErrMessageNotFound) {
			response.Error(c, http.StatusNotFound, response.ErrInvalidParam, "Message not found")
			return
		}
		response.Error(c, http.StatusInternalServerError, response.ErrServerInternal, "Failed to update message")
		return
	}
	response.Success(c, true)
}

// DeleteMessage 删除留言 (管理员)
func (h *ContactHandler) DeleteMessage(c *gin.Context) {
	if err := h.service.DeleteMessage(c.Param("id")); err != nil {
		if errors.Is(err, service.ErrMessageNotFound) {
			response.Error(c, http.StatusNotFound, response.ErrInvalidParam, "Message not found")
			return
		}
		response.Error(c, http.StatusInternalServerError, response.ErrServerInternal, "Failed to delete message")
		return
	}
	response.Success(c, true)
}
