package handler

import (
	"errors"
	"net/http"
	"strconv"

	catalogService "shop_backoffice/internal/domain/catalog/service"
	"shop_backoffice/internal/domain/review/service"
	"shop_backoffice/internal/pkg/middleware"
	"shop_backoffice/pkg/response"

	"github.com/gin-gonic/gin"
)

// ReviewHandler 评价处理器
type ReviewHandler struct {
	service service.ReviewService
}

// NewReviewHandler 创建评价处理器
func NewReviewHandler(service service.ReviewService) *ReviewHandler {
	return &ReviewHandler{service: service}
}

// CreateReviewRequest 创建评价请求
type CreateReviewRequest struct {
	Rating  int    `json:"rating" binding:"required,min=1,max=5"`
	Comment string `json:"comment"`
}

// CreateReview 创建评价
func (h *ReviewHandler) CreateReview(c *gin.Context) {
	userID, ok := middleware.CurrentUserID(c)
	if !ok {
		response.Error(c, http.StatusUnauthorized, response.ErrTokenInvalid, "User not authenticated")
		return
	}
	productID := c.Param("id")

	var req CreateReviewRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, response.ErrInvalidParam, err.Error())
		return
	}

	review, err := h.service.CreateReview(userID, productID, req.Rating, req.Comment)
	if err != nil {
		switch {
		case errors.Is(err, catalogService.ErrProductNotFound):
			response.Error(c, http.StatusNotFound, response.ErrProductNotFound, "Product not found")
		case errors.Is(err, service.ErrAlreadyReviewed):
			response.Error(c, http.StatusConflict, response.ErrInvalidParam, err.Error())
		case errors.Is(err, service.ErrInvalidRating):
			response.Error(c, http.StatusBadRequest, response.ErrInvalidParam, err.Error())
		default:
			response.Error(c, http.StatusInternalServerError, response.ErrServerInternal, "Failed to create review")
		}
		return
	}
	response.Success(c, review)
}

// GetProductReviews 获取商品评价列表
func (h *ReviewHandler) GetProductReviews(c *gin.Context) {
	productID := c.Param("id")
	page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "10"))

	reviews, total, err := h.service.GetProductReviews(productID, page, limit)
	if err != nil {
		response.Error(c, http.StatusInternalServerError, response.ErrServerInternal, "Failed to fetch reviews")
		return
	}
	response.Success(c, gin.H{
		"list":  reviews,
		"total": total,
		"page":  page,
		"limit": limit,
	})
}

// GetProductRating 获取商品评分汇总
func (h *ReviewHandler) GetProductRating(c *gin.Context) {
	summary, err := h.service.GetProductRating(c.Param("id"))
	if err != nil {
		response.Error(c, http.StatusInternalServerError, response.ErrServerInternal, "Failed to fetch rating")
		return
	}
	response.Success(c, summary)
}

// DeleteReview 删除评价 (管理员)
func (h *ReviewHandler) DeleteReview(c *gin.Context) {
	if err := h.service.DeleteReview(c.Param("id")); err != nil {
		response.Error(c, http.StatusInternalServerError, response.ErrServerInternal, "Failed to delete review")
		return
	}
	response.Success(c, true)
}
