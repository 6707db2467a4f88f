package handler

import (
	"errors"
	"net/http"
	"strconv"

	"shop_backoffice/internal/domain/blog/service"
	"shop_backoffice/internal/pkg/middleware"
	"shop_backoffice/pkg/response"

	"github.com/gin-gonic/gin"
)

// BlogHandler 博客处理器
type BlogHandler struct {
	service service.BlogService
}

// NewBlogHandler 创建博客处理器
func NewBlogHandler(service service.BlogService) *BlogHandler {
	return &BlogHandler{service: service}
}

// PostRequest 文章请求体
type PostRequest struct {
	Title      string   `json:"title" binding:"required"`
	Slug       string   `json:"slug"`
	Content    string   `json:"content" binding:"required"`
	Excerpt    string   `json:"excerpt"`
	CoverImage string   `json:"coverImage"`
	Tags       []string `json:"tags"`
	Published  bool     `json:"published"`
}

func (r PostRequest) toInput() service.PostInput {
	return service.PostInput{
		Title:      r.Title,
		Slug:       r.Slug,
		Content:    r.Content,
		Excerpt:    r.Excerpt,
		CoverImage: r.CoverImage,
		Tags:       r.Tags,
		Published:  r.Published,
	}
}

// CreatePost 创建文章 (管理员)
func (h *BlogHandler) CreatePost(c *gin.Context) {
	userID, ok := middleware.CurrentUserID(c)
	if !ok {
		response.Error(c, http.StatusUnauthorized, response.ErrTokenInvalid, "User not authenticated")
		return
	}

	var req PostRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, response.ErrInvalidParam, err.Error())
		return
	}

	post, err := h.service.CreatePost(userID, req.toInput())
	if err != nil {
		if errors.Is(err, service.ErrSlugTaken) {
			response.Error(c, http.StatusConflict, response.ErrInvalidParam, err.Error())
			return
		}
		response.Error(c, http.StatusInternalServerError, response.ErrServerInternal, "Failed to create post")
		return
	}
	response.Success(c, post)
}

// GetPosts 获取已发布文章列表 (公开)
func (h *BlogHandler) GetPosts(c *gin.Context) {
	h.listPosts(c, true)
}

// GetAllPosts 获取全部文章列表 (管理员，含草稿)
func (h *BlogHandler) GetAllPosts(c *gin.Context) {
	h.listPosts(c, false)
}

func (h *BlogHandler) listPosts(c *gin.Context, publishedOnly bool) {
	page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "10"))

	posts, total, err := h.service.GetPosts(publishedOnly, page, limit)
	if err != nil {
		response.Error(c, http.StatusInternalServerError, response.ErrServerInternal, "Failed to fetch posts")
		return
	}
	response.Success(c, gin.H{
		"list":  posts,
		"total": total,
		"page":  page,
		"limit": limit,
	})
}

// GetPostBySlug 按 slug 获取文章 (公开)
func (h *BlogHandler) GetPostBySlug(c *gin.Context) {
	post, err := h.service.GetPostBySlug(c.Param("slug"))
	if err != nil {
		if errors.Is(err, service.ErrPostNotFound) {
			response.Error(c, http.StatusNotFound, response.ErrInvalidParam, "Post not found")
			return
		}
		response.Error(c, http.StatusInternalServerError, response.ErrServerInternal, "Failed to fetch post")
		return
	}
	response.Success(c, post)
}

// GetPost 按 ID 获取文章 (管理员)
func (h *BlogHandler) GetPost(c *gin.Context) {
	post, err := h.service.GetPost(c.Param("id"))
	if err != nil {
		if errors.Is(err, service.ErrPostNotFound) {
			response.Error(c, http.StatusNotFound, response.ErrInvalidParam, "Post not found")
			return
		}
		response.Error(c, http.StatusInternalServerError, response.ErrServerInternal, "Failed to fetch post")
		return
	}
	response.Success(c, post)
}

// UpdatePost 更新文章 (管理员)
func (h *BlogHandler) UpdatePost(c *gin.Context) {
	var req PostRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, response.ErrInvalidParam, err.Error())
		return
	}

	post, err := h.service.UpdatePost(c.Param("id"), req.toInput())
	if err != nil {
		switch {
		case errors.Is(err, service.ErrPostNotFound):
			response.Error(c, http.StatusNotFound, response.ErrInvalidParam, "Post not found")
		case errors.Is(err, service.ErrSlugTaken):
			response.Error(c, http.StatusConflict, response.ErrInvalidParam, err.Error())
		default:
			response.Error(c, http.StatusInternalServerError, response.ErrServerInternal, "Failed to update post")
		}
		return
	}
	response.Success(c, post)
}

// DeletePost 删除文章 (管理员)
func (h *BlogHandler) DeletePost(c *gin.Context) {
	if err := h.service.DeletePost(c.Param("id")); err != nil {
		if errors.Is(err, service.ErrPostNotFound) {
			response.Error(c, http.StatusNotFound, response.ErrInvalidParam, "Post not found")
			return
		}
		response.Error(c, http.StatusInternalServerError, response.ErrServerInternal, "Failed to delete post")
		return
	}
	response.Success(c, true)
}
