package http

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/ttguo7/kid-activity-platform/internal/domain"
	"github.com/ttguo7/kid-activity-platform/internal/service"
)

// ActivityHandler 封装了活动相关的 HTTP 处理逻辑
type ActivityHandler struct {
	activityService *service.ActivityService
}

// NewActivityHandler 创建 ActivityHandler 实例
func NewActivityHandler(activityService *service.ActivityService) *ActivityHandler {
	if activityService == nil {
		panic("ActivityService cannot be nil for ActivityHandler")
	}
	return &ActivityHandler{activityService: activityService}
}

// RegisterRoutes 把活动路由挂到给定的路由组下
func (h *ActivityHandler) RegisterRoutes(api *gin.RouterGroup) {
	api.GET("/activities", h.List)
	api.POST("/activities", h.Create)
	api.POST("/activities/batch-add", h.BatchAdd)
	api.GET("/activities/:id", h.Get)
	api.PUT("/activities/:id", h.Update)
	api.DELETE("/activities/:id", h.Delete)
}

// List 处理 GET /activities，支持可选的 category 精确过滤
func (h *ActivityHandler) List(c *gin.Context) {
	activities, err := h.activityService.List(c.Request.Context(), c.Query("category"))
	if err != nil {
		HandleServiceError(c, err)
		return
	}
	SuccessResponse(c, http.StatusOK, gin.H{"data": activities})
}

// Get 处理 GET /activities/:id
func (h *ActivityHandler) Get(c *gin.Context) {
	activity, err := h.activityService.Get(c.Request.Context(), c.Param("id"))
	if err != nil {
		HandleServiceError(c, err)
		return
	}
	SuccessResponse(c, http.StatusOK, gin.H{"data": activity})
}

// Create 处理 POST /activities
func (h *ActivityHandler) Create(c *gin.Context) {
	var input domain.ActivityInput
	if err := c.ShouldBindJSON(&input); err != nil {
		ErrorResponse(c, http.StatusBadRequest, "invalid request body")
		return
	}

	id, err := h.activityService.Create(c.Request.Context(), input)
	if err != nil {
		HandleServiceError(c, err)
		return
	}
	SuccessResponse(c, http.StatusOK, gin.H{"message": "activity created", "id": id})
}

// Update 处理 PUT /activities/:id，整体覆盖语义
func (h *ActivityHandler) Update(c *gin.Context) {
	var input domain.ActivityInput
	if err := c.ShouldBindJSON(&input); err != nil {
		ErrorResponse(c, http.StatusBadRequest, "invalid request body")
		return
	}

	id := c.Param("id")
	if err := h.activityService.Update(c.Request.Context(), id, input); err != nil {
		HandleServiceError(c, err)
		return
	}
	SuccessResponse(c, http.StatusOK, gin.H{"message": "activity updated", "id": id})
}

// Delete 处理 DELETE /activities/:id，硬删除
func (h *ActivityHandler) Delete(c *gin.Context) {
	if err := h.activityService.Delete(c.Request.Context(), c.Param("id")); err != nil {
		HandleServiceError(c, err)
		return
	}
	SuccessResponse(c, http.StatusOK, gin.H{"message": "activity deleted"})
}

// BatchAdd 处理 POST /activities/batch-add，按标题幂等写入内置示例活动
func (h *ActivityHandler) BatchAdd(c *gin.Context) {
	result, err := h.activityService.SeedExamples(c.Request.Context())
	if err != nil {
		HandleServiceError(c, err)
		return
	}
	SuccessResponse(c, http.StatusOK, gin.H{
		"message": "seed activities applied",
		"added":   result.Added,
		"skipped": result.Skipped,
		"ids":     result.IDs,
	})
}
