package handler

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/KasumiMercury/primind-remind-scheduler/internal/app"
	"github.com/KasumiMercury/primind-remind-scheduler/internal/observability/logging"
)

type CreateNotificationServiceRequest struct {
	Title string `json:"title" binding:"required"`
	URL   string `json:"url" binding:"required"`
}

type UpdateNotificationServiceRequest struct {
	Title *string `json:"title"`
	URL   *string `json:"url"`
}

type TestNotificationServiceRequest struct {
	URL string `json:"url" binding:"required"`
}

type DeleteNotificationServiceRequest struct {
	DeleteUsing bool `form:"delete_using"`
}

type NotificationServiceResponse struct {
	ID        string    `json:"id"`
	Title     string    `json:"title"`
	URL       string    `json:"url"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

type NotificationServicesResponse struct {
	NotificationServices []NotificationServiceResponse `json:"notification_services"`
	Count                int32                         `json:"count"`
}

type SchemesResponse struct {
	Schemes []string `json:"schemes"`
}

func FromNotificationServiceOutput(output app.NotificationServiceOutput) NotificationServiceResponse {
	return NotificationServiceResponse{
		ID:        output.ID,
		Title:     output.Title,
		URL:       output.URL,
		CreatedAt: output.CreatedAt,
		UpdatedAt: output.UpdatedAt,
	}
}

type NotificationServiceHandler struct {
	useCase app.NotificationServiceUseCase
}

func NewNotificationServiceHandler(useCase app.NotificationServiceUseCase) *NotificationServiceHandler {
	return &NotificationServiceHandler{
		useCase: useCase,
	}
}

func (h *NotificationServiceHandler) Create(c *gin.Context) {
	var req CreateNotificationServiceRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		bindError(c, err)

		return
	}

	output, err := h.useCase.CreateNotificationService(c.Request.Context(), app.CreateNotificationServiceInput{
		UserID: currentUserID(c),
		Title:  req.Title,
		URL:    req.URL,
	})
	if err != nil {
		handleError(c, err)

		return
	}

	c.JSON(http.StatusCreated, FromNotificationServiceOutput(output))
}

func (h *NotificationServiceHandler) List(c *gin.Context) {
	var req ListRequest
	if err := c.ShouldBindQuery(&req); err != nil {
		bindError(c, err)

		return
	}

	output, err := h.useCase.ListNotificationServices(c.Request.Context(), app.ListInput{
		UserID: currentUserID(c),
		SortBy: req.SortBy,
	})
	if err != nil {
		handleError(c, err)

		return
	}

	services := make([]NotificationServiceResponse, 0, len(output.NotificationServices))
	for _, s := range output.NotificationServices {
		services = append(services, FromNotificationServiceOutput(s))
	}

	c.JSON(http.StatusOK, NotificationServicesResponse{
		NotificationServices: services,
		Count:                output.Count,
	})
}

func (h *NotificationServiceHandler) Get(c *gin.Context) {
	output, err := h.useCase.GetNotificationService(c.Request.Context(), app.ResourceInput{
		UserID: currentUserID(c),
		ID:     c.Param("id"),
	})
	if err != nil {
		handleError(c, err)

		return
	}

	c.JSON(http.StatusOK, FromNotificationServiceOutput(output))
}

func (h *NotificationServiceHandler) Update(c *gin.Context) {
	var req UpdateNotificationServiceRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		bindError(c, err)

		return
	}

	output, err := h.useCase.UpdateNotificationService(c.Request.Context(), app.UpdateNotificationServiceInput{
		UserID: currentUserID(c),
		ID:     c.Param("id"),
		Title:  req.Title,
		URL:    req.URL,
	})
	if err != nil {
		handleError(c, err)

		return
	}

	c.JSON(http.StatusOK, FromNotificationServiceOutput(output))
}

func (h *NotificationServiceHandler) Delete(c *gin.Context) {
	var req DeleteNotificationServiceRequest
	if err := c.ShouldBindQuery(&req); err != nil {
		bindError(c, err)

		return
	}

	if err := h.useCase.DeleteNotificationService(c.Request.Context(), app.DeleteNotificationServiceInput{
		UserID:      currentUserID(c),
		ID:          c.Param("id"),
		DeleteUsing: req.DeleteUsing,
	}); err != nil {
		handleError(c, err)

		return
	}

	c.Status(http.StatusNoContent)
}

func (h *NotificationServiceHandler) Test(c *gin.Context) {
	var req TestNotificationServiceRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		bindError(c, err)

		return
	}

	if err := h.useCase.TestNotificationService(c.Request.Context(), app.TestNotificationServiceInput{
		URL: req.URL,
	}); err != nil {
		handleError(c, err)

		return
	}

	c.Status(http.StatusNoContent)
}

func (h *NotificationServiceHandler) Available(c *gin.Context) {
	c.JSON(http.StatusOK, SchemesResponse{
		Schemes: h.useCase.AvailableSchemes(c.Request.Context()),
	})
}

func (h *NotificationServiceHandler) RegisterRoutes(router *gin.RouterGroup) {
	group := router.Group("/notification-services", withModule(logging.ModuleNotification))
	{
		group.GET("", h.List)
		group.POST("", h.Create)
		group.GET("/available", h.Available)
		group.POST("/test", h.Test)
		group.GET("/:id", h.Get)
		group.PUT("/:id", h.Update)
		group.DELETE("/:id", h.Delete)
	}
}
