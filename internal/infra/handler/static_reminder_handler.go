package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/KasumiMercury/primind-remind-scheduler/internal/app"
	"github.com/KasumiMercury/primind-remind-scheduler/internal/observability/logging"
)

type StaticReminderHandler struct {
	useCase app.StaticReminderUseCase
}

func NewStaticReminderHandler(useCase app.StaticReminderUseCase) *StaticReminderHandler {
	return &StaticReminderHandler{
		useCase: useCase,
	}
}

func (h *StaticReminderHandler) Create(c *gin.Context) {
	var req CreateContentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		bindError(c, err)

		return
	}

	output, err := h.useCase.CreateStaticReminder(c.Request.Context(), req.toInput(currentUserID(c)))
	if err != nil {
		handleError(c, err)

		return
	}

	c.JSON(http.StatusCreated, FromContentOutput(output))
}

func (h *StaticReminderHandler) List(c *gin.Context) {
	var req ListRequest
	if err := c.ShouldBindQuery(&req); err != nil {
		bindError(c, err)

		return
	}

	output, err := h.useCase.ListStaticReminders(c.Request.Context(), app.ListInput{
		UserID: currentUserID(c),
		SortBy: req.SortBy,
	})
	if err != nil {
		handleError(c, err)

		return
	}

	c.JSON(http.StatusOK, FromContentsOutput(output))
}

func (h *StaticReminderHandler) Search(c *gin.Context) {
	var req SearchRequest
	if err := c.ShouldBindQuery(&req); err != nil {
		bindError(c, err)

		return
	}

	output, err := h.useCase.SearchStaticReminders(c.Request.Context(), app.SearchInput{
		UserID: currentUserID(c),
		Query:  req.Query,
		SortBy: req.SortBy,
	})
	if err != nil {
		handleError(c, err)

		return
	}

	c.JSON(http.StatusOK, FromContentsOutput(output))
}

func (h *StaticReminderHandler) Get(c *gin.Context) {
	output, err := h.useCase.GetStaticReminder(c.Request.Context(), app.ResourceInput{
		UserID: currentUserID(c),
		ID:     c.Param("id"),
	})
	if err != nil {
		handleError(c, err)

		return
	}

	c.JSON(http.StatusOK, FromContentOutput(output))
}

func (h *StaticReminderHandler) Update(c *gin.Context) {
	var req UpdateContentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		bindError(c, err)

		return
	}

	output, err := h.useCase.UpdateStaticReminder(c.Request.Context(), req.toInput(currentUserID(c), c.Param("id")))
	if err != nil {
		handleError(c, err)

		return
	}

	c.JSON(http.StatusOK, FromContentOutput(output))
}

func (h *StaticReminderHandler) Delete(c *gin.Context) {
	if err := h.useCase.DeleteStaticReminder(c.Request.Context(), app.ResourceInput{
		UserID: currentUserID(c),
		ID:     c.Param("id"),
	}); err != nil {
		handleError(c, err)

		return
	}

	c.Status(http.StatusNoContent)
}

func (h *StaticReminderHandler) Trigger(c *gin.Context) {
	if err := h.useCase.TriggerStaticReminder(c.Request.Context(), app.ResourceInput{
		UserID: currentUserID(c),
		ID:     c.Param("id"),
	}); err != nil {
		handleError(c, err)

		return
	}

	c.Status(http.StatusNoContent)
}

func (h *StaticReminderHandler) RegisterRoutes(router *gin.RouterGroup) {
	group := router.Group("/static-reminders", withModule(logging.ModuleReminder))
	{
		group.GET("", h.List)
		group.POST("", h.Create)
		group.GET("/search", h.Search)
		group.GET("/:id", h.Get)
		group.PUT("/:id", h.Update)
		group.DELETE("/:id", h.Delete)
		group.POST("/:id/trigger", h.Trigger)
	}
}
