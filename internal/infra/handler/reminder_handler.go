package handler

import (
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/KasumiMercury/primind-remind-scheduler/internal/app"
	"github.com/KasumiMercury/primind-remind-scheduler/internal/observability/logging"
)

type ReminderHandler struct {
	useCase app.ReminderUseCase
}

func NewReminderHandler(useCase app.ReminderUseCase) *ReminderHandler {
	return &ReminderHandler{
		useCase: useCase,
	}
}

func (h *ReminderHandler) CreateReminder(c *gin.Context) {
	var req CreateReminderRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		bindError(c, err)

		return
	}

	output, err := h.useCase.CreateReminder(c.Request.Context(), app.CreateReminderInput{
		UserID:               currentUserID(c),
		Title:                req.Title,
		Text:                 req.Text,
		Time:                 req.Time,
		Repeat:               req.Repeat.toInput(),
		Color:                req.Color,
		NotificationServices: req.NotificationServices,
	})
	if err != nil {
		handleError(c, err)

		return
	}

	slog.InfoContext(c.Request.Context(), "reminder created successfully",
		"reminder_id", output.ID,
	)
	c.JSON(http.StatusCreated, FromReminderOutput(output))
}

func (h *ReminderHandler) ListReminders(c *gin.Context) {
	var req ListRequest
	if err := c.ShouldBindQuery(&req); err != nil {
		bindError(c, err)

		return
	}

	output, err := h.useCase.ListReminders(c.Request.Context(), app.ListRemindersInput{
		UserID: currentUserID(c),
		SortBy: req.SortBy,
	})
	if err != nil {
		handleError(c, err)

		return
	}

	c.JSON(http.StatusOK, FromRemindersOutput(output))
}

func (h *ReminderHandler) SearchReminders(c *gin.Context) {
	var req SearchRequest
	if err := c.ShouldBindQuery(&req); err != nil {
		bindError(c, err)

		return
	}

	output, err := h.useCase.SearchReminders(c.Request.Context(), app.SearchRemindersInput{
		UserID: currentUserID(c),
		Query:  req.Query,
		SortBy: req.SortBy,
	})
	if err != nil {
		handleError(c, err)

		return
	}

	c.JSON(http.StatusOK, FromRemindersOutput(output))
}

func (h *ReminderHandler) GetReminder(c *gin.Context) {
	output, err := h.useCase.GetReminder(c.Request.Context(), app.GetReminderInput{
		UserID: currentUserID(c),
		ID:     c.Param("id"),
	})
	if err != nil {
		handleError(c, err)

		return
	}

	c.JSON(http.StatusOK, FromReminderOutput(output))
}

func (h *ReminderHandler) UpdateReminder(c *gin.Context) {
	id := c.Param("id")

	var req UpdateReminderRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		bindError(c, err)

		return
	}

	input := app.UpdateReminderInput{
		UserID:               currentUserID(c),
		ID:                   id,
		Title:                req.Title,
		Text:                 req.Text,
		Time:                 req.Time,
		Color:                req.Color,
		NotificationServices: req.NotificationServices,
	}

	if req.Repeat != nil {
		repeat := req.Repeat.toInput()
		input.Repeat = &repeat
	}

	output, err := h.useCase.UpdateReminder(c.Request.Context(), input)
	if err != nil {
		handleError(c, err)

		return
	}

	slog.InfoContext(c.Request.Context(), "reminder updated successfully",
		"reminder_id", id,
	)
	c.JSON(http.StatusOK, FromReminderOutput(output))
}

func (h *ReminderHandler) DeleteReminder(c *gin.Context) {
	id := c.Param("id")

	if err := h.useCase.DeleteReminder(c.Request.Context(), app.DeleteReminderInput{
		UserID: currentUserID(c),
		ID:     id,
	}); err != nil {
		handleError(c, err)

		return
	}

	slog.InfoContext(c.Request.Context(), "reminder deleted successfully",
		"reminder_id", id,
	)
	c.Status(http.StatusNoContent)
}

func (h *ReminderHandler) TestReminder(c *gin.Context) {
	var req TestReminderRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		bindError(c, err)

		return
	}

	if err := h.useCase.TestReminder(c.Request.Context(), app.TestReminderInput{
		UserID:               currentUserID(c),
		Title:                req.Title,
		Text:                 req.Text,
		NotificationServices: req.NotificationServices,
	}); err != nil {
		handleError(c, err)

		return
	}

	c.Status(http.StatusNoContent)
}

func (h *ReminderHandler) RegisterRoutes(router *gin.RouterGroup) {
	reminders := router.Group("/reminders", withModule(logging.ModuleReminder))
	{
		reminders.GET("", h.ListReminders)
		reminders.POST("", h.CreateReminder)
		reminders.GET("/search", h.SearchReminders)
		reminders.POST("/test", h.TestReminder)
		reminders.GET("/:id", h.GetReminder)
		reminders.PUT("/:id", h.UpdateReminder)
		reminders.DELETE("/:id", h.DeleteReminder)
	}
}
