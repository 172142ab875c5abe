package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/KasumiMercury/primind-remind-scheduler/internal/app"
	"github.com/KasumiMercury/primind-remind-scheduler/internal/observability/logging"
)

type TemplateHandler struct {
	useCase app.TemplateUseCase
}

func NewTemplateHandler(useCase app.TemplateUseCase) *TemplateHandler {
	return &TemplateHandler{
		useCase: useCase,
	}
}

func (h *TemplateHandler) Create(c *gin.Context) {
	var req CreateContentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		bindError(c, err)

		return
	}

	output, err := h.useCase.CreateTemplate(c.Request.Context(), req.toInput(currentUserID(c)))
	if err != nil {
		handleError(c, err)

		return
	}

	c.JSON(http.StatusCreated, FromContentOutput(output))
}

func (h *TemplateHandler) List(c *gin.Context) {
	var req ListRequest
	if err := c.ShouldBindQuery(&req); err != nil {
		bindError(c, err)

		return
	}

	output, err := h.useCase.ListTemplates(c.Request.Context(), app.ListInput{
		UserID: currentUserID(c),
		SortBy: req.SortBy,
	})
	if err != nil {
		handleError(c, err)

		return
	}

	c.JSON(http.StatusOK, FromContentsOutput(output))
}

func (h *TemplateHandler) Search(c *gin.Context) {
	var req SearchRequest
	if err := c.ShouldBindQuery(&req); err != nil {
		bindError(c, err)

		return
	}

	output, err := h.useCase.SearchTemplates(c.Request.Context(), app.SearchInput{
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

func (h *TemplateHandler) Get(c *gin.Context) {
	output, err := h.useCase.GetTemplate(c.Request.Context(), app.ResourceInput{
		UserID: currentUserID(c),
		ID:     c.Param("id"),
	})
	if err != nil {
		handleError(c, err)

		return
	}

	c.JSON(http.StatusOK, FromContentOutput(output))
}

func (h *TemplateHandler) Update(c *gin.Context) {
	var req UpdateContentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		bindError(c, err)

		return
	}

	output, err := h.useCase.UpdateTemplate(c.Request.Context(), req.toInput(currentUserID(c), c.Param("id")))
	if err != nil {
		handleError(c, err)

		return
	}

	c.JSON(http.StatusOK, FromContentOutput(output))
}

func (h *TemplateHandler) Delete(c *gin.Context) {
	if err := h.useCase.DeleteTemplate(c.Request.Context(), app.ResourceInput{
		UserID: currentUserID(c),
		ID:     c.Param("id"),
	}); err != nil {
		handleError(c, err)

		return
	}

	c.Status(http.StatusNoContent)
}

func (h *TemplateHandler) RegisterRoutes(router *gin.RouterGroup) {
	group := router.Group("/templates", withModule(logging.ModuleReminder))
	{
		group.GET("", h.List)
		group.POST("", h.Create)
		group.GET("/search", h.Search)
		group.GET("/:id", h.Get)
		group.PUT("/:id", h.Update)
		group.DELETE("/:id", h.Delete)
	}
}
