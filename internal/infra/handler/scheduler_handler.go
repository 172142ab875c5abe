package handler

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/KasumiMercury/primind-remind-scheduler/internal/observability/logging"
)

// ArmedReporter exposes the scheduler's armed due time.
type ArmedReporter interface {
	Armed() (time.Time, bool)
}

type SchedulerStatusResponse struct {
	Armed    bool       `json:"armed"`
	NextTime *time.Time `json:"next_time,omitempty"`
}

type SchedulerHandler struct {
	scheduler ArmedReporter
}

func NewSchedulerHandler(scheduler ArmedReporter) *SchedulerHandler {
	return &SchedulerHandler{
		scheduler: scheduler,
	}
}

func (h *SchedulerHandler) Status(c *gin.Context) {
	at, armed := h.scheduler.Armed()

	resp := SchedulerStatusResponse{Armed: armed}
	if armed {
		resp.NextTime = &at
	}

	c.JSON(http.StatusOK, resp)
}

func (h *SchedulerHandler) RegisterRoutes(router *gin.RouterGroup) {
	router.GET("/scheduler", withModule(logging.ModuleScheduler), h.Status)
}
