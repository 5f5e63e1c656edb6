package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	v1 "github.com/tupyy/async-engine/api/v1"
	"github.com/tupyy/async-engine/internal/models"
)

// GetScheduler returns the pool size and queue statistics
// (GET /scheduler)
func (h *Handler) GetScheduler(c *gin.Context) {
	c.JSON(http.StatusOK, v1.NewSchedulerStatusFromModel(h.status()))
}

// UpdateScheduler changes the desired number of pool workers
// (PUT /scheduler)
func (h *Handler) UpdateScheduler(c *gin.Context) {
	var body v1.UpdateSchedulerJSONBody
	if err := c.ShouldBindJSON(&body); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	applied := h.parallelism.SetDesired(*body.Workers)
	zap.S().Named("scheduler_handler").Infow("pool resized", "requested", *body.Workers, "applied", applied)

	c.JSON(http.StatusOK, v1.NewSchedulerStatusFromModel(h.status()))
}

func (h *Handler) status() models.SchedulerStatus {
	stats := h.stats.Stats()
	return models.SchedulerStatus{
		Workers:     stats.Workers,
		Desired:     h.parallelism.Desired(),
		Queued:      stats.Queued,
		Running:     stats.Running,
		Independent: stats.Independent,
	}
}
