package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	v1 "github.com/tupyy/async-engine/api/v1"
	srvErrors "github.com/tupyy/async-engine/pkg/errors"
)

// ListJobs returns every known job
// (GET /jobs)
func (h *Handler) ListJobs(c *gin.Context) {
	c.JSON(http.StatusOK, v1.NewJobListFromModel(h.jobsSrv.List()))
}

// CreateJob submits a synthetic job
// (POST /jobs)
func (h *Handler) CreateJob(c *gin.Context) {
	var body v1.CreateJobJSONBody
	if err := c.ShouldBindJSON(&body); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	job := h.jobsSrv.Create(body.ToJobSpec())

	c.JSON(http.StatusAccepted, v1.NewJobFromModel(job))
}

// GetJob returns a single job
// (GET /jobs/{id})
func (h *Handler) GetJob(c *gin.Context, id string) {
	job, err := h.jobsSrv.Get(id)
	if err != nil {
		if srvErrors.IsResourceNotFoundError(err) {
			c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
			return
		}
		zap.S().Named("jobs_handler").Errorw("failed to get job", "id", id, "error", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to get job"})
		return
	}

	c.JSON(http.StatusOK, v1.NewJobFromModel(job))
}

// CancelJob requests cancellation of a job
// (DELETE /jobs/{id})
func (h *Handler) CancelJob(c *gin.Context, id string) {
	job, err := h.jobsSrv.Cancel(id)
	if err != nil {
		if srvErrors.IsResourceNotFoundError(err) {
			c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
			return
		}
		zap.S().Named("jobs_handler").Errorw("failed to cancel job", "id", id, "error", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to cancel job"})
		return
	}

	c.JSON(http.StatusOK, v1.NewJobFromModel(job))
}
