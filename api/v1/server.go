package v1

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// ServerInterface represents all server handlers.
type ServerInterface interface {
	// (GET /scheduler)
	GetScheduler(c *gin.Context)
	// (PUT /scheduler)
	UpdateScheduler(c *gin.Context)
	// (GET /jobs)
	ListJobs(c *gin.Context)
	// (POST /jobs)
	CreateJob(c *gin.Context)
	// (GET /jobs/{id})
	GetJob(c *gin.Context, id string)
	// (DELETE /jobs/{id})
	CancelJob(c *gin.Context, id string)
}

// ServerInterfaceWrapper converts contexts to parameters.
type ServerInterfaceWrapper struct {
	Handler ServerInterface
}

func (siw *ServerInterfaceWrapper) GetScheduler(c *gin.Context) {
	siw.Handler.GetScheduler(c)
}

func (siw *ServerInterfaceWrapper) UpdateScheduler(c *gin.Context) {
	siw.Handler.UpdateScheduler(c)
}

func (siw *ServerInterfaceWrapper) ListJobs(c *gin.Context) {
	siw.Handler.ListJobs(c)
}

func (siw *ServerInterfaceWrapper) CreateJob(c *gin.Context) {
	siw.Handler.CreateJob(c)
}

func (siw *ServerInterfaceWrapper) GetJob(c *gin.Context) {
	id := c.Param("id")
	if id == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "missing path parameter id"})
		return
	}
	siw.Handler.GetJob(c, id)
}

func (siw *ServerInterfaceWrapper) CancelJob(c *gin.Context) {
	id := c.Param("id")
	if id == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "missing path parameter id"})
		return
	}
	siw.Handler.CancelJob(c, id)
}

// RegisterHandlers creates http.Handler with routing matching the API.
func RegisterHandlers(router gin.IRouter, si ServerInterface) {
	wrapper := ServerInterfaceWrapper{Handler: si}

	router.GET("/scheduler", wrapper.GetScheduler)
	router.PUT("/scheduler", wrapper.UpdateScheduler)
	router.GET("/jobs", wrapper.ListJobs)
	router.POST("/jobs", wrapper.CreateJob)
	router.GET("/jobs/:id", wrapper.GetJob)
	router.DELETE("/jobs/:id", wrapper.CancelJob)
}
