package handler

import (
	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"

	"github.com/maxviazov/hydra-paging/internal/service"
)

// LinkSettings tells list endpoints how to read paging params and build page links.
type LinkSettings struct {
	PageParam         string
	ItemsPerPageParam string
	TrustForwarded    bool
}

// Register mounts all public routes on the given engine.
func Register(r *gin.Engine, repo Pinger, eventSvc service.EventService, links LinkSettings) {
	h := NewHealthHandler(repo)

	r.GET("/live", h.Liveness)
	r.GET("/ready", h.Readiness)

	api := r.Group(APIV1Prefix)
	{
		health := api.Group("/health")
		{
			health.GET("/live", h.Liveness)
			health.GET("/ready", h.Readiness)
		}
		NewEventHandler(eventSvc, links).Register(api)
	}
}

// NewEngine builds a gin engine with recovery and zerolog access logging.
func NewEngine(logger zerolog.Logger) *gin.Engine {
	r := gin.New()
	r.Use(gin.Recovery(), AccessLog(logger))
	return r
}
