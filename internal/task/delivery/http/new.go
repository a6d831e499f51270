package http

import (
	"github.com/gin-gonic/gin"

	"daycraft/internal/task"
	"daycraft/pkg/datemath"
	"daycraft/pkg/log"
)

// Handler is the public interface for the task HTTP delivery layer.
type Handler interface {
	Parse(c *gin.Context)
	Create(c *gin.Context)
	QuickCreate(c *gin.Context)
	List(c *gin.Context)
	Detail(c *gin.Context)
	Defer(c *gin.Context)
	Export(c *gin.Context)
	Prioritized(c *gin.Context)
	Stale(c *gin.Context)
	RealityCheck(c *gin.Context)
	Insights(c *gin.Context)
}

type handler struct {
	l   log.Logger
	uc  task.UseCase
	cal *datemath.Calendar
}

// New creates a new HTTP handler for the task domain. Date arguments without
// an offset are read in cal; nil means UTC.
func New(l log.Logger, uc task.UseCase, cal *datemath.Calendar) Handler {
	if cal == nil {
		cal = datemath.UTC()
	}
	return &handler{
		l:   l,
		uc:  uc,
		cal: cal,
	}
}
