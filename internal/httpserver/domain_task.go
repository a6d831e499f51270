package httpserver

import (
	"context"

	"github.com/gin-gonic/gin"

	taskHTTP "daycraft/internal/task/delivery/http"
)

// setupTaskDomain registers the task routes. The use case arrives fully
// wired (repository, parser, calendar booking) from main.
func (srv HTTPServer) setupTaskDomain(ctx context.Context, api *gin.RouterGroup) error {
	h := taskHTTP.New(srv.l, srv.taskUC, srv.calendar)
	taskHTTP.RegisterRoutes(api, h)

	srv.l.Infof(ctx, "Task domain registered")
	return nil
}
