package httpserver

import (
	"context"
	"errors"

	"github.com/gin-gonic/gin"

	"daycraft/internal/middleware"
	"daycraft/internal/task"
	"daycraft/pkg/datemath"
	"daycraft/pkg/log"
)

// HTTPServer holds all dependencies for the HTTP server.
type HTTPServer struct {
	// Server
	gin         *gin.Engine
	l           log.Logger
	port        int
	mode        string
	environment string
	mw          middleware.Middleware
	readyProbe  func(ctx context.Context) error

	// Task domain
	taskUC   task.UseCase
	calendar *datemath.Calendar
}

// Config is the dependency bag passed to New().
type Config struct {
	Port        int
	Mode        string
	Environment string
	Middleware  middleware.Middleware
	ReadyProbe  func(ctx context.Context) error // optional

	// Task domain
	TaskUseCase task.UseCase
	Calendar    *datemath.Calendar
}

// New creates a new HTTPServer instance with every route registered.
func New(logger log.Logger, cfg Config) (*HTTPServer, error) {
	gin.SetMode(cfg.Mode)

	srv := &HTTPServer{
		l:           logger,
		gin:         gin.New(),
		port:        cfg.Port,
		mode:        cfg.Mode,
		environment: cfg.Environment,
		mw:          cfg.Middleware,
		readyProbe:  cfg.ReadyProbe,
		taskUC:      cfg.TaskUseCase,
		calendar:    cfg.Calendar,
	}

	if err := srv.validate(); err != nil {
		return nil, err
	}

	if err := srv.mapHandlers(); err != nil {
		return nil, err
	}

	return srv, nil
}

func (srv HTTPServer) validate() error {
	if srv.l == nil {
		return errors.New("logger is required")
	}
	if srv.mode == "" {
		return errors.New("mode is required")
	}
	if srv.port == 0 {
		return errors.New("port is required")
	}
	if srv.taskUC == nil {
		return errors.New("task use case is required")
	}
	return nil
}
