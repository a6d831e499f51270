package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"daycraft/config"
	_ "daycraft/docs" // Swagger docs
	"daycraft/internal/httpserver"
	"daycraft/internal/middleware"
	"daycraft/internal/nlp"
	"daycraft/internal/task/repository"
	fileRepo "daycraft/internal/task/repository/file"
	pgRepo "daycraft/internal/task/repository/postgre"
	"daycraft/internal/task/usecase"
	"daycraft/pkg/datemath"
	"daycraft/pkg/gcalendar"
	"daycraft/pkg/log"
)

// @title       Daycraft API
// @description Turns one-line free text into structured tasks and plans the day around them.
// @version     1
// @host        localhost:8080
// @schemes     http
func main() {
	// 1. Configuration
	cfg, err := config.Load()
	if err != nil {
		fmt.Println("Failed to load config: ", err)
		os.Exit(1)
	}

	// 2. Logger
	logger := log.Init(log.ZapConfig{
		Level:        cfg.Logger.Level,
		Mode:         cfg.Logger.Mode,
		Encoding:     cfg.Logger.Encoding,
		ColorEnabled: cfg.Logger.ColorEnabled,
	})

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	logger.Info(ctx, "Starting Daycraft...")
	logger.Infof(ctx, "Environment: %s", cfg.Environment.Name)

	if err := run(ctx, cfg, logger); err != nil {
		logger.Errorf(ctx, "Server stopped with error: %v", err)
		os.Exit(1)
	}

	logger.Info(ctx, "Server stopped gracefully")
}

func run(ctx context.Context, cfg *config.Config, logger log.Logger) error {
	// 3. Calendar
	calendar, err := datemath.NewCalendar(cfg.Calendar.Timezone, cfg.Calendar.FirstWeekday)
	if err != nil {
		return err
	}
	logger.Infof(ctx, "Calendar: %s, weeks start on %s", cfg.Calendar.Timezone, cfg.Calendar.FirstWeekday)

	// 4. Task store
	var (
		taskRepo repository.Repository
		probe    func(context.Context) error
	)
	switch cfg.Store.Driver {
	case config.StoreDriverPostgres:
		pool, err := pgRepo.Connect(ctx, cfg.Store.PostgresDSN)
		if err != nil {
			return fmt.Errorf("postgres: %w", err)
		}
		defer pool.Close()
		taskRepo = pgRepo.New(pool, logger)
		probe = pool.Ping
		logger.Info(ctx, "Task store: postgres")
	default:
		taskRepo = fileRepo.New(cfg.Store.Path, logger)
		logger.Infof(ctx, "Task store: file %s", cfg.Store.Path)
	}

	// 5. Google Calendar (optional)
	var events usecase.EventBooker
	if cfg.GoogleCalendar.CredentialsPath != "" {
		client, err := gcalendar.NewClientFromCredentialsFile(ctx, cfg.GoogleCalendar.CredentialsPath, cfg.GoogleCalendar.TokenPath)
		if err != nil {
			logger.Warnf(ctx, "Google Calendar not available (optional): %v", err)
		} else {
			events = client
			logger.Info(ctx, "Google Calendar initialized")
		}
	}

	// 6. Task UseCase
	taskUC := usecase.New(logger, taskRepo, nlp.NewParser(calendar), events, usecase.Config{
		CapacityMinutes: cfg.Planner.CapacityMinutes,
		StaleDays:       cfg.Planner.StaleDays,
		DeferThreshold:  cfg.Planner.DeferThreshold,
		DeepWorkMorning: cfg.Planner.DeepWorkMorning,
		CalendarID:      cfg.GoogleCalendar.CalendarID,
	})

	// 7. HTTP Server
	httpServer, err := httpserver.New(logger, httpserver.Config{
		Port:        cfg.HTTPServer.Port,
		Mode:        cfg.HTTPServer.Mode,
		Environment: cfg.Environment.Name,
		Middleware:  middleware.New(logger, middleware.Config{RateLimitPerMin: cfg.RateLimit.PerMin}),
		ReadyProbe:  probe,
		TaskUseCase: taskUC,
		Calendar:    calendar,
	})
	if err != nil {
		return fmt.Errorf("init HTTP server: %w", err)
	}

	// 8. Run
	return httpServer.Run(ctx)
}
