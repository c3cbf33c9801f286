package main

import (
	"fmt"
	"os"

	"civicboard/internal/auth"
	"civicboard/internal/config"
	"civicboard/internal/db"
	httphandler "civicboard/internal/http"
	"civicboard/internal/http/middleware"
	"civicboard/internal/logger"
	"civicboard/internal/repository"
	"civicboard/internal/service"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to load config: %v\n", err)
		os.Exit(1)
	}

	appLogger := logger.New(cfg.Environment)

	database, err := db.New(cfg, appLogger)
	if err != nil {
		appLogger.Fatal().Err(err).Msg("failed to connect database")
	}

	analyticsRepo := repository.NewAnalyticsRepository(database)
	issueRepo := repository.NewIssueRepository(database)
	staffRepo := repository.NewStaffRepository(database)
	departmentRepo := repository.NewDepartmentRepository(database)
	reportRepo := repository.NewReportRepository(database)

	analyticsService := service.NewAnalyticsService(analyticsRepo, cfg.Reports.DefaultPeriodDays, cfg.Reports.MaxPeriodDays)
	issueService := service.NewIssueService(issueRepo)
	staffService := service.NewStaffService(staffRepo)
	departmentService := service.NewDepartmentService(departmentRepo)
	syncService := service.NewSyncService(reportRepo)

	tokenParser := auth.NewParser(cfg.Auth.AccessSecret)

	handler := httphandler.NewHandler(analyticsService, issueService, staffService, departmentService, syncService, appLogger)
	sessionAuth := middleware.Auth(tokenParser)
	syncAuth := middleware.SyncAuth(cfg.Auth.SyncToken)
	router := httphandler.NewRouter(handler, sessionAuth, syncAuth, cfg.Environment)

	addr := fmt.Sprintf("%s:%d", cfg.HTTP.Host, cfg.HTTP.Port)
	appLogger.Info().Str("addr", addr).Msg("starting dashboard service")

	if err := router.Run(addr); err != nil {
		appLogger.Error().Err(err).Msg("failed to start server")
		os.Exit(1)
	}
}
