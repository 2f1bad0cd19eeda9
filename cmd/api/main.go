package main

import (
	"fmt"
	"net/http"
	"time"

	"database/sql"

	"github.com/gorilla/mux"
	_ "github.com/lib/pq"
	"github.com/sirupsen/logrus"

	"github.com/oguzhantanitmis/finance.ogzie.com/internal/cache"
	"github.com/oguzhantanitmis/finance.ogzie.com/internal/config"
	"github.com/oguzhantanitmis/finance.ogzie.com/internal/handler"
	"github.com/oguzhantanitmis/finance.ogzie.com/internal/integrations/tcmb"
	"github.com/oguzhantanitmis/finance.ogzie.com/internal/repository"
	"github.com/oguzhantanitmis/finance.ogzie.com/internal/scheduler"
	"github.com/oguzhantanitmis/finance.ogzie.com/internal/service"
	"github.com/oguzhantanitmis/finance.ogzie.com/internal/utils/email"
)

func main() {
	// Initialize logger
	logger := logrus.New()
	logger.SetFormatter(&logrus.JSONFormatter{})

	// Load configuration
	cfg, err := config.NewConfig()
	if err != nil {
		logger.Fatalf("Failed to load config: %v", err)
	}
	logLevel, err := logrus.ParseLevel(cfg.LogLevel)
	if err != nil {
		logLevel = logrus.InfoLevel
	}
	logger.SetLevel(logLevel)

	// Initialize database
	db, err := sql.Open("postgres", cfg.DBConn)
	if err != nil {
		logger.Fatalf("Failed to connect to database: %v", err)
	}
	defer db.Close()
	if err := db.Ping(); err != nil {
		logger.Fatalf("Failed to ping database: %v", err)
	}

	// Initialize layers
	repo := repository.NewRepository(db)
	tcmbClient := tcmb.NewClient(cfg, logger)
	rates := cache.NewRatesCache(cfg.RedisAddr, tcmbClient, time.Duration(cfg.RatesCacheTTL)*time.Second, logger)
	mailer := email.NewSender(cfg, logger)
	svc := service.NewService(repo, logger, cfg, rates, mailer)
	h := handler.NewHandler(svc, logger)

	// Setup router
	r := mux.NewRouter()
	h.RegisterRoutes(r)

	// Start recurring jobs
	sched := scheduler.NewScheduler(svc, rates, cfg, logger)
	if err := sched.Start(); err != nil {
		logger.Fatalf("Failed to start scheduler: %v", err)
	}
	defer sched.Stop()

	// Start server
	addr := fmt.Sprintf(":%s", cfg.Port)
	server := &http.Server{
		Addr:         addr,
		Handler:      r,
		ReadTimeout:  10 * time.Second,
		WriteTimeout: 10 * time.Second,
	}
	logger.Infof("Starting server on %s", addr)
	if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		logger.Fatalf("Server failed: %v", err)
	}
}
