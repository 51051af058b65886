package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/romidental/reception-api/internal/config"
	"github.com/romidental/reception-api/internal/email"
	authhandler "github.com/romidental/reception-api/internal/handler/auth"
	receptionhandler "github.com/romidental/reception-api/internal/handler/reception"
	"github.com/romidental/reception-api/internal/repository/postgres"
	"github.com/romidental/reception-api/internal/router"
	"github.com/romidental/reception-api/internal/service/reception"
	"github.com/romidental/reception-api/pkg/auth"
	"github.com/romidental/reception-api/pkg/logger"
	"github.com/romidental/reception-api/pkg/metrics"
)

func main() {
	log := logger.NewLogger(nil)

	cfg, err := config.Load()
	if err != nil {
		log.Fatal(err, "failed to load configuration")
	}

	db, err := postgres.NewDB(cfg.Database)
	if err != nil {
		log.Fatal(err, "failed to connect to database")
	}
	defer db.Close()

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	if err := postgres.InitSchema(ctx, db); err != nil {
		cancel()
		log.Fatal(err, "failed to initialize schema")
	}
	cancel()

	m := metrics.NewMetrics("reception", "api")
	mailer := email.NewService(cfg.SMTP, cfg.Clinic.Name)
	tokens := auth.NewJWTService(cfg.JWT.Secret, time.Duration(cfg.JWT.ExpiryHours)*time.Hour)

	svc := reception.NewService(
		cfg.Clinic,
		postgres.NewPatientRepository(db),
		postgres.NewAppointmentRepository(db),
		postgres.NewFollowUpRepository(db),
		postgres.NewAnalyticsRepository(db),
		mailer,
		m,
		log,
	)

	engine := router.New(cfg,
		receptionhandler.NewHandler(svc),
		authhandler.NewHandler(cfg.Admin, tokens, log),
		tokens,
	)

	srv := &http.Server{
		Addr:         fmt.Sprintf(":%d", cfg.Server.Port),
		Handler:      engine,
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
	}

	go func() {
		log.Info("starting server", "port", cfg.Server.Port)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatal(err, "server failed")
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info("shutting down server")
	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer shutdownCancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Error(err, "forced shutdown")
	}
	log.Info("server stopped")
}
