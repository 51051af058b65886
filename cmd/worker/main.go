package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/kelseyhightower/envconfig"

	"github.com/romidental/reception-api/internal/config"
	"github.com/romidental/reception-api/internal/email"
	"github.com/romidental/reception-api/internal/repository"
	"github.com/romidental/reception-api/internal/repository/postgres"
	"github.com/romidental/reception-api/pkg/logger"
	"github.com/romidental/reception-api/pkg/metrics"
)

// workerConfig holds the knobs specific to the digest worker. The shared
// database and SMTP settings come from the main configuration file.
type workerConfig struct {
	PollInterval    time.Duration `envconfig:"POLL_INTERVAL" default:"1h"`
	DigestRecipient string        `envconfig:"DIGEST_RECIPIENT" required:"true"`
}

func main() {
	log := logger.NewLogger(nil)

	var wc workerConfig
	if err := envconfig.Process("reception_worker", &wc); err != nil {
		log.Fatal(err, "failed to load worker configuration")
	}

	cfg, err := config.Load()
	if err != nil {
		log.Fatal(err, "failed to load configuration")
	}

	db, err := postgres.NewDB(cfg.Database)
	if err != nil {
		log.Fatal(err, "failed to connect to database")
	}
	defer db.Close()

	m := metrics.NewMetrics("reception", "worker")
	mailer := email.NewService(cfg.SMTP, cfg.Clinic.Name)
	followUps := postgres.NewFollowUpRepository(db)

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	log.Info("digest worker started", "poll_interval", wc.PollInterval.String())

	ticker := time.NewTicker(wc.PollInterval)
	defer ticker.Stop()

	for {
		runDigest(ctx, followUps, mailer, wc.DigestRecipient, m, log)
		select {
		case <-ctx.Done():
			log.Info("digest worker stopped")
			os.Exit(0)
		case <-ticker.C:
		}
	}
}

func runDigest(ctx context.Context, followUps repository.FollowUpRepository, mailer email.Service, recipient string, m *metrics.Metrics, log *logger.Logger) {
	pending, err := followUps.ListPending(ctx)
	if err != nil {
		log.Error(err, "failed to list pending follow-ups")
		return
	}
	if len(pending) == 0 {
		log.Debug("no pending follow-ups")
		return
	}

	if err := mailer.SendFollowUpDigest(recipient, pending); err != nil {
		m.EmailsFailed.Inc()
		log.Error(err, "failed to send digest", "pending", len(pending))
		return
	}
	m.EmailsSent.Inc()
	log.Info("digest sent", "pending", len(pending))
}
