package postgres

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"

	"github.com/romidental/reception-api/internal/model"
	"github.com/romidental/reception-api/internal/repository"
	apperrors "github.com/romidental/reception-api/pkg/errors"
)

type analyticsRepository struct {
	db *sqlx.DB
}

func NewAnalyticsRepository(db *sqlx.DB) repository.AnalyticsRepository {
	return &analyticsRepository{db: db}
}

// RecordCallOutcome upserts today's analytics row in a single statement so
// concurrent bookings cannot lose an increment. The SQL mirrors
// model.CallAnalytics.RecordCallOutcome: one outcome is one call and one
// booking, and conversion_rate is always recomputed from the counters.
func (r *analyticsRepository) RecordCallOutcome(ctx context.Context, revenue float64) error {
	query := `
		INSERT INTO call_analytics (
			id, total_calls, appointments_booked, revenue_generated,
			conversion_rate, date, created_at
		) VALUES ($1, 1, 1, $2, 100, CURRENT_DATE, now())
		ON CONFLICT (date) DO UPDATE SET
			total_calls = call_analytics.total_calls + 1,
			appointments_booked = call_analytics.appointments_booked + 1,
			revenue_generated = call_analytics.revenue_generated + EXCLUDED.revenue_generated,
			conversion_rate = (call_analytics.appointments_booked + 1)::double precision
				/ (call_analytics.total_calls + 1)::double precision * 100
	`
	_, err := r.db.ExecContext(ctx, query, uuid.New(), revenue)
	if err != nil {
		return apperrors.Database("failed to record call outcome", err)
	}
	return nil
}

// GetByDate returns the analytics row for the given calendar date, or a
// zeroed record when none exists. It never returns nil on success.
func (r *analyticsRepository) GetByDate(ctx context.Context, date time.Time) (*model.CallAnalytics, error) {
	query := `
		SELECT id, total_calls, appointments_booked, revenue_generated,
		       conversion_rate, date, created_at
		FROM call_analytics
		WHERE date = $1::date
	`
	var analytics model.CallAnalytics
	err := r.db.GetContext(ctx, &analytics, query, date)
	if errors.Is(err, sql.ErrNoRows) {
		return &model.CallAnalytics{Date: date}, nil
	}
	if err != nil {
		return nil, apperrors.Database("failed to get analytics", err)
	}
	return &analytics, nil
}

func (r *analyticsRepository) ClinicStats(ctx context.Context) (*model.ClinicStats, error) {
	var stats model.ClinicStats

	totalsQuery := `
		SELECT
			COUNT(*) AS total_appointments,
			COALESCE(SUM(CASE WHEN status = 'completed' THEN 1 ELSE 0 END), 0) AS completed_appointments,
			COALESCE(SUM(revenue), 0) AS total_revenue,
			COUNT(DISTINCT phone_number) AS unique_patients
		FROM appointments
	`
	if err := r.db.GetContext(ctx, &stats, totalsQuery); err != nil {
		return nil, apperrors.Database("failed to get appointment totals", err)
	}

	todayQuery := `
		SELECT
			COUNT(*) AS today_appointments,
			COALESCE(SUM(revenue), 0) AS today_revenue
		FROM appointments
		WHERE scheduled_date::date = CURRENT_DATE
	`
	var today struct {
		TodayAppointments int     `db:"today_appointments"`
		TodayRevenue      float64 `db:"today_revenue"`
	}
	if err := r.db.GetContext(ctx, &today, todayQuery); err != nil {
		return nil, apperrors.Database("failed to get today's totals", err)
	}
	stats.TodayAppointments = today.TodayAppointments
	stats.TodayRevenue = today.TodayRevenue

	pendingQuery := `SELECT COUNT(*) FROM follow_ups WHERE status = 'pending'`
	if err := r.db.GetContext(ctx, &stats.PendingFollowUps, pendingQuery); err != nil {
		return nil, apperrors.Database("failed to count pending follow-ups", err)
	}

	return &stats, nil
}
