package model

import (
	"time"

	"github.com/google/uuid"
)

// CallAnalytics is a per-day aggregate of call outcomes. One row per calendar
// date, upserted on every booking.
type CallAnalytics struct {
	ID                 uuid.UUID `db:"id" json:"id"`
	TotalCalls         int       `db:"total_calls" json:"total_calls"`
	AppointmentsBooked int       `db:"appointments_booked" json:"appointments_booked"`
	RevenueGenerated   float64   `db:"revenue_generated" json:"revenue_generated"`
	ConversionRate     float64   `db:"conversion_rate" json:"conversion_rate"`
	Date               time.Time `db:"date" json:"date"`
	CreatedAt          time.Time `db:"created_at" json:"created_at"`
}

// RecordCallOutcome counts one call that produced one booking with the given
// revenue. Every recorded outcome counts as both a call and a booking, so a
// day consisting solely of bookings reports a 100% conversion rate. That
// conflation matches how the clinic has always read these numbers; changing
// the model means changing only this function.
func (a *CallAnalytics) RecordCallOutcome(revenue float64) {
	a.TotalCalls++
	a.AppointmentsBooked++
	a.RevenueGenerated += revenue
	a.ConversionRate = a.recomputeConversionRate()
}

func (a *CallAnalytics) recomputeConversionRate() float64 {
	if a.TotalCalls == 0 {
		return 0
	}
	return float64(a.AppointmentsBooked) / float64(a.TotalCalls) * 100
}

// ClinicStats is the lifetime and today view returned by the stats endpoint.
type ClinicStats struct {
	TotalAppointments     int     `db:"total_appointments" json:"total_appointments"`
	CompletedAppointments int     `db:"completed_appointments" json:"completed_appointments"`
	TotalRevenue          float64 `db:"total_revenue" json:"total_revenue"`
	UniquePatients        int     `db:"unique_patients" json:"unique_patients"`
	TodayAppointments     int     `db:"today_appointments" json:"today_appointments"`
	TodayRevenue          float64 `db:"today_revenue" json:"today_revenue"`
	PendingFollowUps      int     `db:"pending_follow_ups" json:"pending_follow_ups"`
}
