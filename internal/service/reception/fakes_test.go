package reception

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/romidental/reception-api/internal/model"
	apperrors "github.com/romidental/reception-api/pkg/errors"
)

type fakePatientRepo struct {
	byPhone map[string]*model.Patient
}

func (f *fakePatientRepo) Create(_ context.Context, patient *model.Patient) error {
	patient.CreatedAt = time.Now()
	patient.UpdatedAt = time.Now()
	f.byPhone[patient.PhoneNumber] = patient
	return nil
}

func (f *fakePatientRepo) GetByPhone(_ context.Context, phone string) (*model.Patient, error) {
	patient, ok := f.byPhone[phone]
	if !ok {
		return nil, apperrors.NotFound("patient", nil)
	}
	return patient, nil
}

type fakeAppointmentRepo struct {
	items []*model.Appointment
}

func (f *fakeAppointmentRepo) Create(_ context.Context, appointment *model.Appointment) error {
	appointment.CreatedAt = time.Now()
	appointment.UpdatedAt = time.Now()
	f.items = append(f.items, appointment)
	return nil
}

func (f *fakeAppointmentRepo) ListByDate(_ context.Context, date time.Time) ([]*model.Appointment, error) {
	var out []*model.Appointment
	for _, apt := range f.items {
		y1, m1, d1 := apt.ScheduledDate.Date()
		y2, m2, d2 := date.Date()
		if y1 == y2 && m1 == m2 && d1 == d2 {
			out = append(out, apt)
		}
	}
	return out, nil
}

type fakeFollowUpRepo struct {
	byID map[uuid.UUID]*model.FollowUp
}

func (f *fakeFollowUpRepo) Create(_ context.Context, followUp *model.FollowUp) error {
	followUp.CreatedAt = time.Now()
	f.byID[followUp.ID] = followUp
	return nil
}

func (f *fakeFollowUpRepo) ListPending(_ context.Context) ([]*model.FollowUp, error) {
	var out []*model.FollowUp
	for _, followUp := range f.byID {
		if followUp.Status == model.FollowUpStatusPending {
			out = append(out, followUp)
		}
	}
	return out, nil
}

func (f *fakeFollowUpRepo) UpdateStatus(_ context.Context, id uuid.UUID, status model.FollowUpStatus) error {
	followUp, ok := f.byID[id]
	if !ok {
		return apperrors.NotFound("follow-up", nil)
	}
	followUp.Status = status
	if status == model.FollowUpStatusCompleted {
		now := time.Now()
		followUp.CompletedAt = &now
	} else {
		followUp.CompletedAt = nil
	}
	return nil
}

// fakeAnalyticsRepo keeps a single "today" bucket and derives clinic stats
// from the appointment fake, mirroring the SQL aggregates.
type fakeAnalyticsRepo struct {
	today        model.CallAnalytics
	appointments *fakeAppointmentRepo
}

func (f *fakeAnalyticsRepo) RecordCallOutcome(_ context.Context, revenue float64) error {
	f.today.RecordCallOutcome(revenue)
	return nil
}

func (f *fakeAnalyticsRepo) GetByDate(_ context.Context, date time.Time) (*model.CallAnalytics, error) {
	result := f.today
	result.Date = date
	return &result, nil
}

func (f *fakeAnalyticsRepo) ClinicStats(_ context.Context) (*model.ClinicStats, error) {
	stats := &model.ClinicStats{}
	phones := map[string]bool{}
	for _, apt := range f.appointments.items {
		stats.TotalAppointments++
		stats.TotalRevenue += apt.Revenue
		if apt.Status == model.AppointmentStatusCompleted {
			stats.CompletedAppointments++
		}
		phones[apt.PhoneNumber] = true
	}
	stats.UniquePatients = len(phones)
	return stats, nil
}

type fakeMailer struct {
	confirmations []string
	digests       []string
	err           error
}

func (f *fakeMailer) SendAppointmentConfirmation(to string, _ *model.Appointment) error {
	if f.err != nil {
		return f.err
	}
	f.confirmations = append(f.confirmations, to)
	return nil
}

func (f *fakeMailer) SendFollowUpDigest(to string, _ []*model.FollowUp) error {
	if f.err != nil {
		return f.err
	}
	f.digests = append(f.digests, to)
	return nil
}
