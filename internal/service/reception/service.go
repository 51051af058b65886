// Package reception orchestrates the receptionist's operations: it validates
// caller input, persists patients, appointments and follow-ups, and keeps the
// daily call analytics current.
package reception

import (
	"context"
	"fmt"
	"sort"
	"strings"
	"time"

	"github.com/google/uuid"
	gocache "github.com/patrickmn/go-cache"

	"github.com/romidental/reception-api/internal/config"
	"github.com/romidental/reception-api/internal/email"
	"github.com/romidental/reception-api/internal/model"
	"github.com/romidental/reception-api/internal/repository"
	"github.com/romidental/reception-api/internal/validation"
	apperrors "github.com/romidental/reception-api/pkg/errors"
	"github.com/romidental/reception-api/pkg/logger"
	"github.com/romidental/reception-api/pkg/metrics"
)

const (
	statsCacheKey = "clinic_stats"
	statsCacheTTL = 30 * time.Second
)

// The clinic books from a fixed slot grid; a slot is free until an
// appointment lands exactly on it.
var slotGrid = []string{"9:00 AM", "10:30 AM", "12:00 PM", "2:00 PM", "3:30 PM", "4:30 PM"}

type Service struct {
	cfg          config.ClinicConfig
	validator    *validation.Manager
	dates        *validation.DateValidator
	patients     repository.PatientRepository
	appointments repository.AppointmentRepository
	followUps    repository.FollowUpRepository
	analytics    repository.AnalyticsRepository
	mailer       email.Service
	metrics      *metrics.Metrics
	log          *logger.Logger
	cache        *gocache.Cache
}

func NewService(
	cfg config.ClinicConfig,
	patients repository.PatientRepository,
	appointments repository.AppointmentRepository,
	followUps repository.FollowUpRepository,
	analytics repository.AnalyticsRepository,
	mailer email.Service,
	m *metrics.Metrics,
	log *logger.Logger,
) *Service {
	return &Service{
		cfg:          cfg,
		validator:    validation.NewManager(cfg.Services, cfg.WorkingHours),
		dates:        validation.NewDateValidator(cfg.WorkingHours),
		patients:     patients,
		appointments: appointments,
		followUps:    followUps,
		analytics:    analytics,
		mailer:       mailer,
		metrics:      m,
		log:          log,
		cache:        gocache.New(statsCacheTTL, time.Minute),
	}
}

// RegisterPatient validates and stores a new patient record.
func (s *Service) RegisterPatient(ctx context.Context, name, phone, emailAddr string) (*model.Patient, error) {
	results := s.validator.ValidatePatientData(name, phone, emailAddr)
	if err := s.bundleError(results); err != nil {
		return nil, err
	}

	patient := &model.Patient{
		ID:          uuid.New(),
		Name:        results["name"].Value,
		PhoneNumber: results["phone"].Value,
	}
	if v := results["email"].Value; v != "" {
		patient.Email = &v
	}

	if err := s.patients.Create(ctx, patient); err != nil {
		return nil, fmt.Errorf("failed to register patient: %w", err)
	}

	s.log.Info("patient registered", "phone", patient.PhoneNumber)
	return patient, nil
}

// PatientByPhone looks up a patient by canonical phone number.
func (s *Service) PatientByPhone(ctx context.Context, phone string) (*model.Patient, error) {
	return s.patients.GetByPhone(ctx, phone)
}

// ScheduleAppointment validates the booking, persists it, records the call
// outcome for today's analytics and sends a best-effort confirmation email
// when the caller is a registered patient with an email on file.
func (s *Service) ScheduleAppointment(ctx context.Context, req *model.ScheduleAppointmentRequest) (*model.Appointment, error) {
	results := s.validator.ValidateAppointmentData(
		req.PatientName, req.Phone, req.ServiceType, req.PreferredDate, req.Notes,
	)
	if err := s.bundleError(results); err != nil {
		return nil, err
	}

	scheduledDate, err := time.Parse(time.RFC3339, results["appointment_date"].Value)
	if err != nil {
		return nil, apperrors.Internal(fmt.Errorf("unparsable canonical date: %w", err))
	}

	appointment := &model.Appointment{
		ID:            uuid.New(),
		PatientName:   results["patient_name"].Value,
		PhoneNumber:   results["phone"].Value,
		ServiceType:   results["service"].Value,
		ScheduledDate: scheduledDate,
		Status:        model.AppointmentStatusScheduled,
		Revenue:       s.cfg.ConsultationFee,
		Notes:         results["notes"].Value,
	}

	// Weak link to an existing patient record; booking does not require one.
	patient, err := s.patients.GetByPhone(ctx, appointment.PhoneNumber)
	if err == nil {
		appointment.PatientID = &patient.ID
	} else if !apperrors.Is(err, apperrors.ErrNotFound) {
		return nil, fmt.Errorf("failed to look up patient: %w", err)
	}

	if err := s.appointments.Create(ctx, appointment); err != nil {
		return nil, fmt.Errorf("failed to schedule appointment: %w", err)
	}

	if err := s.analytics.RecordCallOutcome(ctx, appointment.Revenue); err != nil {
		return nil, fmt.Errorf("failed to update analytics: %w", err)
	}
	s.cache.Delete(statsCacheKey)

	s.metrics.AppointmentsBooked.Inc()
	s.metrics.RevenueBooked.Add(appointment.Revenue)

	if patient != nil && patient.Email != nil {
		if mailErr := s.mailer.SendAppointmentConfirmation(*patient.Email, appointment); mailErr != nil {
			s.metrics.EmailsFailed.Inc()
			s.log.Error(mailErr, "confirmation email failed", "appointment_id", appointment.ID.String())
		} else {
			s.metrics.EmailsSent.Inc()
		}
	}

	s.log.Info("appointment scheduled",
		"appointment_id", appointment.ID.String(),
		"service", appointment.ServiceType,
	)
	return appointment, nil
}

// AppointmentsByDate lists appointments for a calendar day.
func (s *Service) AppointmentsByDate(ctx context.Context, date time.Time) ([]*model.Appointment, error) {
	return s.appointments.ListByDate(ctx, date)
}

// ScheduleFollowUp validates and stores a follow-up call request.
func (s *Service) ScheduleFollowUp(ctx context.Context, req *model.ScheduleFollowUpRequest) (*model.FollowUp, error) {
	results := s.validator.ValidateFollowUpData(req.PatientName, req.Phone, req.PreferredTime, req.Reason)
	if err := s.bundleError(results); err != nil {
		return nil, err
	}

	followUp := &model.FollowUp{
		ID:            uuid.New(),
		PatientName:   results["patient_name"].Value,
		PhoneNumber:   results["phone"].Value,
		PreferredTime: results["preferred_time"].Value,
		Reason:        results["reason"].Value,
		Status:        model.FollowUpStatusPending,
		ScheduledBy:   s.cfg.AgentName,
	}

	if err := s.followUps.Create(ctx, followUp); err != nil {
		return nil, fmt.Errorf("failed to schedule follow-up: %w", err)
	}

	s.metrics.FollowUpsScheduled.Inc()
	s.log.Info("follow-up scheduled", "follow_up_id", followUp.ID.String())
	return followUp, nil
}

// PendingFollowUps lists follow-ups still awaiting a call, oldest first.
func (s *Service) PendingFollowUps(ctx context.Context) ([]*model.FollowUp, error) {
	return s.followUps.ListPending(ctx)
}

// UpdateFollowUpStatus transitions a follow-up to the given status.
func (s *Service) UpdateFollowUpStatus(ctx context.Context, id uuid.UUID, status model.FollowUpStatus) error {
	if !status.Valid() {
		return apperrors.Validation(fmt.Sprintf("unknown follow-up status %q", status))
	}
	return s.followUps.UpdateStatus(ctx, id, status)
}

// AvailableSlots returns the free times on the clinic's slot grid for a date.
func (s *Service) AvailableSlots(ctx context.Context, dateStr string) ([]string, error) {
	result := s.dates.ValidateAppointmentDate(dateStr)
	if !result.IsValid {
		return nil, apperrors.Validation(result.Error)
	}

	date, err := time.Parse(time.RFC3339, result.Value)
	if err != nil {
		return nil, apperrors.Internal(fmt.Errorf("unparsable canonical date: %w", err))
	}

	appointments, err := s.appointments.ListByDate(ctx, date)
	if err != nil {
		return nil, fmt.Errorf("failed to list appointments: %w", err)
	}

	booked := make(map[string]bool, len(appointments))
	for _, apt := range appointments {
		booked[apt.ScheduledDate.Format("3:04 PM")] = true
	}

	var available []string
	for _, slot := range slotGrid {
		if !booked[slot] {
			available = append(available, slot)
		}
	}
	return available, nil
}

// Assessment is the triage outcome for a prospective patient.
type Assessment struct {
	Recommendation string `json:"recommendation"`
	Urgency        string `json:"urgency"`
}

// AssessClientNeeds triages a caller from their stated interest, concerns and
// availability, and records the call in today's analytics with no revenue.
func (s *Service) AssessClientNeeds(ctx context.Context, interest, concerns, availability string) (*Assessment, error) {
	concerns = strings.ToLower(validation.SanitizeText(concerns, 500))
	interest = strings.ToLower(validation.SanitizeText(interest, 500))
	availability = strings.ToLower(validation.SanitizeText(availability, 500))

	var assessment Assessment
	switch {
	case containsAny(concerns, "pain", "emergency", "urgent", "hurt"):
		assessment = Assessment{Recommendation: "emergency consultation", Urgency: "high"}
	case strings.Contains(interest, "interested") && strings.Contains(availability, "available"):
		assessment = Assessment{Recommendation: "detailed consultation", Urgency: "medium"}
	case containsAny(availability, "busy", "later"):
		assessment = Assessment{Recommendation: "follow-up call", Urgency: "low"}
	default:
		assessment = Assessment{Recommendation: "general consultation", Urgency: "medium"}
	}

	if err := s.analytics.RecordCallOutcome(ctx, 0); err != nil {
		return nil, fmt.Errorf("failed to update analytics: %w", err)
	}
	s.cache.Delete(statsCacheKey)

	s.log.Info("client needs assessed", "urgency", assessment.Urgency)
	return &assessment, nil
}

// Analytics returns the call analytics for the given date.
func (s *Service) Analytics(ctx context.Context, date time.Time) (*model.CallAnalytics, error) {
	return s.analytics.GetByDate(ctx, date)
}

// ClinicStats returns lifetime and today statistics, briefly cached.
func (s *Service) ClinicStats(ctx context.Context) (*model.ClinicStats, error) {
	if cached, ok := s.cache.Get(statsCacheKey); ok {
		return cached.(*model.ClinicStats), nil
	}

	stats, err := s.analytics.ClinicStats(ctx)
	if err != nil {
		return nil, err
	}

	s.cache.Set(statsCacheKey, stats, statsCacheTTL)
	return stats, nil
}

// ClinicInfo describes the clinic for callers.
type ClinicInfo struct {
	Name           string            `json:"name"`
	Location       string            `json:"location"`
	Services       []string          `json:"services"`
	WorkingHours   map[string]string `json:"working_hours"`
	PaymentMethods []string          `json:"payment_methods"`
}

func (s *Service) ClinicInfo() ClinicInfo {
	return ClinicInfo{
		Name:           s.cfg.Name,
		Location:       s.cfg.Location,
		Services:       s.cfg.Services,
		WorkingHours:   s.cfg.WorkingHours,
		PaymentMethods: s.cfg.PaymentMethods,
	}
}

// PaymentInfo describes how the clinic takes payment.
type PaymentInfo struct {
	Methods []string `json:"methods"`
	Notice  string   `json:"notice"`
}

func (s *Service) PaymentInfo() PaymentInfo {
	return PaymentInfo{
		Methods: s.cfg.PaymentMethods,
		Notice:  "All payments are processed at the clinic in Euro.",
	}
}

// bundleError turns a validation bundle into a single validation error
// naming every rejected field, or nil when all fields passed.
func (s *Service) bundleError(results map[string]validation.Result) error {
	var fields []string
	for field, result := range results {
		if !result.IsValid {
			fields = append(fields, field)
		}
	}
	if len(fields) == 0 {
		return nil
	}
	sort.Strings(fields)

	parts := make([]string, len(fields))
	for i, field := range fields {
		s.metrics.ValidationFailures.WithLabelValues(field).Inc()
		parts[i] = fmt.Sprintf("%s: %s", field, results[field].Error)
	}
	return apperrors.Validation(strings.Join(parts, "; "))
}

func containsAny(s string, substrings ...string) bool {
	for _, sub := range substrings {
		if strings.Contains(s, sub) {
			return true
		}
	}
	return false
}
