package email

import (
	"fmt"
	"time"

	gomail "gopkg.in/gomail.v2"

	"github.com/romidental/reception-api/internal/config"
	"github.com/romidental/reception-api/internal/model"
)

type Service interface {
	SendAppointmentConfirmation(to string, appointment *model.Appointment) error
	SendFollowUpDigest(to string, followUps []*model.FollowUp) error
}

type service struct {
	cfg        config.SMTPConfig
	clinicName string
}

func NewService(cfg config.SMTPConfig, clinicName string) Service {
	return &service{cfg: cfg, clinicName: clinicName}
}

func (s *service) SendAppointmentConfirmation(to string, appointment *model.Appointment) error {
	subject := fmt.Sprintf("%s - Appointment Confirmation", s.clinicName)
	body := fmt.Sprintf(
		"Dear %s,\n\nYour %s appointment is confirmed for %s.\n\nAll payments are made at our clinic in Euro.\n\n%s",
		appointment.PatientName,
		appointment.ServiceType,
		appointment.ScheduledDate.Format("Monday, 2 January 2006 at 3:04 PM"),
		s.clinicName,
	)
	return s.send(to, subject, body)
}

func (s *service) SendFollowUpDigest(to string, followUps []*model.FollowUp) error {
	subject := fmt.Sprintf("%s - %d pending follow-ups", s.clinicName, len(followUps))

	body := "Pending follow-up calls:\n\n"
	for _, f := range followUps {
		body += fmt.Sprintf("- %s (%s), preferred time %s: %s (since %s)\n",
			f.PatientName, f.PhoneNumber, f.PreferredTime, f.Reason,
			f.CreatedAt.Format(time.RFC1123))
	}
	return s.send(to, subject, body)
}

func (s *service) send(to, subject, body string) error {
	m := gomail.NewMessage()
	m.SetHeader("From", s.cfg.From)
	m.SetHeader("To", to)
	m.SetHeader("Subject", subject)
	m.SetBody("text/plain", body)

	d := gomail.NewDialer(s.cfg.Host, s.cfg.Port, s.cfg.Username, s.cfg.Password)
	if err := d.DialAndSend(m); err != nil {
		return fmt.Errorf("failed to send email to %s: %w", to, err)
	}
	return nil
}
