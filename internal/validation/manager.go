package validation

// Manager composes the individual validators into per-use-case field bundles.
// It never fails itself; callers must check every Result in the returned map
// before acting on the data.
type Manager struct {
	service *ServiceTypeValidator
	date    *DateValidator
}

// NewManager builds a Manager from the clinic's service catalog and
// working-hours calendar. Configuration is passed in explicitly so managers
// are independent and safe to use concurrently.
func NewManager(services []string, workingHours map[string]string) *Manager {
	return &Manager{
		service: NewServiceTypeValidator(services),
		date:    NewDateValidator(workingHours),
	}
}

// ValidatePatientData validates patient registration fields.
func (m *Manager) ValidatePatientData(name, phone, email string) map[string]Result {
	return map[string]Result{
		"name":  ValidateName(name),
		"phone": ValidatePhone(phone),
		"email": ValidateEmail(email),
	}
}

// ValidateAppointmentData validates appointment booking fields. Notes are
// sanitized, never rejected.
func (m *Manager) ValidateAppointmentData(patientName, phone, service, appointmentDate, notes string) map[string]Result {
	return map[string]Result{
		"patient_name":     ValidateName(patientName),
		"phone":            ValidatePhone(phone),
		"service":          m.service.Validate(service),
		"appointment_date": m.date.ValidateAppointmentDate(appointmentDate),
		"notes":            valid(SanitizeNotes(notes)),
	}
}

// ValidateFollowUpData validates follow-up scheduling fields. The reason is
// sanitized, never rejected.
func (m *Manager) ValidateFollowUpData(patientName, phone, preferredTime, reason string) map[string]Result {
	return map[string]Result{
		"patient_name":   ValidateName(patientName),
		"phone":          ValidatePhone(phone),
		"preferred_time": ValidateTimeSlot(preferredTime),
		"reason":         valid(SanitizeText(reason, 200)),
	}
}
