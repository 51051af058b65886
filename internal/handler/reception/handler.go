package reception

import (
	"errors"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/romidental/reception-api/internal/model"
	"github.com/romidental/reception-api/internal/service/reception"
	apperrors "github.com/romidental/reception-api/pkg/errors"
)

type Handler struct {
	service *reception.Service
}

func NewHandler(service *reception.Service) *Handler {
	return &Handler{service: service}
}

func (h *Handler) RegisterRoutes(rg *gin.RouterGroup) {
	rg.POST("/patients", h.RegisterPatient)
	rg.GET("/patients/by-phone", h.GetPatientByPhone)
	rg.POST("/appointments", h.ScheduleAppointment)
	rg.GET("/appointments", h.ListAppointments)
	rg.GET("/appointments/slots", h.AvailableSlots)
	rg.POST("/follow-ups", h.ScheduleFollowUp)
	rg.GET("/follow-ups/pending", h.ListPendingFollowUps)
	rg.PATCH("/follow-ups/:id/status", h.UpdateFollowUpStatus)
	rg.POST("/assessments", h.AssessClientNeeds)
	rg.GET("/clinic/info", h.ClinicInfo)
	rg.GET("/clinic/payment-info", h.PaymentInfo)
}

// RegisterAdminRoutes mounts the analytics endpoints; the caller wraps the
// group with authentication.
func (h *Handler) RegisterAdminRoutes(rg *gin.RouterGroup) {
	rg.GET("/analytics", h.GetAnalytics)
	rg.GET("/stats", h.GetClinicStats)
}

func (h *Handler) RegisterPatient(c *gin.Context) {
	var req model.RegisterPatientRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"status": "error", "message": err.Error()})
		return
	}

	patient, err := h.service.RegisterPatient(c.Request.Context(), req.Name, req.Phone, req.Email)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, gin.H{"status": "success", "data": patient})
}

func (h *Handler) GetPatientByPhone(c *gin.Context) {
	phone := c.Query("phone")
	if phone == "" {
		c.JSON(http.StatusBadRequest, gin.H{"status": "error", "message": "phone query parameter is required"})
		return
	}

	patient, err := h.service.PatientByPhone(c.Request.Context(), phone)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"status": "success", "data": patient})
}

func (h *Handler) ScheduleAppointment(c *gin.Context) {
	var req model.ScheduleAppointmentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"status": "error", "message": err.Error()})
		return
	}

	appointment, err := h.service.ScheduleAppointment(c.Request.Context(), &req)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, gin.H{"status": "success", "data": appointment})
}

func (h *Handler) ListAppointments(c *gin.Context) {
	dateStr := c.Query("date")
	date := time.Now()
	if dateStr != "" {
		parsed, err := time.Parse("2006-01-02", dateStr)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"status": "error", "message": "invalid date, expected YYYY-MM-DD"})
			return
		}
		date = parsed
	}

	appointments, err := h.service.AppointmentsByDate(c.Request.Context(), date)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"status": "success", "data": appointments})
}

func (h *Handler) AvailableSlots(c *gin.Context) {
	dateStr := c.Query("date")
	if dateStr == "" {
		c.JSON(http.StatusBadRequest, gin.H{"status": "error", "message": "date query parameter is required"})
		return
	}

	slots, err := h.service.AvailableSlots(c.Request.Context(), dateStr)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"status": "success", "data": gin.H{"date": dateStr, "slots": slots}})
}

func (h *Handler) ScheduleFollowUp(c *gin.Context) {
	var req model.ScheduleFollowUpRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"status": "error", "message": err.Error()})
		return
	}

	followUp, err := h.service.ScheduleFollowUp(c.Request.Context(), &req)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, gin.H{"status": "success", "data": followUp})
}

func (h *Handler) ListPendingFollowUps(c *gin.Context) {
	followUps, err := h.service.PendingFollowUps(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"status": "success", "data": followUps})
}

func (h *Handler) UpdateFollowUpStatus(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"status": "error", "message": "invalid follow-up ID"})
		return
	}

	var req model.UpdateFollowUpStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"status": "error", "message": err.Error()})
		return
	}

	if err := h.service.UpdateFollowUpStatus(c.Request.Context(), id, req.Status); err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"status": "success"})
}

type assessmentRequest struct {
	ClientInterest   string `json:"client_interest" binding:"required"`
	DentalConcerns   string `json:"dental_concerns" binding:"required"`
	TimeAvailability string `json:"time_availability" binding:"required"`
}

func (h *Handler) AssessClientNeeds(c *gin.Context) {
	var req assessmentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"status": "error", "message": err.Error()})
		return
	}

	assessment, err := h.service.AssessClientNeeds(c.Request.Context(), req.ClientInterest, req.DentalConcerns, req.TimeAvailability)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"status": "success", "data": assessment})
}

func (h *Handler) ClinicInfo(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "success", "data": h.service.ClinicInfo()})
}

func (h *Handler) PaymentInfo(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "success", "data": h.service.PaymentInfo()})
}

func (h *Handler) GetAnalytics(c *gin.Context) {
	date := time.Now()
	if dateStr := c.Query("date"); dateStr != "" {
		parsed, err := time.Parse("2006-01-02", dateStr)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"status": "error", "message": "invalid date, expected YYYY-MM-DD"})
			return
		}
		date = parsed
	}

	analytics, err := h.service.Analytics(c.Request.Context(), date)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"status": "success", "data": analytics})
}

func (h *Handler) GetClinicStats(c *gin.Context) {
	stats, err := h.service.ClinicStats(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"status": "success", "data": stats})
}

func respondError(c *gin.Context, err error) {
	var appErr *apperrors.AppError
	if errors.As(err, &appErr) {
		switch appErr.Code {
		case apperrors.ErrValidation:
			c.JSON(http.StatusBadRequest, gin.H{"status": "error", "message": appErr.Message})
			return
		case apperrors.ErrNotFound:
			c.JSON(http.StatusNotFound, gin.H{"status": "error", "message": appErr.Message})
			return
		case apperrors.ErrDatabase:
			c.JSON(http.StatusServiceUnavailable, gin.H{"status": "error", "message": "storage unavailable"})
			return
		}
	}
	c.JSON(http.StatusInternalServerError, gin.H{"status": "error", "message": err.Error()})
}
