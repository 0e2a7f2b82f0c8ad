package controllers

import (
	"context"
	"errors"
	"net/http"

	"ClinicRecords/auth"
	"ClinicRecords/models"
	"ClinicRecords/role"
	"ClinicRecords/services"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"
)

type AccountService interface {
	Signup(ctx context.Context, r role.Role, email, password string, profile interface{}) error
	FindByEmail(ctx context.Context, r role.Role, email string, out interface{}) (bool, error)
	UpdateProfile(ctx context.Context, r role.Role, email string, partial interface{}) error
	Authenticate(ctx context.Context, r role.Role, email, password string) error
	Delete(ctx context.Context, r role.Role, email string) error
	ListPatients(ctx context.Context) ([]models.Patient, error)
	ListDoctors(ctx context.Context) ([]models.Doctor, error)
	StoreHealthData(ctx context.Context, in models.HealthDataInput) (int, error)
}

// AppointmentService matches appointments to doctors by name string.
type AppointmentService interface {
	Book(ctx context.Context, appt models.Appointment) (string, error)
	ListForDoctorToday(ctx context.Context, doctorName string) ([]models.Appointment, error)
	ListAll(ctx context.Context) ([]models.Appointment, error)
	Remove(ctx context.Context, id string) error
}

type ReportService interface {
	Submit(ctx context.Context, report models.ClinicalReport) (string, error)
	ListByDoctor(ctx context.Context, doctorID string) ([]models.ClinicalReport, error)
	GetByID(ctx context.Context, id string) (*models.ClinicalReport, bool, error)
	ListByPatientName(ctx context.Context, patientName string) ([]models.ClinicalReport, error)
	Remove(ctx context.Context, id string) error
}

type TokenService interface {
	Issue(email, role string) (string, error)
	Parse(token string) (*auth.Claims, error)
}

// Handler holds the request handlers. Each handler calls exactly one service
// operation; nothing here spans two collections.
type Handler struct {
	accounts     AccountService
	appointments AppointmentService
	reports      ReportService
	tokens       TokenService
}

func NewHandler(accounts AccountService, appointments AppointmentService, reports ReportService, tokens TokenService) *Handler {
	return &Handler{accounts: accounts, appointments: appointments, reports: reports, tokens: tokens}
}

// errorStatus maps a service error to its response code.
func errorStatus(err error) int {
	var missing *services.MissingFieldsError
	var invalid *services.InvalidFieldError
	switch {
	case errors.As(err, &missing), errors.As(err, &invalid), errors.Is(err, services.ErrInvalidCredentials):
		return http.StatusBadRequest
	case errors.Is(err, services.ErrNotFound):
		return http.StatusNotFound
	default:
		return http.StatusInternalServerError
	}
}

func MessageResponse(msg string) gin.H {
	return gin.H{"message": msg}
}

func FailedResponse(prefix string, err error) gin.H {
	return gin.H{"message": prefix + ": " + err.Error()}
}

// fail answers with the mapped status, logging only unexpected failures.
func fail(c *gin.Context, prefix string, err error) {
	status := errorStatus(err)
	if status == http.StatusInternalServerError {
		log.Error().Err(err).Str("path", c.FullPath()).Msg(prefix)
	}
	c.JSON(status, FailedResponse(prefix, err))
}

// failWith answers with a fixed status regardless of the error kind.
func failWith(c *gin.Context, status int, prefix string, err error) {
	if errorStatus(err) == http.StatusInternalServerError {
		log.Error().Err(err).Str("path", c.FullPath()).Msg(prefix)
	}
	c.JSON(status, FailedResponse(prefix, err))
}

func Health(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}
