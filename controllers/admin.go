package controllers

import (
	"net/http"

	"ClinicRecords/role"

	"github.com/gin-gonic/gin"
)

// Admin registers the listing and removal routes. They sit behind RequireToken.
func (h *Handler) Admin(router gin.IRouter) {
	router.GET("/patients", h.ListPatients)
	router.GET("/doctors", h.ListDoctors)
	router.GET("/appointments", h.ListAppointments)
	router.DELETE("/deletePatient/:email", h.DeletePatient)
	router.DELETE("/deleteDoctor/:email", h.DeleteDoctor)
	router.DELETE("/deleteAppointment/:id", h.DeleteAppointment)
	router.DELETE("/deleteReport/:id", h.DeleteReport)
}

func (h *Handler) ListPatients(c *gin.Context) {
	patients, err := h.accounts.ListPatients(c)
	if err != nil {
		fail(c, "Error fetching patients", err)
		return
	}
	c.JSON(http.StatusOK, patients)
}

func (h *Handler) ListDoctors(c *gin.Context) {
	doctors, err := h.accounts.ListDoctors(c)
	if err != nil {
		fail(c, "Error fetching doctors", err)
		return
	}
	c.JSON(http.StatusOK, doctors)
}

func (h *Handler) ListAppointments(c *gin.Context) {
	appointments, err := h.appointments.ListAll(c)
	if err != nil {
		fail(c, "Error fetching appointments", err)
		return
	}
	c.JSON(http.StatusOK, appointments)
}

func (h *Handler) DeletePatient(c *gin.Context) {
	if err := h.accounts.Delete(c, role.Patient, c.Param("email")); err != nil {
		fail(c, "Error deleting patient", err)
		return
	}
	c.JSON(http.StatusOK, MessageResponse("Patient deleted successfully"))
}

func (h *Handler) DeleteDoctor(c *gin.Context) {
	if err := h.accounts.Delete(c, role.Doctor, c.Param("email")); err != nil {
		fail(c, "Error deleting doctor", err)
		return
	}
	c.JSON(http.StatusOK, MessageResponse("Doctor deleted successfully"))
}

func (h *Handler) DeleteAppointment(c *gin.Context) {
	if err := h.appointments.Remove(c, c.Param("id")); err != nil {
		fail(c, "Error deleting appointment", err)
		return
	}
	c.JSON(http.StatusOK, MessageResponse("Appointment deleted successfully"))
}

func (h *Handler) DeleteReport(c *gin.Context) {
	if err := h.reports.Remove(c, c.Param("id")); err != nil {
		fail(c, "Error deleting report", err)
		return
	}
	c.JSON(http.StatusOK, MessageResponse("Report deleted successfully"))
}
