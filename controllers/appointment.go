package controllers

import (
	"net/http"

	"ClinicRecords/models"

	"github.com/gin-gonic/gin"
)

func (h *Handler) Appointment(router *gin.Engine) {
	router.POST("/bookAppointment", h.BookAppointment)
	router.GET("/getTodaysAppointment/:doctorId", h.GetTodaysAppointments)
}

/*
* Bind JSON
* Any client supplied id is ignored, the key is generated
* Pass to the service
 */
func (h *Handler) BookAppointment(c *gin.Context) {
	var appt models.Appointment
	if err := c.ShouldBindJSON(&appt); err != nil {
		c.JSON(http.StatusBadRequest, FailedResponse("Error booking appointment", err))
		return
	}
	appt.ID = ""
	id, err := h.appointments.Book(c, appt)
	if err != nil {
		failWith(c, http.StatusBadRequest, "Error booking appointment", err)
		return
	}
	c.JSON(http.StatusCreated, gin.H{"message": "Appointment booked successfully", "id": id})
}

// GetTodaysAppointments treats the path parameter as the doctor's name.
func (h *Handler) GetTodaysAppointments(c *gin.Context) {
	appointments, err := h.appointments.ListForDoctorToday(c, c.Param("doctorId"))
	if err != nil {
		failWith(c, http.StatusBadRequest, "Error fetching appointments", err)
		return
	}
	c.JSON(http.StatusOK, appointments)
}
