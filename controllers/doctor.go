package controllers

import (
	"net/http"

	"ClinicRecords/models"
	"ClinicRecords/role"

	"github.com/gin-gonic/gin"
)

func (h *Handler) Doctor(router *gin.Engine) {
	router.POST("/signupDoctor", h.SignupDoctor)
	router.GET("/getDoctorProfile/:email", h.GetDoctorProfile)
	router.PATCH("/updateDoctorProfile/:email", h.UpdateDoctorProfile)
}

func (h *Handler) SignupDoctor(c *gin.Context) {
	var req models.DoctorSignup
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, FailedResponse("Error creating doctor", err))
		return
	}
	if err := h.accounts.Signup(c, role.Doctor, req.Email, req.Password, req.Doctor); err != nil {
		fail(c, "Error creating doctor", err)
		return
	}
	c.JSON(http.StatusCreated, MessageResponse("Doctor account created successfully"))
}

func (h *Handler) GetDoctorProfile(c *gin.Context) {
	var doctor models.Doctor
	found, err := h.accounts.FindByEmail(c, role.Doctor, c.Param("email"), &doctor)
	if err != nil {
		fail(c, "Error fetching doctor profile", err)
		return
	}
	if !found {
		c.JSON(http.StatusNotFound, MessageResponse("Doctor not found"))
		return
	}
	c.JSON(http.StatusOK, doctor)
}

func (h *Handler) UpdateDoctorProfile(c *gin.Context) {
	var update models.DoctorUpdate
	if err := c.ShouldBindJSON(&update); err != nil {
		c.JSON(http.StatusBadRequest, FailedResponse("Error updating doctor profile", err))
		return
	}
	if err := h.accounts.UpdateProfile(c, role.Doctor, c.Param("email"), update); err != nil {
		if errorStatus(err) == http.StatusNotFound {
			c.JSON(http.StatusNotFound, MessageResponse("Doctor not found"))
			return
		}
		fail(c, "Error updating doctor profile", err)
		return
	}
	c.JSON(http.StatusOK, MessageResponse("Doctor profile updated successfully"))
}
