package controllers

import (
	"net/http"

	"ClinicRecords/models"
	"ClinicRecords/role"

	"github.com/gin-gonic/gin"
)

func (h *Handler) Patient(router *gin.Engine) {
	router.POST("/signupPatient", h.SignupPatient)
	router.GET("/getPatientProfile/:email", h.GetPatientProfile)
	router.PATCH("/updatePatientProfile/:email", h.UpdatePatientProfile)
	router.POST("/storeHealthData", h.StoreHealthData)
}

/*
* Bind the full patient record and the plaintext password
* Pass to the service which hashes and stores it
 */
func (h *Handler) SignupPatient(c *gin.Context) {
	var req models.PatientSignup
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, FailedResponse("Error creating patient", err))
		return
	}
	if err := h.accounts.Signup(c, role.Patient, req.Email, req.Password, req.Patient); err != nil {
		fail(c, "Error creating patient", err)
		return
	}
	c.JSON(http.StatusCreated, MessageResponse("Patient account created successfully"))
}

func (h *Handler) GetPatientProfile(c *gin.Context) {
	var patient models.Patient
	found, err := h.accounts.FindByEmail(c, role.Patient, c.Param("email"), &patient)
	if err != nil {
		fail(c, "Error fetching patient profile", err)
		return
	}
	if !found {
		c.JSON(http.StatusNotFound, MessageResponse("Patient not found"))
		return
	}
	c.JSON(http.StatusOK, patient)
}

/*
* Bind only the editable profile fields
* Merge them into the existing record
 */
func (h *Handler) UpdatePatientProfile(c *gin.Context) {
	var update models.PatientUpdate
	if err := c.ShouldBindJSON(&update); err != nil {
		c.JSON(http.StatusBadRequest, FailedResponse("Error updating patient profile", err))
		return
	}
	if err := h.accounts.UpdateProfile(c, role.Patient, c.Param("email"), update); err != nil {
		if errorStatus(err) == http.StatusNotFound {
			c.JSON(http.StatusNotFound, MessageResponse("Patient not found"))
			return
		}
		fail(c, "Error updating patient profile", err)
		return
	}
	c.JSON(http.StatusOK, MessageResponse("Patient profile updated successfully"))
}

func (h *Handler) StoreHealthData(c *gin.Context) {
	var req models.HealthDataInput
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, FailedResponse("Error storing health data", err))
		return
	}
	score, err := h.accounts.StoreHealthData(c, req)
	if err != nil {
		fail(c, "Error storing health data", err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Health data stored successfully", "healthPercentage": score})
}
