package controllers

import (
	"net/http"

	"ClinicRecords/models"

	"github.com/gin-gonic/gin"
)

func (h *Handler) Report(router *gin.Engine) {
	router.POST("/submitReport", h.SubmitReport)
	router.GET("/reportsByDoctor/:doctorId", h.ReportsByDoctor)
	router.GET("/reportsByPatient/:patientName", h.ReportsByPatient)
	router.GET("/report/:id", h.GetReport)
}

func (h *Handler) SubmitReport(c *gin.Context) {
	var report models.ClinicalReport
	if err := c.ShouldBindJSON(&report); err != nil {
		c.JSON(http.StatusBadRequest, FailedResponse("Error submitting report", err))
		return
	}
	report.ID = ""
	id, err := h.reports.Submit(c, report)
	if err != nil {
		failWith(c, http.StatusBadRequest, "Error submitting report", err)
		return
	}
	c.JSON(http.StatusCreated, gin.H{"message": "Patient report submitted successfully", "id": id})
}

func (h *Handler) ReportsByDoctor(c *gin.Context) {
	reports, err := h.reports.ListByDoctor(c, c.Param("doctorId"))
	if err != nil {
		failWith(c, http.StatusBadRequest, "Error fetching reports", err)
		return
	}
	c.JSON(http.StatusOK, reports)
}

/*
* Case history search
* Substring match on the patient name, not an identity key
 */
func (h *Handler) ReportsByPatient(c *gin.Context) {
	reports, err := h.reports.ListByPatientName(c, c.Param("patientName"))
	if err != nil {
		failWith(c, http.StatusBadRequest, "Error fetching patient histories", err)
		return
	}
	c.JSON(http.StatusOK, reports)
}

func (h *Handler) GetReport(c *gin.Context) {
	report, found, err := h.reports.GetByID(c, c.Param("id"))
	if err != nil {
		fail(c, "Error fetching report", err)
		return
	}
	if !found {
		c.JSON(http.StatusNotFound, MessageResponse("Report not found"))
		return
	}
	c.JSON(http.StatusOK, report)
}
