package controllers

import (
	"net/http"
	"strings"
	"testing"

	"ClinicRecords/models"
	"ClinicRecords/store"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBookAndTodaysAppointments(t *testing.T) {
	ts := newTestServer(t, store.NewMemoryStore())

	w := ts.do(http.MethodPost, "/bookAppointment", gin.H{
		"patientName": "Jane Doe", "appointmentDate": "2026-10-15", "appointmentTime": "10:00",
		"doctorName": "Dr. Smith", "reason": "checkup", "contactNumber": "555-1111",
	}, "")
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())
	var booked struct {
		Message string `json:"message"`
		ID      string `json:"id"`
	}
	decode(t, w, &booked)
	assert.Equal(t, "Appointment booked successfully", booked.Message)
	assert.True(t, strings.HasPrefix(booked.ID, "Dr. Smith-"))

	w = ts.do(http.MethodPost, "/bookAppointment", gin.H{
		"patientName": "John Roe", "appointmentDate": "2026-10-16", "doctorName": "Dr. Smith",
	}, "")
	require.Equal(t, http.StatusCreated, w.Code)

	w = ts.do(http.MethodGet, "/getTodaysAppointment/Dr.%20Smith", nil, "")
	require.Equal(t, http.StatusOK, w.Code)
	var today []models.Appointment
	decode(t, w, &today)
	require.Len(t, today, 1)
	assert.Equal(t, "Jane Doe", today[0].PatientName)
	assert.Equal(t, booked.ID, today[0].ID)
}

func TestTodaysAppointments_EmptyList(t *testing.T) {
	ts := newTestServer(t, store.NewMemoryStore())
	w := ts.do(http.MethodGet, "/getTodaysAppointment/Dr.%20Nobody", nil, "")
	require.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, "[]", w.Body.String())
}

func TestTodaysAppointments_StoreDownIsBadRequest(t *testing.T) {
	ts := newTestServer(t, downStore{})
	w := ts.do(http.MethodGet, "/getTodaysAppointment/Dr.%20Smith", nil, "")
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestBookAppointment_Validation(t *testing.T) {
	ts := newTestServer(t, store.NewMemoryStore())

	w := ts.do(http.MethodPost, "/bookAppointment", gin.H{"patientName": "Jane Doe", "appointmentDate": "2026-10-15"}, "")
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, message(t, w), "doctorName")

	w = ts.do(http.MethodPost, "/bookAppointment", gin.H{
		"patientName": "Jane Doe", "appointmentDate": "15/10/2026", "doctorName": "Dr. Smith",
	}, "")
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, message(t, w), "appointmentDate")
}
