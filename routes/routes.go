package routes

import (
	"ClinicRecords/controllers"
	"ClinicRecords/metrics"
	"ClinicRecords/role"

	"github.com/gin-gonic/gin"
)

func Routes(r *gin.Engine, h *controllers.Handler) {

	//public
	r.GET("/health", controllers.Health)
	r.GET("/metrics", metrics.Handler())
	h.Auth(r)
	h.Patient(r)
	h.Doctor(r)
	h.Appointment(r)
	h.Report(r)

	//private
	admin := r.Group("/", h.RequireToken(role.Doctor))
	h.Admin(admin)
}
