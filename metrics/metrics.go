package metrics

import (
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

var (
	HTTPRequestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "clinic_http_requests_total",
			Help: "Total number of HTTP requests",
		},
		[]string{"method", "endpoint", "status"},
	)

	HTTPRequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "clinic_http_request_duration_seconds",
			Help:    "Duration of HTTP requests in seconds",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"method", "endpoint", "status"},
	)

	LoginsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "clinic_logins_total",
			Help: "Login attempts by role and result",
		},
		[]string{"role", "result"}, // "success", "invalid_credentials", "error"
	)

	AppointmentsBookedTotal = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "clinic_appointments_booked_total",
			Help: "Appointments written by the booking flow",
		},
	)

	ReportsSubmittedTotal = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "clinic_reports_submitted_total",
			Help: "Clinical reports written",
		},
	)

	HealthScores = promauto.NewHistogram(
		prometheus.HistogramOpts{
			Name:    "clinic_health_score",
			Help:    "Distribution of computed health scores",
			Buckets: []float64{0, 25, 50, 75, 100},
		},
	)

	AgendaAppointments = promauto.NewGaugeVec(
		prometheus.GaugeOpts{
			Name: "clinic_agenda_appointments",
			Help: "Appointments on today's agenda per doctor, set by the daily agenda job",
		},
		[]string{"doctor"},
	)
)

// RecordHTTPRequest records metrics for an HTTP request
func RecordHTTPRequest(method, endpoint string, statusCode int, duration time.Duration) {
	status := strconv.Itoa(statusCode)

	HTTPRequestsTotal.WithLabelValues(method, endpoint, status).Inc()
	HTTPRequestDuration.WithLabelValues(method, endpoint, status).Observe(duration.Seconds())
}

func RecordLogin(role, result string) {
	LoginsTotal.WithLabelValues(role, result).Inc()
}

// Middleware times every request; the route pattern is used as endpoint label
// so path parameters do not explode cardinality.
func Middleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()
		endpoint := c.FullPath()
		if endpoint == "" {
			endpoint = "unmatched"
		}
		RecordHTTPRequest(c.Request.Method, endpoint, c.Writer.Status(), time.Since(start))
	}
}

// Handler serves the default registry.
func Handler() gin.HandlerFunc {
	return gin.WrapH(promhttp.Handler())
}
