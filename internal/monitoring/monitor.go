package monitoring

import (
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

var (
	RequestCounter = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "http_requests_total",
			Help: "Total number of HTTP requests",
		},
		[]string{"method", "endpoint", "status"},
	)

	RequestDuration = prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "http_request_duration_seconds",
			Help:    "Duration of HTTP requests",
			Buckets: []float64{0.1, 0.5, 1, 2, 5, 15, 30},
		},
		[]string{"method", "endpoint"},
	)

	// AnswersGraded counts graded answers by verdict; source is "model" or "api_error".
	AnswersGraded = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "grader_answers_total",
			Help: "Answers graded, by verdict and source",
		},
		[]string{"verdict", "source"},
	)

	GradingDuration = prometheus.NewHistogram(
		prometheus.HistogramOpts{
			Name:    "grader_llm_call_duration_seconds",
			Help:    "Duration of a single LLM grading call",
			Buckets: prometheus.DefBuckets,
		},
	)

	SubmissionsStored = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "grader_submissions_total",
			Help: "Graded submissions by persistence outcome",
		},
		[]string{"saved"},
	)
)

// Init registers the collectors with the default registry. Call once per process.
func Init() {
	prometheus.MustRegister(RequestCounter)
	prometheus.MustRegister(RequestDuration)
	prometheus.MustRegister(AnswersGraded)
	prometheus.MustRegister(GradingDuration)
	prometheus.MustRegister(SubmissionsStored)
}

func MetricsMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()

		endpoint := c.FullPath()
		if endpoint == "" {
			endpoint = "unmatched"
		}

		RequestCounter.WithLabelValues(
			c.Request.Method,
			endpoint,
			strconv.Itoa(c.Writer.Status()),
		).Inc()

		RequestDuration.WithLabelValues(
			c.Request.Method,
			endpoint,
		).Observe(time.Since(start).Seconds())
	}
}

func PrometheusHandler() gin.HandlerFunc {
	h := promhttp.Handler()
	return func(c *gin.Context) {
		h.ServeHTTP(c.Writer, c.Request)
	}
}
