// Package observability exposes Prometheus metrics for the activities
// service.
package observability

import "github.com/prometheus/client_golang/prometheus"

var (
	loginAttempts = prometheus.NewCounterVec(prometheus.CounterOpts{
		Namespace: "mergington",
		Subsystem: "auth",
		Name:      "login_attempts_total",
		Help:      "Teacher login attempts partitioned by outcome.",
	}, []string{"outcome"})
	activeSessions = prometheus.NewGauge(prometheus.GaugeOpts{
		Namespace: "mergington",
		Subsystem: "auth",
		Name:      "active_sessions",
		Help:      "Number of currently active teacher sessions.",
	})
	rosterChanges = prometheus.NewCounterVec(prometheus.CounterOpts{
		Namespace: "mergington",
		Subsystem: "activities",
		Name:      "roster_changes_total",
		Help:      "Successful roster mutations partitioned by operation.",
	}, []string{"operation"})
)

func init() {
	prometheus.MustRegister(loginAttempts, activeSessions, rosterChanges)
}

// RecordLogin counts a login attempt.
func RecordLogin(success bool) {
	outcome := "failure"
	if success {
		outcome = "success"
	}
	loginAttempts.WithLabelValues(outcome).Inc()
}

// SetActiveSessions updates the active session gauge.
func SetActiveSessions(n int) {
	activeSessions.Set(float64(n))
}

// RecordSignup counts a successful roster enrollment.
func RecordSignup() {
	rosterChanges.WithLabelValues("signup").Inc()
}

// RecordUnregister counts a successful roster removal.
func RecordUnregister() {
	rosterChanges.WithLabelValues("unregister").Inc()
}
