package metrics

import (
	"net/http"

	"github.com/Freeeeeet/mgcc_bot/internal/model"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

const namespace = "mgcc"

// Metrics — счётчики бота
type Metrics struct {
	registry *prometheus.Registry

	logins           *prometheus.CounterVec
	viewChanges      *prometheus.CounterVec
	assistantReplies *prometheus.CounterVec
	payments         *prometheus.CounterVec
	activeSessions   prometheus.Gauge
}

// New регистрирует метрики бота в отдельном реестре
func New() *Metrics {
	m := &Metrics{
		registry: prometheus.NewRegistry(),
		logins: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "logins_total",
			Help:      "Logins and registrations by role.",
		}, []string{"role"}),
		viewChanges: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "view_changes_total",
			Help:      "Applied view transitions by target view.",
		}, []string{"view"}),
		assistantReplies: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "assistant_sends_total",
			Help:      "Assistant sends by outcome.",
		}, []string{"outcome"}),
		payments: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "payment_requests_total",
			Help:      "Payment queue events by resulting status.",
		}, []string{"status"}),
		activeSessions: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace: namespace,
			Name:      "active_sessions",
			Help:      "Chat sessions currently held in memory.",
		}),
	}

	m.registry.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
		m.logins,
		m.viewChanges,
		m.assistantReplies,
		m.payments,
		m.activeSessions,
	)

	return m
}

// Handler отдаёт реестр в текстовом формате Prometheus
func (m *Metrics) Handler() http.Handler {
	return promhttp.HandlerFor(m.registry, promhttp.HandlerOpts{Registry: m.registry})
}

func (m *Metrics) ObserveLogin(role model.Role) {
	m.logins.WithLabelValues(string(role)).Inc()
}

func (m *Metrics) ObserveView(view model.View) {
	m.viewChanges.WithLabelValues(string(view)).Inc()
}

func (m *Metrics) ObserveAssistant(outcome string) {
	m.assistantReplies.WithLabelValues(outcome).Inc()
}

func (m *Metrics) ObservePayment(status model.PaymentStatus) {
	m.payments.WithLabelValues(string(status)).Inc()
}

func (m *Metrics) SetActiveSessions(n int) {
	m.activeSessions.Set(float64(n))
}
