// Prometheus counters for leader events.
package engine

import "github.com/prometheus/client_golang/prometheus"

// Metrics counts leader subsystem outcomes for the /metrics endpoint.
type Metrics struct {
	Successions  *prometheus.CounterVec
	Recruitments prometheus.Counter
	Incidents    *prometheus.CounterVec
	Deaths       prometheus.Counter
	PerksGained  prometheus.Counter
}

// NewMetrics creates the counters and registers them with reg.
func NewMetrics(reg prometheus.Registerer) *Metrics {
	m := &Metrics{
		Successions: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "realmsim",
			Name:      "successions_total",
			Help:      "Rulers installed, by government.",
		}, []string{"government"}),
		Recruitments: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: "realmsim",
			Name:      "recruitments_total",
			Help:      "Leaders recruited into a pool.",
		}),
		Incidents: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "realmsim",
			Name:      "incidents_total",
			Help:      "Captured leader outcomes, by outcome.",
		}, []string{"outcome"}),
		Deaths: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: "realmsim",
			Name:      "leader_deaths_total",
			Help:      "Leaders who died.",
		}),
		PerksGained: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: "realmsim",
			Name:      "perks_gained_total",
			Help:      "Perks granted to leaders.",
		}),
	}
	reg.MustRegister(m.Successions, m.Recruitments, m.Incidents, m.Deaths, m.PerksGained)
	return m
}

func (m *Metrics) succession(gov string) {
	if m != nil {
		m.Successions.WithLabelValues(gov).Inc()
	}
}

func (m *Metrics) recruited() {
	if m != nil {
		m.Recruitments.Inc()
	}
}

func (m *Metrics) incident(outcome string) {
	if m != nil {
		m.Incidents.WithLabelValues(outcome).Inc()
	}
}

func (m *Metrics) died() {
	if m != nil {
		m.Deaths.Inc()
	}
}

func (m *Metrics) perks(n int) {
	if m != nil && n > 0 {
		m.PerksGained.Add(float64(n))
	}
}
