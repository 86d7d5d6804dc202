package telemetry

import "time"

// AlertThreshold defines the limits a transfer run is checked against.
type AlertThreshold struct {
	FailureRate     float64
	AverageDuration time.Duration
}

// Alert is a single threshold breach surfaced by AlertManager.
type Alert struct {
	Message string
	Fields  map[string]interface{}
}

// Notifier receives alerts. internal/console.Logger satisfies this
// via its Warn method.
type Notifier interface {
	Warn(message string, fields map[string]interface{})
}

// AlertManager watches a MetricsCollector against a threshold and
// surfaces breaches to a Notifier, rate-limited to one alert per kind
// per minute so a long run doesn't spam the console on every table.
type AlertManager struct {
	threshold AlertThreshold
	metrics   *MetricsCollector
	notifier  Notifier
	lastAlert map[string]time.Time
}

// NewAlertManager creates an alert manager over metrics, reporting
// breaches of threshold to notifier.
func NewAlertManager(threshold AlertThreshold, metrics *MetricsCollector, notifier Notifier) *AlertManager {
	return &AlertManager{
		threshold: threshold,
		metrics:   metrics,
		notifier:  notifier,
		lastAlert: make(map[string]time.Time),
	}
}

// CheckThresholds inspects the current metrics snapshot and notifies
// on any breach, subject to the per-kind rate limit.
func (a *AlertManager) CheckThresholds() {
	if rate := a.metrics.FailureRate(); rate > a.threshold.FailureRate {
		a.notify("table failure rate threshold exceeded", map[string]interface{}{
			"current_rate": rate,
			"threshold":    a.threshold.FailureRate,
		})
	}

	if avg := a.metrics.AverageTableTime(); a.threshold.AverageDuration > 0 && avg > a.threshold.AverageDuration {
		a.notify("average table transfer time threshold exceeded", map[string]interface{}{
			"current_duration": avg,
			"threshold":        a.threshold.AverageDuration,
		})
	}
}

func (a *AlertManager) notify(message string, fields map[string]interface{}) {
	if last, ok := a.lastAlert[message]; ok && time.Since(last) < time.Minute {
		return
	}
	a.lastAlert[message] = time.Now()
	if a.notifier != nil {
		a.notifier.Warn(message, fields)
	}
}
