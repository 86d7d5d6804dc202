package telemetry

import (
	"sync"
	"sync/atomic"
	"time"
)

// MetricsCollector accumulates counters for one transfer run: tables
// and rows moved, clamp events seen in the typed-datatype algebra, and
// connection retries against the source/target endpoints.
type MetricsCollector struct {
	tablesTransferred int64
	tablesFailed      int64
	rowsTransferred   int64
	totalTableTime    int64
	clampEvents       int64
	errorCount        map[string]int64
	errorCountMutex   sync.RWMutex
	retryAttempts     int64
	recoverySuccess   int64
}

// NewMetricsCollector creates a new metrics collector.
func NewMetricsCollector() *MetricsCollector {
	return &MetricsCollector{
		errorCount: make(map[string]int64),
	}
}

// IncrementTablesTransferred records one table transferred successfully.
func (m *MetricsCollector) IncrementTablesTransferred() {
	atomic.AddInt64(&m.tablesTransferred, 1)
}

// IncrementTablesFailed records one table that failed to transfer.
func (m *MetricsCollector) IncrementTablesFailed() {
	atomic.AddInt64(&m.tablesFailed, 1)
}

// AddRowsTransferred adds n rows to the running row count.
func (m *MetricsCollector) AddRowsTransferred(n int64) {
	atomic.AddInt64(&m.rowsTransferred, n)
}

// RecordTableTime adds duration to the total time spent transferring tables.
func (m *MetricsCollector) RecordTableTime(duration time.Duration) {
	atomic.AddInt64(&m.totalTableTime, int64(duration))
}

// IncrementClampEvents records one field value the typed-datatype
// algebra clamped to a default instead of rejecting.
func (m *MetricsCollector) IncrementClampEvents() {
	atomic.AddInt64(&m.clampEvents, 1)
}

// IncrementErrorCount increments the error count for a specific error kind.
func (m *MetricsCollector) IncrementErrorCount(kind string) {
	m.errorCountMutex.Lock()
	m.errorCount[kind]++
	m.errorCountMutex.Unlock()
}

// IncrementRetryAttempts increments the connection retry counter.
func (m *MetricsCollector) IncrementRetryAttempts() {
	atomic.AddInt64(&m.retryAttempts, 1)
}

// IncrementRecoverySuccess increments the successful-reconnect counter.
func (m *MetricsCollector) IncrementRecoverySuccess() {
	atomic.AddInt64(&m.recoverySuccess, 1)
}

// Snapshot returns all current metrics as a loggable map.
func (m *MetricsCollector) Snapshot() map[string]interface{} {
	m.errorCountMutex.RLock()
	errors := make(map[string]int64, len(m.errorCount))
	for k, v := range m.errorCount {
		errors[k] = v
	}
	m.errorCountMutex.RUnlock()

	return map[string]interface{}{
		"tables_transferred": atomic.LoadInt64(&m.tablesTransferred),
		"tables_failed":      atomic.LoadInt64(&m.tablesFailed),
		"rows_transferred":   atomic.LoadInt64(&m.rowsTransferred),
		"clamp_events":       atomic.LoadInt64(&m.clampEvents),
		"error_count":        errors,
		"retry_attempts":     atomic.LoadInt64(&m.retryAttempts),
		"recovery_success":   atomic.LoadInt64(&m.recoverySuccess),
	}
}

// TablesTransferred returns the number of tables transferred successfully.
func (m *MetricsCollector) TablesTransferred() int64 {
	return atomic.LoadInt64(&m.tablesTransferred)
}

// TablesFailed returns the number of tables that failed to transfer.
func (m *MetricsCollector) TablesFailed() int64 {
	return atomic.LoadInt64(&m.tablesFailed)
}

// RowsTransferred returns the total number of rows moved so far.
func (m *MetricsCollector) RowsTransferred() int64 {
	return atomic.LoadInt64(&m.rowsTransferred)
}

// AverageTableTime returns the average time spent per transferred table.
func (m *MetricsCollector) AverageTableTime() time.Duration {
	total := atomic.LoadInt64(&m.tablesTransferred)
	if total == 0 {
		return 0
	}
	return time.Duration(atomic.LoadInt64(&m.totalTableTime) / total)
}

// FailureRate returns the share of attempted tables that failed, as a
// percentage.
func (m *MetricsCollector) FailureRate() float64 {
	attempted := atomic.LoadInt64(&m.tablesTransferred) + atomic.LoadInt64(&m.tablesFailed)
	if attempted == 0 {
		return 0
	}
	return float64(atomic.LoadInt64(&m.tablesFailed)) / float64(attempted) * 100
}
