package testutil

import (
	"sync"
	"time"

	"newsd/internal/providers"
)

// MockLogger implements providers.Logger and records calls.
type MockLogger struct {
	mu   sync.Mutex
	Logs []LogEntry
}

type LogEntry struct {
	Level  string
	Type   providers.TypeEnum
	Format string
	Args   []interface{}
}

func (m *MockLogger) record(level string, t providers.TypeEnum, format string, args ...interface{}) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.Logs = append(m.Logs, LogEntry{Level: level, Type: t, Format: format, Args: args})
}

func (m *MockLogger) Errorf(t providers.TypeEnum, format string, args ...interface{}) {
	m.record("error", t, format, args...)
}
func (m *MockLogger) Warnf(t providers.TypeEnum, format string, args ...interface{}) {
	m.record("warn", t, format, args...)
}
func (m *MockLogger) Debugf(t providers.TypeEnum, format string, args ...interface{}) {
	m.record("debug", t, format, args...)
}
func (m *MockLogger) Infof(t providers.TypeEnum, format string, args ...interface{}) {
	m.record("info", t, format, args...)
}
func (m *MockLogger) Fatalf(t providers.TypeEnum, format string, args ...interface{}) {
	m.record("fatal", t, format, args...)
}
func (m *MockLogger) Close() {}

// MockMetrics implements providers.MetricsProviderInterface and counts calls.
type MockMetrics struct {
	mu           sync.Mutex
	Requests     int
	CacheHits    int
	CacheMisses  int
	Visits       map[string]int
	PublishRuns  map[string]int
	SiteUpValues []bool
}

func (m *MockMetrics) IncRequestsTotal(_ string, _ int) {
	m.mu.Lock()
	m.Requests++
	m.mu.Unlock()
}

func (m *MockMetrics) ObserveRequestDuration(_ string, _ time.Duration) {}

func (m *MockMetrics) IncCacheHits() {
	m.mu.Lock()
	m.CacheHits++
	m.mu.Unlock()
}

func (m *MockMetrics) IncCacheMisses() {
	m.mu.Lock()
	m.CacheMisses++
	m.mu.Unlock()
}

func (m *MockMetrics) IncVisits(osName string) {
	m.mu.Lock()
	if m.Visits == nil {
		m.Visits = make(map[string]int)
	}
	m.Visits[osName]++
	m.mu.Unlock()
}

func (m *MockMetrics) IncPublish(outcome string) {
	m.mu.Lock()
	if m.PublishRuns == nil {
		m.PublishRuns = make(map[string]int)
	}
	m.PublishRuns[outcome]++
	m.mu.Unlock()
}

func (m *MockMetrics) SetSiteUp(up bool) {
	m.mu.Lock()
	m.SiteUpValues = append(m.SiteUpValues, up)
	m.mu.Unlock()
}
