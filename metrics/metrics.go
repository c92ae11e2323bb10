package metrics

import (
	"fmt"
	"sync/atomic"
	"time"
)

// Metrics holds the process-wide counters. A single instance is constructed
// at startup and shared between the request middleware and the metrics
// endpoint. Counters are atomic; no ordering is guaranteed across them.
type Metrics struct {
	startTime         time.Time
	totalRequests     atomic.Int64
	totalNotesCreated atomic.Int64
}

func New() *Metrics {
	return &Metrics{startTime: time.Now()}
}

func (m *Metrics) IncRequests() {
	m.totalRequests.Add(1)
}

func (m *Metrics) IncNotesCreated() {
	m.totalNotesCreated.Add(1)
}

func (m *Metrics) TotalRequests() int64 {
	return m.totalRequests.Load()
}

func (m *Metrics) TotalNotesCreated() int64 {
	return m.totalNotesCreated.Load()
}

func (m *Metrics) UptimeSeconds() int64 {
	return int64(time.Since(m.startTime).Seconds())
}

func FormatUptime(seconds int64) string {
	hours := seconds / 3600
	minutes := (seconds % 3600) / 60
	secs := seconds % 60
	return fmt.Sprintf("%dh %dm %ds", hours, minutes, secs)
}

type Snapshot struct {
	UptimeSeconds     int64  `json:"uptime_seconds"`
	UptimeFormatted   string `json:"uptime_formatted"`
	TotalRequests     int64  `json:"total_requests"`
	TotalNotesInDB    int64  `json:"total_notes_in_db"`
	TotalNotesCreated int64  `json:"total_notes_created"`
}

// Snapshot renders the counters together with a live note count supplied
// by the caller. The live count comes from the store and can diverge from
// TotalNotesCreated when notes have been deleted.
func (m *Metrics) Snapshot(notesInDB int64) Snapshot {
	uptime := m.UptimeSeconds()
	return Snapshot{
		UptimeSeconds:     uptime,
		UptimeFormatted:   FormatUptime(uptime),
		TotalRequests:     m.totalRequests.Load(),
		TotalNotesInDB:    notesInDB,
		TotalNotesCreated: m.totalNotesCreated.Load(),
	}
}
