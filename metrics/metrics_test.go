package metrics

import (
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCountersStartAtZero(t *testing.T) {
	m := New()
	assert.Equal(t, int64(0), m.TotalRequests())
	assert.Equal(t, int64(0), m.TotalNotesCreated())
}

func TestConcurrentIncrements(t *testing.T) {
	m := New()

	var wg sync.WaitGroup
	for i := 0; i < 100; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			m.IncRequests()
			m.IncNotesCreated()
		}()
	}
	wg.Wait()

	assert.Equal(t, int64(100), m.TotalRequests())
	assert.Equal(t, int64(100), m.TotalNotesCreated())
}

func TestFormatUptime(t *testing.T) {
	tests := []struct {
		seconds int64
		want    string
	}{
		{0, "0h 0m 0s"},
		{59, "0h 0m 59s"},
		{60, "0h 1m 0s"},
		{3661, "1h 1m 1s"},
		{86399, "23h 59m 59s"},
		{90000, "25h 0m 0s"},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, FormatUptime(tt.seconds))
	}
}

func TestSnapshot(t *testing.T) {
	m := New()
	m.IncRequests()
	m.IncRequests()
	m.IncNotesCreated()

	snap := m.Snapshot(5)

	assert.Equal(t, int64(2), snap.TotalRequests)
	assert.Equal(t, int64(1), snap.TotalNotesCreated)
	assert.Equal(t, int64(5), snap.TotalNotesInDB)
	assert.GreaterOrEqual(t, snap.UptimeSeconds, int64(0))
	assert.Equal(t, FormatUptime(snap.UptimeSeconds), snap.UptimeFormatted)
}
