package database

import (
	"testing"
	"time"

	coremocks "github.com/amirhossein-jamali/expense-tracker/mocks/port/core"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

func TestConnectionPoolMonitorGetMetrics(t *testing.T) {
	mockLogger := coremocks.NewMockLogger(t)
	mockLogger.EXPECT().Warn(mock.Anything, mock.Anything).Maybe()

	t.Run("Zero value before the first collection", func(t *testing.T) {
		monitor := NewConnectionPoolMonitor(nil, mockLogger)

		assert.Equal(t, ConnectionPoolMetrics{}, monitor.GetMetrics())
	})

	t.Run("Returns a copy of the sampled metrics", func(t *testing.T) {
		monitor := NewConnectionPoolMonitor(nil, mockLogger)
		monitor.metricsCache = &ConnectionPoolMetrics{
			OpenConnections:    5,
			IdleConnections:    2,
			MaxOpenConnections: 25,
			InUse:              3,
			WaitCount:          7,
			WaitDuration:       40 * time.Millisecond,
		}

		got := monitor.GetMetrics()
		assert.Equal(t, 5, got.OpenConnections)
		assert.Equal(t, 3, got.InUse)
		assert.Equal(t, int64(7), got.WaitCount)

		// Mutating the returned value must not touch the cache
		got.InUse = 99
		assert.Equal(t, 3, monitor.GetMetrics().InUse)
	})
}
