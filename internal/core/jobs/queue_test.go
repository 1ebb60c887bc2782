package jobs

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCalculateBackoff(t *testing.T) {
	assert.Equal(t, 2, calculateBackoff(1))
	assert.Equal(t, 4, calculateBackoff(2))
	assert.Equal(t, 32, calculateBackoff(5))
	// capped at one hour
	assert.Equal(t, 3600, calculateBackoff(12))
	assert.Equal(t, 3600, calculateBackoff(30))
}

func TestDefaultWorkerConfig(t *testing.T) {
	cfg := DefaultWorkerConfig()
	assert.Equal(t, "default", cfg.Queue)
	assert.Equal(t, 2, cfg.Concurrency)
	assert.Positive(t, cfg.PollInterval)
	assert.Positive(t, cfg.Timeout)
}
