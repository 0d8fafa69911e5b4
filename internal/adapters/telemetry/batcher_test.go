package telemetry_test

import (
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/emorec/internal/adapters/telemetry"
)

type collector struct {
	mu     sync.Mutex
	chunks []string
}

func (c *collector) add(p []byte) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.chunks = append(c.chunks, string(p))
}

func (c *collector) all() []string {
	c.mu.Lock()
	defer c.mu.Unlock()
	return append([]string(nil), c.chunks...)
}

func TestBatchProcessor_FlushOnSize(t *testing.T) {
	c := &collector{}
	bp := telemetry.NewBatchProcessor(4, time.Hour, c.add)
	defer func() { _ = bp.Close() }()

	_, err := bp.Write([]byte("ab"))
	require.NoError(t, err)
	assert.Empty(t, c.all())

	_, err = bp.Write([]byte("cd"))
	require.NoError(t, err)
	assert.Equal(t, []string{"abcd"}, c.all())
}

func TestBatchProcessor_FlushOnTime(t *testing.T) {
	c := &collector{}
	bp := telemetry.NewBatchProcessor(1024, 5*time.Millisecond, c.add)
	defer func() { _ = bp.Close() }()

	_, err := bp.Write([]byte("tick"))
	require.NoError(t, err)

	assert.Eventually(t, func() bool {
		return len(c.all()) == 1
	}, time.Second, 5*time.Millisecond)
	assert.Equal(t, []string{"tick"}, c.all())
}

func TestBatchProcessor_CloseFlushes(t *testing.T) {
	c := &collector{}
	bp := telemetry.NewBatchProcessor(1024, time.Hour, c.add)

	_, err := bp.Write([]byte("rest"))
	require.NoError(t, err)
	require.NoError(t, bp.Close())
	require.NoError(t, bp.Close())

	assert.Equal(t, []string{"rest"}, c.all())

	_, err = bp.Write([]byte("late"))
	require.Error(t, err)
}
