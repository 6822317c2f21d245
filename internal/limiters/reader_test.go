package limiters_test

import (
	"bytes"
	"context"
	"io"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/swell-scan/swell/internal/limiters"
)

func TestNewNetworkLimiter(t *testing.T) {
	assert.Nil(t, limiters.NewNetworkLimiter(0))
	assert.Nil(t, limiters.NewNetworkLimiter(-1))

	limiter := limiters.NewNetworkLimiter(1024)
	require.NotNil(t, limiter)
	assert.Equal(t, 1024+limiters.DefaultBurstSize, limiter.Burst())
}

func TestReaderPassesThroughContent(t *testing.T) {
	content := bytes.Repeat([]byte("swell"), 1000)
	limiter := limiters.NewNetworkLimiter(1 << 30)

	data, err := io.ReadAll(limiters.NewReader(context.Background(), bytes.NewReader(content), limiter))
	require.NoError(t, err)
	assert.Equal(t, content, data)
}

func TestReaderStopsOnCancelledContext(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	limiter := limiters.NewNetworkLimiter(1)
	reader := limiters.NewReader(ctx, bytes.NewReader([]byte("payload")), limiter)

	_, err := reader.Read(make([]byte, 4))
	assert.Error(t, err)
}
