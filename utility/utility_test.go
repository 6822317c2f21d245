package utility_test

import (
	"io"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/swell-scan/swell/utility"
)

type closeCounter struct {
	io.Reader
	closed int
}

func (c *closeCounter) Close() error {
	c.closed++
	return nil
}

func TestReadAllAndClose(t *testing.T) {
	rc := &closeCounter{Reader: strings.NewReader("payload")}
	data, err := utility.ReadAllAndClose(rc, "")
	require.NoError(t, err)
	assert.Equal(t, "payload", string(data))
	assert.Equal(t, 1, rc.closed)
}

func TestIsSuccessfulStatus(t *testing.T) {
	assert.True(t, utility.IsSuccessfulStatus(200))
	assert.True(t, utility.IsSuccessfulStatus(204))
	assert.False(t, utility.IsSuccessfulStatus(199))
	assert.False(t, utility.IsSuccessfulStatus(301))
	assert.False(t, utility.IsSuccessfulStatus(500))
}

func TestTruncateBody(t *testing.T) {
	assert.Equal(t, "short", utility.TruncateBody([]byte(" short\n"), 10))
	assert.Equal(t, "abc...", utility.TruncateBody([]byte("abcdef"), 3))
	assert.Equal(t, "abcdef", utility.TruncateBody([]byte("abcdef"), 0))
}

func TestMax(t *testing.T) {
	assert.Equal(t, 3, utility.Max(3, -1))
	assert.Equal(t, 0, utility.Max(-5, 0))
}
