package entropy

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestReadFillsBufferFromReader(t *testing.T) {
	source := New(&Config{Reader: strings.NewReader("abcdefgh")})

	buf := make([]byte, 4)
	require.NoError(t, source.Read(buf))
	assert.Equal(t, []byte("abcd"), buf)

	require.NoError(t, source.Read(buf))
	assert.Equal(t, []byte("efgh"), buf)
}

func TestReadShortReaderFails(t *testing.T) {
	source := New(&Config{Reader: strings.NewReader("ab")})

	buf := make([]byte, 4)
	assert.Error(t, source.Read(buf))
}

func TestNewDefaultsToCryptoRand(t *testing.T) {
	source := New(nil)

	buf := make([]byte, 32)
	require.NoError(t, source.Read(buf))

	assert.NotEqual(t, make([]byte, 32), buf)
}
