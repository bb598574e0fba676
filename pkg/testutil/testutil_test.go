package testutil

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/arthur-debert/diinject/pkg/container"
)

func TestCreateFile(t *testing.T) {
	dir := t.TempDir()

	path := CreateFile(t, dir, "test.txt", "hello world")
	content, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "hello world", string(content))

	nested := CreateFile(t, dir, "sub/dir/test2.txt", "nested")
	assert.Equal(t, filepath.Join(dir, "sub", "dir", "test2.txt"), nested)
	assert.FileExists(t, nested)
}

func TestCaptureLogger(t *testing.T) {
	prev := zerolog.GlobalLevel()

	t.Run("collects entries", func(t *testing.T) {
		logger, logs := CaptureLogger(t)
		logger.Debug().Str("id", "a").Msg("first")
		logger.Warn().Msg("second")
		logger.Warn().Msg("third")

		assert.Len(t, logs.Entries(), 3)
		assert.Equal(t, []string{"first"}, logs.Messages(zerolog.DebugLevel))
		assert.Equal(t, []string{"second", "third"}, logs.Messages(zerolog.WarnLevel))
		assert.Empty(t, logs.Messages(zerolog.ErrorLevel))
		assert.Equal(t, "a", logs.Entries()[0]["id"])
	})

	assert.Equal(t, prev, zerolog.GlobalLevel())
}

func TestIsolateShared(t *testing.T) {
	before := container.Shared()

	t.Run("isolated", func(t *testing.T) {
		c := IsolateShared(t)
		assert.Same(t, c, container.Shared())
		assert.NotSame(t, before, c)
		assert.Equal(t, 0, c.Count())
	})

	assert.Same(t, before, container.Shared())
}
