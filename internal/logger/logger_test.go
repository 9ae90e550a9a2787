package logger

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zaptest/observer"
)

func TestNew(t *testing.T) {
	l, err := New("info", "json")
	require.NoError(t, err)
	assert.NotNil(t, l.SugaredLogger)

	_, err = New("loud", "text")
	assert.Error(t, err)
}

func TestSanitizeKVs(t *testing.T) {
	core, logs := observer.New(zap.DebugLevel)
	l := &Logger{SugaredLogger: zap.New(core).Sugar()}

	l.Info("connecting", "dsn", "postgres://u:p@h/db", "driver", "postgres")

	require.Equal(t, 1, logs.Len())
	fields := logs.All()[0].ContextMap()
	assert.Equal(t, "[REDACTED]", fields["dsn"])
	assert.Equal(t, "postgres", fields["driver"])
}

func TestWith_KeepsOddTrailingKey(t *testing.T) {
	out := sanitizeKVs([]interface{}{"a", 1, "dangling"})
	assert.Equal(t, []interface{}{"a", 1, "dangling"}, out)
}
