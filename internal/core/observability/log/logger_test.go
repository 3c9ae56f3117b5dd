package log

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"
)

func TestFromZapFields(t *testing.T) {
	core, logs := observer.New(zapcore.DebugLevel)
	l := FromZap(zap.New(core))

	l.With(String("scene", "rig.yaml")).Named("export").Info("exported",
		Int("rows", 5),
		Float64("value", 90),
		Bool("raw", true),
		Strings("axes", []string{"Track", "Pan"}),
		Error(errors.New("boom")),
	)

	require.Equal(t, 1, logs.Len())
	entry := logs.All()[0]
	assert.Equal(t, "exported", entry.Message)
	assert.Equal(t, "export", entry.LoggerName)

	ctx := entry.ContextMap()
	assert.Equal(t, "rig.yaml", ctx["scene"])
	assert.EqualValues(t, 5, ctx["rows"])
	assert.Equal(t, 90.0, ctx["value"])
	assert.Equal(t, true, ctx["raw"])
	assert.Equal(t, "boom", ctx["error"])
}

func TestParseLevel(t *testing.T) {
	lvl, err := ParseLevel("WARN")
	require.NoError(t, err)
	assert.Equal(t, LevelWarn, lvl)

	lvl, err = ParseLevel("")
	require.NoError(t, err)
	assert.Equal(t, LevelInfo, lvl)

	_, err = ParseLevel("chatty")
	assert.Error(t, err)
}

func TestSetLevel(t *testing.T) {
	l := NewNop()
	l.SetLevel(LevelError)
	assert.Equal(t, LevelError, l.GetLevel())
}
