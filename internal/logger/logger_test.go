package logger

import (
	"bytes"
	"testing"

	"artnet2mendeleev/internal/config"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewLoggerLevel(t *testing.T) {
	l, err := NewLogger(config.LogConf{Level: "debug"})
	require.NoError(t, err)
	assert.Equal(t, "debug", l.GetLevel())

	_, err = NewLogger(config.LogConf{Level: "loud"})
	assert.Error(t, err)
}

func TestWithFields(t *testing.T) {
	var buf bytes.Buffer
	l, err := newLogger(config.LogConf{Level: "info"}, &buf)
	require.NoError(t, err)

	l.With(Fields{"module": "bridge", "element": "He"}).Info("cabinet changed")
	l.Debug("hidden")

	out := buf.String()
	assert.Contains(t, out, "cabinet changed")
	assert.Contains(t, out, "module=bridge")
	assert.Contains(t, out, "element=He")
	assert.NotContains(t, out, "hidden")
}

func TestLoggerInterface(t *testing.T) {
	var buf bytes.Buffer
	l, err := newLogger(config.LogConf{Level: "warn"}, &buf)
	require.NoError(t, err)

	var iface Logger = l
	assert.Equal(t, "warning", iface.GetLevel())
	iface.With(Fields{"module": "mqtt"}).Warn("broker slow")
	assert.Contains(t, buf.String(), "module=mqtt")
}
