package debug

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
)

func capture(t *testing.T, enable bool) *bytes.Buffer {
	t.Helper()
	var buf bytes.Buffer
	SetOutput(&buf)
	SetDebug(enable)
	SetNoColor(true)
	t.Cleanup(func() {
		SetOutput(nil)
		SetDebug(false)
		SetNoColor(false)
	})
	return &buf
}

func TestSetDebug(t *testing.T) {
	SetDebug(false)
	assert.False(t, IsEnabled())

	SetDebug(true)
	assert.True(t, IsEnabled())

	SetDebug(false)
	assert.False(t, IsEnabled())
}

func TestDebugOutput(t *testing.T) {
	buf := capture(t, true)

	Debug("test message %s", "arg")

	out := buf.String()
	assert.Contains(t, out, "[DEBUG]")
	assert.Contains(t, out, "test message arg")
	assert.Regexp(t, `\d{2}:\d{2}:\d{2}\.\d{3}`, out)
}

func TestDebugDisabled(t *testing.T) {
	buf := capture(t, false)

	Debug("this should not appear")
	DebugSection("nor this")
	DebugValue("key", "value")

	assert.Empty(t, buf.String())
}

func TestDebugSection(t *testing.T) {
	buf := capture(t, true)

	DebugSection("Resolve")

	assert.Contains(t, buf.String(), "=== Resolve ===")
}

func TestDebugValue(t *testing.T) {
	buf := capture(t, true)

	DebugValue("namespace", "Acme.Web")

	assert.Contains(t, buf.String(), "namespace = Acme.Web")
}
