package logger

import (
	"bytes"
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLogger_Info(t *testing.T) {
	lg := New()

	var buf bytes.Buffer
	lg.(*Logger).SetOutput(&buf)
	lg.Info("some message")

	assert.Contains(t, buf.String(), "some message")
	assert.Contains(t, buf.String(), "INFO")
}

func TestLogger_Warn(t *testing.T) {
	lg := New()

	var buf bytes.Buffer
	lg.(*Logger).SetOutput(&buf)
	lg.Warn("some warning")

	assert.Contains(t, buf.String(), "some warning")
	assert.Contains(t, buf.String(), "WARN")
}

func TestLogger_Error(t *testing.T) {
	lg := New()

	var buf bytes.Buffer
	lg.(*Logger).SetOutput(&buf)
	lg.Error(os.ErrPermission)

	assert.Contains(t, buf.String(), "permission denied")
	assert.Contains(t, buf.String(), "ERROR")
}

func TestNew(t *testing.T) {
	lg := New()
	require.NotNil(t, lg)
}
