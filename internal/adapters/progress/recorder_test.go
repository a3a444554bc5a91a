package progress_test

import (
	"testing"

	"github.com/mupmc/mup/internal/adapters/progress"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRecorder_Integration(t *testing.T) {
	rec := progress.New()
	require.NotNil(t, rec)

	vertex := rec.Begin("test download")

	_, err := vertex.Write([]byte("some output\n"))
	assert.NoError(t, err)

	vertex.Done(nil)

	assert.NoError(t, rec.Close())
}
