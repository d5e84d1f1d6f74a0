package logging

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestLevels(t *testing.T) {
	var buf bytes.Buffer
	New(&buf, false).Debug("hidden")
	assert.Empty(t, buf.String())

	New(&buf, true).Debug("shown", "file", "a.wav")
	assert.Contains(t, buf.String(), "shown")
	assert.Contains(t, buf.String(), "a.wav")
}
