package interrupt_test

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/srlehn/termview/interrupt"
)

func TestCleanup(t *testing.T) {
	out := &bytes.Buffer{}
	require.NoError(t, interrupt.Cleanup(out))
	assert.Equal(t, "\x1b[0m\x1b[?25h\x1b[0J", out.String())
	assert.Error(t, interrupt.Cleanup(nil))
}

func TestWatchInvalid(t *testing.T) {
	_, err := interrupt.Watch(nil, &bytes.Buffer{})
	assert.Error(t, err)
	_, err = interrupt.Watch(interrupt.NewHandoff(), nil)
	assert.Error(t, err)
	_, err = interrupt.Watch(interrupt.NewHandoff(), &bytes.Buffer{}, interrupt.WithSignals())
	assert.Error(t, err)
}
