package drive

import (
	"bytes"
	"log"
	"testing"

	"github.com/stretchr/testify/assert"
)

func newBufferedLogger(prefix string, debug bool) (*DefaultLogger, *bytes.Buffer, *bytes.Buffer) {
	var out, errOut bytes.Buffer
	l := NewDefaultLogger(prefix, debug)
	l.out = log.New(&out, "", 0)
	l.err = log.New(&errOut, "", 0)
	return l, &out, &errOut
}

func TestDefaultLogger_Levels(t *testing.T) {
	l, out, errOut := newBufferedLogger("drive", true)

	l.Debugf("rebuilt %d", 1)
	l.Infof("added %s", "a")
	l.Warnf("disabled %s", "b")
	l.Errorf("failed %s", "c")

	assert.Equal(t, "[drive] DEBUG: rebuilt 1\n[drive] INFO: added a\n", out.String())
	assert.Equal(t, "[drive] WARN: disabled b\n[drive] ERROR: failed c\n", errOut.String())
}

func TestDefaultLogger_DebugDisabled(t *testing.T) {
	l, out, _ := newBufferedLogger("", false)

	l.Debugf("hidden")
	assert.Empty(t, out.String())

	l.SetDebug(true)
	assert.True(t, l.DebugEnabled())
	l.Debugf("shown")
	assert.Equal(t, "DEBUG: shown\n", out.String())
}

func TestNopLogger(t *testing.T) {
	l := NewNopLogger()
	l.SetDebug(true)

	assert.False(t, l.DebugEnabled())
	assert.NotPanics(t, func() {
		l.Debugf("x")
		l.Infof("x")
		l.Warnf("x")
		l.Errorf("x")
	})
}
