package logging

import (
	"testing"
)

func TestDebugEnabled(t *testing.T) {
	t.Setenv("TASKTRACK_DEBUG", "")
	if DebugEnabled() {
		t.Errorf("DebugEnabled should be false when TASKTRACK_DEBUG is unset")
	}

	t.Setenv("TASKTRACK_DEBUG", "1")
	if !DebugEnabled() {
		t.Errorf("DebugEnabled should be true when TASKTRACK_DEBUG is set")
	}
}

func TestDebugfDisabled(t *testing.T) {
	t.Setenv("TASKTRACK_DEBUG", "")
	// Must not panic or print when disabled
	Debugf("value: %d\n", 42)
	Debugln("quiet")
}
