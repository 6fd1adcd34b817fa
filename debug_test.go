package drop

import (
	"testing"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"
)

func newObservedGame(t *testing.T, debug bool) (*testGame, *observer.ObservedLogs) {
	t.Helper()
	core, logs := observer.New(zapcore.DebugLevel)
	tg := newTestGame(t, func(c *Config) { c.Debug.Enabled = debug })
	tg.log = zap.New(core)
	return tg, logs
}

func TestDebugLogInterval(t *testing.T) {
	tg, logs := newObservedGame(t, true)
	for i := 0; i < debugLogInterval-1; i++ {
		tg.debugLog()
	}
	if n := logs.FilterMessage("frame").Len(); n != 0 {
		t.Fatalf("logged %d frame lines before the interval", n)
	}
	tg.debugLog()
	entries := logs.FilterMessage("frame").All()
	if len(entries) != 1 {
		t.Fatalf("logged %d frame lines, want 1", len(entries))
	}
	if _, ok := entries[0].ContextMap()["drops"]; !ok {
		t.Error("frame line missing drops field")
	}
}

func TestDebugLogDisabled(t *testing.T) {
	tg, logs := newObservedGame(t, false)
	for i := 0; i < debugLogInterval*2; i++ {
		tg.debugLog()
	}
	if logs.Len() != 0 {
		t.Errorf("logged %d entries with debug disabled", logs.Len())
	}
}

func TestDebugDropCountWarnsOnce(t *testing.T) {
	tg, logs := newObservedGame(t, true)
	for i := 0; i <= debugMaxDrops; i++ {
		tg.addDrop(0, 100)
	}
	tg.debugCheckDropCount()
	tg.debugCheckDropCount()
	if n := logs.FilterMessage("active drop count exceeds threshold").Len(); n != 1 {
		t.Errorf("warned %d times, want 1", n)
	}
}

func TestLifecycleTransitionsAreLogged(t *testing.T) {
	tg, logs := newObservedGame(t, false)
	if err := tg.Pause(); err != nil {
		t.Fatal(err)
	}
	if logs.Len() == 0 {
		t.Error("pause was not logged")
	}
}

func TestFocusChangesAreLogged(t *testing.T) {
	tg, logs := newObservedGame(t, false)

	tg.input.SetFocused(false)
	tg.syncFocus()
	tg.input.SetFocused(true)
	tg.syncFocus()

	if n := logs.FilterMessage("lifecycle").Len(); n != 2 {
		t.Errorf("logged %d lifecycle transitions, want 2", n)
	}
	if n := logs.FilterLevelExact(zapcore.WarnLevel).Len(); n != 0 {
		t.Errorf("logged %d warnings for legal focus changes", n)
	}
}
