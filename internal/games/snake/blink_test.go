package snake

import (
	"testing"
	"time"
)

func TestBlinkPhases(t *testing.T) {
	b := newBlinkEffect(6, 200*time.Millisecond)
	if b.Active() {
		t.Fatal("effect should be idle before Start")
	}

	b.Start()
	expected := []bool{false, true, false, true, false, true}
	for phase, red := range expected {
		if !b.Active() {
			t.Fatalf("effect ended early at phase %d", phase)
		}
		if b.Red() != red {
			t.Errorf("phase %d: Red() = %v, expected %v", phase, b.Red(), red)
		}
		b.Advance(200 * time.Millisecond)
	}

	if b.Active() {
		t.Error("effect should end after 6 phases")
	}
	if b.Red() {
		t.Error("finished effect should not draw red")
	}
}

func TestBlinkDisabled(t *testing.T) {
	b := newBlinkEffect(0, 200*time.Millisecond)
	b.Start()
	if b.Active() {
		t.Error("zero blink count should disable the effect")
	}
}

func TestBlinkStop(t *testing.T) {
	b := newBlinkEffect(6, 200*time.Millisecond)
	b.Start()
	b.Advance(250 * time.Millisecond)
	b.Stop()
	if b.Active() || b.Red() {
		t.Error("Stop() should cancel the effect")
	}
}
