package core

import (
	"testing"
	"time"
)

func TestBusyWaitDelay(t *testing.T) {
	SetDelayFunc(nil)

	start := time.Now()
	DelayMs(20)
	elapsed := time.Since(start)

	if elapsed < 20*time.Millisecond {
		t.Errorf("DelayMs(20) returned after %v", elapsed)
	}
	if elapsed > 200*time.Millisecond {
		t.Errorf("DelayMs(20) took %v", elapsed)
	}
}

func TestGetTimeMonotonic(t *testing.T) {
	a := GetTime()
	DelayMs(5)
	b := GetTime()
	if b < a+5 {
		t.Errorf("Expected at least 5ms between %d and %d", a, b)
	}
}
