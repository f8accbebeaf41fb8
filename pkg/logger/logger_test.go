package logger

import "testing"

func TestL_InitializesOnDemand(t *testing.T) {
	l := L()
	if l == nil {
		t.Fatalf("nil logger")
	}
	// Init after L is a no-op; the instance is stable.
	Init("development")
	if L() != l {
		t.Fatalf("logger replaced after Init")
	}
	Sync()
}
