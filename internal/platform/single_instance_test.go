package platform

import (
	"errors"
	"testing"
)

func TestSingleInstanceLockIsExclusive(t *testing.T) {
	first, err := AcquireSingleInstance("TakeBreakLockTest")
	if err != nil {
		t.Fatalf("first acquire: %v", err)
	}
	defer first.Release()

	if _, err := AcquireSingleInstance("TakeBreakLockTest"); !errors.Is(err, ErrAlreadyRunning) {
		t.Fatalf("second acquire err = %v, want ErrAlreadyRunning", err)
	}
}

func TestSingleInstanceLockReacquireAfterRelease(t *testing.T) {
	guard, err := AcquireSingleInstance("TakeBreakReacquireTest")
	if err != nil {
		t.Fatalf("acquire: %v", err)
	}
	if guard.Address() == "" {
		t.Fatalf("guard has no bound address")
	}
	if err := guard.Release(); err != nil {
		t.Fatalf("release: %v", err)
	}

	guard, err = AcquireSingleInstance("TakeBreakReacquireTest")
	if err != nil {
		t.Fatalf("reacquire after release: %v", err)
	}
	guard.Release()
}

func TestPortFromNameIsDeterministic(t *testing.T) {
	a := portFromName("TakeBreak")
	b := portFromName("TakeBreak")
	if a != b {
		t.Fatalf("port not deterministic: %d vs %d", a, b)
	}
	if a < 20000 || a > 39999 {
		t.Fatalf("port %d outside expected range", a)
	}
}
