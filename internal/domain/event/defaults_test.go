package event

import "testing"

func TestProgressDefaultsToZero(t *testing.T) {
	var req CreateEventRequest

	if got := req.Progress(); got != 0 {
		t.Fatalf("got %v, want 0", got)
	}

	p := 250.5
	req.CurrentProgress = &p

	if got := req.Progress(); got != 250.5 {
		t.Fatalf("got %v, want 250.5", got)
	}
}

func TestActiveDefaultsToTrue(t *testing.T) {
	var req CreateEventRequest

	if !req.Active() {
		t.Fatal("absent is_active should default to true")
	}
}

func TestActiveExplicitFalseIsKept(t *testing.T) {
	inactive := false
	req := CreateEventRequest{IsActive: &inactive}

	if req.Active() {
		t.Fatal("explicit is_active=false must not be overwritten by the default")
	}
}

func TestActiveExplicitTrue(t *testing.T) {
	active := true
	req := CreateEventRequest{IsActive: &active}

	if !req.Active() {
		t.Fatal("explicit is_active=true should stay true")
	}
}
