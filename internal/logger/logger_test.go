package logger

import "testing"

func TestInit(t *testing.T) {
	prev := Log
	defer func() { Log = prev }()

	if err := Init("debug", true); err != nil {
		t.Fatalf("Init: %v", err)
	}
	if Log == prev {
		t.Error("expected Log to be replaced")
	}
	if !Log.Core().Enabled(-1) {
		t.Error("expected debug level to be enabled")
	}
}

func TestInitRejectsBadLevel(t *testing.T) {
	prev := Log
	defer func() { Log = prev }()

	if err := Init("loud", false); err == nil {
		t.Error("expected error for unknown level")
	}
	if Log != prev {
		t.Error("Log replaced despite error")
	}
}
