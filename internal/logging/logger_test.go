package logging

import (
	"testing"

	"go.uber.org/zap"
	"go.uber.org/zap/zaptest/observer"
)

func TestInit_Environments(t *testing.T) {
	for _, env := range []string{"production", "development", "test"} {
		if err := Init(env); err != nil {
			t.Fatalf("Init(%q) returned error: %v", env, err)
		}
		if GetLogger() == nil {
			t.Fatalf("Expected logger after Init(%q)", env)
		}
	}
}

func TestInfo_WritesStructuredFields(t *testing.T) {
	core, logs := observer.New(zap.InfoLevel)
	SetLogger(zap.New(core).Sugar())
	defer SetLogger(nil)

	Info("Dataset loaded", "flights", 3, "snapshot_id", "abc")

	entries := logs.All()
	if len(entries) != 1 {
		t.Fatalf("Expected 1 log entry, got %d", len(entries))
	}
	fields := entries[0].ContextMap()
	if fields["flights"] != int64(3) {
		t.Errorf("Expected flights=3, got %v", fields["flights"])
	}
	if fields["snapshot_id"] != "abc" {
		t.Errorf("Expected snapshot_id=abc, got %v", fields["snapshot_id"])
	}
}

func TestGetLogger_FallbackWithoutInit(t *testing.T) {
	SetLogger(nil)
	if GetLogger() == nil {
		t.Fatal("Expected fallback logger")
	}
}
