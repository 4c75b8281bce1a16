package drift

import (
	"strings"
	"testing"

	"github.com/haskel/parafox/internal/oracle"
)

func TestDetectChanges_WorkerCountOnly(t *testing.T) {
	prev := oracle.Result{Workers: 4, ChunkSize: 20, EstimatedSpeedup: 2.0}
	cur := oracle.Result{Workers: 6, ChunkSize: 20, EstimatedSpeedup: 2.1}
	thresholds := Thresholds{WorkerDelta: 1, SpeedupRatio: 0.2, ChunkSizeRatio: 0.5}

	changes := DetectChanges(prev, cur, thresholds)
	if len(changes) != 1 {
		t.Fatalf("expected exactly one change, got %d: %v", len(changes), changes)
	}
	if !strings.Contains(changes[0], "4 -> 6") {
		t.Errorf("expected worker change 4 -> 6, got %q", changes[0])
	}
}

func TestDetectChanges_ThresholdInclusive(t *testing.T) {
	prev := oracle.Result{Workers: 4, ChunkSize: 20, EstimatedSpeedup: 2.0}
	cur := oracle.Result{Workers: 6, ChunkSize: 20, EstimatedSpeedup: 2.0}

	// |6-4| == 2 == threshold: inclusive, must alert.
	changes := DetectChanges(prev, cur, Thresholds{WorkerDelta: 2, SpeedupRatio: 1, ChunkSizeRatio: 1})
	if len(changes) != 1 {
		t.Fatalf("expected exactly one change at the boundary, got %v", changes)
	}
}

func TestDetectChanges_UnchangedValueNeverAlerts(t *testing.T) {
	res := oracle.Result{Workers: 4, ChunkSize: 20, EstimatedSpeedup: 2.0}

	changes := DetectChanges(res, res, Thresholds{WorkerDelta: 0, SpeedupRatio: 0, ChunkSizeRatio: 0})
	if len(changes) != 0 {
		t.Errorf("expected no changes for identical results, got %v", changes)
	}
}

func TestDetectChanges_SpeedupRelative(t *testing.T) {
	prev := oracle.Result{Workers: 4, ChunkSize: 20, EstimatedSpeedup: 2.0}
	cur := oracle.Result{Workers: 4, ChunkSize: 20, EstimatedSpeedup: 2.1}

	// Relative change 0.05 < 0.2: below threshold.
	changes := DetectChanges(prev, cur, Thresholds{WorkerDelta: 1, SpeedupRatio: 0.2, ChunkSizeRatio: 0.5})
	if len(changes) != 0 {
		t.Errorf("expected no changes, got %v", changes)
	}

	cur.EstimatedSpeedup = 3.0
	changes = DetectChanges(prev, cur, Thresholds{WorkerDelta: 1, SpeedupRatio: 0.2, ChunkSizeRatio: 0.5})
	if len(changes) != 1 {
		t.Fatalf("expected one speedup change, got %v", changes)
	}
	if !strings.Contains(changes[0], "speedup") {
		t.Errorf("expected a speedup message, got %q", changes[0])
	}
}

func TestDetectChanges_ZeroPreviousSpeedupUsesEpsilonFloor(t *testing.T) {
	prev := oracle.Result{Workers: 4, ChunkSize: 20, EstimatedSpeedup: 0}
	cur := oracle.Result{Workers: 4, ChunkSize: 20, EstimatedSpeedup: 1.0}

	// Must not panic or divide by zero; the huge relative change alerts.
	changes := DetectChanges(prev, cur, Thresholds{SpeedupRatio: 0.5})
	if len(changes) != 1 {
		t.Fatalf("expected one change, got %v", changes)
	}
}

func TestDetectChanges_ChunkSkippedWhenPreviousZero(t *testing.T) {
	prev := oracle.Result{Workers: 4, ChunkSize: 0, EstimatedSpeedup: 2.0}
	cur := oracle.Result{Workers: 4, ChunkSize: 100, EstimatedSpeedup: 2.0}

	changes := DetectChanges(prev, cur, Thresholds{ChunkSizeRatio: 0.1})
	if len(changes) != 0 {
		t.Errorf("expected chunk check to be skipped, got %v", changes)
	}
}

func TestDetectChanges_FixedOrder(t *testing.T) {
	prev := oracle.Result{Workers: 4, ChunkSize: 10, EstimatedSpeedup: 2.0}
	cur := oracle.Result{Workers: 8, ChunkSize: 40, EstimatedSpeedup: 4.0}

	changes := DetectChanges(prev, cur, Thresholds{WorkerDelta: 1, SpeedupRatio: 0.1, ChunkSizeRatio: 0.1})
	if len(changes) != 3 {
		t.Fatalf("expected three changes, got %v", changes)
	}
	if !strings.Contains(changes[0], "worker") ||
		!strings.Contains(changes[1], "speedup") ||
		!strings.Contains(changes[2], "chunk") {
		t.Errorf("changes out of order: %v", changes)
	}
}
