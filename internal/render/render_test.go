package render

import (
	"bytes"
	"encoding/json"
	"strings"
	"testing"
	"time"

	"github.com/haskel/parafox/internal/analyze"
	"github.com/haskel/parafox/internal/drift"
	"github.com/haskel/parafox/internal/oracle"
	"github.com/haskel/parafox/internal/strategy"
)

func testComparison(t *testing.T) *analyze.Comparison {
	t.Helper()

	serial, err := strategy.New("Serial", 1, 1, strategy.BackendSequential)
	if err != nil {
		t.Fatal(err)
	}
	parallel, err := strategy.New("Parallel", 4, 25, strategy.BackendProcess)
	if err != nil {
		t.Fatal(err)
	}
	cmp, err := analyze.Compare([]strategy.Config{serial, parallel}, []float64{10.0, 2.5})
	if err != nil {
		t.Fatal(err)
	}
	return cmp
}

func TestRenderer_ComparisonText(t *testing.T) {
	var buf bytes.Buffer
	New(&buf, false).Comparison("sum-squares", testComparison(t))

	out := buf.String()
	for _, want := range []string{"sum-squares", "Serial", "Parallel", "best", "Recommendations"} {
		if !strings.Contains(out, want) {
			t.Errorf("expected %q in output:\n%s", want, out)
		}
	}
}

func TestRenderer_ComparisonJSON(t *testing.T) {
	var buf bytes.Buffer
	New(&buf, true).Comparison("sum-squares", testComparison(t))

	var decoded map[string]any
	if err := json.Unmarshal(buf.Bytes(), &decoded); err != nil {
		t.Fatalf("output is not valid JSON: %v\n%s", err, buf.String())
	}
	if decoded["workload"] != "sum-squares" {
		t.Errorf("workload missing from JSON: %v", decoded)
	}
	if decoded["best_index"].(float64) != 1 {
		t.Errorf("best_index missing from JSON: %v", decoded)
	}
}

func TestRenderer_SnapshotBlocks(t *testing.T) {
	var buf bytes.Buffer
	r := New(&buf, false)

	r.Snapshot(drift.Snapshot{
		Timestamp: time.Now(),
		Iteration: 3,
		Result: oracle.Result{
			Workers:          4,
			ChunkSize:        25,
			EstimatedSpeedup: 2.5,
			Warnings:         []string{"per-item work is tiny"},
		},
	}, []string{"worker count changed: 2 -> 4"})

	out := buf.String()
	for _, want := range []string{"iteration 3", "workers=4", "warning", "drift"} {
		if !strings.Contains(out, want) {
			t.Errorf("expected %q in output:\n%s", want, out)
		}
	}
}

func TestRenderer_Summary(t *testing.T) {
	first := oracle.Result{Workers: 4, ChunkSize: 20, EstimatedSpeedup: 2.0}
	last := oracle.Result{Workers: 6, ChunkSize: 20, EstimatedSpeedup: 2.4}

	var buf bytes.Buffer
	New(&buf, false).Summary(drift.Summary{
		Iterations:    12,
		Elapsed:       3 * time.Minute,
		First:         &first,
		Last:          &last,
		Stable:        false,
		SpeedupSpread: 0.4,
	})

	out := buf.String()
	for _, want := range []string{"iterations: 12", "first:", "last:", "stable worker count: no", "0.40"} {
		if !strings.Contains(out, want) {
			t.Errorf("expected %q in output:\n%s", want, out)
		}
	}
}
