package history

import (
	"testing"
	"time"

	"github.com/haskel/parafox/internal/analyze"
	"github.com/haskel/parafox/internal/logger"
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

func TestStore_SaveLoadRoundTrip(t *testing.T) {
	store := New(t.TempDir(), logger.Silent())
	cmp := testComparison(t)

	id, err := store.Save("sum-squares", cmp)
	if err != nil {
		t.Fatalf("save: %v", err)
	}
	if id == "" {
		t.Fatal("expected a non-empty id")
	}

	rec, err := store.Load(id)
	if err != nil {
		t.Fatalf("load: %v", err)
	}

	if rec.ID != id {
		t.Errorf("id mismatch: %s vs %s", rec.ID, id)
	}
	if rec.Workload != "sum-squares" {
		t.Errorf("workload mismatch: %s", rec.Workload)
	}
	if len(rec.Names) != 2 || rec.Names[1] != "Parallel" {
		t.Errorf("names not preserved: %v", rec.Names)
	}
	if rec.BestIndex != 1 {
		t.Errorf("best index not preserved: %d", rec.BestIndex)
	}
	if rec.Speedups[1] != 4.0 {
		t.Errorf("speedups not preserved: %v", rec.Speedups)
	}
	if rec.Backends[0] != "sequential" || rec.Backends[1] != "process" {
		t.Errorf("backends not preserved: %v", rec.Backends)
	}
}

func TestStore_ListNewestFirst(t *testing.T) {
	store := New(t.TempDir(), logger.Silent())
	cmp := testComparison(t)

	first, err := store.Save("one", cmp)
	if err != nil {
		t.Fatal(err)
	}
	time.Sleep(5 * time.Millisecond)
	second, err := store.Save("two", cmp)
	if err != nil {
		t.Fatal(err)
	}

	records, err := store.List()
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if len(records) != 2 {
		t.Fatalf("expected 2 records, got %d", len(records))
	}
	if records[0].ID != second || records[1].ID != first {
		t.Errorf("expected newest first, got %s then %s", records[0].ID, records[1].ID)
	}
}

func TestStore_ListEmptyDir(t *testing.T) {
	store := New(t.TempDir()+"/missing", logger.Silent())

	records, err := store.List()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(records) != 0 {
		t.Errorf("expected no records, got %d", len(records))
	}
}

func TestStore_LoadMissing(t *testing.T) {
	store := New(t.TempDir(), logger.Silent())
	if _, err := store.Load("no-such-id"); err == nil {
		t.Error("expected error for missing record")
	}
}
