package storage

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/vovakirdan/randwalk/internal/walk"
)

func TestStoreOpenClose(t *testing.T) {
	tmpDir := t.TempDir()
	dbPath := filepath.Join(tmpDir, "test.db")

	store, err := Open(dbPath)
	if err != nil {
		t.Fatalf("Open() failed: %v", err)
	}
	defer store.Close()

	// Check that the file was created
	if _, err := os.Stat(dbPath); os.IsNotExist(err) {
		t.Error("Database file was not created")
	}
}

func TestStoreSaveAndRetrieveBatch(t *testing.T) {
	tmpDir := t.TempDir()
	dbPath := filepath.Join(tmpDir, "test.db")

	store, err := Open(dbPath)
	if err != nil {
		t.Fatalf("Open() failed: %v", err)
	}
	defer store.Close()

	id, err := store.SaveBatch(BatchRecord{
		WalkerType:     1,
		NumSimulations: 100,
		NumSteps:       500,
		Seed:           42,
		MeanFinalDist:  12.5,
		MeanExitStep:   87.3,
		ExitedRuns:     63,
	})
	if err != nil {
		t.Fatalf("SaveBatch() failed: %v", err)
	}
	if id <= 0 {
		t.Fatalf("SaveBatch() returned id %d", id)
	}

	batches, err := store.RecentBatches(10)
	if err != nil {
		t.Fatalf("RecentBatches() failed: %v", err)
	}
	if len(batches) != 1 {
		t.Fatalf("Expected 1 batch, got %d", len(batches))
	}

	b := batches[0]
	if b.ID != id || b.NumSimulations != 100 || b.NumSteps != 500 || b.Seed != 42 {
		t.Errorf("Batch round trip mismatch: %+v", b)
	}
	if b.MeanFinalDist != 12.5 || b.ExitedRuns != 63 {
		t.Errorf("Batch stats mismatch: %+v", b)
	}
	if b.CreatedAt.IsZero() {
		t.Error("CreatedAt was not populated")
	}
}

func TestStoreSaveAndRetrieveRuns(t *testing.T) {
	tmpDir := t.TempDir()
	dbPath := filepath.Join(tmpDir, "test.db")

	store, err := Open(dbPath)
	if err != nil {
		t.Fatalf("Open() failed: %v", err)
	}
	defer store.Close()

	batchID, err := store.SaveBatch(BatchRecord{WalkerType: 1, NumSimulations: 3, NumSteps: 10})
	if err != nil {
		t.Fatalf("SaveBatch() failed: %v", err)
	}

	runs := []RunRecord{
		NewRunRecord(batchID, walk.RunResult{Index: 0, Final: walk.P(3, 4), FinalDist: 5, ExitStep: 7, XAxisCrossings: 2}),
		NewRunRecord(batchID, walk.RunResult{Index: 1, Final: walk.P(-1, 0), FinalDist: 1, ExitStep: -1}),
		NewRunRecord(batchID, walk.RunResult{Index: 2, Final: walk.P(0, 0), FinalDist: 0, ExitStep: -1, Restarts: 1}),
	}
	if err := store.SaveRuns(batchID, runs); err != nil {
		t.Fatalf("SaveRuns() failed: %v", err)
	}

	got, err := store.BatchRuns(batchID)
	if err != nil {
		t.Fatalf("BatchRuns() failed: %v", err)
	}
	if len(got) != 3 {
		t.Fatalf("Expected 3 runs, got %d", len(got))
	}

	// Ordered by run index
	if got[0].RunIndex != 0 || got[1].RunIndex != 1 || got[2].RunIndex != 2 {
		t.Errorf("Runs not ordered by index: %+v", got)
	}
	if got[0].FinalX != 3 || got[0].FinalY != 4 || got[0].FinalDist != 5 {
		t.Errorf("Run 0 round trip mismatch: %+v", got[0])
	}
	if got[1].ExitStep != -1 {
		t.Errorf("Run 1 exit step = %d, want -1", got[1].ExitStep)
	}
	if got[2].Restarts != 1 {
		t.Errorf("Run 2 restarts = %d, want 1", got[2].Restarts)
	}
}

func TestStoreRecentBatchesLimit(t *testing.T) {
	tmpDir := t.TempDir()
	dbPath := filepath.Join(tmpDir, "test.db")

	store, err := Open(dbPath)
	if err != nil {
		t.Fatalf("Open() failed: %v", err)
	}
	defer store.Close()

	for i := 0; i < 5; i++ {
		if _, err := store.SaveBatch(BatchRecord{WalkerType: 1, NumSimulations: i + 1}); err != nil {
			t.Fatalf("SaveBatch() failed: %v", err)
		}
	}

	batches, err := store.RecentBatches(3)
	if err != nil {
		t.Fatalf("RecentBatches() failed: %v", err)
	}
	if len(batches) != 3 {
		t.Errorf("Expected 3 batches with limit, got %d", len(batches))
	}
}

func TestStoreClearHistory(t *testing.T) {
	tmpDir := t.TempDir()
	dbPath := filepath.Join(tmpDir, "test.db")

	store, err := Open(dbPath)
	if err != nil {
		t.Fatalf("Open() failed: %v", err)
	}
	defer store.Close()

	batchID, _ := store.SaveBatch(BatchRecord{WalkerType: 1, NumSimulations: 1})
	store.SaveRuns(batchID, []RunRecord{{BatchID: batchID, RunIndex: 0}})

	if err := store.ClearHistory(); err != nil {
		t.Fatalf("ClearHistory() failed: %v", err)
	}

	batches, _ := store.RecentBatches(10)
	if len(batches) != 0 {
		t.Errorf("Expected 0 batches after clear, got %d", len(batches))
	}
	runs, _ := store.BatchRuns(batchID)
	if len(runs) != 0 {
		t.Errorf("Expected 0 runs after clear, got %d", len(runs))
	}
}

func TestStoreNestedPath(t *testing.T) {
	tmpDir := t.TempDir()
	dbPath := filepath.Join(tmpDir, "subdir", "deep", "test.db")

	store, err := Open(dbPath)
	if err != nil {
		t.Fatalf("Open() with nested path failed: %v", err)
	}
	defer store.Close()

	// Verify nested directories were created
	if _, err := os.Stat(dbPath); os.IsNotExist(err) {
		t.Error("Database file was not created in nested directory")
	}
}
