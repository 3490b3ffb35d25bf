package batch

import (
	"context"
	"testing"

	"github.com/vovakirdan/randwalk/internal/config"
)

func testConfig() config.Config {
	cfg := config.Default()
	cfg.NumSimulations = 50
	cfg.NumSteps = 100
	return cfg
}

func TestRunMatchesSequential(t *testing.T) {
	// Worker count must not change the statistics: the same base seed
	// always yields the same batch.
	cfg := testConfig()

	seq, err := Run(context.Background(), cfg, Options{Seed: 42, Workers: 1})
	if err != nil {
		t.Fatalf("sequential run: %v", err)
	}
	par, err := Run(context.Background(), cfg, Options{Seed: 42, Workers: 8})
	if err != nil {
		t.Fatalf("parallel run: %v", err)
	}

	if seq.Stats.MeanFinalDist != par.Stats.MeanFinalDist {
		t.Errorf("mean final dist: %v vs %v", seq.Stats.MeanFinalDist, par.Stats.MeanFinalDist)
	}
	if seq.Stats.ExitedRuns != par.Stats.ExitedRuns {
		t.Errorf("exited runs: %d vs %d", seq.Stats.ExitedRuns, par.Stats.ExitedRuns)
	}
	if seq.Stats.MeanCrossings != par.Stats.MeanCrossings {
		t.Errorf("mean crossings: %v vs %v", seq.Stats.MeanCrossings, par.Stats.MeanCrossings)
	}
	for i := range seq.Runs {
		if !seq.Runs[i].Final.Equal(par.Runs[i].Final) {
			t.Errorf("run %d final: %s vs %s", i, seq.Runs[i].Final, par.Runs[i].Final)
			break
		}
	}
}

func TestRunIndexesResults(t *testing.T) {
	cfg := testConfig()
	cfg.NumSimulations = 10

	res, err := Run(context.Background(), cfg, Options{Seed: 7})
	if err != nil {
		t.Fatalf("Run: %v", err)
	}
	if len(res.Runs) != 10 {
		t.Fatalf("got %d runs, want 10", len(res.Runs))
	}
	for i, r := range res.Runs {
		if r.Index != i {
			t.Errorf("runs[%d].Index = %d", i, r.Index)
		}
	}
	if res.Stats.NumRuns != 10 {
		t.Errorf("stats run count = %d, want 10", res.Stats.NumRuns)
	}
}

func TestRunRejectsBadConfig(t *testing.T) {
	cfg := testConfig()
	cfg.WalkerType = 9

	if _, err := Run(context.Background(), cfg, Options{Seed: 1}); err == nil {
		t.Error("expected an error for an invalid walker type")
	}
}

func TestRunHonorsCancellation(t *testing.T) {
	cfg := testConfig()
	cfg.NumSimulations = 1000

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	if _, err := Run(ctx, cfg, Options{Seed: 1, Workers: 2}); err == nil {
		t.Error("expected an error from a cancelled context")
	}
}
