package walk

import (
	"math"
	"math/rand"
	"testing"
)

func TestSampledSteps(t *testing.T) {
	tests := []struct {
		numSteps int
		want     []int
	}{
		{0, []int{0}},
		{10, []int{0, 5, 10}},
		{12, []int{0, 5, 10, 12}}, // final step appended when off-interval
		{5, []int{0, 5}},
	}
	for _, tt := range tests {
		got := SampledSteps(tt.numSteps)
		if len(got) != len(tt.want) {
			t.Errorf("SampledSteps(%d) = %v, want %v", tt.numSteps, got, tt.want)
			continue
		}
		for i := range got {
			if got[i] != tt.want[i] {
				t.Errorf("SampledSteps(%d) = %v, want %v", tt.numSteps, got, tt.want)
				break
			}
		}
	}
}

// runBatchResults produces a deterministic set of run results.
func runBatchResults(t *testing.T, n, steps int) []RunResult {
	t.Helper()
	p := DefaultParams()
	p.NumSteps = steps

	results := make([]RunResult, n)
	for i := range results {
		e, err := NewEngine(p, RunSeed(777, i))
		if err != nil {
			t.Fatalf("NewEngine: %v", err)
		}
		results[i] = e.Run()
		results[i].Index = i
	}
	return results
}

func TestAggregatorOrderInvariance(t *testing.T) {
	// The same multiset of results yields identical statistics in
	// forward and reverse insertion order.
	results := runBatchResults(t, 50, 40)

	fwd := NewAggregator(40)
	for _, r := range results {
		fwd.Add(r)
	}
	rev := NewAggregator(40)
	for i := len(results) - 1; i >= 0; i-- {
		rev.Add(results[i])
	}
	shuf := NewAggregator(40)
	perm := rand.New(rand.NewSource(99)).Perm(len(results))
	for _, i := range perm {
		shuf.Add(results[i])
	}

	s1 := fwd.Summarize()
	for name, other := range map[string]AggregateStatistics{
		"reversed": rev.Summarize(),
		"shuffled": shuf.Summarize(),
	} {
		s2 := other
		if s1.MeanFinalDist != s2.MeanFinalDist {
			t.Errorf("%s mean final dist: %v vs %v", name, s1.MeanFinalDist, s2.MeanFinalDist)
		}
		if s1.MeanCrossings != s2.MeanCrossings {
			t.Errorf("%s mean crossings: %v vs %v", name, s1.MeanCrossings, s2.MeanCrossings)
		}
		if s1.ExitedRuns != s2.ExitedRuns || s1.MeanExitStep != s2.MeanExitStep {
			t.Errorf("%s exit stats: (%d, %v) vs (%d, %v)",
				name, s1.ExitedRuns, s1.MeanExitStep, s2.ExitedRuns, s2.MeanExitStep)
		}
		for i := range s1.Series {
			if s1.Series[i] != s2.Series[i] {
				t.Errorf("%s series[%d]: %+v vs %+v", name, i, s1.Series[i], s2.Series[i])
			}
		}
		for i := range s1.FinalDists {
			if s1.FinalDists[i] != s2.FinalDists[i] {
				t.Errorf("%s final dists diverge at %d", name, i)
				break
			}
		}
	}
}

func TestAggregatorMeans(t *testing.T) {
	results := runBatchResults(t, 20, 30)

	agg := NewAggregator(30)
	sum := 0.0
	for _, r := range results {
		agg.Add(r)
		sum += r.FinalDist
	}
	stats := agg.Summarize()

	if stats.NumRuns != 20 {
		t.Errorf("runs = %d, want 20", stats.NumRuns)
	}
	want := sum / 20
	if math.Abs(stats.MeanFinalDist-want) > 1e-12 {
		t.Errorf("mean final dist = %v, want %v", stats.MeanFinalDist, want)
	}
	if stats.ExitFraction < 0 || stats.ExitFraction > 1 {
		t.Errorf("exit fraction = %v out of range", stats.ExitFraction)
	}
}

func TestAggregatorSeriesAtOrigin(t *testing.T) {
	// Every run starts at the origin, so the step-0 point is all zeros.
	results := runBatchResults(t, 10, 20)

	agg := NewAggregator(20)
	for _, r := range results {
		agg.Add(r)
	}
	stats := agg.Summarize()

	if len(stats.Series) == 0 {
		t.Fatal("empty series")
	}
	first := stats.Series[0]
	if first.Step != 0 || first.MeanDistFromOrigin != 0 || first.MeanCrossings != 0 {
		t.Errorf("step-0 point = %+v, want all zeros", first)
	}
}

func TestAggregatorSortedCollections(t *testing.T) {
	results := runBatchResults(t, 30, 25)

	agg := NewAggregator(25)
	for _, r := range results {
		agg.Add(r)
	}
	stats := agg.Summarize()

	for i := 1; i < len(stats.FinalDists); i++ {
		if stats.FinalDists[i] < stats.FinalDists[i-1] {
			t.Error("final distances not sorted")
			break
		}
	}
	for i := 1; i < len(stats.ExitSteps); i++ {
		if stats.ExitSteps[i] < stats.ExitSteps[i-1] {
			t.Error("exit steps not sorted")
			break
		}
	}
}

func TestAggregatorEmpty(t *testing.T) {
	stats := NewAggregator(10).Summarize()

	if stats.NumRuns != 0 || stats.MeanFinalDist != 0 || stats.ExitFraction != 0 {
		t.Errorf("empty aggregate = %+v, want zeros", stats)
	}
}
