package walk

import "sort"

// SampleInterval is the step spacing of the aggregate series.
// Matches the reporting granularity of the downstream plots.
const SampleInterval = 5

// StepPoint is one sampled point of the aggregate series.
type StepPoint struct {
	Step               int
	MeanDistFromOrigin float64
	MeanDistFromXAxis  float64
	MeanDistFromYAxis  float64
	MeanCrossings      float64
}

// AggregateStatistics summarizes a batch of runs. Scalar collections
// are sorted so the summary is identical regardless of Add order.
type AggregateStatistics struct {
	NumRuns       int
	NumSteps      int
	MeanFinalDist float64
	ExitedRuns    int
	ExitFraction  float64
	MeanExitStep  float64 // among runs that exited; 0 if none did
	MeanCrossings float64
	Series        []StepPoint
	FinalDists    []float64
	ExitSteps     []int
	Crossings     []int
}

// seriesSample is one run's contribution to one sampled series point.
type seriesSample struct {
	origin float64
	xDist  float64
	yDist  float64
	cross  float64
}

type runSample struct {
	index     int
	finalDist float64
	crossings int
	exitStep  int // -1 when the run never exited
	series    []seriesSample
}

// Aggregator combines per-run results into summary distributions.
// Add only buffers; Summarize sums in run-index order, so float
// rounding cannot make the statistics depend on the Add order. Not
// safe for concurrent Add; callers collect results behind a
// single-writer barrier.
type Aggregator struct {
	numSteps int
	sampled  []int
	runs     []runSample
}

// NewAggregator creates an aggregator for runs of numSteps steps.
func NewAggregator(numSteps int) *Aggregator {
	return &Aggregator{
		numSteps: numSteps,
		sampled:  SampledSteps(numSteps),
	}
}

// SampledSteps returns the series sample points for a step budget:
// every SampleInterval-th step, plus the final step when the budget is
// not a multiple of the interval.
func SampledSteps(numSteps int) []int {
	steps := make([]int, 0, numSteps/SampleInterval+2)
	for s := 0; s <= numSteps; s += SampleInterval {
		steps = append(steps, s)
	}
	if numSteps%SampleInterval != 0 {
		steps = append(steps, numSteps)
	}
	return steps
}

// Add buffers a run result for later reduction.
func (a *Aggregator) Add(r RunResult) {
	sample := runSample{
		index:     r.Index,
		finalDist: r.FinalDist,
		crossings: r.XAxisCrossings,
		exitStep:  r.ExitStep,
		series:    make([]seriesSample, 0, len(a.sampled)),
	}

	// Walk the trace once, sampling the series points as they pass.
	next := 0
	crossings := 0
	for i, pos := range r.Trace {
		if i > 0 {
			prev := r.Trace[i-1]
			if (prev.Y > 0 && pos.Y < 0) || (prev.Y < 0 && pos.Y > 0) {
				crossings++
			}
		}
		if next < len(a.sampled) && i == a.sampled[next] {
			sample.series = append(sample.series, seriesSample{
				origin: pos.Dist(),
				xDist:  float64(pos.DistFromXAxis()),
				yDist:  float64(pos.DistFromYAxis()),
				cross:  float64(crossings),
			})
			next++
		}
	}
	a.runs = append(a.runs, sample)
}

// Summarize reduces everything added so far. Runs are summed in index
// order, so the same multiset of results yields bit-identical
// statistics in any insertion order.
func (a *Aggregator) Summarize() AggregateStatistics {
	runs := append([]runSample(nil), a.runs...)
	sort.SliceStable(runs, func(i, j int) bool { return runs[i].index < runs[j].index })

	stats := AggregateStatistics{
		NumRuns:  len(runs),
		NumSteps: a.numSteps,
	}

	sumFinalDist := 0.0
	sumCrossings := 0
	sumExitStep := 0
	stepSums := make([]seriesSample, len(a.sampled))
	stepCounts := make([]int, len(a.sampled))
	for _, r := range runs {
		sumFinalDist += r.finalDist
		sumCrossings += r.crossings
		stats.FinalDists = append(stats.FinalDists, r.finalDist)
		stats.Crossings = append(stats.Crossings, r.crossings)
		if r.exitStep >= 0 {
			stats.ExitedRuns++
			sumExitStep += r.exitStep
			stats.ExitSteps = append(stats.ExitSteps, r.exitStep)
		}
		for i, s := range r.series {
			stepSums[i].origin += s.origin
			stepSums[i].xDist += s.xDist
			stepSums[i].yDist += s.yDist
			stepSums[i].cross += s.cross
			stepCounts[i]++
		}
	}
	sort.Float64s(stats.FinalDists)
	sort.Ints(stats.ExitSteps)
	sort.Ints(stats.Crossings)

	if len(runs) > 0 {
		stats.MeanFinalDist = sumFinalDist / float64(len(runs))
		stats.MeanCrossings = float64(sumCrossings) / float64(len(runs))
		stats.ExitFraction = float64(stats.ExitedRuns) / float64(len(runs))
	}
	if stats.ExitedRuns > 0 {
		stats.MeanExitStep = float64(sumExitStep) / float64(stats.ExitedRuns)
	}

	stats.Series = make([]StepPoint, 0, len(a.sampled))
	for i, s := range a.sampled {
		point := StepPoint{Step: s}
		if stepCounts[i] > 0 {
			n := float64(stepCounts[i])
			point.MeanDistFromOrigin = stepSums[i].origin / n
			point.MeanDistFromXAxis = stepSums[i].xDist / n
			point.MeanDistFromYAxis = stepSums[i].yDist / n
			point.MeanCrossings = stepSums[i].cross / n
		}
		stats.Series = append(stats.Series, point)
	}

	return stats
}
