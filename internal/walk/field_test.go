package walk

import "testing"

func TestRectNormalization(t *testing.T) {
	// Corners may come in any order.
	r := NewRect(5, 7, -2, -3)
	want := Rect{XMin: -2, YMin: -3, XMax: 5, YMax: 7}
	if r != want {
		t.Errorf("NewRect = %v, want %v", r, want)
	}
}

func TestRectContains(t *testing.T) {
	tests := []struct {
		rect Rect
		pos  Position
		want bool
	}{
		{NewRect(0, 0, 0, 0), P(0, 0), true}, // degenerate rect contains its point
		{NewRect(0, 0, 0, 0), P(0, 1), false},
		{NewRect(-2, -2, 2, 2), P(2, 2), true}, // bounds are inclusive
		{NewRect(-2, -2, 2, 2), P(3, 0), false},
		{NewRect(-2, -2, 2, 2), P(0, -2), true},
	}
	for _, tt := range tests {
		if got := tt.rect.Contains(tt.pos); got != tt.want {
			t.Errorf("%v.Contains(%s) = %v, want %v", tt.rect, tt.pos, got, tt.want)
		}
	}
}

func TestObstacleField(t *testing.T) {
	f := NewObstacleField([]Rect{
		NewRect(1, 1, 3, 3),
		NewRect(-5, -5, -4, -4),
	})

	if !f.Blocked(P(2, 2)) {
		t.Error("(2,2) should be blocked")
	}
	if !f.Blocked(P(-4, -5)) {
		t.Error("(-4,-5) should be blocked")
	}
	if f.Blocked(Origin) {
		t.Error("origin should be free")
	}
}

func TestGateSetMiss(t *testing.T) {
	g := NewGateSet([]Gate{
		{Area: NewRect(5, 5, 6, 6), Target: Origin},
	})

	if _, _, ok := g.Check(P(4, 5)); ok {
		t.Error("(4,5) should not trigger the gate")
	}
	target, index, ok := g.Check(P(5, 6))
	if !ok || index != 0 || !target.Equal(Origin) {
		t.Errorf("Check(5,6) = (%s, %d, %v), want (origin, 0, true)", target, index, ok)
	}
}

func TestRestartRuleTriggers(t *testing.T) {
	r := NewRestartRule([]int{5, 10}, 1)
	rng := NewRNG(1)

	if r.MaybeRestart(4, rng) {
		t.Error("step 4 is not a trigger step")
	}
	if !r.MaybeRestart(5, rng) {
		t.Error("step 5 must fire with probability 1")
	}
	if !r.MaybeRestart(10, rng) {
		t.Error("step 10 must fire with probability 1")
	}
}

func TestRestartRuleDisabled(t *testing.T) {
	r := NewRestartRule(nil, 0.5)
	if r.Enabled() {
		t.Error("empty step list should disable the rule")
	}
	if r.MaybeRestart(1, NewRNG(1)) {
		t.Error("disabled rule must never fire")
	}
}

func TestRestartRuleRNGConsumption(t *testing.T) {
	// Non-trigger steps leave the RNG stream untouched.
	r := NewRestartRule([]int{100}, 0.5)
	rng := NewRNG(7)
	before := rng.state

	r.MaybeRestart(1, rng)
	r.MaybeRestart(2, rng)

	if rng.state != before {
		t.Error("non-trigger steps consumed RNG state")
	}
}

func TestTowardOrigin(t *testing.T) {
	tests := []struct {
		in, want Position
	}{
		{P(3, -4), P(2, -3)},
		{P(-1, 0), P(0, 0)},
		{P(0, 0), P(0, 0)},
		{P(0, 5), P(0, 4)},
	}
	for _, tt := range tests {
		if got := tt.in.TowardOrigin(); !got.Equal(tt.want) {
			t.Errorf("%s.TowardOrigin() = %s, want %s", tt.in, got, tt.want)
		}
	}
}
