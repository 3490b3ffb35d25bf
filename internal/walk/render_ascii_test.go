package walk

import (
	"strings"
	"testing"
)

func TestRenderTraceASCII(t *testing.T) {
	p := DefaultParams()
	p.NumSteps = 50
	p.Obstacles = []Rect{NewRect(10, 10, 12, 12)}
	p.Gates = []Gate{{Area: NewRect(-8, -8, -6, -6), Target: Origin}}

	e, err := NewEngine(p, 13)
	if err != nil {
		t.Fatalf("NewEngine: %v", err)
	}
	r := e.Run()

	out := RenderTraceASCII(r, p.Obstacles, p.Gates, 60, 20)

	if !strings.Contains(out, "Steps: 50") {
		t.Error("header missing step count")
	}
	if !strings.Contains(out, "S") {
		t.Error("plot missing start marker")
	}
	if !strings.Contains(out, "E") && !r.Final.Equal(Origin) {
		t.Error("plot missing final marker")
	}
	if !strings.Contains(out, "#") {
		t.Error("plot missing obstacle marker")
	}
	if !strings.Contains(out, "G") {
		t.Error("plot missing gate marker")
	}
}

func TestRenderTraceASCIIFitsBounds(t *testing.T) {
	// A long random-length walk must still fit the requested cell box.
	p := DefaultParams()
	p.WalkerType = WalkerRandomLength
	p.MinStep, p.MaxStep = 1, 10
	p.NumSteps = 2000
	p.ExitRadius = 0

	e, err := NewEngine(p, 31)
	if err != nil {
		t.Fatalf("NewEngine: %v", err)
	}
	r := e.Run()

	maxW, maxH := 40, 15
	out := RenderTraceASCII(r, nil, nil, maxW, maxH)

	lines := strings.Split(strings.TrimRight(out, "\n"), "\n")
	// Header + separator + plot rows.
	if len(lines)-2 > maxH+1 {
		t.Errorf("plot has %d rows, want <= %d", len(lines)-2, maxH+1)
	}
	for i, line := range lines[2:] {
		if len(line) > maxW+1 {
			t.Errorf("row %d is %d chars wide, want <= %d", i, len(line), maxW+1)
		}
	}
}
