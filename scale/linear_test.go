package scale

import (
	"math"
	"testing"
)

func TestLinearPick(t *testing.T) {
	l := NewLinear(0, 100)
	if err := l.Pick(PickConfig{}); err != nil {
		t.Fatal(err)
	}
	if l.Step != 10 {
		t.Errorf("Step = %v, want 10", l.Step)
	}
	if l.MinorStep != 2 {
		t.Errorf("MinorStep = %v, want 2", l.MinorStep)
	}
	if l.Min != 0 || l.Max != 100 {
		t.Errorf("range = [%v, %v], want [0, 100]", l.Min, l.Max)
	}
	if l.Mag != 0 {
		t.Errorf("Mag = %d, want 0", l.Mag)
	}
	if got := len(l.MajorTicks()); got != 11 {
		t.Errorf("major ticks = %d, want 11", got)
	}
	if got := len(l.MinorTicks()); got != 51 {
		t.Errorf("minor ticks = %d, want 51", got)
	}
}

func TestLinearPickAlignsOutward(t *testing.T) {
	l := NewLinear(3, 97)
	if err := l.Pick(PickConfig{}); err != nil {
		t.Fatal(err)
	}
	if l.Min != 0 || l.Max != 100 {
		t.Errorf("range = [%v, %v], want [0, 100]", l.Min, l.Max)
	}
}

func TestLinearDegenerate(t *testing.T) {
	l := NewLinear(5, 5)
	if err := l.Pick(PickConfig{}); err != nil {
		t.Fatal(err)
	}
	if l.Min > 4 || l.Max < 6 {
		t.Errorf("range = [%v, %v], want it to cover [4, 6]", l.Min, l.Max)
	}
	if l.Step != 0.5 {
		t.Errorf("Step = %v, want 0.5", l.Step)
	}
	if got := l.Label(4); got != "4.0" {
		t.Errorf("Label(4) = %q, want \"4.0\"", got)
	}
}

func TestLinearLabelsGroupDigits(t *testing.T) {
	l := NewLinear(0, 2e6)
	if err := l.Pick(PickConfig{}); err != nil {
		t.Fatal(err)
	}
	if l.Mag != 0 {
		t.Fatalf("Mag = %d, want 0", l.Mag)
	}
	if got := l.Label(500000); got != "500,000" {
		t.Errorf("Label(500000) = %q, want \"500,000\"", got)
	}
	if got := l.Label(2e6); got != "2,000,000" {
		t.Errorf("Label(2e6) = %q, want \"2,000,000\"", got)
	}
}

func TestLinearEngineeringMagnitude(t *testing.T) {
	l := NewLinear(0, 5e7)
	if err := l.Pick(PickConfig{}); err != nil {
		t.Fatal(err)
	}
	if l.Mag != 6 {
		t.Fatalf("Mag = %d, want 6", l.Mag)
	}
	if got := l.Label(5e7); got != "50" {
		t.Errorf("Label(5e7) = %q, want \"50\"", got)
	}
}

func TestLinearEstimatorCoarsens(t *testing.T) {
	l := NewLinear(0, 100)
	if err := l.Pick(PickConfig{Estimator: fixedLabels(3)}); err != nil {
		t.Fatal(err)
	}
	if l.Step != 50 {
		t.Errorf("Step = %v, want 50", l.Step)
	}
}

func TestLinearPinnedStep(t *testing.T) {
	l := NewLinear(0, 100)
	l.StepAuto = false
	l.Step = 25
	if err := l.Pick(PickConfig{}); err != nil {
		t.Fatal(err)
	}
	if l.Step != 25 {
		t.Errorf("Step = %v, want pinned 25", l.Step)
	}
	if math.Abs(l.MinorStep-5) > 1e-12 {
		t.Errorf("MinorStep = %v, want 5", l.MinorStep)
	}
}
