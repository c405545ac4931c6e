package waves

import (
	"math"
	"testing"
)

func TestFrequency(t *testing.T) {
	got := Frequency(8)
	want := 2 * math.Pi / 8
	if math.Abs(got-want) > 1e-12 {
		t.Errorf("expected %f, got %f", want, got)
	}
}

func TestFrequencyNonPositivePeriod(t *testing.T) {
	for _, period := range []float64{0, -8} {
		if got := Frequency(period); got != 0 {
			t.Errorf("period %.1f: expected zero frequency, got %f", period, got)
		}
	}
}

func TestLengthSatisfiesDispersion(t *testing.T) {
	period := 8.0
	for _, depth := range []float64{0.5, 1, 2, 5, 10, 20, 50} {
		l, err := Length(depth, period)
		if err != nil {
			t.Fatalf("depth %.1f: %v", depth, err)
		}
		if l <= 0 {
			t.Fatalf("depth %.1f: expected positive wave length, got %f", depth, l)
		}

		rhs := (Gravity * period * period / (2 * math.Pi)) * math.Tanh(2*math.Pi*depth/l)
		residual := math.Abs(l-rhs) / l
		if residual > 1e-6 {
			t.Errorf("depth %.1f: relative residual %g exceeds 1e-6", depth, residual)
		}
	}
}

func TestLengthDryNodes(t *testing.T) {
	for _, depth := range []float64{0, -0.5, -10} {
		l, err := Length(depth, 8)
		if err != nil {
			t.Fatalf("depth %.1f: %v", depth, err)
		}
		if l != 0 {
			t.Errorf("depth %.1f: expected zero wave length, got %f", depth, l)
		}
	}
}

func TestLengthInvalidPeriod(t *testing.T) {
	if _, err := Length(5, 0); err == nil {
		t.Error("expected error for zero period")
	}
	if _, err := Length(5, -1); err == nil {
		t.Error("expected error for negative period")
	}
}

func TestNumberRelation(t *testing.T) {
	l, err := Length(5, 8)
	if err != nil {
		t.Fatal(err)
	}
	k := Number(l)
	if math.Abs(k-2*math.Pi/l) > 1e-12 {
		t.Errorf("expected k = 2*pi/L, got %f", k)
	}
	if Number(0) != 0 {
		t.Error("expected zero wave number for zero wave length")
	}
}

func TestDeepWaterLimit(t *testing.T) {
	// In deep water the wave length approaches g*T^2 / 2*pi.
	period := 8.0
	l, err := Length(500, period)
	if err != nil {
		t.Fatal(err)
	}
	want := Gravity * period * period / (2 * math.Pi)
	if math.Abs(l-want)/want > 0.01 {
		t.Errorf("expected deep-water length near %f, got %f", want, l)
	}
}

func TestShallowWaterLimit(t *testing.T) {
	// In shallow water the celerity approaches sqrt(g*h).
	period := 8.0
	depth := 0.05
	l, err := Length(depth, period)
	if err != nil {
		t.Fatal(err)
	}
	c := Celerity(l, period)
	want := math.Sqrt(Gravity * depth)
	if math.Abs(c-want)/want > 0.05 {
		t.Errorf("expected shallow-water celerity near %f, got %f", want, c)
	}
}

func TestGroupCelerityRange(t *testing.T) {
	// n = 0.5*(1 + 2kh/sinh(kh)) spans (0.5, 1.5]: 2x/sinh(x) peaks at 2
	// for x -> 0 and decays to 0 in deep water.
	period := 8.0
	for _, depth := range []float64{0.5, 2, 5, 20, 100} {
		l, err := Length(depth, period)
		if err != nil {
			t.Fatal(err)
		}
		c := Celerity(l, period)
		cg := GroupCelerity(l, depth, period)
		if cg <= 0 {
			t.Errorf("depth %.1f: expected positive group celerity, got %f", depth, cg)
		}
		n := cg / c
		if n <= 0.5 || n > 1.5+1e-9 {
			t.Errorf("depth %.1f: ratio cg/c = %f outside (0.5, 1.5]", depth, n)
		}
	}
}

func TestGroupCelerityDeepWaterLimit(t *testing.T) {
	// The sinh(kh) term vanishes in deep water, so cg approaches c/2.
	period := 8.0
	depth := 500.0
	l, err := Length(depth, period)
	if err != nil {
		t.Fatal(err)
	}
	c := Celerity(l, period)
	cg := GroupCelerity(l, depth, period)
	if math.Abs(cg/c-0.5) > 1e-6 {
		t.Errorf("expected cg/c near 0.5 in deep water, got %f", cg/c)
	}
}

func TestGroupCelerityDry(t *testing.T) {
	if cg := GroupCelerity(0, 0, 8); cg != 0 {
		t.Errorf("expected zero group celerity at dry node, got %f", cg)
	}
	if cg := GroupCelerity(0, -1, 8); cg != 0 {
		t.Errorf("expected zero group celerity at dry node, got %f", cg)
	}
}

func TestSolveUniformDepth(t *testing.T) {
	depths := []float64{5, 5, 5, 5, 5}
	f, err := Solve(depths, 8)
	if err != nil {
		t.Fatal(err)
	}

	if len(f.Length) != len(depths) {
		t.Fatalf("expected %d nodes, got %d", len(depths), len(f.Length))
	}
	for i := 1; i < len(f.Length); i++ {
		if f.Length[i] != f.Length[0] {
			t.Errorf("node %d: expected uniform wave length %f, got %f", i, f.Length[0], f.Length[i])
		}
	}
	if f.Length[0] <= 0 {
		t.Errorf("expected positive wave length, got %f", f.Length[0])
	}
}

func TestSolveMixedDepths(t *testing.T) {
	depths := []float64{-1, 0, 3}
	f, err := Solve(depths, 8)
	if err != nil {
		t.Fatal(err)
	}

	if f.Length[0] != 0 || f.Length[1] != 0 {
		t.Errorf("expected zero wave length at dry nodes, got %v", f.Length)
	}
	if f.Length[2] <= 0 {
		t.Errorf("expected positive wave length at wet node, got %f", f.Length[2])
	}

	for _, vals := range [][]float64{f.Length, f.Number, f.Celerity, f.GroupCelerity} {
		for i, v := range vals {
			if math.IsNaN(v) || math.IsInf(v, 0) {
				t.Errorf("node %d: non-finite value %f", i, v)
			}
		}
	}
}

func TestSolveInvalidPeriod(t *testing.T) {
	if _, err := Solve([]float64{5}, 0); err == nil {
		t.Error("expected error for zero period")
	}
}

func TestSolveLargeProfileOrdering(t *testing.T) {
	// Large enough to fan out over workers; ordering must stay index-stable.
	n := 500
	depths := make([]float64, n)
	for i := range depths {
		depths[i] = 1 + float64(i%40)
	}

	f1, err := Solve(depths, 8)
	if err != nil {
		t.Fatal(err)
	}
	f2, err := Solve(depths, 8)
	if err != nil {
		t.Fatal(err)
	}

	for i := range depths {
		if f1.Length[i] != f2.Length[i] {
			t.Fatalf("node %d: non-deterministic wave length", i)
		}
		want, err := Length(depths[i], 8)
		if err != nil {
			t.Fatal(err)
		}
		if f1.Length[i] != want {
			t.Fatalf("node %d: expected %f, got %f", i, want, f1.Length[i])
		}
	}
}
