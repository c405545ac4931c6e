package hydro

import (
	"errors"
	"testing"
)

func TestForcingValuesArity(t *testing.T) {
	storm := Forcing{Storm: true, CurrentVelocity: 1, WaveVelocity: 2}
	if n := len(storm.Values()); n != 2 {
		t.Errorf("storm forcing: expected 2 values, got %d", n)
	}

	calm := Forcing{CurrentVelocity: 1, WaveVelocity: 2, WavePeriod: 8}
	vals := calm.Values()
	if len(vals) != 3 {
		t.Fatalf("calm forcing: expected 3 values, got %d", len(vals))
	}
	if vals[2] != 8 {
		t.Errorf("expected wave period 8 in third position, got %f", vals[2])
	}
}

func TestPhaseString(t *testing.T) {
	tests := []struct {
		phase Phase
		want  string
	}{
		{Uninitiated, "uninitiated"},
		{Initiated, "initiated"},
		{Finalised, "finalised"},
	}
	for _, tt := range tests {
		if got := tt.phase.String(); got != tt.want {
			t.Errorf("expected %q, got %q", tt.want, got)
		}
	}
}

func TestNodeErrorUnwrap(t *testing.T) {
	err := &NodeError{Node: 3, Depth: 2.5, Wrapped: ErrNoConvergence}
	if !errors.Is(err, ErrNoConvergence) {
		t.Error("NodeError should unwrap to ErrNoConvergence")
	}
	if err.Error() == "" {
		t.Error("expected non-empty error string")
	}
}
