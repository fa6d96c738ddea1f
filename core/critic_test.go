package core

import (
	"errors"
	"math"
	"testing"

	erand "golang.org/x/exp/rand"
)

func newTestCritic(seed uint64) *TableCritic {
	return NewTableCritic(erand.NewSource(seed))
}

func TestTableCriticAddStateInitialValues(t *testing.T) {
	critic := newTestCritic(3)
	for _, name := range []string{"s0", "s1", "s2", "s3", "s4"} {
		critic.AddState(testState(name))
		value := critic.stateValues[name]
		if value < 0 || value >= 1 {
			t.Errorf("initial value of %s outside [0,1): %f", name, value)
		}
		if critic.eligibilities[name] != 0 {
			t.Errorf("initial trace of %s not zero: %f", name, critic.eligibilities[name])
		}
	}
	if critic.NumSeenStates() != 5 {
		t.Errorf("NumSeenStates: got %d, want 5", critic.NumSeenStates())
	}
}

func TestTableCriticAddStateIdempotent(t *testing.T) {
	critic := newTestCritic(3)
	critic.AddState(testState("s0"))
	value := critic.stateValues["s0"]

	critic.AddState(testState("s0"))
	if critic.stateValues["s0"] != value {
		t.Errorf("re-registration changed the value: %f != %f", critic.stateValues["s0"], value)
	}
	if critic.NumSeenStates() != 1 {
		t.Errorf("NumSeenStates: got %d, want 1", critic.NumSeenStates())
	}
}

func TestComputeTDError(t *testing.T) {
	critic := newTestCritic(3)
	critic.AddState(testState("s0"))
	critic.AddState(testState("s1"))
	critic.stateValues["s0"] = 0.25
	critic.stateValues["s1"] = 0.75

	tdError, err := critic.ComputeTDError(testState("s0"), testState("s1"), 2, 0.9)
	if err != nil {
		t.Fatal(err)
	}
	want := 2 + 0.9*0.75 - 0.25
	if math.Abs(tdError-want) > 1e-12 {
		t.Errorf("td error: got %f, want %f", tdError, want)
	}
}

func TestComputeTDErrorUnknownState(t *testing.T) {
	critic := newTestCritic(3)
	critic.AddState(testState("s0"))
	if _, err := critic.ComputeTDError(testState("s0"), testState("s1"), 1, 0.9); !errors.Is(err, ErrUnknownState) {
		t.Errorf("got %v, want ErrUnknownState", err)
	}
	if _, err := critic.ComputeTDError(testState("s9"), testState("s0"), 1, 0.9); !errors.Is(err, ErrUnknownState) {
		t.Errorf("got %v, want ErrUnknownState", err)
	}
}

func TestUpdateValueFunction(t *testing.T) {
	critic := newTestCritic(3)
	critic.AddState(testState("s0"))
	critic.stateValues["s0"] = 0.5
	if err := critic.MarkEligible(testState("s0")); err != nil {
		t.Fatal(err)
	}

	if err := critic.UpdateValueFunction(testState("s0"), 0.1, 2); err != nil {
		t.Fatal(err)
	}
	if got := critic.stateValues["s0"]; math.Abs(got-0.7) > 1e-12 {
		t.Errorf("value after update: got %f, want 0.7", got)
	}
}

func TestCriticResetEligibilities(t *testing.T) {
	critic := newTestCritic(3)
	critic.AddState(testState("s0"))
	critic.AddState(testState("s1"))
	if err := critic.MarkEligible(testState("s0")); err != nil {
		t.Fatal(err)
	}
	if err := critic.MarkEligible(testState("s1")); err != nil {
		t.Fatal(err)
	}

	critic.ResetEligibilities()
	for sHash, trace := range critic.eligibilities {
		if trace != 0 {
			t.Errorf("trace of %s not reset: %f", sHash, trace)
		}
	}
}

func TestCriticEligibilityDecay(t *testing.T) {
	critic := newTestCritic(3)
	critic.AddState(testState("s0"))
	if err := critic.MarkEligible(testState("s0")); err != nil {
		t.Fatal(err)
	}

	previous := critic.eligibilities["s0"]
	for i := 0; i < 50; i++ {
		if err := critic.UpdateEligibilities(testState("s0"), 0.9, 0.9); err != nil {
			t.Fatal(err)
		}
		trace := critic.eligibilities["s0"]
		if trace <= 0 || trace >= previous {
			t.Fatalf("trace not strictly decreasing toward zero: %f (previous %f)", trace, previous)
		}
		previous = trace
	}
}

func TestNewNNCriticUnimplemented(t *testing.T) {
	_, err := NewNNCritic([]int{16, 16}, erand.NewSource(3))
	if !errors.Is(err, ErrCriticNotImplemented) {
		t.Errorf("got %v, want ErrCriticNotImplemented", err)
	}
}
