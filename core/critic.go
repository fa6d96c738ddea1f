package core

import (
	"errors"
	"fmt"

	erand "golang.org/x/exp/rand"
	"gonum.org/v1/gonum/stat/distuv"
)

const (
	CriticTable = "table"
	CriticNN    = "nn"
)

var ErrCriticNotImplemented = errors.New("nn critic is not implemented")

// Critic estimates state values and computes the temporal-difference error
// that drives both its own value updates and the actor's policy updates.
// The trainer depends only on this interface, never on a concrete variant.
type Critic interface {
	// AddState registers a state. No-op for states already seen.
	AddState(state State)
	// ResetEligibilities zeroes every trace entry. Called once per episode.
	ResetEligibilities()
	// ComputeTDError returns reward + discountRate*V(successor) - V(current).
	// Both states must already be registered.
	ComputeTDError(currentState, successorState State, reward, discountRate float64) (float64, error)
	// UpdateValueFunction nudges the state's value along the TD error,
	// weighted by the state's eligibility.
	UpdateValueFunction(state State, learningRate, tdError float64) error
	// UpdateEligibilities decays the state's trace.
	UpdateEligibilities(state State, discountRate, decayFactor float64) error
	// MarkEligible sets the trace of the state just left to 1.
	MarkEligible(state State) error
	// NumSeenStates returns the size of the value table. Diagnostic only.
	NumSeenStates() int
	// Values returns a copy of the value table keyed on state hashes.
	Values() map[string]float64
}

// TableCritic keeps the value estimate of every seen state in a table,
// alongside an eligibility trace keyed on the state alone.
type TableCritic struct {
	stateValues   map[string]float64
	eligibilities map[string]float64

	uniform distuv.Uniform
}

var _ Critic = &TableCritic{}

// NewTableCritic instantiates a TableCritic. New states get a value drawn
// uniformly from [0,1) via src, which seeds early value differences instead
// of starting from all-equal zeroes.
func NewTableCritic(src erand.Source) *TableCritic {
	return &TableCritic{
		stateValues:   make(map[string]float64),
		eligibilities: make(map[string]float64),
		uniform:       distuv.Uniform{Min: 0, Max: 1, Src: src},
	}
}

func (c *TableCritic) AddState(state State) {
	sHash := state.Hash()
	if _, ok := c.stateValues[sHash]; !ok {
		c.stateValues[sHash] = c.uniform.Rand()
	}
	if _, ok := c.eligibilities[sHash]; !ok {
		c.eligibilities[sHash] = 0
	}
}

func (c *TableCritic) ResetEligibilities() {
	for sHash := range c.eligibilities {
		c.eligibilities[sHash] = 0
	}
}

func (c *TableCritic) ComputeTDError(currentState, successorState State, reward, discountRate float64) (float64, error) {
	currentValue, ok := c.stateValues[currentState.Hash()]
	if !ok {
		return 0, fmt.Errorf("compute td error for state %s: %w", currentState.Hash(), ErrUnknownState)
	}
	successorValue, ok := c.stateValues[successorState.Hash()]
	if !ok {
		return 0, fmt.Errorf("compute td error for state %s: %w", successorState.Hash(), ErrUnknownState)
	}
	return reward + discountRate*successorValue - currentValue, nil
}

func (c *TableCritic) UpdateValueFunction(state State, learningRate, tdError float64) error {
	sHash := state.Hash()
	if _, ok := c.stateValues[sHash]; !ok {
		return fmt.Errorf("update value function for state %s: %w", sHash, ErrUnknownState)
	}
	c.stateValues[sHash] += learningRate * tdError * c.eligibilities[sHash]
	return nil
}

func (c *TableCritic) UpdateEligibilities(state State, discountRate, decayFactor float64) error {
	sHash := state.Hash()
	if _, ok := c.eligibilities[sHash]; !ok {
		return fmt.Errorf("update eligibilities for state %s: %w", sHash, ErrUnknownState)
	}
	c.eligibilities[sHash] *= discountRate * decayFactor
	return nil
}

func (c *TableCritic) MarkEligible(state State) error {
	sHash := state.Hash()
	if _, ok := c.eligibilities[sHash]; !ok {
		return fmt.Errorf("mark eligible for state %s: %w", sHash, ErrUnknownState)
	}
	c.eligibilities[sHash] = 1
	return nil
}

func (c *TableCritic) NumSeenStates() int {
	return len(c.stateValues)
}

func (c *TableCritic) Values() map[string]float64 {
	values := make(map[string]float64, len(c.stateValues))
	for sHash, value := range c.stateValues {
		values[sHash] = value
	}
	return values
}

// NewNNCritic is the constructor of the neural-network critic variant: a
// Critic whose value function is a parametric approximator with the given
// layer dimensions instead of a table. The variant is declared but not
// implemented.
func NewNNCritic(dims []int, src erand.Source) (Critic, error) {
	return nil, fmt.Errorf("critic type %q with dims %v: %w", CriticNN, dims, ErrCriticNotImplemented)
}
