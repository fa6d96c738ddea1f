package core

import (
	"errors"
	"fmt"
	"math"

	erand "golang.org/x/exp/rand"
	"gonum.org/v1/gonum/stat/sampleuv"
)

var (
	ErrUnknownState  = errors.New("state was never registered")
	ErrUnknownAction = errors.New("action was never registered for this state")
	ErrNoActions     = errors.New("no legal actions")
)

// Actor holds the learned policy: a preference value for every state-action
// pair, together with an eligibility trace over the same pairs. Both tables
// are keyed on the state and action hashes. Hyperparameters are per-call
// arguments, the Actor itself carries none.
type Actor struct {
	preferences   map[string]map[string]float64
	eligibilities map[string]map[string]float64
	stateActions  map[string][]Action

	rand *erand.Rand
	src  erand.Source
}

// NewActor instantiates an Actor with empty tables. All randomness of the
// Actor is drawn from src.
func NewActor(src erand.Source) *Actor {
	return &Actor{
		preferences:   make(map[string]map[string]float64),
		eligibilities: make(map[string]map[string]float64),
		stateActions:  make(map[string][]Action),
		rand:          erand.New(src),
		src:           src,
	}
}

// AddState registers the legal actions of a state. Every action not seen
// before for this state gets a preference of 0 and a trace of 0. Fields
// already present are left untouched, so registration is idempotent.
func (a *Actor) AddState(state State, actions []Action) {
	sHash := state.Hash()
	if _, ok := a.preferences[sHash]; !ok {
		a.preferences[sHash] = make(map[string]float64)
		a.eligibilities[sHash] = make(map[string]float64)
	}
	for _, action := range actions {
		aHash := action.Hash()
		if _, ok := a.preferences[sHash][aHash]; !ok {
			a.preferences[sHash][aHash] = 0
		}
		if _, ok := a.eligibilities[sHash][aHash]; !ok {
			a.eligibilities[sHash][aHash] = 0
		}
	}
	if _, ok := a.stateActions[sHash]; !ok {
		registered := make([]Action, len(actions))
		copy(registered, actions)
		a.stateActions[sHash] = registered
	}
}

// ResetEligibilities sets every trace entry to 0. Called once per episode,
// traces never carry over between episodes.
func (a *Actor) ResetEligibilities() {
	for sHash, traces := range a.eligibilities {
		for aHash := range traces {
			a.eligibilities[sHash][aHash] = 0
		}
	}
}

// ProposeAction picks an action for state: with probability epsilon a
// uniformly random legal action, otherwise the action maximising the
// preference normalised by the branching factor. Ties resolve to the first
// maximum in registration order.
func (a *Actor) ProposeAction(state State, epsilon float64) (Action, error) {
	sHash := state.Hash()
	actions, ok := a.stateActions[sHash]
	if !ok {
		return nil, fmt.Errorf("propose action for state %s: %w", sHash, ErrUnknownState)
	}
	if len(actions) == 0 {
		return nil, fmt.Errorf("propose action for state %s: %w", sHash, ErrNoActions)
	}

	if a.rand.Float64() < epsilon {
		weights := make([]float64, len(actions))
		for i := range weights {
			weights[i] = 1
		}
		i, ok := sampleuv.NewWeighted(weights, a.src).Take()
		if !ok {
			return nil, fmt.Errorf("propose action for state %s: sampling failed", sHash)
		}
		return actions[i], nil
	}

	var best Action
	maxValue := math.Inf(-1)
	for _, action := range actions {
		value := a.preferences[sHash][action.Hash()] / float64(len(actions))
		if value > maxValue {
			best = action
			maxValue = value
		}
	}
	return best, nil
}

// MarkEligible sets the trace of the state-action pair just taken to 1,
// making it fully eligible for the credit of the current step.
func (a *Actor) MarkEligible(state State, action Action) error {
	sHash, aHash := state.Hash(), action.Hash()
	if _, ok := a.eligibilities[sHash][aHash]; !ok {
		return fmt.Errorf("mark eligible (%s, %s): %w", sHash, aHash, ErrUnknownAction)
	}
	a.eligibilities[sHash][aHash] = 1
	return nil
}

// UpdatePolicy nudges the preference of the state-action pair along the TD
// error, weighted by the pair's current eligibility.
func (a *Actor) UpdatePolicy(state State, action Action, learningRate, tdError float64) error {
	sHash, aHash := state.Hash(), action.Hash()
	if _, ok := a.preferences[sHash][aHash]; !ok {
		return fmt.Errorf("update policy (%s, %s): %w", sHash, aHash, ErrUnknownAction)
	}
	a.preferences[sHash][aHash] += learningRate * tdError * a.eligibilities[sHash][aHash]
	return nil
}

// UpdateEligibilities decays the trace of the state-action pair.
func (a *Actor) UpdateEligibilities(state State, action Action, discountRate, decayFactor float64) error {
	sHash, aHash := state.Hash(), action.Hash()
	if _, ok := a.eligibilities[sHash][aHash]; !ok {
		return fmt.Errorf("update eligibilities (%s, %s): %w", sHash, aHash, ErrUnknownAction)
	}
	a.eligibilities[sHash][aHash] *= discountRate * decayFactor
	return nil
}

// PolicyTable returns a copy of the learned preferences, keyed on state and
// action hashes.
func (a *Actor) PolicyTable() map[string]map[string]float64 {
	table := make(map[string]map[string]float64, len(a.preferences))
	for sHash, entries := range a.preferences {
		table[sHash] = make(map[string]float64, len(entries))
		for aHash, value := range entries {
			table[sHash][aHash] = value
		}
	}
	return table
}
