package core

// State is a single configuration of a Domain that the learner observes.
type State interface {
	// Indexed by the Hash
	// Should be deterministic: equal states must hash equal
	Hash() string
}

// An Action that can be applied to a Domain
type Action interface {
	// Index of the action
	// Should be deterministic
	Hash() string
}

// Domain is the sequential decision problem a policy is learned for. The
// Domain owns its internal state: GenerateChildState advances it.
type Domain interface {
	// ProduceInitialState is called once at the start of every episode and
	// returns the initial state together with its legal actions.
	ProduceInitialState() (State, []Action, error)
	// GenerateChildState applies action to the domain's current state and
	// returns the successor state, its legal actions and the scalar reward
	// of the transition.
	GenerateChildState(action Action) (State, []Action, float64, error)
	// IsCurrentStateTerminal reports whether the current state ends the
	// episode.
	IsCurrentStateTerminal() bool
}

// Visualiser is implemented by domains that can render themselves. The
// trainer invokes it on the first and the last episode only.
type Visualiser interface {
	Visualise()
}
