package core

import (
	"fmt"

	erand "golang.org/x/exp/rand"
	"gonum.org/v1/gonum/stat"
)

// EpisodeStats is the diagnostic record emitted after every episode.
// Informational only, nothing in it feeds back into learning.
type EpisodeStats struct {
	Episode    int
	Steps      int
	MinSteps   int
	AvgSteps   float64
	Epsilon    float64
	SeenStates int
}

// Reporter consumes per-episode diagnostics, e.g. a terminal progress line.
type Reporter interface {
	Report(EpisodeStats)
}

type DataSet interface{}

// Analyzer accumulates per-episode diagnostics into a dataset.
type Analyzer interface {
	Analyze(EpisodeStats)
	DataSet() DataSet
	Reset()
}

// ACM is the actor-critic model: the training loop that wires a Domain to
// the Actor and a Critic. Each step it queries the domain for a successor,
// computes the TD error and replays it over every state-action pair visited
// so far in the episode.
type ACM struct {
	config *Config

	actor   *Actor
	critic  Critic
	epsilon float64

	reporter  Reporter
	analyzers []Analyzer
}

// NewACM validates the config and constructs the actor and the configured
// critic variant. A single seeded random source is shared between them.
func NewACM(config *Config) (*ACM, error) {
	if err := config.Validate(); err != nil {
		return nil, err
	}

	src := erand.NewSource(config.Seed)
	actor := NewActor(src)

	var critic Critic
	switch config.CriticType {
	case CriticTable:
		critic = NewTableCritic(src)
	case CriticNN:
		var err error
		critic, err = NewNNCritic(config.CriticNNDims, src)
		if err != nil {
			return nil, err
		}
	default:
		return nil, fmt.Errorf("unknown critic type %q", config.CriticType)
	}

	return &ACM{
		config:    config,
		actor:     actor,
		critic:    critic,
		epsilon:   config.Epsilon,
		analyzers: make([]Analyzer, 0),
	}, nil
}

// SetReporter registers the consumer of per-episode diagnostics.
func (m *ACM) SetReporter(r Reporter) {
	m.reporter = r
}

// AddAnalyzer registers an analyzer that is fed after every episode.
func (m *ACM) AddAnalyzer(a Analyzer) {
	m.analyzers = append(m.analyzers, a)
}

// Actor returns the actor holding the learned policy.
func (m *ACM) Actor() *Actor {
	return m.actor
}

// Critic returns the critic holding the learned value estimates.
func (m *ACM) Critic() Critic {
	return m.critic
}

// Epsilon returns the current exploration probability.
func (m *ACM) Epsilon() float64 {
	return m.epsilon
}

// Fit learns a policy for the given domain by running the configured number
// of episodes. The learned artifact is the actor's policy table and the
// critic's value table; Fit never stops early on convergence.
func (m *ACM) Fit(domain Domain) error {
	stepsPerEpisode := make([]float64, 0, m.config.Episodes)
	minSteps := 0

	for episodeCount := 0; episodeCount < m.config.Episodes; episodeCount++ {
		steps, err := m.runEpisode(domain)
		if err != nil {
			return fmt.Errorf("episode %d: %w", episodeCount, err)
		}

		// exploration shrinks across the run regardless of episode outcome
		m.epsilon *= m.config.EpsilonDecay

		if m.config.Visualise && (episodeCount == 0 || episodeCount == m.config.Episodes-1) {
			if v, ok := domain.(Visualiser); ok {
				v.Visualise()
			}
		}

		stepsPerEpisode = append(stepsPerEpisode, float64(steps))
		if episodeCount == 0 || steps < minSteps {
			minSteps = steps
		}
		stats := EpisodeStats{
			Episode:    episodeCount,
			Steps:      steps,
			MinSteps:   minSteps,
			AvgSteps:   stat.Mean(stepsPerEpisode, nil),
			Epsilon:    m.epsilon,
			SeenStates: m.critic.NumSeenStates(),
		}
		for _, a := range m.analyzers {
			a.Analyze(stats)
		}
		if m.reporter != nil {
			m.reporter.Report(stats)
		}
	}
	return nil
}

// runEpisode advances the domain until it reports a terminal state or the
// step limit is hit, and returns the number of steps taken.
func (m *ACM) runEpisode(domain Domain) (int, error) {
	m.actor.ResetEligibilities()
	m.critic.ResetEligibilities()

	currentState, actions, err := domain.ProduceInitialState()
	if err != nil {
		return 0, fmt.Errorf("produce initial state: %w", err)
	}
	m.actor.AddState(currentState, actions)
	m.critic.AddState(currentState)

	var currentAction Action
	if len(actions) > 0 {
		currentAction, err = m.actor.ProposeAction(currentState, m.epsilon)
		if err != nil {
			return 0, err
		}
	} else if !domain.IsCurrentStateTerminal() {
		return 0, fmt.Errorf("non-terminal initial state %s: %w", currentState.Hash(), ErrNoActions)
	}

	history := newEpisode()

	step := 0
	for step < m.config.Steps && !domain.IsCurrentStateTerminal() {
		step++

		history.append(currentState, currentAction)

		successorState, actions, reward, err := domain.GenerateChildState(currentAction)
		if err != nil {
			return step, fmt.Errorf("generate child state: %w", err)
		}
		m.actor.AddState(successorState, actions)
		m.critic.AddState(successorState)

		var successorAction Action
		if len(actions) > 0 {
			successorAction, err = m.actor.ProposeAction(successorState, m.epsilon)
			if err != nil {
				return step, err
			}
		} else if !domain.IsCurrentStateTerminal() {
			return step, fmt.Errorf("non-terminal state %s: %w", successorState.Hash(), ErrNoActions)
		}

		if err := m.actor.MarkEligible(currentState, currentAction); err != nil {
			return step, err
		}
		tdError, err := m.critic.ComputeTDError(currentState, successorState, reward, m.config.Discount)
		if err != nil {
			return step, err
		}
		if err := m.critic.MarkEligible(currentState); err != nil {
			return step, err
		}

		// Replay the TD error over every pair visited so far, oldest first.
		// Later updates in the sweep read values already mutated by earlier
		// entries, the ordering is part of the algorithm.
		for i := 0; i < history.len(); i++ {
			visited := history.step(i)
			if err := m.critic.UpdateValueFunction(visited.state, m.config.CriticLR, tdError); err != nil {
				return step, err
			}
			if err := m.critic.UpdateEligibilities(visited.state, m.config.Discount, m.config.Decay); err != nil {
				return step, err
			}
			if err := m.actor.UpdatePolicy(visited.state, visited.action, m.config.ActorLR, tdError); err != nil {
				return step, err
			}
			if err := m.actor.UpdateEligibilities(visited.state, visited.action, m.config.Discount, m.config.Decay); err != nil {
				return step, err
			}
		}

		currentState, currentAction = successorState, successorAction
	}

	return step, nil
}
