package core

// episodeStep is one (state, action) pair visited during an episode.
type episodeStep struct {
	state  State
	action Action
}

// episode records the state-action pairs visited so far in the current
// episode, oldest first. The history only grows, it is never rewound.
type episode struct {
	steps []episodeStep
}

func newEpisode() *episode {
	return &episode{
		steps: make([]episodeStep, 0),
	}
}

func (e *episode) append(state State, action Action) {
	e.steps = append(e.steps, episodeStep{state: state, action: action})
}

func (e *episode) len() int {
	return len(e.steps)
}

func (e *episode) step(i int) episodeStep {
	return e.steps[i]
}
