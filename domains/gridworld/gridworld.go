// Package gridworld provides a small deterministic grid domain used by the
// command line trainer and the end-to-end tests. The agent starts at a
// fixed cell and moves in the four cardinal directions; reaching the goal
// or a trap ends the episode.
package gridworld

import (
	"fmt"
	"strings"

	"github.com/P1NHE4D/it3105-project01/core"
	"github.com/P1NHE4D/it3105-project01/util"
)

type Config struct {
	Rows int
	Cols int
	// Start, Goal and Traps are (row, col) cells
	Start [2]int
	Goal  [2]int
	Traps [][2]int

	StepReward float64
	GoalReward float64
	TrapReward float64
}

// DefaultConfig is a 4x4 grid with one trap between start and goal.
func DefaultConfig() Config {
	return Config{
		Rows:       4,
		Cols:       4,
		Start:      [2]int{0, 0},
		Goal:       [2]int{3, 3},
		Traps:      [][2]int{{1, 2}, {2, 1}},
		StepReward: -1,
		GoalReward: 10,
		TrapReward: -10,
	}
}

type state struct {
	row, col int
}

func (s state) Hash() string {
	return util.JsonHash([2]int{s.row, s.col})
}

type move struct {
	name string
	dRow int
	dCol int
}

func (m move) Hash() string {
	return m.name
}

var moves = []move{
	{name: "up", dRow: -1, dCol: 0},
	{name: "down", dRow: 1, dCol: 0},
	{name: "left", dRow: 0, dCol: -1},
	{name: "right", dRow: 0, dCol: 1},
}

// GridWorld implements the Domain contract over the grid.
type GridWorld struct {
	config Config

	row, col int
}

var (
	_ core.Domain     = &GridWorld{}
	_ core.Visualiser = &GridWorld{}
)

func New(config Config) *GridWorld {
	return &GridWorld{
		config: config,
		row:    config.Start[0],
		col:    config.Start[1],
	}
}

func (g *GridWorld) ProduceInitialState() (core.State, []core.Action, error) {
	g.row, g.col = g.config.Start[0], g.config.Start[1]
	s := state{row: g.row, col: g.col}
	return s, g.legalActions(), nil
}

func (g *GridWorld) GenerateChildState(action core.Action) (core.State, []core.Action, float64, error) {
	var applied *move
	for i := range moves {
		if moves[i].name == action.Hash() {
			applied = &moves[i]
			break
		}
	}
	if applied == nil {
		return nil, nil, 0, fmt.Errorf("unknown action %q", action.Hash())
	}

	row, col := g.row+applied.dRow, g.col+applied.dCol
	if row < 0 || row >= g.config.Rows || col < 0 || col >= g.config.Cols {
		return nil, nil, 0, fmt.Errorf("action %q leaves the grid from (%d,%d)", applied.name, g.row, g.col)
	}
	g.row, g.col = row, col

	reward := g.config.StepReward
	if g.atGoal() {
		reward = g.config.GoalReward
	} else if g.atTrap() {
		reward = g.config.TrapReward
	}

	s := state{row: g.row, col: g.col}
	return s, g.legalActions(), reward, nil
}

func (g *GridWorld) IsCurrentStateTerminal() bool {
	return g.atGoal() || g.atTrap()
}

// Visualise prints the grid: S start, G goal, X traps, A the agent.
func (g *GridWorld) Visualise() {
	var sb strings.Builder
	for row := 0; row < g.config.Rows; row++ {
		for col := 0; col < g.config.Cols; col++ {
			cell := "."
			switch {
			case row == g.row && col == g.col:
				cell = "A"
			case row == g.config.Start[0] && col == g.config.Start[1]:
				cell = "S"
			case row == g.config.Goal[0] && col == g.config.Goal[1]:
				cell = "G"
			case g.isTrap(row, col):
				cell = "X"
			}
			sb.WriteString(cell + " ")
		}
		sb.WriteString("\n")
	}
	fmt.Print(sb.String())
}

func (g *GridWorld) legalActions() []core.Action {
	actions := make([]core.Action, 0, len(moves))
	for _, m := range moves {
		row, col := g.row+m.dRow, g.col+m.dCol
		if row < 0 || row >= g.config.Rows || col < 0 || col >= g.config.Cols {
			continue
		}
		actions = append(actions, m)
	}
	return actions
}

func (g *GridWorld) atGoal() bool {
	return g.row == g.config.Goal[0] && g.col == g.config.Goal[1]
}

func (g *GridWorld) atTrap() bool {
	return g.isTrap(g.row, g.col)
}

func (g *GridWorld) isTrap(row, col int) bool {
	for _, t := range g.config.Traps {
		if t[0] == row && t[1] == col {
			return true
		}
	}
	return false
}
