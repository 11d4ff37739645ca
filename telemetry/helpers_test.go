package telemetry

import "strconv"

// line is the walk 0 → 1 → … → n over integers with unit steps.
type line int

func (l line) InitialState() int         { return 0 }
func (l line) GoalState() int            { return int(l) }
func (l line) GoalTest(s int) bool       { return s == int(l) }
func (l line) StateKey(s int) string     { return strconv.Itoa(s) }
func (l line) Result(s, a int) int       { return s + a }
func (l line) StepCost(int, int) float64 { return 1 }

func (l line) Actions(s int) []int {
	if s >= int(l) {
		return nil
	}

	return []int{1}
}
