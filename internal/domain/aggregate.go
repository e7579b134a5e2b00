package domain

import "fmt"

// Tally counts, per turn, how many trials ended that turn at each core
// level. Partial tallies from independent workers combine with Merge.
type Tally struct {
	Counts [][]int
	Trials int
}

// NewTally returns an empty tally for turns rows and levels 0..maxCores.
func NewTally(turns, maxCores int) *Tally {
	counts := make([][]int, turns)
	for i := range counts {
		counts[i] = make([]int, maxCores+1)
	}
	return &Tally{Counts: counts}
}

// Record adds one trajectory. Values outside the tracked range land in the
// nearest edge bucket so every row keeps summing to Trials.
func (t *Tally) Record(traj Trajectory) {
	for turn, row := range t.Counts {
		if turn >= len(traj) {
			break
		}
		level := min(max(traj[turn], 0), len(row)-1)
		row[level]++
	}
	t.Trials++
}

// Merge adds other into t cell by cell.
func (t *Tally) Merge(other *Tally) error {
	if len(other.Counts) != len(t.Counts) {
		return fmt.Errorf("%w: %d turns vs %d", ErrTallyShape, len(other.Counts), len(t.Counts))
	}
	for i, row := range other.Counts {
		if len(row) != len(t.Counts[i]) {
			return fmt.Errorf("%w: turn %d has %d levels vs %d", ErrTallyShape, i+1, len(row), len(t.Counts[i]))
		}
		for j, n := range row {
			t.Counts[i][j] += n
		}
	}
	t.Trials += other.Trials
	return nil
}

// Percentages converts counts to count / trials * 100.
// An empty tally yields an all-zero matrix.
func (t *Tally) Percentages() Matrix {
	m := make(Matrix, len(t.Counts))
	for i, row := range t.Counts {
		m[i] = make([]float64, len(row))
		if t.Trials == 0 {
			continue
		}
		for j, n := range row {
			m[i][j] = float64(n) / float64(t.Trials) * 100
		}
	}
	return m
}

// Cumulative returns a new matrix where cell i of each row holds the
// probability of having at least i cores that turn.
func Cumulative(m Matrix) Matrix {
	out := make(Matrix, len(m))
	for i, row := range m {
		out[i] = make([]float64, len(row))
		sum := 0.0
		for j := len(row) - 1; j >= 0; j-- {
			sum += row[j]
			out[i][j] = sum
		}
	}
	return out
}

// Apply returns m in the requested view. Unknown views return m unchanged.
func (v View) Apply(m Matrix) Matrix {
	if v == ViewCumulative {
		return Cumulative(m)
	}
	return m
}

// ParseView maps a raw view name to a View, defaulting to ViewNormal.
func ParseView(raw string) View {
	if View(raw) == ViewCumulative {
		return ViewCumulative
	}
	return ViewNormal
}

// Simulate runs p.Trials sequential trials and returns the normal-view
// percentage matrix. The deck is built once and reshuffled for every trial.
func Simulate(specs []CardSpec, play PlayPolicy, mulligan MulliganPolicy, p Params, rng RNG) Matrix {
	base := BuildDeck(specs, p.MinDeckSize)

	tally := NewTally(p.Turns, p.MaxTrackedCores)
	for range p.Trials {
		tally.Record(RunTrial(Shuffle(base, rng), p, play, mulligan))
	}
	return tally.Percentages()
}
