package scoring

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var jeeMarking = Marking{CorrectPoints: 4, WrongPoints: 1, Negative: true}

func TestAggregateSingleSubject(t *testing.T) {
	sum := Aggregate(jeeMarking, []Counts{{Total: 10, Attempted: 8, Correct: 6}})

	require.Len(t, sum.Subjects, 1)
	assert.Equal(t, 22.0, sum.RawScore)
	assert.Equal(t, 40.0, sum.MaxScore)
	assert.InDelta(t, 55.0, sum.ScorePct, 1e-9)
	assert.InDelta(t, 75.0, sum.AccuracyPct, 1e-9)

	s := sum.Subjects[0]
	assert.InDelta(t, 80.0, s.AttemptsPct, 1e-9)
	assert.InDelta(t, 75.0, s.AccuracyPct, 1e-9)
	assert.InDelta(t, 55.0, s.ScorePct, 1e-9)
}

func TestAggregateUnattemptedSubjectDilutesScoreOnly(t *testing.T) {
	sum := Aggregate(jeeMarking, []Counts{
		{Total: 10, Attempted: 8, Correct: 6},
		{Total: 10, Attempted: 0, Correct: 0},
	})

	assert.Equal(t, 22.0, sum.RawScore)
	assert.Equal(t, 80.0, sum.MaxScore)
	assert.InDelta(t, 27.5, sum.ScorePct, 1e-9)
	assert.InDelta(t, 75.0, sum.AccuracyPct, 1e-9)

	physics := sum.Subjects[1]
	assert.Equal(t, 0.0, physics.AttemptsPct)
	assert.Equal(t, 0.0, physics.AccuracyPct)
	assert.Equal(t, 0.0, physics.ScorePct)
}

func TestAggregateNoSubjects(t *testing.T) {
	sum := Aggregate(jeeMarking, nil)
	assert.Empty(t, sum.Subjects)
	assert.Equal(t, 0.0, sum.ScorePct)
	assert.Equal(t, 0.0, sum.AccuracyPct)
}

func TestAggregateZeroTotalTolerated(t *testing.T) {
	sum := Aggregate(jeeMarking, []Counts{{Total: 0, Attempted: 4, Correct: 2}})
	require.Len(t, sum.Subjects, 1)
	assert.Equal(t, 0.0, sum.Subjects[0].AttemptsPct)
	assert.Equal(t, 0.0, sum.Subjects[0].ScorePct)
	assert.InDelta(t, 50.0, sum.Subjects[0].AccuracyPct, 1e-9)
	assert.Equal(t, 0.0, sum.ScorePct)
}

func TestAggregateGrandTotalsIgnoreOrder(t *testing.T) {
	counts := []Counts{
		{Total: 30, Attempted: 25, Correct: 20},
		{Total: 25, Attempted: 12, Correct: 12},
		{Total: 45, Attempted: 40, Correct: 31},
	}
	reversed := []Counts{counts[2], counts[1], counts[0]}

	a := Aggregate(jeeMarking, counts)
	b := Aggregate(jeeMarking, reversed)

	assert.Equal(t, a.ScorePct, b.ScorePct)
	assert.Equal(t, a.AccuracyPct, b.AccuracyPct)
	assert.Equal(t, a.Subjects[0], b.Subjects[2])
	assert.Equal(t, a.Subjects[2], b.Subjects[0])
}

func TestAggregateDeterministic(t *testing.T) {
	counts := []Counts{{Total: 7, Attempted: 6, Correct: 5}, {Total: 3, Attempted: 3, Correct: 1}}
	m := Marking{CorrectPoints: 3, WrongPoints: 0.33, Negative: true}
	assert.Equal(t, Aggregate(m, counts), Aggregate(m, counts))
}
