package disc

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// answersByDimension builds a complete set where every answer of a
// dimension gets the same value.
func answersByDimension(d, i, s, c int) AnswerSet {
	vals := map[Dimension]int{Dominance: d, Influence: i, Steadiness: s, Compliance: c}
	set := NewAnswerSet()
	for k := range set {
		set[k].Value = vals[set[k].Dimension]
	}
	return set
}

func TestComputeScores_Extremes(t *testing.T) {
	low, err := ComputeScores(answersByDimension(1, 1, 1, 1))
	require.NoError(t, err)
	assert.Equal(t, Scores{}, low)

	high, err := ComputeScores(answersByDimension(4, 4, 4, 4))
	require.NoError(t, err)
	assert.Equal(t, Scores{Dominance: 100, Influence: 100, Steadiness: 100, Compliance: 100}, high)
}

func TestComputeScores_DominanceOnly(t *testing.T) {
	res, err := Evaluate(answersByDimension(4, 1, 1, 1))
	require.NoError(t, err)

	assert.Equal(t, Scores{Dominance: 100}, res.Scores)
	assert.Equal(t, DescribeScore(Dominance, 100), res.Insights[0].Description)
	assert.Equal(t, "Strong preference for leadership and challenge-seeking behavior", res.Insights[0].Description)
	for _, in := range res.Insights[1:] {
		assert.Equal(t, TierLow, in.Tier, in.Dimension.Name())
		assert.Equal(t, DescribeScore(in.Dimension, 0), in.Description)
	}
	assert.Equal(t, Dominance, res.Primary.Dimension)
	assert.Equal(t, Influence, res.Secondary.Dimension)
}

func TestNormalize_ReachableValues(t *testing.T) {
	want := map[int]int{
		5: 0, 6: 7, 7: 13, 8: 20, 9: 27, 10: 33, 11: 40, 12: 47,
		13: 53, 14: 60, 15: 67, 16: 73, 17: 80, 18: 87, 19: 93, 20: 100,
	}
	for raw, score := range want {
		if got := normalize(raw); got != score {
			t.Errorf("normalize(%d) = %d, want %d", raw, got, score)
		}
	}
}

func TestComputeScores_Bounds(t *testing.T) {
	// Walk every answer through every value, one question at a time.
	set := answersByDimension(1, 1, 1, 1)
	for i := range set {
		for v := MinValue; v <= MaxValue; v++ {
			set[i].Value = v
			s, err := ComputeScores(set)
			require.NoError(t, err)
			for _, d := range AllDimensions() {
				assert.GreaterOrEqual(t, s.Get(d), 0)
				assert.LessOrEqual(t, s.Get(d), 100)
			}
		}
	}
}

func TestComputeScores_Monotonic(t *testing.T) {
	base := answersByDimension(2, 3, 1, 4)
	for i := range base {
		for v := MinValue; v < MaxValue; v++ {
			lower := base.Clone()
			lower[i].Value = v
			higher := base.Clone()
			higher[i].Value = v + 1

			a, err := ComputeScores(lower)
			require.NoError(t, err)
			b, err := ComputeScores(higher)
			require.NoError(t, err)

			d := base[i].Dimension
			if b.Get(d) < a.Get(d) {
				t.Errorf("question %d: raising %d->%d lowered %s from %d to %d",
					base[i].QuestionID, v, v+1, d.Name(), a.Get(d), b.Get(d))
			}
		}
	}
}

func TestComputeScores_Idempotent(t *testing.T) {
	set := answersByDimension(3, 2, 4, 1)
	set[0].Value = 1
	a, err := ComputeScores(set)
	require.NoError(t, err)
	b, err := ComputeScores(set)
	require.NoError(t, err)
	assert.Equal(t, a, b)
}

func TestComputeScores_RejectsIncomplete(t *testing.T) {
	// Three Dominance answers of 1 and two unanswered sum to 3, below the
	// minimum raw sum of 5. That must be an error, not a negative score.
	set := answersByDimension(1, 2, 2, 2)
	set[3].Value = Unanswered
	set[4].Value = Unanswered

	_, err := ComputeScores(set)
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrIncompleteInput))

	var incomplete *IncompleteInputError
	require.True(t, errors.As(err, &incomplete))
	assert.Equal(t, []int{4, 5}, incomplete.Unanswered)
}

func TestComputeScores_RejectsWrongShape(t *testing.T) {
	set := answersByDimension(2, 2, 2, 2)[:19]
	_, err := ComputeScores(set)
	require.Error(t, err)

	var incomplete *IncompleteInputError
	require.True(t, errors.As(err, &incomplete))
	require.NotNil(t, incomplete.Dimension)
	assert.Equal(t, Compliance, *incomplete.Dimension)
	assert.Equal(t, 4, incomplete.Count)
}

func TestComputeScores_RejectsUnknownDimension(t *testing.T) {
	set := answersByDimension(2, 2, 2, 2)
	set[2].Dimension = Dimension(9)
	_, err := ComputeScores(set)
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrIncompleteInput))

	var incomplete *IncompleteInputError
	require.True(t, errors.As(err, &incomplete))
	assert.Equal(t, []int{3}, incomplete.InvalidDimension)
	assert.Empty(t, incomplete.Unanswered)
	assert.Contains(t, err.Error(), "unknown dimension")
	assert.NotContains(t, err.Error(), "unanswered")
}

func TestComputeScores_RejectsDuplicateQuestion(t *testing.T) {
	set := answersByDimension(2, 2, 2, 2)
	set[1].QuestionID = set[0].QuestionID
	_, err := ComputeScores(set)
	require.Error(t, err)

	var incomplete *IncompleteInputError
	require.True(t, errors.As(err, &incomplete))
	assert.Equal(t, []int{set[0].QuestionID}, incomplete.Duplicate)
	assert.Contains(t, err.Error(), "answered more than once")
}

func TestComputeScores_RejectsOutOfRange(t *testing.T) {
	set := answersByDimension(2, 2, 2, 2)
	set[7].Value = 5
	_, err := ComputeScores(set)
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrOutOfRange))
}

func TestScores_Get(t *testing.T) {
	s := Scores{Dominance: 1, Influence: 2, Steadiness: 3, Compliance: 4}
	assert.Equal(t, 1, s.Get(Dominance))
	assert.Equal(t, 2, s.Get(Influence))
	assert.Equal(t, 3, s.Get(Steadiness))
	assert.Equal(t, 4, s.Get(Compliance))
	assert.Equal(t, 0, s.Get(Dimension(9)))
}
