package disc

import (
	"encoding/json"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewAnswerSet(t *testing.T) {
	set := NewAnswerSet()
	require.Len(t, set, QuestionCount)
	for i, a := range set {
		assert.Equal(t, i+1, a.QuestionID)
		assert.Equal(t, Unanswered, a.Value)
	}
	assert.False(t, set.Complete())
	assert.Len(t, set.Unanswered(), QuestionCount)
	assert.Equal(t, 0, set.Answered())
}

func TestAnswerSet_Set(t *testing.T) {
	set := NewAnswerSet()
	require.NoError(t, set.Set(3, 4))
	assert.Equal(t, 4, set.Value(3))

	// Revisiting a question overwrites the answer.
	require.NoError(t, set.Set(3, 2))
	assert.Equal(t, 2, set.Value(3))
	assert.Equal(t, 1, set.Answered())

	require.NoError(t, set.Set(3, Unanswered))
	assert.Equal(t, Unanswered, set.Value(3))
}

func TestAnswerSet_SetRejectsOutOfRange(t *testing.T) {
	set := NewAnswerSet()
	for _, v := range []int{-1, 5, 100} {
		err := set.Set(1, v)
		require.Error(t, err, "value %d", v)
		assert.True(t, errors.Is(err, ErrOutOfRange))

		var oor *OutOfRangeError
		require.True(t, errors.As(err, &oor))
		assert.Equal(t, v, oor.Value)
	}
	assert.Equal(t, Unanswered, set.Value(1))

	err := set.Set(99, 2)
	assert.Error(t, err, "unknown question id")
}

func TestAnswerSetFromValues(t *testing.T) {
	set, err := AnswerSetFromValues([]int{1, 2, 3, 4, 1, 2, 3, 4, 1, 2, 3, 4, 1, 2, 3, 4, 1, 2, 3, 4})
	require.NoError(t, err)
	assert.True(t, set.Complete())

	_, err = AnswerSetFromValues([]int{1, 2, 3})
	assert.True(t, errors.Is(err, ErrIncompleteInput))

	_, err = AnswerSetFromValues([]int{1, 2, 3, 4, 1, 2, 3, 4, 1, 2, 3, 4, 1, 2, 3, 4, 1, 2, 3, 7})
	assert.True(t, errors.Is(err, ErrOutOfRange))
}

func TestAnswer_JSON(t *testing.T) {
	data, err := json.Marshal(Answer{QuestionID: 7, Dimension: Influence, Value: 3})
	require.NoError(t, err)
	assert.JSONEq(t, `{"questionId":7,"type":"I","value":3}`, string(data))

	var a Answer
	require.NoError(t, json.Unmarshal([]byte(`{"questionId":12,"type":"S","value":2}`), &a))
	assert.Equal(t, Answer{QuestionID: 12, Dimension: Steadiness, Value: 2}, a)

	assert.Error(t, json.Unmarshal([]byte(`{"questionId":1,"type":"X","value":2}`), &a))
}

func TestParseDimension(t *testing.T) {
	tests := []struct {
		in   string
		want Dimension
	}{
		{"D", Dominance},
		{"i", Influence},
		{"steadiness", Steadiness},
		{" Compliance ", Compliance},
	}
	for _, tt := range tests {
		got, err := ParseDimension(tt.in)
		require.NoError(t, err, tt.in)
		assert.Equal(t, tt.want, got)
	}
	_, err := ParseDimension("Q")
	assert.Error(t, err)
}

func TestDimensionInfo(t *testing.T) {
	assert.Equal(t, "#3B82F6", Dominance.Color())
	assert.Equal(t, "#10B981", Influence.Color())
	assert.Equal(t, "#F59E0B", Steadiness.Color())
	assert.Equal(t, "#6366F1", Compliance.Color())
	assert.Equal(t, "C", Compliance.Code())
	assert.Equal(t, "influence", Influence.Key())
	assert.False(t, Dimension(4).Valid())
	assert.Equal(t, "?", Dimension(4).Code())
}
