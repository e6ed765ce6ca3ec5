package cmd

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/abhisek/disc/internal/disc"
	"github.com/abhisek/disc/internal/validate"
)

func TestParseAnswers_Values(t *testing.T) {
	set, name, err := parseAnswers([]byte(`{"name":"Ada","values":[4,4,4,4,4,1,1,1,1,1,1,1,1,1,1,1,1,1,1,1]}`))
	require.NoError(t, err)
	assert.Equal(t, "Ada", name)

	r, err := disc.Evaluate(set)
	require.NoError(t, err)
	assert.Equal(t, 100, r.Scores.Dominance)
	assert.Equal(t, disc.Dominance, r.Primary.Dimension)
}

func TestParseAnswers_ByQuestion(t *testing.T) {
	set, name, err := parseAnswers([]byte(`{"answers":[{"questionId":3,"value":2},{"questionId":20,"value":4,"type":"C"}]}`))
	require.NoError(t, err)
	assert.Empty(t, name)
	assert.Equal(t, 2, set.Value(3))
	assert.Equal(t, 4, set.Value(20))

	_, err = disc.Evaluate(set)
	var incomplete *disc.IncompleteInputError
	require.True(t, errors.As(err, &incomplete))
	assert.ErrorIs(t, err, disc.ErrIncompleteInput)
}

func TestParseAnswers_SchemaViolations(t *testing.T) {
	tests := map[string]string{
		"not json":       `{"values":`,
		"value too high": `{"values":[5]}`,
		"value zero":     `{"answers":[{"questionId":1,"value":0}]}`,
		"bad question":   `{"answers":[{"questionId":21,"value":1}]}`,
		"both forms":     `{"values":[1],"answers":[{"questionId":1,"value":1}]}`,
		"neither form":   `{"name":"Ada"}`,
		"unknown field":  `{"values":[1],"extra":true}`,
	}
	for name, doc := range tests {
		t.Run(name, func(t *testing.T) {
			_, _, err := parseAnswers([]byte(doc))
			var invalid *validate.InvalidDocumentError
			assert.True(t, errors.As(err, &invalid), "got %v", err)
		})
	}
}

func TestParseValues(t *testing.T) {
	set, err := parseValues("1, 2,3,4,1,2,3,4,1,2,3,4,1,2,3,4,1,2,3,4")
	require.NoError(t, err)
	assert.True(t, set.Complete())
	assert.Equal(t, 2, set.Value(2))

	set, err = parseValues("4,4")
	require.NoError(t, err)
	assert.Len(t, set.Unanswered(), disc.QuestionCount-2)

	_, err = parseValues("4,x")
	assert.ErrorContains(t, err, `value 2: "x"`)

	_, err = parseValues("1,2,3,4,1,2,3,4,1,2,3,4,1,2,3,4,1,2,3,4,1")
	assert.ErrorContains(t, err, "got 21 values")

	_, err = parseValues("9")
	assert.ErrorIs(t, err, disc.ErrOutOfRange)
}
