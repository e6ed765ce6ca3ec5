package cmd

import (
	"encoding/json"
	"fmt"
	"strconv"
	"strings"

	"github.com/abhisek/disc/internal/disc"
	"github.com/abhisek/disc/internal/validate"
)

// answersDoc is the document read by `disc score --answers`. Either
// answers or values is given.
type answersDoc struct {
	Name    string `json:"name,omitempty"`
	Answers []struct {
		QuestionID int `json:"questionId"`
		Value      int `json:"value"`
	} `json:"answers,omitempty"`
	Values []int `json:"values,omitempty"`
}

var answerValue = map[string]any{"type": "integer", "minimum": disc.MinValue, "maximum": disc.MaxValue}

var answersSchema = &validate.Schema{
	Name: "answers",
	Definition: map[string]any{
		"type": "object",
		"properties": map[string]any{
			"name": map[string]any{"type": "string"},
			"answers": map[string]any{
				"type":     "array",
				"maxItems": disc.QuestionCount,
				"items": map[string]any{
					"type": "object",
					"properties": map[string]any{
						"questionId": map[string]any{"type": "integer", "minimum": 1, "maximum": disc.QuestionCount},
						"value":      answerValue,
						"type":       map[string]any{"type": "string"},
					},
					"required":             []any{"questionId", "value"},
					"additionalProperties": false,
				},
			},
			"values": map[string]any{
				"type":     "array",
				"maxItems": disc.QuestionCount,
				"items":    answerValue,
			},
		},
		"oneOf": []any{
			map[string]any{"required": []any{"answers"}},
			map[string]any{"required": []any{"values"}},
		},
		"additionalProperties": false,
	},
}

// parseAnswers validates raw and builds the answer set it describes,
// returning the name it carries, if any. Missing answers are left unset
// so scoring reports them.
func parseAnswers(raw []byte) (disc.AnswerSet, string, error) {
	if err := validate.JSON(answersSchema, raw); err != nil {
		return nil, "", err
	}
	var doc answersDoc
	if err := json.Unmarshal(raw, &doc); err != nil {
		return nil, "", fmt.Errorf("decode answers: %w", err)
	}

	if doc.Values != nil {
		set, err := valuesToSet(doc.Values)
		return set, doc.Name, err
	}
	set := disc.NewAnswerSet()
	for _, a := range doc.Answers {
		if err := set.Set(a.QuestionID, a.Value); err != nil {
			return nil, "", err
		}
	}
	return set, doc.Name, nil
}

// parseValues reads a comma-separated list of answer values in question
// order, e.g. "5,4,3,...".
func parseValues(s string) (disc.AnswerSet, error) {
	fields := strings.Split(s, ",")
	values := make([]int, 0, len(fields))
	for i, f := range fields {
		v, err := strconv.Atoi(strings.TrimSpace(f))
		if err != nil {
			return nil, fmt.Errorf("value %d: %q is not a number", i+1, strings.TrimSpace(f))
		}
		values = append(values, v)
	}
	return valuesToSet(values)
}

// valuesToSet pads a short list with unanswered questions.
func valuesToSet(values []int) (disc.AnswerSet, error) {
	if len(values) > disc.QuestionCount {
		return nil, fmt.Errorf("got %d values, want %d", len(values), disc.QuestionCount)
	}
	padded := make([]int, disc.QuestionCount)
	copy(padded, values)
	return disc.AnswerSetFromValues(padded)
}
