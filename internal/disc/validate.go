package disc

import (
	"fmt"
	"strings"
)

// ValidateBank checks the built-in question bank and option list.
func ValidateBank() error {
	return validateBank(questionBank, options)
}

// validateBank performs all structural checks on a question bank.
// Returns a combined error describing all problems found, or nil if valid.
func validateBank(questions []Question, opts []Option) error {
	var errs []string

	if len(questions) != QuestionCount {
		errs = append(errs, fmt.Sprintf("want %d questions, got %d", QuestionCount, len(questions)))
	}

	// IDs must be 1..N in array order
	for i, q := range questions {
		if q.ID != i+1 {
			errs = append(errs, fmt.Sprintf("question at position %d has ID %d, want %d", i, q.ID, i+1))
		}
		if strings.TrimSpace(q.Text) == "" {
			errs = append(errs, fmt.Sprintf("question %d has empty text", q.ID))
		}
		if !q.Dimension.Valid() {
			errs = append(errs, fmt.Sprintf("question %d has invalid dimension %d", q.ID, int(q.Dimension)))
		}
	}

	var counts [DimensionCount]int
	for _, q := range questions {
		if q.Dimension.Valid() {
			counts[q.Dimension]++
		}
	}
	for _, d := range AllDimensions() {
		if counts[d] != QuestionsPerDimension {
			errs = append(errs, fmt.Sprintf("dimension %s has %d questions, want %d", d.Code(), counts[d], QuestionsPerDimension))
		}
	}

	if len(opts) != MaxValue-MinValue+1 {
		errs = append(errs, fmt.Sprintf("want %d options, got %d", MaxValue-MinValue+1, len(opts)))
	}
	for i, o := range opts {
		if o.Value != MinValue+i {
			errs = append(errs, fmt.Sprintf("option at position %d has value %d, want %d", i, o.Value, MinValue+i))
		}
	}

	if len(errs) > 0 {
		return fmt.Errorf("question bank validation failed:\n  %s", strings.Join(errs, "\n  "))
	}
	return nil
}
