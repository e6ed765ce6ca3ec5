package disc

import (
	"errors"
	"fmt"
)

var (
	// ErrIncompleteInput is returned when scoring is attempted on an answer
	// set that is missing answers or has the wrong shape.
	ErrIncompleteInput = errors.New("incomplete answer set")

	// ErrOutOfRange is returned for an answer value outside the Likert scale.
	ErrOutOfRange = errors.New("answer value out of range")
)

// IncompleteInputError describes why an answer set cannot be scored.
type IncompleteInputError struct {
	// Dimension is set when a dimension has the wrong number of answers.
	Dimension *Dimension
	// Count is the number of answers found for Dimension.
	Count int
	// Unanswered lists the question ids still holding the unanswered sentinel.
	Unanswered []int
	// InvalidDimension lists question ids tagged with an unknown dimension.
	InvalidDimension []int
	// Duplicate lists question ids answered more than once.
	Duplicate []int
}

func (e *IncompleteInputError) Error() string {
	switch {
	case len(e.InvalidDimension) > 0:
		return fmt.Sprintf("%v: questions %v have an unknown dimension", ErrIncompleteInput, e.InvalidDimension)
	case len(e.Duplicate) > 0:
		return fmt.Sprintf("%v: questions %v answered more than once", ErrIncompleteInput, e.Duplicate)
	}
	if e.Dimension != nil {
		return fmt.Sprintf("%v: %s has %d answers, want %d",
			ErrIncompleteInput, e.Dimension.Name(), e.Count, QuestionsPerDimension)
	}
	return fmt.Sprintf("%v: unanswered questions %v", ErrIncompleteInput, e.Unanswered)
}

func (e *IncompleteInputError) Unwrap() error { return ErrIncompleteInput }

// OutOfRangeError reports a value outside [MinValue, MaxValue].
type OutOfRangeError struct {
	QuestionID int
	Value      int
}

func (e *OutOfRangeError) Error() string {
	return fmt.Sprintf("%v: question %d has value %d, want %d-%d",
		ErrOutOfRange, e.QuestionID, e.Value, MinValue, MaxValue)
}

func (e *OutOfRangeError) Unwrap() error { return ErrOutOfRange }
