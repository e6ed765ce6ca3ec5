package disc

// Answer is the response to one question. Value 0 means unanswered.
type Answer struct {
	QuestionID int       `json:"questionId"`
	Dimension  Dimension `json:"type"`
	Value      int       `json:"value"`
}

// AnswerSet holds one answer per question, in question order.
type AnswerSet []Answer

// NewAnswerSet returns an answer set with every question unanswered.
func NewAnswerSet() AnswerSet {
	set := make(AnswerSet, len(questionBank))
	for i, q := range questionBank {
		set[i] = Answer{QuestionID: q.ID, Dimension: q.Dimension, Value: Unanswered}
	}
	return set
}

// AnswerSetFromValues builds a complete answer set from 20 values in question order.
func AnswerSetFromValues(values []int) (AnswerSet, error) {
	if len(values) != len(questionBank) {
		return nil, &IncompleteInputError{Count: len(values), Unanswered: missingIDs(len(values))}
	}
	set := NewAnswerSet()
	for i, v := range values {
		if err := set.Set(questionBank[i].ID, v); err != nil {
			return nil, err
		}
	}
	return set, nil
}

func missingIDs(have int) []int {
	var ids []int
	for i := have; i < len(questionBank); i++ {
		ids = append(ids, questionBank[i].ID)
	}
	return ids
}

// Set records value for the question with the given id. Values outside
// [MinValue, MaxValue] are rejected; Unanswered clears the answer.
func (s AnswerSet) Set(questionID, value int) error {
	if value != Unanswered && !ValidValue(value) {
		return &OutOfRangeError{QuestionID: questionID, Value: value}
	}
	for i := range s {
		if s[i].QuestionID == questionID {
			s[i].Value = value
			return nil
		}
	}
	return &OutOfRangeError{QuestionID: questionID, Value: value}
}

// Value returns the recorded value for a question, or Unanswered.
func (s AnswerSet) Value(questionID int) int {
	for _, a := range s {
		if a.QuestionID == questionID {
			return a.Value
		}
	}
	return Unanswered
}

// Unanswered returns the ids of questions without an answer.
func (s AnswerSet) Unanswered() []int {
	var ids []int
	for _, a := range s {
		if a.Value == Unanswered {
			ids = append(ids, a.QuestionID)
		}
	}
	return ids
}

// Answered returns the number of answered questions.
func (s AnswerSet) Answered() int {
	n := 0
	for _, a := range s {
		if a.Value != Unanswered {
			n++
		}
	}
	return n
}

// Complete reports whether the set can be scored.
func (s AnswerSet) Complete() bool {
	return s.Validate() == nil
}

// Clone returns an independent copy.
func (s AnswerSet) Clone() AnswerSet {
	out := make(AnswerSet, len(s))
	copy(out, s)
	return out
}

// Validate checks that every dimension has exactly QuestionsPerDimension
// answers and every value is on the Likert scale. Question ids must be
// distinct but are not matched against the bank; scoring goes by the
// dimension tag alone.
func (s AnswerSet) Validate() error {
	var (
		counts  [DimensionCount]int
		invalid []int
		dups    []int
	)
	seen := make(map[int]bool, len(s))
	for _, a := range s {
		if seen[a.QuestionID] {
			dups = append(dups, a.QuestionID)
		}
		seen[a.QuestionID] = true
		if !a.Dimension.Valid() {
			invalid = append(invalid, a.QuestionID)
			continue
		}
		counts[a.Dimension]++
	}
	if len(invalid) > 0 {
		return &IncompleteInputError{InvalidDimension: invalid}
	}
	if len(dups) > 0 {
		return &IncompleteInputError{Duplicate: dups}
	}
	for _, d := range AllDimensions() {
		if counts[d] != QuestionsPerDimension {
			d := d
			return &IncompleteInputError{Dimension: &d, Count: counts[d]}
		}
	}
	if ids := s.Unanswered(); len(ids) > 0 {
		return &IncompleteInputError{Unanswered: ids}
	}
	for _, a := range s {
		if !ValidValue(a.Value) {
			return &OutOfRangeError{QuestionID: a.QuestionID, Value: a.Value}
		}
	}
	return nil
}
