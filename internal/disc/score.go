package disc

import "math"

const (
	minRaw   = QuestionsPerDimension * MinValue
	maxRaw   = QuestionsPerDimension * MaxValue
	rawSpan  = maxRaw - minRaw
	maxScore = 100
)

// Scores holds the normalized 0-100 score of each dimension.
type Scores struct {
	Dominance  int `json:"dominance" yaml:"dominance"`
	Influence  int `json:"influence" yaml:"influence"`
	Steadiness int `json:"steadiness" yaml:"steadiness"`
	Compliance int `json:"compliance" yaml:"compliance"`
}

// Get returns the score for d.
func (s Scores) Get(d Dimension) int {
	switch d {
	case Dominance:
		return s.Dominance
	case Influence:
		return s.Influence
	case Steadiness:
		return s.Steadiness
	case Compliance:
		return s.Compliance
	default:
		return 0
	}
}

func (s *Scores) set(d Dimension, v int) {
	switch d {
	case Dominance:
		s.Dominance = v
	case Influence:
		s.Influence = v
	case Steadiness:
		s.Steadiness = v
	case Compliance:
		s.Compliance = v
	}
}

// ComputeScores sums the answers of each dimension and rescales the raw sum
// so that 5 maps to 0 and 20 maps to 100. Incomplete or out-of-range input
// is rejected instead of producing a score outside [0, 100].
func ComputeScores(answers AnswerSet) (Scores, error) {
	if err := answers.Validate(); err != nil {
		return Scores{}, err
	}

	var raw [DimensionCount]int
	for _, a := range answers {
		raw[a.Dimension] += a.Value
	}

	var s Scores
	for _, d := range AllDimensions() {
		s.set(d, normalize(raw[d]))
	}
	return s, nil
}

// normalize rounds half up.
func normalize(raw int) int {
	return int(math.Floor(float64((raw-minRaw)*maxScore)/float64(rawSpan) + 0.5))
}
