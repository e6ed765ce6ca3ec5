package disc

// Tier is the band a score falls in.
type Tier int

const (
	TierLow Tier = iota
	TierMedium
	TierHigh
)

// Tier thresholds. A boundary value belongs to the upper tier.
const (
	HighThreshold   = 70
	MediumThreshold = 40
)

// TierFor classifies a score.
func TierFor(score int) Tier {
	switch {
	case score >= HighThreshold:
		return TierHigh
	case score >= MediumThreshold:
		return TierMedium
	default:
		return TierLow
	}
}

func (t Tier) String() string {
	switch t {
	case TierHigh:
		return "high"
	case TierMedium:
		return "medium"
	default:
		return "low"
	}
}

// descriptions is indexed by dimension, then tier.
var descriptions = [DimensionCount][3]string{
	Dominance: {
		TierLow:    "Preference for collaborative approaches and risk-averse behavior",
		TierMedium: "Moderate preference for direct communication and control",
		TierHigh:   "Strong preference for leadership and challenge-seeking behavior",
	},
	Influence: {
		TierLow:    "Preference for deep, meaningful connections over casual interactions",
		TierMedium: "Balanced approach between social interaction and reflection",
		TierHigh:   "Highly sociable and persuasive communication style",
	},
	Steadiness: {
		TierLow:    "Comfortable with change and flexible in approach",
		TierMedium: "Balanced approach between consistency and adaptability",
		TierHigh:   "Strong preference for stability and predictable environments",
	},
	Compliance: {
		TierLow:    "Preference for informal approaches and spontaneous decisions",
		TierMedium: "Balanced between rule-following and flexibility",
		TierHigh:   "Strong focus on accuracy and systematic approaches",
	},
}

// DescribeScore returns the English description of d at the given score.
func DescribeScore(d Dimension, score int) string {
	if !d.Valid() {
		return ""
	}
	return descriptions[d][TierFor(score)]
}

// Insight is the interpretation of one dimension's score.
type Insight struct {
	Dimension   Dimension `json:"dimension" yaml:"dimension"`
	Score       int       `json:"score" yaml:"score"`
	Tier        Tier      `json:"-" yaml:"-"`
	Description string    `json:"description" yaml:"description"`
}

// ComputeInsights returns one insight per dimension in D, I, S, C order.
func ComputeInsights(s Scores) []Insight {
	out := make([]Insight, 0, DimensionCount)
	for _, d := range AllDimensions() {
		score := s.Get(d)
		out = append(out, Insight{
			Dimension:   d,
			Score:       score,
			Tier:        TierFor(score),
			Description: DescribeScore(d, score),
		})
	}
	return out
}
